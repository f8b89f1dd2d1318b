package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxQuantity caps a single cart line.
const MaxQuantity = 9999

type Cart struct {
	OwnerID string
	Items   []CartItem
}

type CartItem struct {
	ProductID string
	Quantity  int
	Price     Money
	Name      string
	Category  string

	CreatedAt time.Time
}

// ProductInfo is the product snapshot captured when a line is added.
type ProductInfo struct {
	Name     string
	Price    Money
	Category string
}

func (c *Cart) index(productID string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) Item(productID string) (CartItem, bool) {
	i := c.index(productID)
	if i < 0 {
		return CartItem{}, false
	}
	return c.Items[i], true
}

// Add increments the line for productID by quantity, creating it if needed.
// The line's name, price and category are always replaced by info.
func (c *Cart) Add(productID string, quantity int, info ProductInfo, now time.Time) error {
	if productID == "" {
		return ErrEmptyProductID
	}
	if quantity < 1 || quantity > MaxQuantity {
		return ErrInvalidQuantity
	}
	if err := info.Price.ValidatePrice(); err != nil {
		return err
	}

	if i := c.index(productID); i >= 0 {
		if c.Items[i].Quantity+quantity > MaxQuantity {
			return ErrInvalidQuantity
		}
		c.Items[i].Quantity += quantity
		c.Items[i].Name = info.Name
		c.Items[i].Price = info.Price
		c.Items[i].Category = info.Category
		return nil
	}

	c.Items = append(c.Items, CartItem{
		ProductID: productID,
		Quantity:  quantity,
		Price:     info.Price,
		Name:      info.Name,
		Category:  info.Category,
		CreatedAt: now,
	})
	return nil
}

// Remove deletes the line for productID. It reports whether a line was removed.
func (c *Cart) Remove(productID string) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	return true
}

// SetQuantity overwrites the quantity of an existing line. A quantity <= 0
// removes the line, one above MaxQuantity is ignored. A missing line is never
// created here, Add is the only insertion path. It reports whether the cart changed.
func (c *Cart) SetQuantity(productID string, quantity int) bool {
	if quantity <= 0 {
		return c.Remove(productID)
	}
	if quantity > MaxQuantity {
		return false
	}

	i := c.index(productID)
	if i < 0 {
		return false
	}
	if c.Items[i].Quantity == quantity {
		return false
	}
	c.Items[i].Quantity = quantity
	return true
}

// Subtract takes the quantities of items out of c and drops lines that reach
// zero. Lines of c not in items are kept. It reports whether the cart changed.
func (c *Cart) Subtract(items []CartItem) bool {
	var changed bool
	for _, item := range items {
		i := c.index(item.ProductID)
		if i < 0 {
			continue
		}
		if c.Items[i].Quantity > item.Quantity {
			c.Items[i].Quantity -= item.Quantity
		} else {
			c.Remove(item.ProductID)
		}
		changed = true
	}
	return changed
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) Count() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// Total sums the snapshotted line prices in the store currency. Validate
// rejects lines quoted in any other currency.
func (c *Cart) Total() Money {
	total := NewBRL(decimal.Zero)
	for _, item := range c.Items {
		total.Amount = total.Amount.Add(item.Price.Mul(item.Quantity).Amount)
	}
	return total
}

// MergeMissing adopts every line of other whose product is not present in c.
// Lines already in c are left untouched. It returns the number of adopted lines.
func (c *Cart) MergeMissing(other Cart) int {
	var adopted int
	for _, item := range other.Items {
		if c.index(item.ProductID) >= 0 {
			continue
		}
		c.Items = append(c.Items, item)
		adopted++
	}
	return adopted
}

// Validate checks the invariants of a full cart snapshot.
func (c Cart) Validate() error {
	seen := make(map[string]struct{}, len(c.Items))
	for _, item := range c.Items {
		if item.ProductID == "" {
			return ErrEmptyProductID
		}
		if item.Quantity < 1 || item.Quantity > MaxQuantity {
			return ErrInvalidQuantity
		}
		if err := item.Price.ValidatePrice(); err != nil {
			return err
		}
		if _, ok := seen[item.ProductID]; ok {
			return ErrDuplicateProduct
		}
		seen[item.ProductID] = struct{}{}
	}
	return nil
}

// Clone returns a copy that shares no item storage with c.
func (c Cart) Clone() Cart {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return Cart{OwnerID: c.OwnerID, Items: items}
}
