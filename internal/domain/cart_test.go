package domain_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/nikolayk812/santos-store/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

var currencyComparer = cmp.Comparer(func(x, y currency.Unit) bool {
	return x.String() == y.String()
})

func TestCart_AddAccumulates(t *testing.T) {
	var cart domain.Cart
	info := productInfo("10", "X", "C")

	require.NoError(t, cart.Add("p1", 1, info, time.Now()))
	require.NoError(t, cart.Add("p1", 1, info, time.Now()))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 2, cart.Count())
	assert.True(t, decimal.NewFromInt(20).Equal(cart.Total().Amount))
}

func TestCart_AddRefreshesSnapshot(t *testing.T) {
	var cart domain.Cart
	require.NoError(t, cart.Add("p1", 1, productInfo("10", "Old", "A"), time.Now()))
	require.NoError(t, cart.Add("p1", 3, productInfo("12.50", "New", "B"), time.Now()))

	item, ok := cart.Item("p1")
	require.True(t, ok)
	assert.Equal(t, 4, item.Quantity)
	assert.Equal(t, "New", item.Name)
	assert.Equal(t, "B", item.Category)
	assert.True(t, decimal.RequireFromString("50").Equal(cart.Total().Amount))
}

func TestCart_Add(t *testing.T) {
	tests := []struct {
		name      string
		productID string
		quantity  int
		info      domain.ProductInfo
		wantError error
	}{
		{
			name:      "add: ok",
			productID: "p1",
			quantity:  2,
			info:      productInfo("1", "X", "C"),
		},
		{
			name:      "add free product: ok",
			productID: "p1",
			quantity:  1,
			info:      productInfo("0", "X", "C"),
		},
		{
			name:      "empty product id: error",
			quantity:  1,
			info:      productInfo("1", "X", "C"),
			wantError: domain.ErrEmptyProductID,
		},
		{
			name:      "zero quantity: error",
			productID: "p1",
			info:      productInfo("1", "X", "C"),
			wantError: domain.ErrInvalidQuantity,
		},
		{
			name:      "negative price: error",
			productID: "p1",
			quantity:  1,
			info:      productInfo("-1", "X", "C"),
			wantError: domain.ErrNegativePrice,
		},
		{
			name:      "quantity above the cap: error",
			productID: "p1",
			quantity:  domain.MaxQuantity + 1,
			info:      productInfo("1", "X", "C"),
			wantError: domain.ErrInvalidQuantity,
		},
		{
			name:      "quantity wrapping int32: error",
			productID: "p1",
			quantity:  4294967297,
			info:      productInfo("1", "X", "C"),
			wantError: domain.ErrInvalidQuantity,
		},
		{
			name:      "foreign currency: error",
			productID: "p1",
			quantity:  1,
			info:      domain.ProductInfo{Name: "X", Price: domain.Money{Amount: decimal.NewFromInt(10), Currency: currency.USD}},
			wantError: domain.ErrForeignCurrency,
		},
		{
			name:      "fraction of a cent: error",
			productID: "p1",
			quantity:  1,
			info:      productInfo("10.005", "X", "C"),
			wantError: domain.ErrPricePrecision,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cart domain.Cart

			err := cart.Add(tt.productID, tt.quantity, tt.info, time.Now())
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				assert.Empty(t, cart.Items)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.quantity, cart.Count())
		})
	}
}

func TestCart_AddStopsAtMaxQuantity(t *testing.T) {
	var cart domain.Cart
	info := productInfo("1", "X", "C")

	require.NoError(t, cart.Add("p1", domain.MaxQuantity-1, info, time.Now()))
	require.NoError(t, cart.Add("p1", 1, info, time.Now()))

	err := cart.Add("p1", 1, info, time.Now())
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Equal(t, domain.MaxQuantity, cart.Count())
}

func TestCart_RemoveIsIdempotent(t *testing.T) {
	cart := sampleCart(t)
	before := cart.Clone()

	assert.False(t, cart.Remove("missing"))
	assert.Empty(t, cmp.Diff(before, cart, cmpopts.EquateEmpty(), currencyComparer))

	assert.True(t, cart.Remove("p1"))
	assert.False(t, cart.Remove("p1"))
	_, ok := cart.Item("p1")
	assert.False(t, ok)
}

func TestCart_SetQuantity(t *testing.T) {
	tests := []struct {
		name        string
		productID   string
		quantity    int
		wantChanged bool
		wantQty     int
		wantPresent bool
	}{
		{
			name:        "overwrite existing line",
			productID:   "p1",
			quantity:    7,
			wantChanged: true,
			wantQty:     7,
			wantPresent: true,
		},
		{
			name:        "zero removes the line",
			productID:   "p1",
			quantity:    0,
			wantChanged: true,
		},
		{
			name:        "negative removes the line",
			productID:   "p1",
			quantity:    -3,
			wantChanged: true,
		},
		{
			name:      "missing line with positive quantity is ignored",
			productID: "missing",
			quantity:  5,
		},
		{
			name:      "missing line with zero quantity is ignored",
			productID: "missing",
			quantity:  0,
		},
		{
			name:        "quantity above the cap is ignored",
			productID:   "p1",
			quantity:    domain.MaxQuantity + 1,
			wantQty:     2,
			wantPresent: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := sampleCart(t)

			changed := cart.SetQuantity(tt.productID, tt.quantity)
			assert.Equal(t, tt.wantChanged, changed)

			item, ok := cart.Item(tt.productID)
			assert.Equal(t, tt.wantPresent, ok)
			if ok {
				assert.Equal(t, tt.wantQty, item.Quantity)
			}
		})
	}
}

func TestCart_SetQuantityZeroEqualsRemove(t *testing.T) {
	viaSet := sampleCart(t)
	viaRemove := sampleCart(t)

	viaSet.SetQuantity("p1", 0)
	viaRemove.Remove("p1")

	assert.Empty(t, cmp.Diff(viaRemove, viaSet, currencyComparer))
}

func TestCart_Subtract(t *testing.T) {
	cart := sampleCart(t)
	require.NoError(t, cart.Add("p3", 1, productInfo("5", "Meia", "Roupas"), time.Now()))

	ordered := []domain.CartItem{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p2", Quantity: 1},
		{ProductID: "missing", Quantity: 4},
	}
	assert.True(t, cart.Subtract(ordered))

	p1, ok := cart.Item("p1")
	require.True(t, ok)
	assert.Equal(t, 1, p1.Quantity)
	_, ok = cart.Item("p2")
	assert.False(t, ok)
	_, ok = cart.Item("p3")
	assert.True(t, ok)

	assert.False(t, cart.Subtract([]domain.CartItem{{ProductID: "missing", Quantity: 1}}))
}

func TestCart_MergeMissingFavorsLocal(t *testing.T) {
	local := domain.Cart{}
	require.NoError(t, local.Add("p1", 2, productInfo("10", "Local", "C"), time.Now()))

	server := domain.Cart{}
	require.NoError(t, server.Add("p1", 5, productInfo("9", "Server", "C"), time.Now()))
	require.NoError(t, server.Add("p2", 1, productInfo("3", "Other", "D"), time.Now()))

	adopted := local.MergeMissing(server)
	assert.Equal(t, 1, adopted)

	p1, ok := local.Item("p1")
	require.True(t, ok)
	assert.Equal(t, 2, p1.Quantity)
	assert.Equal(t, "Local", p1.Name)

	p2, ok := local.Item("p2")
	require.True(t, ok)
	assert.Equal(t, 1, p2.Quantity)
	assert.Equal(t, "Other", p2.Name)
}

func TestCart_Validate(t *testing.T) {
	item := domain.CartItem{ProductID: "p1", Quantity: 1, Price: domain.NewBRL(decimal.NewFromInt(1))}

	tests := []struct {
		name      string
		items     []domain.CartItem
		wantError error
	}{
		{name: "empty cart: ok"},
		{name: "single item: ok", items: []domain.CartItem{item}},
		{name: "duplicate product: error", items: []domain.CartItem{item, item}, wantError: domain.ErrDuplicateProduct},
		{
			name:      "zero quantity: error",
			items:     []domain.CartItem{{ProductID: "p1", Price: item.Price}},
			wantError: domain.ErrInvalidQuantity,
		},
		{
			name:      "missing product: error",
			items:     []domain.CartItem{{Quantity: 1, Price: item.Price}},
			wantError: domain.ErrEmptyProductID,
		},
		{
			name:      "quantity wrapping int32: error",
			items:     []domain.CartItem{{ProductID: "p1", Quantity: 4294967297, Price: item.Price}},
			wantError: domain.ErrInvalidQuantity,
		},
		{
			name:      "quantity overflowing int32: error",
			items:     []domain.CartItem{{ProductID: "p1", Quantity: 2147483648, Price: item.Price}},
			wantError: domain.ErrInvalidQuantity,
		},
		{
			name: "mixed foreign currencies: error",
			items: []domain.CartItem{
				{ProductID: "p1", Quantity: 1, Price: domain.Money{Amount: decimal.NewFromInt(10), Currency: currency.USD}},
				{ProductID: "p2", Quantity: 1, Price: domain.Money{Amount: decimal.NewFromInt(10), Currency: currency.EUR}},
			},
			wantError: domain.ErrForeignCurrency,
		},
		{
			name:      "fraction of a cent: error",
			items:     []domain.CartItem{{ProductID: "p1", Quantity: 1, Price: domain.NewBRL(decimal.RequireFromString("0.001"))}},
			wantError: domain.ErrPricePrecision,
		},
		{
			name:      "trailing zeros beyond cents: ok",
			items:     []domain.CartItem{{ProductID: "p1", Quantity: 1, Price: domain.NewBRL(decimal.RequireFromString("10.5000"))}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.Cart{OwnerID: "u", Items: tt.items}.Validate()
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestOrderSummary(t *testing.T) {
	cart := sampleCart(t)

	summary := domain.OrderSummary("Maria", cart)

	assert.Contains(t, summary, "(Maria)")
	assert.Contains(t, summary, "- 2x Camiseta [Roupas]: R$ 99.80")
	assert.Contains(t, summary, "- 1x Caneca [Casa]: R$ 25.00")
	assert.Contains(t, summary, "Total: R$ 124.80")
}

func sampleCart(t *testing.T) domain.Cart {
	t.Helper()

	var cart domain.Cart
	require.NoError(t, cart.Add("p1", 2, productInfo("49.90", "Camiseta", "Roupas"), time.Now()))
	require.NoError(t, cart.Add("p2", 1, productInfo("25", "Caneca", "Casa"), time.Now()))
	return cart
}

func productInfo(price, name, category string) domain.ProductInfo {
	return domain.ProductInfo{
		Name:     name,
		Price:    domain.NewBRL(decimal.RequireFromString(price)),
		Category: category,
	}
}
