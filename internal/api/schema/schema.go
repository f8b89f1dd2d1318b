// Package schema holds the JSON bodies exchanged between the store API and its clients.
package schema

import (
	"time"

	"github.com/nikolayk812/santos-store/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type CartItem struct {
	ProductID string          `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1,max=9999"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency,omitempty"`
	Name      string          `json:"name"`
	Category  string          `json:"category,omitempty"`
	CreatedAt time.Time       `json:"created_at,omitempty"`
}

type Cart struct {
	Items []CartItem `json:"items" binding:"dive"`
}

type Purchase struct {
	ID        string     `json:"id"`
	Items     []CartItem `json:"items"`
	Total     string     `json:"total"`
	Currency  string     `json:"currency"`
	Summary   string     `json:"summary"`
	CreatedAt time.Time  `json:"created_at"`
}

type PurchaseRequest struct {
	Items   []CartItem `json:"items" binding:"required,min=1,dive"`
	Summary string     `json:"summary" binding:"max=4000"`
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	ImageURL    string          `json:"image_url,omitempty"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ProductRequest struct {
	Name        string          `json:"name" binding:"required,max=200"`
	Description string          `json:"description" binding:"max=4000"`
	Category    string          `json:"category" binding:"max=100"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url" binding:"omitempty,url"`
	Active      *bool           `json:"active"`
}

type Banner struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url"`
	LinkURL   string    `json:"link_url,omitempty"`
	Position  int       `json:"position"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BannerRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	ImageURL string `json:"image_url" binding:"required,url"`
	LinkURL  string `json:"link_url" binding:"max=2000"`
	Position int    `json:"position" binding:"min=0,max=9999"`
	Active   *bool  `json:"active"`
}

type Address struct {
	CEP          string `json:"cep" binding:"required"`
	Street       string `json:"street" binding:"max=200"`
	Number       string `json:"number" binding:"max=20"`
	Complement   string `json:"complement" binding:"max=100"`
	Neighborhood string `json:"neighborhood" binding:"max=100"`
	City         string `json:"city" binding:"max=100"`
	State        string `json:"state" binding:"omitempty,len=2"`
}

type User struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	CPF     string  `json:"cpf"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
	IsAdmin bool    `json:"is_admin"`
}

type SendCodeRequest struct {
	Phone string `json:"phone" binding:"required"`
}

type ConfirmCodeRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required,len=6,numeric"`
}

type RegisterRequest struct {
	Name             string  `json:"name" binding:"required,max=200"`
	Email            string  `json:"email" binding:"required,email"`
	CPF              string  `json:"cpf" binding:"required"`
	Phone            string  `json:"phone" binding:"required"`
	VerificationCode string  `json:"verification_code" binding:"required,len=6,numeric"`
	Password         string  `json:"password" binding:"required,min=6,max=72"`
	Address          Address `json:"address" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

func CartItemFromDomain(item domain.CartItem) CartItem {
	return CartItem{
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Price:     item.Price.Amount,
		Currency:  item.Price.Currency.String(),
		Name:      item.Name,
		Category:  item.Category,
		CreatedAt: item.CreatedAt,
	}
}

func CartItemsFromDomain(items []domain.CartItem) []CartItem {
	result := make([]CartItem, 0, len(items))
	for _, item := range items {
		result = append(result, CartItemFromDomain(item))
	}
	return result
}

func (i CartItem) ToDomain() (domain.CartItem, error) {
	unit, err := parseCurrency(i.Currency)
	if err != nil {
		return domain.CartItem{}, err
	}

	return domain.CartItem{
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		Price:     domain.Money{Amount: i.Price, Currency: unit},
		Name:      i.Name,
		Category:  i.Category,
		CreatedAt: i.CreatedAt,
	}, nil
}

func CartItemsToDomain(items []CartItem) ([]domain.CartItem, error) {
	result := make([]domain.CartItem, 0, len(items))
	for _, item := range items {
		converted, err := item.ToDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, converted)
	}
	return result, nil
}

func CartFromDomain(cart domain.Cart) Cart {
	return Cart{Items: CartItemsFromDomain(cart.Items)}
}

func PurchaseFromDomain(p domain.Purchase) Purchase {
	return Purchase{
		ID:        p.ID.String(),
		Items:     CartItemsFromDomain(p.Items),
		Total:     p.Total.Amount.StringFixed(2),
		Currency:  p.Total.Currency.String(),
		Summary:   p.Summary,
		CreatedAt: p.CreatedAt,
	}
}

func ProductFromDomain(p domain.Product) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price.Amount,
		Currency:    p.Price.Currency.String(),
		ImageURL:    p.ImageURL,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (p Product) ToDomain() (domain.Product, error) {
	unit, err := parseCurrency(p.Currency)
	if err != nil {
		return domain.Product{}, err
	}

	return domain.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       domain.Money{Amount: p.Price, Currency: unit},
		ImageURL:    p.ImageURL,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}

// ToDomain builds a product in the store currency. Active defaults to true.
func (r ProductRequest) ToDomain(id string) domain.Product {
	active := true
	if r.Active != nil {
		active = *r.Active
	}

	return domain.Product{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       domain.NewBRL(r.Price),
		ImageURL:    r.ImageURL,
		Active:      active,
	}
}

func BannerFromDomain(b domain.Banner) Banner {
	return Banner{
		ID:        b.ID,
		Title:     b.Title,
		ImageURL:  b.ImageURL,
		LinkURL:   b.LinkURL,
		Position:  b.Position,
		Active:    b.Active,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func BannersFromDomain(banners []domain.Banner) []Banner {
	result := make([]Banner, 0, len(banners))
	for _, b := range banners {
		result = append(result, BannerFromDomain(b))
	}
	return result
}

func (r BannerRequest) ToDomain(id string) domain.Banner {
	active := true
	if r.Active != nil {
		active = *r.Active
	}

	return domain.Banner{
		ID:       id,
		Title:    r.Title,
		ImageURL: r.ImageURL,
		LinkURL:  r.LinkURL,
		Position: r.Position,
		Active:   active,
	}
}

func AddressFromDomain(a domain.Address) Address {
	return Address{
		CEP:          a.CEP,
		Street:       a.Street,
		Number:       a.Number,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
	}
}

func (a Address) ToDomain() domain.Address {
	return domain.Address{
		CEP:          a.CEP,
		Street:       a.Street,
		Number:       a.Number,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
	}
}

func UserFromDomain(u domain.User) User {
	return User{
		ID:      u.ID.String(),
		Name:    u.Name,
		Email:   u.Email,
		CPF:     domain.FormatCPF(u.CPF),
		Phone:   u.Phone,
		Address: AddressFromDomain(u.Address),
		IsAdmin: u.IsAdmin,
	}
}

func (r RegisterRequest) ToDomain() domain.Registration {
	return domain.Registration{
		Name:             r.Name,
		Email:            r.Email,
		CPF:              r.CPF,
		Phone:            r.Phone,
		VerificationCode: r.VerificationCode,
		Password:         r.Password,
		Address:          r.Address.ToDomain(),
	}
}

func LoginResponseFromDomain(session domain.Session, user domain.User) LoginResponse {
	return LoginResponse{
		Token:     session.Token.String(),
		ExpiresAt: session.ExpiresAt,
		User:      UserFromDomain(user),
	}
}

// parseCurrency treats an empty code as the store currency.
func parseCurrency(code string) (currency.Unit, error) {
	if code == "" {
		return domain.StoreCurrency, nil
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return currency.Unit{}, domain.ErrInvalidCurrency
	}
	return unit, nil
}
