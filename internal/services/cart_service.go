// internal/services/cart_service.go
package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/javajoker/storefront/internal/cart"
	"github.com/javajoker/storefront/internal/i18n"
	"github.com/javajoker/storefront/internal/models"
	"github.com/javajoker/storefront/internal/utils"
)

type CartService struct {
	registry *cart.Registry
	catalog  *CatalogService
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required,max=64"`
}

type UpdateQuantityRequest struct {
	// Quantity may be zero or negative; both remove the item.
	Quantity *int `json:"quantity" validate:"required"`
}

type LoginRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone,omitempty" validate:"omitempty,phone"`
}

type CartLine struct {
	models.CartItem
	Total          float64 `json:"line_total"`
	FormattedTotal string  `json:"formatted_line_total"`
}

type CartSummary struct {
	Items             []CartLine   `json:"items"`
	ItemCount         int          `json:"item_count"`
	Subtotal          float64      `json:"subtotal"`
	FormattedSubtotal string       `json:"formatted_subtotal"`
	User              *models.User `json:"user"`
}

// HeaderSummary is what the page header shows: badge count and greeting.
type HeaderSummary struct {
	CartCount int          `json:"cart_count"`
	Greeting  string       `json:"greeting"`
	User      *models.User `json:"user"`
}

func NewCartService(registry *cart.Registry, catalog *CatalogService) *CartService {
	return &CartService{
		registry: registry,
		catalog:  catalog,
	}
}

func (s *CartService) Cart(ctx context.Context, sessionID string) CartSummary {
	return summarize(s.registry.Store(ctx, sessionID).Snapshot())
}

// AddToCart resolves productID against the catalog so the cart only ever
// holds catalog products.
func (s *CartService) AddToCart(ctx context.Context, sessionID, productID string) (CartSummary, error) {
	product, err := s.catalog.Get(productID)
	if err != nil {
		return CartSummary{}, err
	}

	store := s.registry.Store(ctx, sessionID)
	store.AddToCart(product)
	return summarize(store.Snapshot()), nil
}

func (s *CartService) RemoveFromCart(ctx context.Context, sessionID, productID string) CartSummary {
	store := s.registry.Store(ctx, sessionID)
	store.RemoveFromCart(productID)
	return summarize(store.Snapshot())
}

func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) CartSummary {
	store := s.registry.Store(ctx, sessionID)
	store.UpdateQuantity(productID, quantity)
	return summarize(store.Snapshot())
}

func (s *CartService) ClearCart(ctx context.Context, sessionID string) CartSummary {
	store := s.registry.Store(ctx, sessionID)
	store.ClearCart()
	return summarize(store.Snapshot())
}

// Login is the mock login: whoever submits a name and email becomes the
// session's user. Nothing is verified.
func (s *CartService) Login(ctx context.Context, sessionID string, req *LoginRequest) *models.User {
	user := &models.User{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	s.registry.Store(ctx, sessionID).SetUser(user)
	return user
}

func (s *CartService) Logout(ctx context.Context, sessionID string) {
	s.registry.Store(ctx, sessionID).SetUser(nil)
}

func (s *CartService) CurrentUser(ctx context.Context, sessionID string) *models.User {
	return s.registry.Store(ctx, sessionID).User()
}

func (s *CartService) Header(ctx context.Context, sessionID string) HeaderSummary {
	state := s.registry.Store(ctx, sessionID).Snapshot()

	greeting := i18n.T(i18n.KeyAuthGuestGreeting)
	if state.User != nil {
		greeting = state.User.Name
	}

	return HeaderSummary{
		CartCount: state.ItemCount(),
		Greeting:  greeting,
		User:      state.User,
	}
}

func summarize(state cart.State) CartSummary {
	lines := make([]CartLine, 0, len(state.Items))
	for _, item := range state.Items {
		total := item.LineTotal()
		lines = append(lines, CartLine{
			CartItem:       item,
			Total:          total,
			FormattedTotal: utils.FormatPrice(total),
		})
	}

	subtotal := state.Subtotal()
	return CartSummary{
		Items:             lines,
		ItemCount:         state.ItemCount(),
		Subtotal:          subtotal,
		FormattedSubtotal: utils.FormatPrice(subtotal),
		User:              state.User,
	}
}
