package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	cartdomain "github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/cart/domain"
	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/catalog/repository"
)

// CartService is the gateway's view of the cart store.
type CartService interface {
	GetCart(ctx context.Context, clientID string) (*cartdomain.Cart, error)
	AddItem(ctx context.Context, clientID string, item cartdomain.CartItem) error
	UpdateQuantity(ctx context.Context, clientID string, productID int64, quantity int) error
	RemoveItem(ctx context.Context, clientID string, productID int64) error
	ClearCart(ctx context.Context, clientID string) error
}

type CartHandler struct {
	cart    CartService
	catalog Catalog
	timeout time.Duration
}

func NewCartHandler(cart CartService, catalog Catalog, timeout time.Duration) *CartHandler {
	return &CartHandler{
		cart:    cart,
		catalog: catalog,
		timeout: timeout,
	}
}

type AddItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

// CartResponseDTO carries the cart plus its derived values, recomputed on
// every response.
type CartResponseDTO struct {
	Items     []cartdomain.CartItem `json:"items"`
	Total     float64               `json:"total"`
	ItemCount int                   `json:"item_count"`
}

func cartDTO(cart *cartdomain.Cart) CartResponseDTO {
	items := cart.Items
	if items == nil {
		items = []cartdomain.CartItem{}
	}
	return CartResponseDTO{
		Items:     items,
		Total:     cart.Total(),
		ItemCount: cart.ItemCount(),
	}
}

func (h *CartHandler) respondCart(w http.ResponseWriter, ctx context.Context, clientID string, status int) {
	cart, err := h.cart.GetCart(ctx, clientID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to get cart")
		return
	}
	respondJSON(w, status, cartDTO(cart))
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	clientID := clientIDFromContext(r.Context())
	h.respondCart(w, ctx, clientID, http.StatusOK)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	clientID := clientIDFromContext(r.Context())

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1 // the storefront adds one unit per click
	}
	if req.Quantity < 0 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	// Resolve the product so the line entry carries name, price and image
	product, err := h.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to validate product")
		return
	}

	item := cartdomain.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		ImageURL:  product.ImageURL,
		Quantity:  req.Quantity,
	}
	if err := h.cart.AddItem(ctx, clientID, item); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to add item to cart")
		return
	}

	h.respondCart(w, ctx, clientID, http.StatusCreated)
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	clientID := clientIDFromContext(r.Context())

	productIDStr := chi.URLParam(r, "product_id")
	productID, err := strconv.ParseInt(productIDStr, 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be at most 99")
		return
	}

	// Zero and below remove the entry; the store handles that rule
	if err := h.cart.UpdateQuantity(ctx, clientID, productID, req.Quantity); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update item quantity")
		return
	}

	h.respondCart(w, ctx, clientID, http.StatusOK)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	clientID := clientIDFromContext(r.Context())

	productIDStr := chi.URLParam(r, "product_id")
	productID, err := strconv.ParseInt(productIDStr, 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	if err := h.cart.RemoveItem(ctx, clientID, productID); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to remove item")
		return
	}

	h.respondCart(w, ctx, clientID, http.StatusOK)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	clientID := clientIDFromContext(r.Context())

	if err := h.cart.ClearCart(ctx, clientID); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to clear cart")
		return
	}

	h.respondCart(w, ctx, clientID, http.StatusOK)
}
