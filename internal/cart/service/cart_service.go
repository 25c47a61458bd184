package service

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/cart/cache"
	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/cart/domain"
	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/cart/repository"
)

type CartService struct {
	repo  repository.CartRepository
	cache cache.CartCache
	sfg   singleflight.Group // Prevents cache stampede
}

func NewCartService(repo repository.CartRepository, cache cache.CartCache) *CartService {
	return &CartService{
		repo:  repo,
		cache: cache,
	}
}

func (s *CartService) GetCart(ctx context.Context, clientID string) (*domain.Cart, error) {
	// Use singleflight to prevent multiple concurrent cache misses for same key
	v, err, _ := s.sfg.Do(clientID, func() (interface{}, error) {

		cart, err := s.cache.Get(ctx, clientID)
		if err == nil {
			return cart, nil // cart is in cache
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v", err) // log cache error but continue
		}

		cart, errGet := s.repo.GetCart(ctx, clientID)
		if errGet != nil && errors.Is(errGet, repository.ErrCartNotFound) {
			// A client context without a cart starts empty
			return &domain.Cart{
				ClientID:  clientID,
				Items:     nil,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}, nil
		}
		if errGet != nil {
			return nil, errGet
		}

		// set cache
		go func() {
			errSet := s.cache.Set(context.Background(), clientID, cart)
			if errSet != nil {
				log.Printf("cache set error: %v", errSet)
			}
		}()

		return cart, nil // cart was not in cache, return it from repo
	})

	if err != nil {
		return nil, err
	}

	return v.(*domain.Cart), nil
}

func (s *CartService) AddItem(ctx context.Context, clientID string, item domain.CartItem) error {
	errAdd := s.repo.AddItem(ctx, clientID, item)
	if errAdd != nil {
		log.Printf("repo add item error: %v", errAdd)
		return errAdd
	}

	invalidateCache(s, clientID)
	return nil
}

// UpdateQuantity sets the item's quantity to an exact value. A quantity of
// zero or less removes the entry entirely. An unknown product id is a no-op.
func (s *CartService) UpdateQuantity(ctx context.Context, clientID string, productID int64, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, clientID, productID)
	}

	errUpdate := s.repo.UpdateItemQuantity(ctx, clientID, productID, quantity)
	if errUpdate != nil {
		if isNotFound(errUpdate) {
			return nil
		}
		log.Printf("repo update item quantity error: %v", errUpdate)
		return errUpdate
	}

	invalidateCache(s, clientID)
	return nil
}

// RemoveItem deletes the matching entry. Removing an absent item is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, clientID string, productID int64) error {
	errRemove := s.repo.RemoveItem(ctx, clientID, productID)
	if errRemove != nil {
		if isNotFound(errRemove) {
			return nil
		}
		log.Printf("repo remove item error: %v", errRemove)
		return errRemove
	}

	invalidateCache(s, clientID)
	return nil
}

func (s *CartService) ClearCart(ctx context.Context, clientID string) error {
	errDelete := s.repo.DeleteCart(ctx, clientID)
	if errDelete != nil {
		if errors.Is(errDelete, repository.ErrCartNotFound) {
			return nil // clearing an absent cart is already done
		}
		log.Printf("repo delete cart error: %v", errDelete)
		return errDelete
	}

	invalidateCache(s, clientID)
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrItemNotFound) || errors.Is(err, repository.ErrCartNotFound)
}

func invalidateCache(s *CartService, clientID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	errInvalidate := s.cache.Delete(ctx, clientID)
	if errInvalidate != nil {
		log.Printf("cache invalidate error: %v", errInvalidate)
	}
}
