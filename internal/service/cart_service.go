package service

import (
	"context"
	"errors"

	"warung/internal/domain"
	"warung/internal/repository"
)

// MaxQuantity единый верхний предел количества для всех путей изменения корзины
const MaxQuantity = 999

// CartService реализует логику корзины: добавление, изменение количества,
// удаление, итог
type CartService struct {
	catalog repository.CatalogRepository
	cart    repository.CartRepository
}

func NewCartService(catalog repository.CatalogRepository, cart repository.CartRepository) *CartService {
	return &CartService{catalog: catalog, cart: cart}
}

// CartSummary снимок корзины: позиции в порядке добавления, счётчик и итог
type CartSummary struct {
	Items []domain.CartItem `json:"items"`
	Count int64             `json:"count"`
	Total int64             `json:"total"`
}

// Add добавляет товар каталога в корзину. Повторное добавление увеличивает
// количество существующей позиции, новая позиция получает снимок цены.
// Товар, не проходящий базовую проверку, в корзину не попадает.
func (s *CartService) Add(ctx context.Context, productID int64) (*domain.CartItem, error) {
	if productID <= 0 {
		return nil, ErrInvalidInput
	}
	p, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !p.Valid() {
		return nil, ErrInvalidInput
	}

	existing, err := s.cart.Get(ctx, productID)
	switch {
	case err == nil:
		if existing.Quantity >= MaxQuantity {
			// at the cap, same no-op as Decrease at 1
			return existing, nil
		}
		existing.Quantity++
		if err := s.cart.Save(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	case errors.Is(err, repository.ErrNotFound):
		it := &domain.CartItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price, // price at the time of adding
			Image:     p.Image,
			Quantity:  1,
		}
		if err := s.cart.Save(ctx, it); err != nil {
			return nil, err
		}
		return it, nil
	default:
		return nil, err
	}
}

// Increase увеличивает количество на 1, на пределе — no-op
func (s *CartService) Increase(ctx context.Context, productID int64) (*domain.CartItem, error) {
	return s.adjust(ctx, productID, func(it *domain.CartItem) {
		if it.Quantity < MaxQuantity {
			it.Quantity++
		}
	})
}

// Decrease уменьшает количество на 1, но не ниже 1: на единице — no-op,
// удаление только явной операцией Remove
func (s *CartService) Decrease(ctx context.Context, productID int64) (*domain.CartItem, error) {
	return s.adjust(ctx, productID, func(it *domain.CartItem) {
		if it.Quantity > 1 {
			it.Quantity--
		}
	})
}

// SetQuantity задаёт количество точно, значение вне 1..999 отклоняется
func (s *CartService) SetQuantity(ctx context.Context, productID, quantity int64) (*domain.CartItem, error) {
	if quantity < 1 || quantity > MaxQuantity {
		return nil, ErrInvalidInput
	}
	return s.adjust(ctx, productID, func(it *domain.CartItem) {
		it.Quantity = quantity
	})
}

func (s *CartService) adjust(ctx context.Context, productID int64, change func(*domain.CartItem)) (*domain.CartItem, error) {
	if productID <= 0 {
		return nil, ErrInvalidInput
	}
	it, err := s.cart.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	change(it)
	if err := s.cart.Save(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

// Remove удаляет позицию; отсутствующий id — no-op
func (s *CartService) Remove(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return ErrInvalidInput
	}
	err := s.cart.Delete(ctx, productID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}

// Summary возвращает позиции, суммарное количество и итог
func (s *CartService) Summary(ctx context.Context) (*CartSummary, error) {
	items, err := s.cart.List(ctx)
	if err != nil {
		return nil, err
	}
	sum := &CartSummary{Items: items}
	for _, it := range items {
		sum.Count += it.Quantity
		sum.Total += it.Subtotal()
	}
	return sum, nil
}

// Clear опустошает корзину
func (s *CartService) Clear(ctx context.Context) error {
	return s.cart.Clear(ctx)
}
