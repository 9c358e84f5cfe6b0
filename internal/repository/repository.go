package repository

import (
	"context"
	"errors"
	"strings"

	"warung/internal/domain"
)

// ErrNotFound возвращается, когда сущность не найдена
var ErrNotFound = errors.New("not found")

// CatalogFilter параметры фильтрации списка товаров
type CatalogFilter struct {
	Category      string
	NameSubstring string
}

// CatalogRepository интерфейс каталога. Каталог только для чтения:
// наполняется один раз при старте.
type CatalogRepository interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	ListProducts(ctx context.Context, f CatalogFilter) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
}

// CartRepository интерфейс хранилища корзины. Порядок позиций — порядок
// добавления, Save существующей позиции место не меняет.
type CartRepository interface {
	Get(ctx context.Context, productID int64) (*domain.CartItem, error)
	List(ctx context.Context) ([]domain.CartItem, error)
	Save(ctx context.Context, it *domain.CartItem) error
	Delete(ctx context.Context, productID int64) error
	Clear(ctx context.Context) error
}

// OrderRepository интерфейс архива отправленных заказов
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
}

// TxManager абстракция транзакции. Для in-memory — глобальная блокировка записи.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// helper: case-insensitive contains
func containsIgnoreCase(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
