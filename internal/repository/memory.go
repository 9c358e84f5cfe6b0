package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"warung/internal/domain"
)

// MemoryStore объединённое in-memory хранилище: каталог, корзина и архив
// заказов живут в одном процессе и умирают вместе с ним
type MemoryStore struct {
	mu           sync.RWMutex
	categories   []domain.Category
	productsByID map[int64]domain.Product
	cart         []domain.CartItem
	nextOrderID  int64
	ordersByID   map[int64]domain.Order
}

// NewMemoryStore создаёт хранилище поверх уже загруженного каталога
func NewMemoryStore(categories []domain.Category) *MemoryStore {
	byID := make(map[int64]domain.Product)
	for _, c := range categories {
		for _, p := range c.Products {
			byID[p.ID] = p
		}
	}
	return &MemoryStore{
		categories:   categories,
		productsByID: byID,
		nextOrderID:  1,
		ordersByID:   make(map[int64]domain.Order),
	}
}

// transaction-aware locking helpers
type txKey struct{}

func isTx(ctx context.Context) bool {
	v := ctx.Value(txKey{})
	if v == nil {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

func (m *MemoryStore) rlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RLock()
	}
}
func (m *MemoryStore) runlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RUnlock()
	}
}
func (m *MemoryStore) wlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Lock()
	}
}
func (m *MemoryStore) wunlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Unlock()
	}
}

// Ensure interfaces
var _ CatalogRepository = (*MemoryStore)(nil)

// CatalogRepository implementation
func (m *MemoryStore) Categories(ctx context.Context) ([]domain.Category, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]domain.Category, len(m.categories))
	copy(out, m.categories)
	return out, nil
}

func (m *MemoryStore) ListProducts(ctx context.Context, f CatalogFilter) ([]domain.Product, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]domain.Product, 0)
	for _, c := range m.categories {
		if f.Category != "" && !strings.EqualFold(c.Name, f.Category) {
			continue
		}
		for _, p := range c.Products {
			if !containsIgnoreCase(p.Name, f.NameSubstring) {
				continue
			}
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MemoryStore) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	p, ok := m.productsByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	// return copy
	cp := p
	return &cp, nil
}

// CartRepository implementation on wrapper type
type MemoryCart struct{ store *MemoryStore }

func NewMemoryCart(store *MemoryStore) *MemoryCart { return &MemoryCart{store: store} }

var _ CartRepository = (*MemoryCart)(nil)

func (mc *MemoryCart) Get(ctx context.Context, productID int64) (*domain.CartItem, error) {
	mc.store.rlock(ctx)
	defer mc.store.runlock(ctx)
	for _, it := range mc.store.cart {
		if it.ProductID == productID {
			cp := it
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (mc *MemoryCart) List(ctx context.Context) ([]domain.CartItem, error) {
	mc.store.rlock(ctx)
	defer mc.store.runlock(ctx)
	out := make([]domain.CartItem, len(mc.store.cart))
	copy(out, mc.store.cart)
	return out, nil
}

// Save вставляет новую позицию в конец либо обновляет существующую на месте
func (mc *MemoryCart) Save(ctx context.Context, it *domain.CartItem) error {
	mc.store.wlock(ctx)
	defer mc.store.wunlock(ctx)
	for i, cur := range mc.store.cart {
		if cur.ProductID == it.ProductID {
			mc.store.cart[i] = *it
			return nil
		}
	}
	mc.store.cart = append(mc.store.cart, *it)
	return nil
}

func (mc *MemoryCart) Delete(ctx context.Context, productID int64) error {
	mc.store.wlock(ctx)
	defer mc.store.wunlock(ctx)
	for i, cur := range mc.store.cart {
		if cur.ProductID == productID {
			mc.store.cart = append(mc.store.cart[:i], mc.store.cart[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (mc *MemoryCart) Clear(ctx context.Context) error {
	mc.store.wlock(ctx)
	defer mc.store.wunlock(ctx)
	mc.store.cart = nil
	return nil
}

// OrderRepository implementation on wrapper type
type MemoryOrders struct{ store *MemoryStore }

func NewMemoryOrders(store *MemoryStore) *MemoryOrders { return &MemoryOrders{store: store} }

var _ OrderRepository = (*MemoryOrders)(nil)

func (mo *MemoryOrders) Create(ctx context.Context, o *domain.Order) error {
	mo.store.wlock(ctx)
	defer mo.store.wunlock(ctx)
	o.ID = mo.store.nextOrderID
	mo.store.nextOrderID++
	o.CreatedAt = time.Now().UTC()
	mo.store.ordersByID[o.ID] = *o
	return nil
}

func (mo *MemoryOrders) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	mo.store.rlock(ctx)
	defer mo.store.runlock(ctx)
	o, ok := mo.store.ordersByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := o
	return &cp, nil
}

// Tx manager using write lock to emulate transaction boundary
type MemoryTx struct{ store *MemoryStore }

func NewMemoryTx(store *MemoryStore) *MemoryTx { return &MemoryTx{store: store} }

func (tx *MemoryTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	// Для in-memory используем блокировку записи и помечаем контекст, чтобы репозитории пропускали внутренние локи
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	ctx = context.WithValue(ctx, txKey{}, true)
	return fn(ctx)
}
