package repository

import (
	"context"
	"testing"

	"warung/internal/domain"
)

func seedCategories() []domain.Category {
	return []domain.Category{
		{Name: "Main Dishes", Products: []domain.Product{
			{ID: 1, Name: "Nasi Goreng Special", Price: 45000},
			{ID: 2, Name: "Ayam Bakar", Price: 55000},
		}},
		{Name: "Drinks", Products: []domain.Product{
			{ID: 7, Name: "Es Teh Manis", Price: 8000},
		}},
	}
}

func TestMemoryStore_Catalog(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(seedCategories())

	p, err := store.GetProduct(ctx, 1)
	if err != nil || p.Name != "Nasi Goreng Special" {
		t.Fatalf("get: %v", err)
	}
	if _, err := store.GetProduct(ctx, 999); err != ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}

	cats, _ := store.Categories(ctx)
	if len(cats) != 2 || cats[0].Name != "Main Dishes" {
		t.Fatalf("categories order broken: %+v", cats)
	}

	list, _ := store.ListProducts(ctx, CatalogFilter{Category: "drinks"})
	if len(list) != 1 || list[0].ID != 7 {
		t.Fatalf("category filter: %+v", list)
	}

	list, _ = store.ListProducts(ctx, CatalogFilter{NameSubstring: "goreng"})
	if len(list) != 1 || list[0].ID != 1 {
		t.Fatalf("name filter: %+v", list)
	}
}

func TestMemoryCart_InsertionOrderAndUpsert(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(seedCategories())
	cart := NewMemoryCart(store)

	add := func(id int64, name string, qty int64) {
		if err := cart.Save(ctx, &domain.CartItem{ProductID: id, Name: name, Price: 100, Quantity: qty}); err != nil {
			t.Fatal(err)
		}
	}
	add(2, "B", 1)
	add(1, "A", 1)
	add(7, "C", 1)

	// updating the first item must not move it
	add(2, "B", 5)

	items, _ := cart.List(ctx)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].ProductID != 2 || items[0].Quantity != 5 {
		t.Fatalf("first item moved or not updated: %+v", items[0])
	}
	if items[1].ProductID != 1 || items[2].ProductID != 7 {
		t.Fatalf("insertion order broken: %+v", items)
	}

	if err := cart.Delete(ctx, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := cart.Delete(ctx, 1); err != ErrNotFound {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
	items, _ = cart.List(ctx)
	if len(items) != 2 {
		t.Fatalf("expected 2 items after delete")
	}

	if err := cart.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	items, _ = cart.List(ctx)
	if len(items) != 0 {
		t.Fatalf("cart not cleared")
	}
}

func TestMemoryOrders_CreateGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(seedCategories())
	orders := NewMemoryOrders(store)

	o := domain.Order{
		Reference: "ref-1",
		Customer:  domain.CustomerInfo{Name: "Budi"},
		Items:     []domain.CartItem{{ProductID: 1, Name: "A", Price: 100, Quantity: 1}},
		Total:     100,
	}
	if err := orders.Create(ctx, &o); err != nil {
		t.Fatalf("create: %v", err)
	}
	if o.ID == 0 || o.CreatedAt.IsZero() {
		t.Fatalf("id/created_at not assigned: %+v", o)
	}

	got, err := orders.GetByID(ctx, o.ID)
	if err != nil || got.Reference != "ref-1" {
		t.Fatalf("get: %v", err)
	}
	if _, err := orders.GetByID(ctx, 42); err != ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMemoryTx_AtomicRecordAndClear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(seedCategories())
	cart := NewMemoryCart(store)
	orders := NewMemoryOrders(store)
	tx := NewMemoryTx(store)

	if err := cart.Save(ctx, &domain.CartItem{ProductID: 1, Name: "A", Price: 100, Quantity: 2}); err != nil {
		t.Fatal(err)
	}

	// emulate checkout: archive order and clear cart in one boundary
	err := tx.WithTransaction(ctx, func(ctx context.Context) error {
		items, err := cart.List(ctx)
		if err != nil {
			return err
		}
		o := domain.Order{Items: items, Total: 200}
		if err := orders.Create(ctx, &o); err != nil {
			return err
		}
		return cart.Clear(ctx)
	})
	if err != nil {
		t.Fatalf("tx: %v", err)
	}

	items, _ := cart.List(context.Background())
	if len(items) != 0 {
		t.Fatalf("cart not cleared in tx")
	}
	if _, err := orders.GetByID(context.Background(), 1); err != nil {
		t.Fatalf("order not recorded: %v", err)
	}
}
