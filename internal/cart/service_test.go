package cart

import (
	"context"
	"testing"

	"github.com/Sayedtaha55/ray-eg/internal/catalog"
	"github.com/Sayedtaha55/ray-eg/internal/configurator"
)

// --------------------------------------------------
// Mock stock reader
// --------------------------------------------------

type mockStock struct {
	counts map[string]int
}

func (m *mockStock) StockFor(ctx context.Context, productID string) (int, error) {
	return m.counts[productID], nil
}

func newTestService(counts map[string]int) *Service {
	return NewService(NewStore(), &mockStock{counts: counts}, nil)
}

func simpleSnapshot(id string, price float64, stock int) *catalog.Snapshot {
	return &catalog.Snapshot{
		Product: catalog.Product{
			ID:    id,
			Name:  "Bottled Water",
			Price: price,
			Stock: stock,
		},
		BasePrice: price,
	}
}

func pizzaSnapshot() *catalog.Snapshot {
	return &catalog.Snapshot{
		Product: catalog.Product{
			ID:       "pizza-1",
			Name:     "Margherita",
			Price:    80,
			Stock:    10,
			Category: catalog.CategoryRestaurant,
			Dimension: &catalog.MenuDimension{
				Types: []catalog.MenuType{
					{
						ID:   "thin",
						Name: "Thin Crust",
						Sizes: []catalog.MenuSize{
							{ID: "s", Label: "Small", Price: 90},
							{ID: "l", Label: "Large", Price: 150},
						},
					},
				},
			},
		},
		BasePrice: 80,
	}
}

// --------------------------------------------------
// Simple adds
// --------------------------------------------------

func TestSimpleAddsMergeIntoOneLine(t *testing.T) {
	service := newTestService(map[string]int{"water-1": 5})
	snap := simpleSnapshot("water-1", 12, 5)
	ctx := context.Background()

	if _, err := service.AddSimple(ctx, "u1", snap, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line, err := service.AddSimple(ctx, "u1", snap, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := service.Lines("u1")
	if len(lines) != 1 {
		t.Fatalf("expected one merged line, got %d", len(lines))
	}
	if line.Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", line.Quantity)
	}
}

func TestSimpleAddClampsToStock(t *testing.T) {
	service := newTestService(map[string]int{"water-1": 5})
	snap := simpleSnapshot("water-1", 12, 5)
	ctx := context.Background()

	_, _ = service.AddSimple(ctx, "u1", snap, 4)
	line, _ := service.AddSimple(ctx, "u1", snap, 4)

	if line.Quantity != 5 {
		t.Fatalf("expected quantity clamped to stock 5, got %d", line.Quantity)
	}
}

func TestOutOfStockAddsNothing(t *testing.T) {
	service := newTestService(map[string]int{"water-1": 0})
	snap := simpleSnapshot("water-1", 12, 0)

	line, err := service.AddSimple(context.Background(), "u1", snap, 1)
	if err != nil {
		t.Fatalf("out of stock is not an error: %v", err)
	}
	if line != nil {
		t.Fatalf("expected no line, got %+v", line)
	}
	if got := service.Lines("u1"); len(got) != 0 {
		t.Fatalf("cart must stay unchanged, got %d lines", len(got))
	}
}

// --------------------------------------------------
// Configured commits
// --------------------------------------------------

func TestConfiguredCommitsNeverMerge(t *testing.T) {
	service := newTestService(map[string]int{"pizza-1": 10})
	snap := pizzaSnapshot()
	ctx := context.Background()

	state := &configurator.SelectionState{
		Choice: configurator.MenuSelection{TypeID: "thin", SizeID: "l"},
	}

	first, err := service.Commit(ctx, "u1", snap, state, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := service.Commit(ctx, "u1", snap, state, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID == second.ID {
		t.Fatal("identical selections must still yield distinct lines")
	}

	lines := service.Lines("u1")
	if len(lines) != 2 {
		t.Fatalf("expected two lines, got %d", len(lines))
	}
	for _, l := range lines {
		if l.Quantity != 1 {
			t.Fatalf("configured line starts at quantity 1, got %d", l.Quantity)
		}
		if l.Price != 150 {
			t.Fatalf("expected resolved size price 150, got %v", l.Price)
		}
		if l.Variant == nil || l.Variant.SizeID != "l" {
			t.Fatalf("expected resolved variant snapshot, got %+v", l.Variant)
		}
	}
}

func TestConfiguredLineKeepsPriceAfterCommit(t *testing.T) {
	service := newTestService(map[string]int{"pizza-1": 10})
	snap := pizzaSnapshot()

	state := &configurator.SelectionState{
		Choice: configurator.MenuSelection{TypeID: "thin", SizeID: "s"},
	}
	line, _ := service.Commit(context.Background(), "u1", snap, state, 1)

	// a later catalog change must not reprice the committed line
	snap.Product.Dimension.(*catalog.MenuDimension).Types[0].Sizes[0].Price = 999

	got := service.Lines("u1")
	if len(got) != 1 || got[0].ID != line.ID {
		t.Fatalf("unexpected cart contents: %+v", got)
	}
	if got[0].Price != 90 {
		t.Fatalf("committed price must stay 90, got %v", got[0].Price)
	}
}

func TestSimpleAddSkipsStaleConfiguredLine(t *testing.T) {
	service := newTestService(map[string]int{"pizza-1": 10})
	snap := pizzaSnapshot()
	ctx := context.Background()

	// Both ids went stale, so the committed line carries no variant and
	// no add-ons, just like a plain line except for its nonce id.
	stale := &configurator.SelectionState{
		Choice: configurator.MenuSelection{TypeID: "gone", SizeID: "gone"},
	}
	committed, err := service.Commit(ctx, "u1", snap, stale, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if committed.Variant != nil || len(committed.Addons) != 0 {
		t.Fatalf("stale selection should resolve to nothing, got %+v", committed)
	}

	simple, err := service.AddSimple(ctx, "u1", snap, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := service.Lines("u1")
	if len(lines) != 2 {
		t.Fatalf("a plain add must not be absorbed by the nonce line, got %d lines", len(lines))
	}
	if simple.ID != "pizza-1" || simple.Quantity != 2 {
		t.Fatalf("unexpected simple line: %+v", simple)
	}
	if committed.Quantity != 1 {
		t.Fatalf("configured line quantity must stay 1, got %d", committed.Quantity)
	}

	// a second plain add still merges with the plain line only
	merged, _ := service.AddSimple(ctx, "u1", snap, 1)
	if merged.ID != "pizza-1" || merged.Quantity != 3 {
		t.Fatalf("expected plain line at quantity 3, got %+v", merged)
	}
	if len(service.Lines("u1")) != 2 {
		t.Fatal("merging must not add a third line")
	}
}

// --------------------------------------------------
// Quantity updates
// --------------------------------------------------

func TestUpdateQuantityRemovesAtZero(t *testing.T) {
	service := newTestService(map[string]int{"water-1": 5})
	snap := simpleSnapshot("water-1", 12, 5)
	ctx := context.Background()

	line, _ := service.AddSimple(ctx, "u1", snap, 2)

	updated, ok := service.UpdateQuantity(ctx, "u1", line.ID, -1)
	if !ok || updated == nil || updated.Quantity != 1 {
		t.Fatalf("expected quantity 1, got %+v", updated)
	}

	updated, ok = service.UpdateQuantity(ctx, "u1", line.ID, -1)
	if !ok {
		t.Fatal("line should have been found")
	}
	if updated != nil {
		t.Fatalf("zero quantity removes the line, got %+v", updated)
	}
	if len(service.Lines("u1")) != 0 {
		t.Fatal("cart should be empty")
	}
}

func TestUpdateQuantityUnknownLine(t *testing.T) {
	service := newTestService(nil)

	if _, ok := service.UpdateQuantity(context.Background(), "u1", "nope", 1); ok {
		t.Fatal("unknown line must not report success")
	}
}

func TestCartsAreIsolatedPerOwner(t *testing.T) {
	service := newTestService(map[string]int{"water-1": 5})
	snap := simpleSnapshot("water-1", 12, 5)
	ctx := context.Background()

	_, _ = service.AddSimple(ctx, "u1", snap, 1)
	_, _ = service.AddSimple(ctx, "u2", snap, 3)

	if q := service.Lines("u1")[0].Quantity; q != 1 {
		t.Fatalf("u1 expected quantity 1, got %d", q)
	}
	if q := service.Lines("u2")[0].Quantity; q != 3 {
		t.Fatalf("u2 expected quantity 3, got %d", q)
	}
}
