package cart

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Sayedtaha55/ray-eg/internal/catalog"
	"github.com/Sayedtaha55/ray-eg/internal/configurator"
	"github.com/Sayedtaha55/ray-eg/internal/core"
)

// Service is the cart line builder: the only writer to the store.
type Service struct {
	store *Store
	stock core.StockReader
	repo  Repository

	mu       sync.Mutex
	restored map[string]struct{}
}

func NewService(store *Store, stock core.StockReader, repo Repository) *Service {
	return &Service{
		store:    store,
		stock:    stock,
		repo:     repo,
		restored: make(map[string]struct{}),
	}
}

// --------------------------------------------------
// Commit (VARIANT RESOLUTION + SNAPSHOT, ONE ATOMIC STORE MUTATION)
// --------------------------------------------------

// Commit turns a selection into a cart line. A configured selection
// (variant picked or add-ons chosen) always gets a fresh line with a
// commit-time nonce, quantity 1; a simple add merges into an existing
// line for the same product, clamped to stock. Exhausted stock returns
// (nil, nil): nothing added, not an error.
func (s *Service) Commit(
	ctx context.Context,
	owner string,
	snap *catalog.Snapshot,
	state *configurator.SelectionState,
	qty int,
) (*LineItem, error) {

	s.Hydrate(ctx, owner)

	stock, err := s.stock.StockFor(ctx, snap.Product.ID)
	if err != nil {
		stock = snap.Product.Stock
	}
	if stock <= 0 {
		return nil, nil
	}
	if qty < 1 {
		qty = 1
	}

	var line LineItem
	if state.Configured() {
		price := configurator.EffectivePrice(snap, state)
		if price < 0 {
			price = 0
		}
		line = LineItem{
			ID:        fmt.Sprintf("%s-%s", snap.Product.ID, uuid.New().String()),
			ProductID: snap.Product.ID,
			Name:      snap.Product.Name,
			Price:     price,
			Quantity:  1,
			Variant:   configurator.ResolveVariant(snap, state),
			Addons:    configurator.ResolveAddons(snap, state),
			AddedAt:   time.Now(),
		}
		s.store.Append(owner, line)
	} else {
		line = LineItem{
			ID:        snap.Product.ID,
			ProductID: snap.Product.ID,
			Name:      snap.Product.Name,
			Price:     snap.BasePrice,
			AddedAt:   time.Now(),
		}
		line = s.store.MergeOrAppend(owner, line, qty, stock)
	}

	s.persist(ctx, owner, &line)
	return &line, nil
}

// AddSimple is the plain add-to-cart path for products without variants.
func (s *Service) AddSimple(
	ctx context.Context,
	owner string,
	snap *catalog.Snapshot,
	qty int,
) (*LineItem, error) {
	return s.Commit(ctx, owner, snap, &configurator.SelectionState{}, qty)
}

// --------------------------------------------------
// Reads & quantity updates
// --------------------------------------------------

func (s *Service) Lines(owner string) []LineItem {
	return s.store.Lines(owner)
}

func (s *Service) UpdateQuantity(ctx context.Context, owner, lineID string, delta int) (*LineItem, bool) {
	line, ok := s.store.UpdateQuantity(owner, lineID, delta)
	if !ok {
		return nil, false
	}
	if line.Quantity == 0 {
		s.unpersist(ctx, owner, lineID)
		return nil, true
	}
	s.persist(ctx, owner, &line)
	return &line, true
}

func (s *Service) Remove(ctx context.Context, owner, lineID string) bool {
	if !s.store.Remove(owner, lineID) {
		return false
	}
	s.unpersist(ctx, owner, lineID)
	return true
}

// Restore loads an owner's persisted lines into the store.
func (s *Service) Restore(ctx context.Context, owner string) error {
	if s.repo == nil {
		return nil
	}
	lines, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return err
	}
	s.store.Replace(owner, lines)
	return nil
}

// Hydrate restores an owner's persisted cart once, before the first
// read after startup. Failures are logged; the owner just starts from
// an empty cart.
func (s *Service) Hydrate(ctx context.Context, owner string) {
	if s.repo == nil {
		return
	}

	s.mu.Lock()
	if _, done := s.restored[owner]; done {
		s.mu.Unlock()
		return
	}
	s.restored[owner] = struct{}{}
	s.mu.Unlock()

	if err := s.Restore(ctx, owner); err != nil {
		log.Println("cart restore failed:", err)
	}
}

// The store is the in-session source of truth; persistence failures are
// logged and the request still succeeds.
func (s *Service) persist(ctx context.Context, owner string, line *LineItem) {
	if s.repo == nil {
		return
	}
	if err := s.repo.SaveLine(ctx, owner, line); err != nil {
		log.Println("cart persist failed:", err)
	}
}

func (s *Service) unpersist(ctx context.Context, owner, lineID string) {
	if s.repo == nil {
		return
	}
	if err := s.repo.DeleteLine(ctx, owner, lineID); err != nil {
		log.Println("cart delete failed:", err)
	}
}
