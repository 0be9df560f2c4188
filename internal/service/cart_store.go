package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nikolayk812/rocketcart/internal/domain"
	"github.com/nikolayk812/rocketcart/internal/port"
)

// CartStore owns the session cart. Mutations read a snapshot, call the
// catalog without holding the lock, then persist and commit a complete
// replacement cart. Two overlapping mutations both start from the same
// snapshot and the later commit wins.
type CartStore struct {
	storage  port.CartStorage
	catalog  port.Catalog
	notifier port.Notifier
	logger   *slog.Logger

	mu   sync.RWMutex
	cart domain.Cart
}

// LoadCartStore reads the persisted cart once. A missing value yields an empty cart.
func LoadCartStore(
	ctx context.Context,
	storage port.CartStorage,
	catalog port.Catalog,
	notifier port.Notifier,
	logger *slog.Logger,
) (*CartStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cart, err := storage.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage.Load: %w", err)
	}

	logger.InfoContext(ctx, "cart loaded", "items", len(cart.Items))

	return &CartStore{
		storage:  storage,
		catalog:  catalog,
		notifier: notifier,
		logger:   logger,
		cart:     cart,
	}, nil
}

// Cart returns a copy of the current cart.
func (s *CartStore) Cart() domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cart.Clone()
}

func (s *CartStore) AddProduct(ctx context.Context, productID int64) error {
	snapshot := s.Cart()

	updated, err := s.addProduct(ctx, snapshot, productID)
	if err != nil {
		return s.fail(ctx, OpAddProduct, productID, err)
	}

	if err := s.commit(ctx, updated); err != nil {
		return s.fail(ctx, OpAddProduct, productID, err)
	}

	return nil
}

func (s *CartStore) addProduct(ctx context.Context, cart domain.Cart, productID int64) (domain.Cart, error) {
	stock, err := s.catalog.GetStock(ctx, productID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("catalog.GetStock: %w", err)
	}

	existing, found := cart.Find(productID)

	amount := existing.Amount + 1
	if amount > stock.Amount {
		return domain.Cart{}, fmt.Errorf("amount[%d] > stock[%d]: %w", amount, stock.Amount, ErrOutOfStock)
	}

	if found {
		updated, _ := cart.WithAmount(productID, amount)
		return updated, nil
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("catalog.GetProduct: %w", err)
	}

	return cart.WithItem(domain.CartItem{Product: product, Amount: 1}), nil
}

func (s *CartStore) RemoveProduct(ctx context.Context, productID int64) error {
	updated, found := s.Cart().Without(productID)
	if !found {
		return s.fail(ctx, OpRemoveProduct, productID, ErrProductNotInCart)
	}

	if err := s.commit(ctx, updated); err != nil {
		return s.fail(ctx, OpRemoveProduct, productID, err)
	}

	return nil
}

func (s *CartStore) UpdateProductAmount(ctx context.Context, productID int64, amount int) error {
	if amount <= 0 {
		return s.fail(ctx, OpUpdateAmount, productID, fmt.Errorf("amount[%d]: %w", amount, ErrInvalidAmount))
	}

	snapshot := s.Cart()

	if _, found := snapshot.Find(productID); !found {
		return s.fail(ctx, OpUpdateAmount, productID, ErrProductNotInCart)
	}

	stock, err := s.catalog.GetStock(ctx, productID)
	if err != nil {
		return s.fail(ctx, OpUpdateAmount, productID, fmt.Errorf("catalog.GetStock: %w", err))
	}

	if amount > stock.Amount {
		return s.fail(ctx, OpUpdateAmount, productID,
			fmt.Errorf("amount[%d] > stock[%d]: %w", amount, stock.Amount, ErrOutOfStock))
	}

	updated, _ := snapshot.WithAmount(productID, amount)

	if err := s.commit(ctx, updated); err != nil {
		return s.fail(ctx, OpUpdateAmount, productID, err)
	}

	return nil
}

// ClearCart empties the cart, e.g. after a checkout.
func (s *CartStore) ClearCart(ctx context.Context) error {
	if err := s.commit(ctx, domain.Cart{}); err != nil {
		return s.fail(ctx, OpClearCart, 0, err)
	}

	return nil
}

// commit persists cart first so a failed write leaves memory untouched.
// The write lock spans the storage round trip, so Cart readers wait for it;
// in exchange memory never runs ahead of or behind storage.
func (s *CartStore) commit(ctx context.Context, cart domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Save(ctx, cart); err != nil {
		return fmt.Errorf("storage.Save: %w", err)
	}

	s.cart = cart

	return nil
}

func (s *CartStore) fail(ctx context.Context, op Operation, productID int64, err error) error {
	opErr := &OperationError{Op: op, ProductID: productID, Err: err}

	s.logger.WarnContext(ctx, "cart operation failed",
		"op", op,
		"product_id", productID,
		"error", err)

	if s.notifier != nil {
		s.notifier.Notify(ctx, domain.NewErrorNotification(opErr.Message()))
	}

	return opErr
}
