package service

import (
	"context"
	"errors"
	"sync"

	"github.com/nikolayk812/rocketcart/internal/domain"
)

type mockStorage struct {
	m     sync.Mutex
	cart  domain.Cart
	saves int
	err   error
}

func (m *mockStorage) Load(context.Context) (domain.Cart, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return domain.Cart{}, m.err
	}
	return m.cart.Clone(), nil
}

func (m *mockStorage) Save(_ context.Context, cart domain.Cart) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	m.cart = cart.Clone()
	m.saves++
	return nil
}

func (m *mockStorage) saved() (domain.Cart, int) {
	m.m.Lock()
	defer m.m.Unlock()
	return m.cart.Clone(), m.saves
}

func (m *mockStorage) failWith(err error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.err = err
}

var errNotFound = errors.New("not found")

type mockCatalog struct {
	m        sync.Mutex
	products map[int64]domain.Product
	stock    map[int64]int
	err      error

	productCalls int
	stockCalls   int
}

func newMockCatalog() *mockCatalog {
	return &mockCatalog{
		products: make(map[int64]domain.Product),
		stock:    make(map[int64]int),
	}
}

func (m *mockCatalog) put(p domain.Product, amount int) {
	m.m.Lock()
	defer m.m.Unlock()
	m.products[p.ID] = p
	m.stock[p.ID] = amount
}

func (m *mockCatalog) GetProduct(_ context.Context, productID int64) (domain.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.productCalls++
	if m.err != nil {
		return domain.Product{}, m.err
	}
	p, ok := m.products[productID]
	if !ok {
		return domain.Product{}, errNotFound
	}
	return p, nil
}

func (m *mockCatalog) GetStock(_ context.Context, productID int64) (domain.Stock, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.stockCalls++
	if m.err != nil {
		return domain.Stock{}, m.err
	}
	amount, ok := m.stock[productID]
	if !ok {
		return domain.Stock{}, errNotFound
	}
	return domain.Stock{ProductID: productID, Amount: amount}, nil
}

type mockNotifier struct {
	m        sync.Mutex
	messages []string
}

func (m *mockNotifier) Notify(_ context.Context, n domain.Notification) {
	m.m.Lock()
	defer m.m.Unlock()
	m.messages = append(m.messages, n.Message)
}

func (m *mockNotifier) all() []string {
	m.m.Lock()
	defer m.m.Unlock()
	return append([]string(nil), m.messages...)
}
