// Package catalogtest runs an in-process catalog service for tests.
package catalogtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

type Product struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

type Stock struct {
	ID     int64 `json:"id"`
	Amount int   `json:"amount"`
}

// Server serves /products and /stock from in-memory maps. It is safe for
// concurrent use.
type Server struct {
	URL string

	mu       sync.Mutex
	products map[int64]Product
	stock    map[int64]int
	failWith int
	requests map[string]int
}

// New starts a server that is closed when the test ends.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		products: make(map[int64]Product),
		stock:    make(map[int64]int),
		requests: make(map[string]int),
	}

	r := chi.NewRouter()
	r.Get("/products", s.listProducts)
	r.Get("/products/{id}", s.getProduct)
	r.Get("/stock", s.listStock)
	r.Get("/stock/{id}", s.getStock)

	ts := httptest.NewServer(s.count(r))
	t.Cleanup(ts.Close)

	s.URL = ts.URL

	return s
}

// Put registers a product together with its available amount.
func (s *Server) Put(p Product, amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products[p.ID] = p
	s.stock[p.ID] = amount
}

func (s *Server) SetStock(productID int64, amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stock[productID] = amount
}

// FailWith makes every request answer with status. Zero restores normal behavior.
func (s *Server) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failWith = status
}

// Requests returns how many times path was requested.
func (s *Server) Requests(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.requests[path]
}

func (s *Server) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests[r.URL.Path]++
		status := s.failWith
		s.mu.Unlock()

		if status != 0 {
			http.Error(w, http.StatusText(status), status)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) listProducts(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	products := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p)
	}
	s.mu.Unlock()

	respondJSON(w, products)
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	p, found := s.products[id]
	s.mu.Unlock()

	if !found {
		http.NotFound(w, r)
		return
	}

	respondJSON(w, p)
}

func (s *Server) listStock(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	stock := make([]Stock, 0, len(s.stock))
	for id, amount := range s.stock {
		stock = append(stock, Stock{ID: id, Amount: amount})
	}
	s.mu.Unlock()

	respondJSON(w, stock)
}

func (s *Server) getStock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	amount, found := s.stock[id]
	s.mu.Unlock()

	if !found {
		http.NotFound(w, r)
		return
	}

	respondJSON(w, Stock{ID: id, Amount: amount})
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}

	return id, true
}

func respondJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
