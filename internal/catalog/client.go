// Package catalog reads products and stock levels from the storefront
// catalog service over HTTP.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/nikolayk812/rocketcart/internal/domain"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/currency"
)

var ErrNotFound = errors.New("not found")

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

type Options struct {
	BaseURL string

	// Timeout bounds a single request. Zero means no timeout.
	Timeout time.Duration

	// Currency is attached to every price since the catalog sends bare numbers.
	// It is required.
	Currency currency.Unit

	// Transport defaults to http.DefaultTransport.
	Transport http.RoundTripper

	Logger *slog.Logger
}

type Client struct {
	baseURL  *url.URL
	http     *http.Client
	currency currency.Unit
	logger   *slog.Logger
}

func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("baseURL is empty")
	}

	baseURL, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("url.Parse: %w", err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("baseURL[%s] is not absolute", opts.BaseURL)
	}

	// a zero unit would be persisted as XXX and reload as a different unit
	if opts.Currency == (currency.Unit{}) {
		return nil, fmt.Errorf("currency is empty")
	}

	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Transport: otelhttp.NewTransport(transport),
			Timeout:   opts.Timeout,
		},
		currency: opts.Currency,
		logger:   logger.With("component", "catalog"),
	}, nil
}

type productResponse struct {
	ID    int64           `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

type stockResponse struct {
	ID     int64 `json:"id"`
	Amount int   `json:"amount"`
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	resp, err := getJSON[[]productResponse](ctx, c, "products")
	if err != nil {
		return nil, fmt.Errorf("getJSON: %w", err)
	}

	products := make([]domain.Product, 0, len(resp))
	for _, p := range resp {
		product, err := c.mapProductToDomain(p)
		if err != nil {
			return nil, fmt.Errorf("mapProductToDomain: %w", err)
		}
		products = append(products, product)
	}

	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, productID int64) (domain.Product, error) {
	resp, err := getJSON[productResponse](ctx, c, "products", strconv.FormatInt(productID, 10))
	if err != nil {
		return domain.Product{}, fmt.Errorf("getJSON: %w", err)
	}

	product, err := c.mapProductToDomain(resp)
	if err != nil {
		return domain.Product{}, fmt.Errorf("mapProductToDomain: %w", err)
	}

	if product.ID != productID {
		return domain.Product{}, fmt.Errorf("product id[%d] does not match requested[%d]", product.ID, productID)
	}

	return product, nil
}

func (c *Client) ListStock(ctx context.Context) ([]domain.Stock, error) {
	resp, err := getJSON[[]stockResponse](ctx, c, "stock")
	if err != nil {
		return nil, fmt.Errorf("getJSON: %w", err)
	}

	stock := make([]domain.Stock, 0, len(resp))
	for _, s := range resp {
		item, err := mapStockToDomain(s)
		if err != nil {
			return nil, fmt.Errorf("mapStockToDomain: %w", err)
		}
		stock = append(stock, item)
	}

	return stock, nil
}

func (c *Client) GetStock(ctx context.Context, productID int64) (domain.Stock, error) {
	resp, err := getJSON[stockResponse](ctx, c, "stock", strconv.FormatInt(productID, 10))
	if err != nil {
		return domain.Stock{}, fmt.Errorf("getJSON: %w", err)
	}

	stock, err := mapStockToDomain(resp)
	if err != nil {
		return domain.Stock{}, fmt.Errorf("mapStockToDomain: %w", err)
	}

	if stock.ProductID != productID {
		return domain.Stock{}, fmt.Errorf("stock id[%d] does not match requested[%d]", stock.ProductID, productID)
	}

	return stock, nil
}

// Listings fetches products and stock in parallel and joins them by product ID.
// Products without a stock record are listed as unavailable.
func (c *Client) Listings(ctx context.Context) ([]domain.Listing, error) {
	var (
		products []domain.Product
		stock    []domain.Stock
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		products, err = c.ListProducts(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		stock, err = c.ListStock(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("g.Wait: %w", err)
	}

	available := make(map[int64]int, len(stock))
	for _, s := range stock {
		available[s.ProductID] = s.Amount
	}

	listings := make([]domain.Listing, 0, len(products))
	for _, p := range products {
		listings = append(listings, domain.Listing{
			Product:   p,
			Available: available[p.ID],
		})
	}

	return listings, nil
}

func getJSON[T any](ctx context.Context, c *Client, path ...string) (T, error) {
	var zero T

	endpoint := c.baseURL.JoinPath(path...).String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return zero, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, fmt.Errorf("http.Do: %w", err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "catalog request",
		"url", endpoint,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, &StatusError{
			Method:     req.Method,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
		}
	}

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return zero, fmt.Errorf("json.Decode: %w", err)
	}

	return out, nil
}

func (c *Client) mapProductToDomain(p productResponse) (domain.Product, error) {
	if p.ID <= 0 {
		return domain.Product{}, fmt.Errorf("product id[%d] is not positive", p.ID)
	}

	return domain.Product{
		ID:    p.ID,
		Title: p.Title,
		Price: domain.Money{Amount: p.Price, Currency: c.currency},
		Image: p.Image,
	}, nil
}

func mapStockToDomain(s stockResponse) (domain.Stock, error) {
	if s.ID <= 0 {
		return domain.Stock{}, fmt.Errorf("stock id[%d] is not positive", s.ID)
	}

	if s.Amount < 0 {
		return domain.Stock{}, fmt.Errorf("stock amount[%d] of product[%d] is negative", s.Amount, s.ID)
	}

	return domain.Stock{
		ProductID: s.ID,
		Amount:    s.Amount,
	}, nil
}
