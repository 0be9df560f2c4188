package port

import (
	"context"

	"github.com/nikolayk812/rocketcart/internal/domain"
)

type Catalog interface {
	GetProduct(ctx context.Context, productID int64) (domain.Product, error)
	GetStock(ctx context.Context, productID int64) (domain.Stock, error)
}
