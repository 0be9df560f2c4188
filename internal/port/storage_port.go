package port

import (
	"context"

	"github.com/nikolayk812/rocketcart/internal/domain"
)

// CartStorage keeps the whole cart under a single key. Save overwrites the
// previous value wholesale.
type CartStorage interface {
	Load(ctx context.Context) (domain.Cart, error)
	Save(ctx context.Context, cart domain.Cart) error
}
