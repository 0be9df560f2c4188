package port

import (
	"context"

	"github.com/nikolayk812/rocketcart/internal/domain"
)

// Notifier displays a message to the user. Implementations must not block
// the caller for long.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}
