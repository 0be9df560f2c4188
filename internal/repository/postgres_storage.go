package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/rocketcart/internal/db"
	"github.com/nikolayk812/rocketcart/internal/domain"
	"github.com/nikolayk812/rocketcart/internal/port"
)

type postgresStorage struct {
	q    *db.Queries
	pool *pgxpool.Pool
	key  string
}

func NewPostgresStorage(pool *pgxpool.Pool, key string) (port.CartStorage, error) {
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	return &postgresStorage{
		q:    db.New(pool),
		pool: pool,
		key:  key,
	}, nil
}

// NewPostgresStorageWithTx makes Save part of the caller's transaction.
func NewPostgresStorageWithTx(tx pgx.Tx, key string) (port.CartStorage, error) {
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	return &postgresStorage{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
		key:  key,
	}, nil
}

func (s *postgresStorage) Load(ctx context.Context) (domain.Cart, error) {
	value, err := s.q.GetCartValue(ctx, s.key)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Cart{}, nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.GetCartValue: %w", err)
	}

	cart, err := decodeCart(value)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("decodeCart: %w", err)
	}

	return cart, nil
}

func (s *postgresStorage) Save(ctx context.Context, cart domain.Cart) error {
	value, err := encodeCart(cart)
	if err != nil {
		return fmt.Errorf("encodeCart: %w", err)
	}

	return withTx(ctx, s.pool, s.q, func(q *db.Queries) error {
		err := q.PutCartValue(ctx, db.PutCartValueParams{
			StorageKey: s.key,
			Value:      value,
		})
		if err != nil {
			return fmt.Errorf("q.PutCartValue: %w", err)
		}

		return nil
	})
}
