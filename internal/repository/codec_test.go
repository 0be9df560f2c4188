package repository

import (
	"testing"

	"github.com/nikolayk812/rocketcart/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestEncodeCart(t *testing.T) {
	cart := domain.Cart{Items: []domain.CartItem{
		{
			Product: domain.Product{
				ID:    5,
				Title: "Running shoe",
				Price: domain.Money{Amount: decimal.RequireFromString("179.9"), Currency: currency.BRL},
				Image: "https://example.com/5.jpg",
			},
			Amount: 2,
		},
	}}

	data, err := encodeCart(cart)
	require.NoError(t, err)

	assert.JSONEq(t, `[{
		"id": 5,
		"title": "Running shoe",
		"price": "179.9",
		"currency": "BRL",
		"image": "https://example.com/5.jpg",
		"amount": 2
	}]`, string(data))
}

func TestDecodeCart(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantLen   int
		wantError string
	}{
		{
			name:    "numeric price: ok",
			data:    `[{"id": 1, "title": "a", "price": 10.5, "currency": "USD", "image": "", "amount": 3}]`,
			wantLen: 1,
		},
		{
			name:    "empty list: ok",
			data:    `[]`,
			wantLen: 0,
		},
		{
			name:      "unknown currency: error",
			data:      `[{"id": 1, "title": "a", "price": 1, "currency": "XYZW", "image": "", "amount": 1}]`,
			wantError: "currency[XYZW] is not valid",
		},
		{
			name:      "zero amount: error",
			data:      `[{"id": 7, "title": "a", "price": 1, "currency": "USD", "image": "", "amount": 0}]`,
			wantError: "amount[0] of product[7] is not positive",
		},
		{
			name:      "not a list: error",
			data:      `{"id": 1}`,
			wantError: "json.Unmarshal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart, err := decodeCart([]byte(tt.data))
			if tt.wantError != "" {
				assert.ErrorContains(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Len(t, cart.Items, tt.wantLen)
		})
	}
}

func TestPgx5URL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@localhost:5432/db?sslmode=disable",
		pgx5URL("postgres://u:p@localhost:5432/db?sslmode=disable"))
	assert.Equal(t, "pgx5://localhost/db", pgx5URL("postgresql://localhost/db"))
	assert.Equal(t, "pgx5://localhost/db", pgx5URL("pgx5://localhost/db"))
}
