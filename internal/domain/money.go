package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Money is a price as the catalog reports it. The catalog sends a bare
// number, so Currency comes from configuration.
type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}
