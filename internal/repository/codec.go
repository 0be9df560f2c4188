package repository

import (
	"encoding/json"
	"fmt"

	"github.com/nikolayk812/rocketcart/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// DefaultKey is the storage key the storefront has always used.
const DefaultKey = "@RocketShoes:cart"

type storedItem struct {
	ID       int64           `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
	Image    string          `json:"image"`
	Amount   int             `json:"amount"`
}

func encodeCart(cart domain.Cart) ([]byte, error) {
	items := make([]storedItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, mapDomainToStoredItem(item))
	}

	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return data, nil
}

func decodeCart(data []byte) (domain.Cart, error) {
	var items []storedItem
	if err := json.Unmarshal(data, &items); err != nil {
		return domain.Cart{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	cartItems, err := mapStoredItemsToDomain(items)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("mapStoredItemsToDomain: %w", err)
	}

	return domain.Cart{Items: cartItems}, nil
}

func mapDomainToStoredItem(item domain.CartItem) storedItem {
	return storedItem{
		ID:       item.Product.ID,
		Title:    item.Product.Title,
		Price:    item.Product.Price.Amount,
		Currency: item.Product.Price.Currency.String(),
		Image:    item.Product.Image,
		Amount:   item.Amount,
	}
}

func mapStoredItemToDomain(item storedItem) (domain.CartItem, error) {
	parsedCurrency, err := currency.ParseISO(item.Currency)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("currency[%s] is not valid: %w", item.Currency, err)
	}

	if item.Amount < 1 {
		return domain.CartItem{}, fmt.Errorf("amount[%d] of product[%d] is not positive", item.Amount, item.ID)
	}

	return domain.CartItem{
		Product: domain.Product{
			ID:    item.ID,
			Title: item.Title,
			Price: domain.Money{Amount: item.Price, Currency: parsedCurrency},
			Image: item.Image,
		},
		Amount: item.Amount,
	}, nil
}

func mapStoredItemsToDomain(items []storedItem) ([]domain.CartItem, error) {
	var cartItems []domain.CartItem

	for _, item := range items {
		cartItem, err := mapStoredItemToDomain(item)
		if err != nil {
			return nil, fmt.Errorf("mapStoredItemToDomain: %w", err)
		}

		cartItems = append(cartItems, cartItem)
	}

	return cartItems, nil
}
