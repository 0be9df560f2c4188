package domain

import (
	"slices"
)

type Cart struct {
	Items []CartItem
}

type CartItem struct {
	Product Product
	Amount  int
}

// Find returns the item for productID.
func (c Cart) Find(productID int64) (CartItem, bool) {
	i := c.index(productID)
	if i < 0 {
		return CartItem{}, false
	}

	return c.Items[i], true
}

// WithItem returns a copy of the cart with item appended.
// The caller is responsible for the product not being in the cart yet.
func (c Cart) WithItem(item CartItem) Cart {
	items := make([]CartItem, 0, len(c.Items)+1)
	items = append(items, c.Items...)
	items = append(items, item)

	return Cart{Items: items}
}

// WithAmount returns a copy of the cart where the item for productID has the
// given amount. The second result is false if the product is not in the cart.
func (c Cart) WithAmount(productID int64, amount int) (Cart, bool) {
	i := c.index(productID)
	if i < 0 {
		return c, false
	}

	items := slices.Clone(c.Items)
	items[i].Amount = amount

	return Cart{Items: items}, true
}

// Without returns a copy of the cart without the item for productID.
// The second result is false if the product is not in the cart.
func (c Cart) Without(productID int64) (Cart, bool) {
	i := c.index(productID)
	if i < 0 {
		return c, false
	}

	items := make([]CartItem, 0, len(c.Items)-1)
	items = append(items, c.Items[:i]...)
	items = append(items, c.Items[i+1:]...)

	return Cart{Items: items}, true
}

// Clone returns a deep copy of the item list.
func (c Cart) Clone() Cart {
	return Cart{Items: slices.Clone(c.Items)}
}

func (c Cart) index(productID int64) int {
	return slices.IndexFunc(c.Items, func(item CartItem) bool {
		return item.Product.ID == productID
	})
}
