package service

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfStock       = errors.New("requested amount is out of stock")
	ErrProductNotInCart = errors.New("product is not in cart")
	ErrInvalidAmount    = errors.New("amount must be at least 1")
)

type Operation string

const (
	OpAddProduct    Operation = "AddProduct"
	OpRemoveProduct Operation = "RemoveProduct"
	OpUpdateAmount  Operation = "UpdateProductAmount"
	OpClearCart     Operation = "ClearCart"
)

// OperationError is returned by every failed cart operation. The cart is
// unchanged whenever one is returned.
type OperationError struct {
	Op        Operation
	ProductID int64
	Err       error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s product[%d]: %v", e.Op, e.ProductID, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// Message is the text shown to the user.
func (e *OperationError) Message() string {
	switch {
	case errors.Is(e.Err, ErrOutOfStock):
		return "Requested amount is out of stock"
	case errors.Is(e.Err, ErrInvalidAmount):
		return "Product amount must be at least 1"
	}

	switch e.Op {
	case OpAddProduct:
		return "Failed to add product"
	case OpRemoveProduct:
		return "Failed to remove product"
	case OpUpdateAmount:
		return "Failed to update product amount"
	default:
		return "Failed to update cart"
	}
}
