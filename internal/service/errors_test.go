package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *OperationError
		want string
	}{
		{
			name: "out of stock wins over operation",
			err:  &OperationError{Op: OpUpdateAmount, Err: ErrOutOfStock},
			want: "Requested amount is out of stock",
		},
		{
			name: "add transport failure",
			err:  &OperationError{Op: OpAddProduct, Err: errors.New("eof")},
			want: "Failed to add product",
		},
		{
			name: "remove missing product",
			err:  &OperationError{Op: OpRemoveProduct, Err: ErrProductNotInCart},
			want: "Failed to remove product",
		},
		{
			name: "clear failure",
			err:  &OperationError{Op: OpClearCart, Err: errors.New("eof")},
			want: "Failed to update cart",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Message())
		})
	}
}

func TestOperationError_Error(t *testing.T) {
	err := &OperationError{Op: OpRemoveProduct, ProductID: 3, Err: ErrProductNotInCart}

	assert.EqualError(t, err, "RemoveProduct product[3]: product is not in cart")
	assert.ErrorIs(t, err, ErrProductNotInCart)
}
