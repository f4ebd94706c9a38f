package model

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrUnauthenticated      = errors.New("authentication required")
	ErrForbidden            = errors.New("access denied")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrPrescriptionRequired = errors.New("prescription required for rx medicines")
)
