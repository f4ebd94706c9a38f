package service

import (
	"context"

	"github.com/dtroode/medsetu-storefront/internal/backend"
	"github.com/dtroode/medsetu-storefront/internal/cart"
	"github.com/dtroode/medsetu-storefront/internal/model"
	"github.com/dtroode/medsetu-storefront/internal/session"
)

// SessionManager is the session store surface the flows drive.
type SessionManager interface {
	State() session.State
	Login(ctx context.Context, user model.User, token string) error
	Logout(ctx context.Context) error
	ClearAuth(ctx context.Context) error
	ValidateToken() bool
}

// CartManager is the cart store surface checkout needs.
type CartManager interface {
	Items() []model.CartItem
	Quote() model.Quote
	HasRxItems() bool
	ClearCart(ctx context.Context) error
}

// AuthAPI is the backend auth endpoint group.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (model.AuthResult, error)
	Register(ctx context.Context, req backend.RegisterRequest) (model.AuthResult, error)
	Logout(ctx context.Context) error
}

// OrderAPI places orders.
type OrderAPI interface {
	CreateOrder(ctx context.Context, req model.CreateOrderRequest) (model.Order, error)
}

// PrescriptionAPI registers uploaded prescriptions and lists the caller's own.
type PrescriptionAPI interface {
	Prescriptions(ctx context.Context) ([]model.Prescription, error)
	CreatePrescription(ctx context.Context, req model.CreatePrescriptionRequest) (model.Prescription, error)
}

var (
	_ SessionManager  = (*session.Store)(nil)
	_ CartManager     = (*cart.Store)(nil)
	_ AuthAPI         = (*backend.Client)(nil)
	_ OrderAPI        = (*backend.Client)(nil)
	_ PrescriptionAPI = (*backend.Client)(nil)
)
