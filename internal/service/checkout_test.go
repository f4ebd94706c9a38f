package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/medsetu-storefront/internal/cart"
	servermocks "github.com/dtroode/medsetu-storefront/internal/mocks"
	"github.com/dtroode/medsetu-storefront/internal/model"
	"github.com/dtroode/medsetu-storefront/internal/session"
	"github.com/dtroode/medsetu-storefront/internal/storage/memory"
	"github.com/dtroode/medsetu-storefront/internal/testutil"
)

var (
	paracetamol = model.Medicine{ID: "m1", Name: "Paracetamol", Price: 25, InStock: true}
	amoxicillin = model.Medicine{ID: "m2", Name: "Amoxicillin", Price: 120, InStock: true, RxRequired: true}
)

func TestCheckout_Preconditions(t *testing.T) {
	tests := []struct {
		name       string
		state      session.State
		valid      bool
		items      []model.CartItem
		rx         bool
		req        CheckoutRequest
		wantErr    error
		clearsAuth bool
	}{
		{
			name:    "anonymous",
			state:   session.State{IsInitialized: true},
			wantErr: model.ErrUnauthenticated,
		},
		{
			name:       "expired token",
			state:      signedInState(asha),
			items:      []model.CartItem{{Medicine: paracetamol, Quantity: 1}},
			wantErr:    model.ErrUnauthenticated,
			clearsAuth: true,
		},
		{
			name:    "empty cart",
			state:   signedInState(asha),
			valid:   true,
			wantErr: model.ErrEmptyCart,
		},
		{
			name:    "rx without prescription",
			state:   signedInState(asha),
			valid:   true,
			items:   []model.CartItem{{Medicine: amoxicillin, Quantity: 1}},
			rx:      true,
			wantErr: model.ErrPrescriptionRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := servermocks.NewSessionManager(t)
			cartMock := servermocks.NewCartManager(t)
			orders := servermocks.NewOrderAPI(t)

			sess.On("State").Return(tt.state)
			sess.On("ValidateToken").Return(tt.valid).Maybe()
			if tt.clearsAuth {
				sess.On("ClearAuth", mock.Anything).Return(nil).Once()
			}
			cartMock.On("Items").Return(tt.items).Maybe()
			cartMock.On("HasRxItems").Return(tt.rx).Maybe()

			c := NewCheckout(sess, cartMock, orders, testutil.MakeNoopLogger())
			_, err := c.PlaceOrder(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
			cartMock.AssertNotCalled(t, "ClearCart", mock.Anything)
			if !tt.clearsAuth {
				sess.AssertNotCalled(t, "ClearAuth", mock.Anything)
			}
		})
	}
}

func TestCheckout_PlaceOrder(t *testing.T) {
	ctx := context.Background()
	log := testutil.MakeNoopLogger()

	sess := servermocks.NewSessionManager(t)
	sess.On("State").Return(signedInState(asha))
	sess.On("ValidateToken").Return(true)

	c := cart.New(memory.New(), log)
	require.NoError(t, c.AddItem(ctx, paracetamol))
	require.NoError(t, c.AddItem(ctx, paracetamol))
	require.NoError(t, c.AddItem(ctx, amoxicillin))

	orders := servermocks.NewOrderAPI(t)
	orders.On("CreateOrder", mock.Anything, mock.MatchedBy(func(req model.CreateOrderRequest) bool {
		return req.CustomerName == "Asha" &&
			req.Items == 3 &&
			math.Abs(req.Amount-170*1.18) < 0.001 &&
			req.Type == model.FulfillmentDelivery &&
			req.PrescriptionID == "rx-9" &&
			req.Address == "12 MG Road"
	})).Return(model.Order{ID: "o1", Status: model.OrderStatusNew}, nil)

	order, err := NewCheckout(sess, c, orders, log).PlaceOrder(ctx, CheckoutRequest{
		Address:        "12 MG Road",
		PrescriptionID: "rx-9",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ID("o1"), order.ID)
	assert.Empty(t, c.Items())
}

func TestCheckout_BackendFailureKeepsCart(t *testing.T) {
	ctx := context.Background()
	log := testutil.MakeNoopLogger()

	sess := servermocks.NewSessionManager(t)
	sess.On("State").Return(signedInState(asha))
	sess.On("ValidateToken").Return(true)

	c := cart.New(memory.New(), log)
	require.NoError(t, c.AddItem(ctx, paracetamol))

	orders := servermocks.NewOrderAPI(t)
	orders.On("CreateOrder", mock.Anything, mock.Anything).Return(model.Order{}, errors.New("store closed"))

	_, err := NewCheckout(sess, c, orders, log).PlaceOrder(ctx, CheckoutRequest{Type: model.FulfillmentPickup})
	require.Error(t, err)
	assert.Len(t, c.Items(), 1)
}

func TestCheckout_ClearCartFailureReturnsOrder(t *testing.T) {
	ctx := context.Background()

	sess := servermocks.NewSessionManager(t)
	sess.On("State").Return(signedInState(asha))
	sess.On("ValidateToken").Return(true)

	cartMock := servermocks.NewCartManager(t)
	cartMock.On("Items").Return([]model.CartItem{{Medicine: paracetamol, Quantity: 2}})
	cartMock.On("HasRxItems").Return(false)
	cartMock.On("Quote").Return(model.Quote{Subtotal: 50, Tax: 9, Total: 59, ItemCount: 2})
	cartMock.On("ClearCart", mock.Anything).Return(errors.New("session storage unavailable"))

	orders := servermocks.NewOrderAPI(t)
	orders.On("CreateOrder", mock.Anything, mock.MatchedBy(func(req model.CreateOrderRequest) bool {
		return req.Items == 2 && req.Amount == 59 && req.Type == model.FulfillmentDelivery
	})).Return(model.Order{ID: "o7"}, nil)

	order, err := NewCheckout(sess, cartMock, orders, testutil.MakeNoopLogger()).
		PlaceOrder(ctx, CheckoutRequest{Address: "4 Park Street"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to clear cart")
	assert.Equal(t, model.ID("o7"), order.ID)
}
