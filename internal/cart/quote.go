package cart

import "github.com/dtroode/medsetu-storefront/internal/model"

const (
	// GSTRate is the goods and services tax applied on top of the subtotal.
	GSTRate = 0.18
	// DeliveryFee is currently waived.
	DeliveryFee = 0.0
)

// Quote returns the checkout price breakdown. Values are not rounded;
// rounding to the currency unit is left to presentation.
func (s *Store) Quote() model.Quote {
	subtotal := s.TotalPrice()
	tax := subtotal * GSTRate

	return model.Quote{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: DeliveryFee,
		Total:       subtotal + tax + DeliveryFee,
		ItemCount:   s.ItemCount(),
	}
}
