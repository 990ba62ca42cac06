package validation

import (
	"github.com/google/uuid"

	"github.com/motodeal/motodeal-server/internal/model"
)

// Order failure reasons.
const (
	ReasonPriceMissing      = "Price cannot be blank"
	ReasonOrderUserMissing  = "Order must reference a user"
	ReasonVehiclesMissing   = "Order must reference at least one vehicle"
	ReasonDeliveryDateBlank = "Delivery date cannot be blank"
	ReasonPaymentTokenBlank = "Payment token cannot be blank"
)

// ValidateOrder checks the shape of a candidate order. Existence of the
// referenced user and vehicles is the order service's concern; only field
// presence is checked here.
func ValidateOrder(order model.Order) error {
	verr := &Error{}

	if order.Price <= 0 {
		verr.add(ReasonPriceMissing)
	}
	if order.UserID == uuid.Nil {
		verr.add(ReasonOrderUserMissing)
	}
	if len(order.VehicleIDs) == 0 {
		verr.add(ReasonVehiclesMissing)
	}
	if order.DeliveryDate.IsZero() {
		verr.add(ReasonDeliveryDateBlank)
	}
	if order.PaymentToken == "" {
		verr.add(ReasonPaymentTokenBlank)
	}

	if verr.failed() {
		return verr
	}
	return nil
}
