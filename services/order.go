package services

import "quality-fastfood/models"

const (
	// DefaultFreeDeliveryAbove is the subtotal above which delivery is free.
	DefaultFreeDeliveryAbove = 200
	// DefaultDeliveryFee applies at or below the threshold.
	DefaultDeliveryFee = 30
)

// DeliveryFee returns the fee for a cart subtotal: free strictly above the
// threshold, flat fee otherwise. A subtotal of exactly the threshold still
// pays. Zero freeAbove/fee fall back to the defaults.
func DeliveryFee(subtotal, freeAbove, fee int64) int64 {
	if freeAbove <= 0 {
		freeAbove = DefaultFreeDeliveryAbove
	}
	if fee <= 0 {
		fee = DefaultDeliveryFee
	}
	if subtotal > freeAbove {
		return 0
	}
	return fee
}

// GrandTotal is the amount the customer pays on delivery.
func GrandTotal(subtotal, freeAbove, fee int64) int64 {
	return subtotal + DeliveryFee(subtotal, freeAbove, fee)
}

// ValidStatusTransition reports whether an order may move from one status to
// another. Cancellation is allowed until the kitchen starts preparing.
func ValidStatusTransition(from, to string) bool {
	switch from {
	case models.OrderStatusPending:
		return to == models.OrderStatusConfirmed || to == models.OrderStatusCancelled
	case models.OrderStatusConfirmed:
		return to == models.OrderStatusPreparing || to == models.OrderStatusCancelled
	case models.OrderStatusPreparing:
		return to == models.OrderStatusDelivered
	default:
		return false
	}
}
