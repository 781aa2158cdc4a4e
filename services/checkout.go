package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"quality-fastfood/models"
)

// Checkout flow states.
const (
	CheckoutIdle       = "idle"
	CheckoutValidating = "validating"
	CheckoutSubmitting = "submitting"
	CheckoutSucceeded  = "succeeded"
	CheckoutFailed     = "failed"
)

type CheckoutEvent string

const (
	EventSubmit      CheckoutEvent = "submit"
	EventFieldErrors CheckoutEvent = "field_errors"
	EventValidated   CheckoutEvent = "validated"
	EventBackendOK   CheckoutEvent = "backend_ok"
	EventBackendErr  CheckoutEvent = "backend_err"
	EventReset       CheckoutEvent = "reset"
)

// NextCheckoutState is the transition table for the submission flow. Events
// that do not apply in the current state leave it unchanged.
func NextCheckoutState(state string, ev CheckoutEvent) string {
	switch {
	case state == CheckoutIdle && ev == EventSubmit:
		return CheckoutValidating
	case state == CheckoutValidating && ev == EventFieldErrors:
		return CheckoutIdle
	case state == CheckoutValidating && ev == EventValidated:
		return CheckoutSubmitting
	case state == CheckoutSubmitting && ev == EventBackendOK:
		return CheckoutSucceeded
	case state == CheckoutSubmitting && ev == EventBackendErr:
		return CheckoutFailed
	case state == CheckoutFailed && ev == EventSubmit:
		return CheckoutValidating
	case (state == CheckoutSucceeded || state == CheckoutFailed) && ev == EventReset:
		return CheckoutIdle
	default:
		return state
	}
}

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrSubmitInFlight = errors.New("an order submission is already in progress")
)

// OrderPlacer issues the backend create-order call. The HTTP client
// implements it; tests substitute fakes.
type OrderPlacer interface {
	CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.OrderSuccessResponse, error)
}

type DeliveryForm struct {
	CustomerName string
	Phone        string
	Address      string
}

type SubmitResult struct {
	OrderID       string
	Message       string
	EstimatedTime string
}

// CheckoutFlow drives one cart through validation and order submission.
// Only one submission may be in flight at a time.
type CheckoutFlow struct {
	mu          sync.Mutex
	state       string
	cart        *Cart
	placer      OrderPlacer
	lastOrderID string
}

func NewCheckoutFlow(cart *Cart, placer OrderPlacer) *CheckoutFlow {
	return &CheckoutFlow{state: CheckoutIdle, cart: cart, placer: placer}
}

func (f *CheckoutFlow) State() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// LastOrderID returns the id of the most recently placed order, for the
// confirmation view.
func (f *CheckoutFlow) LastOrderID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastOrderID
}

// Submit validates the form, builds the order payload from a cart snapshot
// and calls the backend once. Field errors come back in the map and no
// network call is made. A non-nil error is the backend/network failure
// surfaced to the user; the cart is left untouched so the user may retry.
// On success the cart is cleared and the order id recorded.
func (f *CheckoutFlow) Submit(ctx context.Context, form DeliveryForm) (*SubmitResult, map[string]string, error) {
	f.mu.Lock()
	if f.state == CheckoutSubmitting {
		f.mu.Unlock()
		return nil, nil, ErrSubmitInFlight
	}
	if f.cart.Empty() {
		f.mu.Unlock()
		return nil, nil, ErrEmptyCart
	}
	if f.state == CheckoutSucceeded {
		// Session is starting a fresh order after a confirmation.
		f.state = NextCheckoutState(f.state, EventReset)
	}
	f.state = NextCheckoutState(f.state, EventSubmit)

	if errs := ValidateDeliveryForm(form.CustomerName, form.Phone, form.Address); len(errs) > 0 {
		f.state = NextCheckoutState(f.state, EventFieldErrors)
		f.mu.Unlock()
		return nil, errs, nil
	}

	f.state = NextCheckoutState(f.state, EventValidated)
	req := models.CreateOrderRequest{
		CustomerName: strings.TrimSpace(form.CustomerName),
		Phone:        NormalizePhone(form.Phone),
		Address:      strings.TrimSpace(form.Address),
		Items:        f.cart.Snapshot(),
	}
	f.mu.Unlock()

	resp, err := f.placer.CreateOrder(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = NextCheckoutState(f.state, EventBackendErr)
		return nil, nil, err
	}
	if resp == nil || !resp.Success {
		// Malformed response: missing success flag is a failure.
		f.state = NextCheckoutState(f.state, EventBackendErr)
		return nil, nil, errors.New("failed to place order, please try again")
	}
	f.state = NextCheckoutState(f.state, EventBackendOK)
	f.lastOrderID = resp.OrderID
	f.cart.Clear()
	return &SubmitResult{
		OrderID:       resp.OrderID,
		Message:       resp.Message,
		EstimatedTime: resp.EstimatedTime,
	}, nil, nil
}

// Reset returns a finished flow to idle so the session can place another
// order.
func (f *CheckoutFlow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = NextCheckoutState(f.state, EventReset)
}
