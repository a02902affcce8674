// Package checkout runs the order submission flow: delivery-form
// validation, cart snapshot assembly and hand-off to the order
// creation endpoint with retries. The cart is cleared only after the
// order id comes back.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"dunestore/internal/cart"
	"dunestore/internal/domain"
	"dunestore/internal/i18n"
	"dunestore/internal/retry"
)

// Optional leading +, then at least 8 characters of digits, spaces and
// hyphens. Deliberately loose; carriers vary too much for more.
var phoneRe = regexp.MustCompile(`^\+?[0-9][0-9 \-]{7,}$`)

// DeliveryForm is what the shopper fills at checkout.
type DeliveryForm struct {
	Name    string `json:"customer_name"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// Validate trims and checks the form, returning field-keyed messages
// in the shopper's language. An empty map means the form is good.
func (f DeliveryForm) Validate(lang i18n.Lang) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(f.Name) == "" {
		errs["customer_name"] = i18n.T(lang, "name_required")
	}
	phone := strings.TrimSpace(f.Phone)
	switch {
	case phone == "":
		errs["phone"] = i18n.T(lang, "phone_required")
	case !phoneRe.MatchString(phone):
		errs["phone"] = i18n.T(lang, "phone_invalid")
	}
	if strings.TrimSpace(f.City) == "" {
		errs["city"] = i18n.T(lang, "city_required")
	}
	if strings.TrimSpace(f.Address) == "" {
		errs["address"] = i18n.T(lang, "address_required")
	}
	return errs
}

// ValidationError carries the field-keyed messages of a rejected form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("delivery form invalid (%d fields)", len(e.Fields))
}

var (
	ErrCartEmpty      = errors.New("cart is empty")
	ErrSubmitInFlight = errors.New("order submission already in progress")
)

// OrderPlacer creates an order somewhere and returns its id.
type OrderPlacer interface {
	Place(ctx context.Context, req domain.OrderRequest) (orderID string, err error)
}

// Flow coordinates checkout for all sessions. One submission may be in
// flight per session key at a time; a second submit while the first is
// pending gets ErrSubmitInFlight instead of a duplicate order.
type Flow struct {
	Placer   OrderPlacer
	Attempts int
	Backoff  retry.BackoffFunc

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewFlow(placer OrderPlacer) *Flow {
	return &Flow{
		Placer:   placer,
		Attempts: 3,
		Backoff:  retry.Linear(500 * time.Millisecond),
		inFlight: make(map[string]struct{}),
	}
}

// Submit validates the form, snapshots the cart and places the order,
// retrying transient failures. On success the cart is cleared and the
// order id returned; on failure the cart is left untouched so the
// shopper can retry.
func (fl *Flow) Submit(ctx context.Context, sessionKey string, c *cart.Store, form DeliveryForm, lang i18n.Lang) (string, error) {
	fl.mu.Lock()
	if _, busy := fl.inFlight[sessionKey]; busy {
		fl.mu.Unlock()
		return "", ErrSubmitInFlight
	}
	if fl.inFlight == nil {
		fl.inFlight = make(map[string]struct{})
	}
	fl.inFlight[sessionKey] = struct{}{}
	fl.mu.Unlock()
	defer func() {
		fl.mu.Lock()
		delete(fl.inFlight, sessionKey)
		fl.mu.Unlock()
	}()

	if errs := form.Validate(lang); len(errs) > 0 {
		return "", &ValidationError{Fields: errs}
	}
	lines := c.Lines()
	if len(lines) == 0 {
		return "", ErrCartEmpty
	}

	req := Snapshot(form, lines, c.Total())

	attempts := fl.Attempts
	if attempts < 1 {
		attempts = 3
	}
	orderID, err := retry.Do(ctx, attempts, fl.Backoff, func(ctx context.Context) (string, error) {
		return fl.Placer.Place(ctx, req)
	})
	if err != nil {
		return "", err
	}
	c.Clear()
	return orderID, nil
}

// Snapshot freezes the cart into the order request shape of the order
// creation endpoint.
func Snapshot(form DeliveryForm, lines []domain.CartLine, total float64) domain.OrderRequest {
	items := make([]domain.OrderItem, 0, len(lines))
	for _, l := range lines {
		item := domain.OrderItem{
			ProductID:   l.ProductID,
			ProductName: l.Name,
			Price:       l.Price,
			Quantity:    l.Quantity,
		}
		if l.Options.Len() > 0 {
			opts := l.Options
			item.Options = &opts
		}
		items = append(items, item)
	}
	return domain.OrderRequest{
		CustomerName: strings.TrimSpace(form.Name),
		Phone:        strings.TrimSpace(form.Phone),
		City:         strings.TrimSpace(form.City),
		Address:      strings.TrimSpace(form.Address),
		Notes:        strings.TrimSpace(form.Notes),
		TotalPrice:   total,
		Items:        items,
	}
}

// IsNetworkError reports whether err looks like a connectivity
// problem, so the UI can word the failure accordingly.
func IsNetworkError(err error) bool {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr)
}
