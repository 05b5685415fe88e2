package payment

import (
	"context"
	"fmt"
	"sync"

	"github.com/ramp07413/tuition-admin/core"
	"github.com/ramp07413/tuition-admin/core/alert"
)

type (
	// API is the payments transport this store drives.
	API interface {
		List(ctx context.Context, q Query) ([]Payment, error)
		AddPending(ctx context.Context, pp PendingPayment) (Payment, error)
		Deposit(ctx context.Context, d Deposit) (Payment, error)
		Get(ctx context.Context, studentID string) (Payment, error)
		Update(ctx context.Context, id string, up UpdatePayment) (Payment, error)
		Delete(ctx context.Context, id string) error
	}

	// AlertAPI is the subset of the alerts transport used to record payment
	// lifecycle alerts.
	AlertAPI interface {
		Create(ctx context.Context, na alert.NewAlert) (alert.Alert, error)
	}

	// Service is the session's payment store: a mutable cache of payment
	// records plus loading/error state, orchestrating transport calls.
	// After every mutation the cache is re-synchronized by re-fetching the
	// full list (the backend populates the student relation on fetch, not
	// on mutation responses); delete is the exception and patches locally.
	Service struct {
		api      API
		alerts   AlertAPI
		notifier core.Notifier
		logger   core.Logger

		mu       sync.Mutex
		records  []Payment
		loading  bool
		err      error
		fetchSeq uint64
	}
)

func NewService(api API, alerts AlertAPI, notifier core.Notifier, logger core.Logger) *Service {
	return &Service{
		api:      api,
		alerts:   alerts,
		notifier: notifier,
		logger:   logger,
	}
}

// Fetch replaces the record cache with the backend's current list.
// On failure the cache is emptied, the error recorded and a failure
// notification emitted; the caller may re-invoke. Completions of
// superseded fetches are discarded.
func (svc *Service) Fetch(ctx context.Context, q Query) error {
	svc.mu.Lock()
	svc.loading = true
	svc.err = nil
	svc.fetchSeq++
	seq := svc.fetchSeq
	svc.mu.Unlock()

	records, err := svc.api.List(ctx, q)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if seq != svc.fetchSeq {
		// a newer fetch was issued while this one was in flight
		return nil
	}
	svc.loading = false
	if err != nil {
		svc.err = err
		svc.records = nil
		svc.notifier.Failure("Failed to fetch payments")
		return err
	}
	svc.records = records
	return nil
}

// AddPending records a new pending due and re-fetches the list so the cache
// carries the server-populated student reference. A medium-priority info
// alert is created best-effort once the cache reflects the mutation.
func (svc *Service) AddPending(ctx context.Context, pp PendingPayment) (Payment, error) {
	if err := pp.Validate(); err != nil {
		return Payment{}, err
	}

	svc.setLoading(true)
	created, err := svc.api.AddPending(ctx, pp)
	if err != nil {
		svc.setLoading(false)
		svc.notifier.Failure(core.PublicMessage(err, "Failed to add pending payment"))
		return Payment{}, err
	}

	_ = svc.Fetch(ctx, Query{})

	svc.createAlert(ctx, alert.NewAlert{
		Title:    "New Pending Payment",
		Message:  fmt.Sprintf("Pending payment of %.2f added for %s %d", pp.Amount, pp.Month, pp.Year),
		Type:     alert.TypeInfo,
		Priority: alert.PriorityMedium,
	})
	svc.notifier.Success("Pending payment added successfully")
	return created, nil
}

// Deposit pays a due keyed by (student, month, year) and re-fetches the
// list; whether the backend created or updated a record is its business.
func (svc *Service) Deposit(ctx context.Context, d Deposit) (Payment, error) {
	if err := d.Validate(); err != nil {
		return Payment{}, err
	}

	svc.setLoading(true)
	deposited, err := svc.api.Deposit(ctx, d)
	if err != nil {
		svc.setLoading(false)
		svc.notifier.Failure(core.PublicMessage(err, "Failed to deposit payment"))
		return Payment{}, err
	}

	_ = svc.Fetch(ctx, Query{})

	svc.createAlert(ctx, alert.NewAlert{
		Title:    "Payment Deposited",
		Message:  fmt.Sprintf("Payment of %.2f deposited via %s for %s %d", d.Amount, d.PaymentType, d.Month, d.Year),
		Type:     alert.TypeSuccess,
		Priority: alert.PriorityMedium,
	})
	svc.notifier.Success("Payment deposited successfully")
	return deposited, nil
}

// GetStudentPayment fetches a single student's payment detail. The shared
// cache is not touched.
func (svc *Service) GetStudentPayment(ctx context.Context, studentID string) (Payment, error) {
	p, err := svc.api.Get(ctx, studentID)
	if err != nil {
		svc.notifier.Failure("Failed to fetch student payment")
		return Payment{}, err
	}
	return p, nil
}

// Update submits a partial update keyed by record identifier and re-fetches
// the list. A low-priority info alert names the new status, or a generic
// "modified" label when status was not part of the update.
func (svc *Service) Update(ctx context.Context, id string, up UpdatePayment) (Payment, error) {
	if err := up.Validate(); err != nil {
		return Payment{}, err
	}

	svc.setLoading(true)
	updated, err := svc.api.Update(ctx, id, up)
	if err != nil {
		svc.setLoading(false)
		svc.notifier.Failure("Failed to update payment")
		return Payment{}, err
	}

	_ = svc.Fetch(ctx, Query{})

	label := up.Status
	if label == "" {
		label = "modified"
	}
	svc.createAlert(ctx, alert.NewAlert{
		Title:    "Payment Updated",
		Message:  "Payment status updated to " + label,
		Type:     alert.TypeInfo,
		Priority: alert.PriorityLow,
	})
	svc.notifier.Success("Payment updated successfully")
	return updated, nil
}

// Delete removes a record and patches the cache in place; no re-fetch.
func (svc *Service) Delete(ctx context.Context, id string) error {
	svc.setLoading(true)
	if err := svc.api.Delete(ctx, id); err != nil {
		svc.setLoading(false)
		svc.notifier.Failure("Failed to delete payment")
		return err
	}

	svc.mu.Lock()
	kept := make([]Payment, 0, len(svc.records))
	for _, p := range svc.records {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	svc.records = kept
	svc.loading = false
	svc.mu.Unlock()

	svc.createAlert(ctx, alert.NewAlert{
		Title:    "Payment Deleted",
		Message:  "Payment record has been deleted",
		Type:     alert.TypeWarning,
		Priority: alert.PriorityLow,
	})
	svc.notifier.Success("Payment deleted successfully")
	return nil
}

func (svc *Service) ClearError() {
	svc.mu.Lock()
	svc.err = nil
	svc.mu.Unlock()
}

// Payments returns a snapshot of the record cache.
func (svc *Service) Payments() []Payment {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	records := make([]Payment, len(svc.records))
	copy(records, svc.records)
	return records
}

func (svc *Service) Loading() bool {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.loading
}

func (svc *Service) Err() error {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.err
}

func (svc *Service) setLoading(loading bool) {
	svc.mu.Lock()
	svc.loading = loading
	svc.mu.Unlock()
}

// createAlert records a payment lifecycle alert. It is best-effort: it runs
// only after the primary mutation is reflected in the cache, and failures
// are logged, never surfaced to the caller.
func (svc *Service) createAlert(ctx context.Context, na alert.NewAlert) {
	if svc.alerts == nil {
		return
	}
	if _, err := svc.alerts.Create(ctx, na); err != nil {
		svc.logger.Error("creating payment alert: "+err.Error(), err)
	}
}
