package alert

import (
	"context"
	"sync"

	"github.com/ramp07413/tuition-admin/core"
)

type (
	// API is the alerts transport this store drives. Exact backend paths
	// are the transport's business.
	API interface {
		List(ctx context.Context) ([]Alert, error)
		Create(ctx context.Context, na NewAlert) (Alert, error)
		MarkRead(ctx context.Context, id string) error
		MarkAllRead(ctx context.Context) error
		Delete(ctx context.Context, id string) error
	}

	// Service is the session's alert store. Unlike the payment store it
	// patches its cache in place after mutations instead of re-fetching.
	Service struct {
		api      API
		notifier core.Notifier
		logger   core.Logger

		mu      sync.Mutex
		records []Alert
		loading bool
	}
)

func NewService(api API, notifier core.Notifier, logger core.Logger) *Service {
	return &Service{
		api:      api,
		notifier: notifier,
		logger:   logger,
	}
}

// Fetch replaces the alert cache. Failures are silent: loading is cleared
// and the stale cache kept, with no user notification.
func (svc *Service) Fetch(ctx context.Context) error {
	svc.setLoading(true)
	records, err := svc.api.List(ctx)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.loading = false
	if err != nil {
		return err
	}
	svc.records = records
	return nil
}

// MarkRead flips the matching record's read flag in place.
func (svc *Service) MarkRead(ctx context.Context, id string) error {
	if err := svc.api.MarkRead(ctx, id); err != nil {
		return err
	}
	svc.mu.Lock()
	for i := range svc.records {
		if svc.records[i].ID == id {
			svc.records[i].Read = true
		}
	}
	svc.mu.Unlock()
	return nil
}

// MarkAllRead sets the read flag on every cached record.
func (svc *Service) MarkAllRead(ctx context.Context) error {
	if err := svc.api.MarkAllRead(ctx); err != nil {
		return err
	}
	svc.mu.Lock()
	for i := range svc.records {
		svc.records[i].Read = true
	}
	svc.mu.Unlock()
	svc.notifier.Success("All alerts marked as read")
	return nil
}

// Delete removes the record from the cache in place; no re-fetch.
func (svc *Service) Delete(ctx context.Context, id string) error {
	svc.setLoading(true)
	if err := svc.api.Delete(ctx, id); err != nil {
		svc.setLoading(false)
		svc.logger.Error("deleting alert: "+err.Error(), err)
		return err
	}

	svc.mu.Lock()
	kept := make([]Alert, 0, len(svc.records))
	for _, a := range svc.records {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	svc.records = kept
	svc.loading = false
	svc.mu.Unlock()
	return nil
}

// Alerts returns a snapshot of the alert cache.
func (svc *Service) Alerts() []Alert {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	records := make([]Alert, len(svc.records))
	copy(records, svc.records)
	return records
}

// Unread counts cached alerts not yet marked read.
func (svc *Service) Unread() int {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	var n int
	for _, a := range svc.records {
		if !a.Read {
			n++
		}
	}
	return n
}

func (svc *Service) Loading() bool {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.loading
}

func (svc *Service) setLoading(loading bool) {
	svc.mu.Lock()
	svc.loading = loading
	svc.mu.Unlock()
}
