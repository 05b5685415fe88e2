package alert

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeAPI struct {
	alerts []Alert

	listErr    error
	markErr    error
	markAllErr error
	deleteErr  error
}

func (f *fakeAPI) List(context.Context) ([]Alert, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.alerts, nil
}

func (f *fakeAPI) Create(_ context.Context, na NewAlert) (Alert, error) {
	a := Alert{ID: "new", Title: na.Title, Message: na.Message, Type: na.Type, Priority: na.Priority}
	f.alerts = append(f.alerts, a)
	return a, nil
}

func (f *fakeAPI) MarkRead(context.Context, string) error { return f.markErr }
func (f *fakeAPI) MarkAllRead(context.Context) error      { return f.markAllErr }
func (f *fakeAPI) Delete(context.Context, string) error   { return f.deleteErr }

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	failures  []string
}

func (n *recordingNotifier) Success(msg string) {
	n.mu.Lock()
	n.successes = append(n.successes, msg)
	n.mu.Unlock()
}

func (n *recordingNotifier) Failure(msg string) {
	n.mu.Lock()
	n.failures = append(n.failures, msg)
	n.mu.Unlock()
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func sampleAlerts() []Alert {
	return []Alert{
		{ID: "a1", Title: "New Pending Payment", Message: "Pending payment of 500.00 added for May 2024", Type: TypeInfo, Priority: PriorityMedium},
		{ID: "a2", Title: "Payment Deposited", Message: "Payment of 300.00 deposited via cash for May 2024", Type: TypeSuccess, Priority: PriorityMedium, Read: true},
		{ID: "a3", Title: "Payment Deleted", Message: "Payment record has been deleted", Type: TypeWarning, Priority: PriorityLow},
	}
}

func setup(alerts ...Alert) (*Service, *fakeAPI, *recordingNotifier) {
	api := &fakeAPI{alerts: alerts}
	notifier := new(recordingNotifier)
	return NewService(api, notifier, nopLogger{}), api, notifier
}

func TestService_Fetch(t *testing.T) {
	svc, _, _ := setup(sampleAlerts()...)

	assert.NoError(t, svc.Fetch(context.Background()))
	assert.Len(t, svc.Alerts(), 3)
	assert.Equal(t, 2, svc.Unread())
	assert.False(t, svc.Loading())
}

func TestService_Fetch_failureKeepsStaleCache(t *testing.T) {
	svc, api, notifier := setup(sampleAlerts()...)
	assert.NoError(t, svc.Fetch(context.Background()))

	api.listErr = errors.New("boom")
	err := svc.Fetch(context.Background())

	assert.Error(t, err)
	assert.Len(t, svc.Alerts(), 3) // stale cache kept, unlike the payment store
	assert.False(t, svc.Loading())
	assert.Empty(t, notifier.failures) // failure is silent
}

func TestService_MarkRead(t *testing.T) {
	svc, _, _ := setup(sampleAlerts()...)
	assert.NoError(t, svc.Fetch(context.Background()))

	assert.NoError(t, svc.MarkRead(context.Background(), "a1"))

	for _, a := range svc.Alerts() {
		if a.ID == "a1" || a.ID == "a2" {
			assert.True(t, a.Read, a.ID)
		} else {
			assert.False(t, a.Read, a.ID)
		}
	}
	assert.Equal(t, 1, svc.Unread())
}

func TestService_MarkRead_failure(t *testing.T) {
	svc, api, _ := setup(sampleAlerts()...)
	assert.NoError(t, svc.Fetch(context.Background()))
	api.markErr = errors.New("boom")

	assert.Error(t, svc.MarkRead(context.Background(), "a1"))
	assert.Equal(t, 2, svc.Unread()) // cache untouched
}

func TestService_MarkAllRead(t *testing.T) {
	svc, _, notifier := setup(sampleAlerts()...)
	assert.NoError(t, svc.Fetch(context.Background()))

	assert.NoError(t, svc.MarkAllRead(context.Background()))

	assert.Equal(t, 0, svc.Unread())
	for _, a := range svc.Alerts() {
		assert.True(t, a.Read, a.ID)
	}
	assert.Equal(t, []string{"All alerts marked as read"}, notifier.successes)
}

func TestService_MarkAllRead_failure(t *testing.T) {
	svc, api, notifier := setup(sampleAlerts()...)
	assert.NoError(t, svc.Fetch(context.Background()))
	api.markAllErr = errors.New("boom")

	assert.Error(t, svc.MarkAllRead(context.Background()))
	assert.Equal(t, 2, svc.Unread())
	assert.Empty(t, notifier.successes)
}

func TestService_Delete(t *testing.T) {
	svc, _, _ := setup(sampleAlerts()...)
	assert.NoError(t, svc.Fetch(context.Background()))

	assert.NoError(t, svc.Delete(context.Background(), "a2"))

	records := svc.Alerts()
	assert.Len(t, records, 2)
	for _, a := range records {
		assert.NotEqual(t, "a2", a.ID)
	}
	assert.False(t, svc.Loading())
}

func TestService_Delete_failureClearsLoading(t *testing.T) {
	svc, api, _ := setup(sampleAlerts()...)
	assert.NoError(t, svc.Fetch(context.Background()))
	api.deleteErr = errors.New("boom")

	assert.Error(t, svc.Delete(context.Background(), "a2"))

	assert.Len(t, svc.Alerts(), 3)
	assert.False(t, svc.Loading()) // loading must not stay stuck after a failed delete
}
