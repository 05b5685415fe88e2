package upstream

import (
	"context"
	"net/http"

	"github.com/ramp07413/tuition-admin/core/alert"
)

type AlertsAPI struct {
	c *Client
}

var _ alert.API = (*AlertsAPI)(nil)

func NewAlertsAPI(c *Client) *AlertsAPI {
	return &AlertsAPI{c: c}
}

func (api *AlertsAPI) List(ctx context.Context) ([]alert.Alert, error) {
	var out []alert.Alert
	if err := api.c.do(ctx, http.MethodGet, "/alerts", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (api *AlertsAPI) Create(ctx context.Context, na alert.NewAlert) (alert.Alert, error) {
	var out alert.Alert
	if err := api.c.do(ctx, http.MethodPost, "/alerts", nil, na, &out); err != nil {
		return alert.Alert{}, err
	}
	return out, nil
}

func (api *AlertsAPI) MarkRead(ctx context.Context, id string) error {
	return api.c.do(ctx, http.MethodPatch, "/alerts/"+id+"/read", nil, nil, nil)
}

func (api *AlertsAPI) MarkAllRead(ctx context.Context) error {
	return api.c.do(ctx, http.MethodPatch, "/alerts/markAllRead", nil, nil, nil)
}

func (api *AlertsAPI) Delete(ctx context.Context, id string) error {
	return api.c.do(ctx, http.MethodDelete, "/alerts/"+id, nil, nil, nil)
}
