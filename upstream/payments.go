package upstream

import (
	"context"
	"net/http"

	"github.com/ramp07413/tuition-admin/core/payment"
)

type PaymentsAPI struct {
	c *Client
}

var _ payment.API = (*PaymentsAPI)(nil)

func NewPaymentsAPI(c *Client) *PaymentsAPI {
	return &PaymentsAPI{c: c}
}

func (api *PaymentsAPI) List(ctx context.Context, q payment.Query) ([]payment.Payment, error) {
	var out struct {
		Payments []payment.Payment `json:"payments"`
	}
	if err := api.c.do(ctx, http.MethodGet, "/payments", q.Values(), nil, &out); err != nil {
		return nil, err
	}
	return out.Payments, nil
}

func (api *PaymentsAPI) AddPending(ctx context.Context, pp payment.PendingPayment) (payment.Payment, error) {
	var out struct {
		PaymentData payment.Payment `json:"paymentData"`
	}
	if err := api.c.do(ctx, http.MethodPost, "/payments/addPending", nil, pp, &out); err != nil {
		return payment.Payment{}, err
	}
	return out.PaymentData, nil
}

func (api *PaymentsAPI) Deposit(ctx context.Context, d payment.Deposit) (payment.Payment, error) {
	var out payment.Payment
	if err := api.c.do(ctx, http.MethodPut, "/payments/depositPayment", nil, d, &out); err != nil {
		return payment.Payment{}, err
	}
	return out, nil
}

func (api *PaymentsAPI) Get(ctx context.Context, studentID string) (payment.Payment, error) {
	var out payment.Payment
	if err := api.c.do(ctx, http.MethodGet, "/payments/get/"+studentID, nil, nil, &out); err != nil {
		return payment.Payment{}, err
	}
	return out, nil
}

func (api *PaymentsAPI) Update(ctx context.Context, id string, up payment.UpdatePayment) (payment.Payment, error) {
	var out payment.Payment
	if err := api.c.do(ctx, http.MethodPatch, "/payments/update/"+id, nil, up, &out); err != nil {
		return payment.Payment{}, err
	}
	return out, nil
}

func (api *PaymentsAPI) Delete(ctx context.Context, id string) error {
	return api.c.do(ctx, http.MethodDelete, "/payments/delete/"+id, nil, nil, nil)
}
