package payment

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/ramp07413/tuition-admin/core"
)

// Statuses
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// Payment types, set once a deposit has occurred.
const (
	TypeCash   = "cash"
	TypeOnline = "online"
)

// Months holds the twelve calendar month names accepted on payment records.
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// StudentRef is the student reference carried by a payment record.
// The backend returns either a populated summary {_id, name, email} or a
// bare identifier string, depending on whether the relation was resolved.
type StudentRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

func (r *StudentRef) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &r.ID)
	}
	type ref StudentRef
	return json.Unmarshal(data, (*ref)(r))
}

func (r StudentRef) MarshalJSON() ([]byte, error) {
	if r.Name == "" && r.Email == "" {
		return json.Marshal(r.ID)
	}
	type ref StudentRef
	return json.Marshal(ref(r))
}

// Label returns the display name of the referenced student.
func (r StudentRef) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return "Unknown Student"
}

// Contact returns the student email, falling back to the bare identifier
// when the relation was not resolved.
func (r StudentRef) Contact() string {
	if r.Email != "" {
		return r.Email
	}
	return r.ID
}

type Payment struct {
	ID          string     `json:"_id"`
	Student     StudentRef `json:"studentId"`
	Amount      float64    `json:"amount"`
	Month       string     `json:"month"`
	Year        int        `json:"year"`
	Status      string     `json:"status"`
	PaymentType string     `json:"paymentType,omitempty"`
}

func (p Payment) IsPaid() bool { return p.Status == StatusPaid }

// PendingPayment contains information needed to record a new pending due.
// Status is implied: the backend creates the record as pending, with no
// payment type.
type PendingPayment struct {
	StudentID string  `json:"studentId" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Month     string  `json:"month" validate:"required,oneof=January February March April May June July August September October November December"`
	Year      int     `json:"year" validate:"required,min=1970,max=2100"`
}

func (pp *PendingPayment) Validate() error {
	pp.StudentID = core.CleanString(pp.StudentID)
	pp.Month = core.CleanString(pp.Month)
	return core.Validate.Struct(pp)
}

// Deposit pays a due, keyed by (student, month, year) rather than by record
// identifier; the backend decides whether that creates or updates a record.
type Deposit struct {
	StudentID   string  `json:"studentId" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Month       string  `json:"month" validate:"required,oneof=January February March April May June July August September October November December"`
	Year        int     `json:"year" validate:"required,min=1970,max=2100"`
	PaymentType string  `json:"paymentType" validate:"required,oneof=cash online"`
}

func (d *Deposit) Validate() error {
	d.StudentID = core.CleanString(d.StudentID)
	d.Month = core.CleanString(d.Month)
	d.PaymentType = core.CleanString(d.PaymentType, true /* lower */)
	return core.Validate.Struct(d)
}

// UpdatePayment defines what information may be provided to modify an
// existing payment record.
type UpdatePayment struct {
	Status string   `json:"status,omitempty" validate:"omitempty,oneof=pending paid"`
	Amount *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Month  string   `json:"month,omitempty" validate:"omitempty,oneof=January February March April May June July August September October November December"`
	Year   *int     `json:"year,omitempty" validate:"omitempty,min=1970,max=2100"`
}

func (up *UpdatePayment) Validate() error {
	up.Status = core.CleanString(up.Status, true /* lower */)
	up.Month = core.CleanString(up.Month)
	return core.Validate.Struct(up)
}

// Query holds optional list constraints forwarded to the backend.
type Query struct {
	Search string
	Status string
	Month  string
	Year   int
}

func (q Query) Values() url.Values {
	v := make(url.Values)
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Month != "" {
		v.Set("month", q.Month)
	}
	if q.Year != 0 {
		v.Set("year", strconv.Itoa(q.Year))
	}
	return v
}
