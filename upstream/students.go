package upstream

import (
	"context"
	"net/http"

	"github.com/ramp07413/tuition-admin/core/student"
)

type StudentsAPI struct {
	c *Client
}

var _ student.API = (*StudentsAPI)(nil)

func NewStudentsAPI(c *Client) *StudentsAPI {
	return &StudentsAPI{c: c}
}

func (api *StudentsAPI) List(ctx context.Context) ([]student.Student, error) {
	var out []student.Student
	if err := api.c.do(ctx, http.MethodGet, "/students", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
