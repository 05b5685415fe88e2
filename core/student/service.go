package student

import "context"

type (
	API interface {
		List(ctx context.Context) ([]Student, error)
	}

	Service struct {
		api API
	}
)

func NewService(api API) *Service {
	return &Service{api: api}
}

func (svc *Service) List(ctx context.Context) ([]Student, error) {
	return svc.api.List(ctx)
}
