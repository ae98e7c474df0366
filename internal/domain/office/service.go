package office

import "context"

type OfficeService interface {
	List(ctx context.Context) ([]OfficeResponse, error)
	Create(ctx context.Context, req CreateOfficeRequest) (OfficeResponse, error)
	Update(ctx context.Context, officeID string, req UpdateOfficeRequest) (OfficeResponse, error)
	Delete(ctx context.Context, officeID string) error
}
