package office

import "context"

type OfficeRepository interface {
	GetByID(ctx context.Context, officeID string) (Office, error)
	// List returns every office ordered by name; activeOnly drops inactive ones.
	List(ctx context.Context, activeOnly bool) ([]Office, error)
	Create(ctx context.Context, newOffice Office) (Office, error)
	Update(ctx context.Context, officeID string, req UpdateOfficeRequest) (Office, error)
	Delete(ctx context.Context, officeID string) error
}
