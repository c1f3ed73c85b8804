package plan

import "context"

// Repository is the persistence port for plans. Implementations return
// (nil, nil) when a plan does not exist.
type Repository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, planID uint) (*Plan, error)
	GetBySID(ctx context.Context, sid string) (*Plan, error)
	Update(ctx context.Context, plan *Plan) error
	Delete(ctx context.Context, planID uint) error

	GetAllActive(ctx context.Context) ([]*Plan, error)
	List(ctx context.Context, filter Filter) ([]*Plan, int64, error)
}

// Filter narrows plan listings.
type Filter struct {
	Status   *string
	Page     int
	PageSize int
}
