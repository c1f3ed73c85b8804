package member

import (
	"context"
	"time"
)

// Repository is the persistence port for members. Implementations return
// (nil, nil) when a member does not exist.
type Repository interface {
	Create(ctx context.Context, member *Member) error
	GetByID(ctx context.Context, memberID uint) (*Member, error)
	GetBySID(ctx context.Context, sid string) (*Member, error)
	GetByEmail(ctx context.Context, email string) (*Member, error)
	Update(ctx context.Context, member *Member) error
	Delete(ctx context.Context, memberID uint) error

	List(ctx context.Context, filter Filter) ([]*Member, int64, error)
	Count(ctx context.Context) (int64, error)
}

// Filter narrows member listings.
type Filter struct {
	Search   string
	Page     int
	PageSize int
}

// AssignmentRepository is the persistence port for membership assignments.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *Assignment) error
	GetByID(ctx context.Context, assignmentID uint) (*Assignment, error)
	GetActiveByMemberID(ctx context.Context, memberID uint) (*Assignment, error)
	GetByMemberID(ctx context.Context, memberID uint) ([]*Assignment, error)
	Update(ctx context.Context, assignment *Assignment) error

	// FindActiveEndingBetween returns active assignments whose end date lies
	// in [from, to]. Used for the expiring-membership reminder job.
	FindActiveEndingBetween(ctx context.Context, from, to time.Time) ([]*Assignment, error)
	// FindActiveExpired returns active assignments whose end date has passed.
	FindActiveExpired(ctx context.Context, now time.Time) ([]*Assignment, error)

	CountByPlanID(ctx context.Context, planID uint) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}
