package payment

import (
	"context"
	"time"
)

// Repository is the persistence port for payments. Payments are append-only:
// there is no update or delete.
type Repository interface {
	Create(ctx context.Context, payment *Payment) error
	GetByID(ctx context.Context, paymentID uint) (*Payment, error)
	GetBySID(ctx context.Context, sid string) (*Payment, error)

	ListByMemberID(ctx context.Context, memberID uint) ([]*Payment, error)
	List(ctx context.Context, filter Filter) ([]*Payment, int64, error)

	SumCompletedSince(ctx context.Context, since time.Time) (int64, error)
}

// Filter narrows payment listings.
type Filter struct {
	MemberID *uint
	Status   *string
	Page     int
	PageSize int
}
