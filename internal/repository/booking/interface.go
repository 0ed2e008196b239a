package booking_repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"portfolio-content-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/booking --outpkg mocks --filename BookingRepository.go
type Repository interface {
	Create(ctx context.Context, booking *model.Booking) (*model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	Update(ctx context.Context, id string, update *model.UpdateBookingDTO) (*model.Booking, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters model.BookingFilters) ([]*model.Booking, int, error)
	// HasOverlap reports whether any pending or confirmed booking other than
	// excludeID intersects the [start, end) interval.
	HasOverlap(ctx context.Context, excludeID string, start, end pgtype.Timestamptz) (bool, error)
}
