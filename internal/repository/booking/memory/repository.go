package memory

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/model"
)

type BookingRepository struct {
	log      *logger.Logger
	mu       sync.RWMutex
	bookings map[string]*model.Booking
}

func NewBookingRepository(log *logger.Logger) *BookingRepository {
	return &BookingRepository{
		log:      log,
		bookings: make(map[string]*model.Booking),
	}
}

func (b *BookingRepository) Create(ctx context.Context, booking *model.Booking) (*model.Booking, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	status := booking.Status
	if status == "" {
		status = model.BookingStatusPending
	}

	stored := *booking
	stored.ID = uuid.New().String()
	stored.Status = status
	stored.CreatedAt = now
	stored.UpdatedAt = now
	b.bookings[stored.ID] = &stored

	result := stored
	return &result, nil
}

func (b *BookingRepository) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	booking, exists := b.bookings[id]
	if !exists {
		b.log.Debug("Booking not found by id (memory impl)", slog.String("id", id))
		return nil, custom_errors.ErrBookingNotFound
	}

	result := *booking
	return &result, nil
}

func (b *BookingRepository) Update(ctx context.Context, id string, update *model.UpdateBookingDTO) (*model.Booking, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	booking, exists := b.bookings[id]
	if !exists {
		b.log.Debug("Booking not found during update (memory impl)", slog.String("id", id))
		return nil, custom_errors.ErrBookingNotFound
	}

	if update.ClientName != nil {
		booking.ClientName = *update.ClientName
	}
	if update.ClientEmail != nil {
		booking.ClientEmail = *update.ClientEmail
	}
	if update.StartTime != nil {
		booking.StartTime = *update.StartTime
	}
	if update.EndTime != nil {
		booking.EndTime = *update.EndTime
	}
	if update.Status != nil {
		booking.Status = *update.Status
	}
	if update.Message != nil {
		booking.Message = update.Message
	}
	booking.UpdatedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	result := *booking
	return &result, nil
}

func (b *BookingRepository) Delete(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.bookings[id]; !exists {
		b.log.Debug("Booking not found during deletion (memory impl)", slog.String("id", id))
		return custom_errors.ErrBookingNotFound
	}
	delete(b.bookings, id)
	return nil
}

func (b *BookingRepository) List(ctx context.Context, filters model.BookingFilters) ([]*model.Booking, int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var matched []*model.Booking
	for _, booking := range b.bookings {
		if filters.Status != nil && booking.Status != *filters.Status {
			continue
		}
		if filters.StartDate != nil && booking.StartTime.Time.Before(filters.StartDate.Time) {
			continue
		}
		if filters.EndDate != nil && booking.EndTime.Time.After(filters.EndDate.Time) {
			continue
		}
		if filters.Search != nil && *filters.Search != "" {
			needle := strings.ToLower(*filters.Search)
			if !strings.Contains(strings.ToLower(booking.ClientName), needle) &&
				!strings.Contains(strings.ToLower(booking.ClientEmail), needle) {
				continue
			}
		}
		bookingCopy := *booking
		matched = append(matched, &bookingCopy)
	}

	sortBy := "start_time"
	if filters.SortBy != nil {
		sortBy = *filters.SortBy
	}
	desc := filters.SortOrder != nil && strings.EqualFold(*filters.SortOrder, "desc")
	sort.SliceStable(matched, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "client_name":
			less = matched[i].ClientName < matched[j].ClientName
		case "email":
			less = matched[i].ClientEmail < matched[j].ClientEmail
		case "end_time":
			less = matched[i].EndTime.Time.Before(matched[j].EndTime.Time)
		case "status":
			less = matched[i].Status < matched[j].Status
		case "created":
			less = matched[i].CreatedAt.Time.Before(matched[j].CreatedAt.Time)
		default:
			less = matched[i].StartTime.Time.Before(matched[j].StartTime.Time)
		}
		if desc {
			return !less
		}
		return less
	})

	total := len(matched)
	offset := 0
	if filters.Offset != nil {
		offset = *filters.Offset
	}
	if offset > total {
		offset = total
	}
	end := total
	if filters.Limit != nil && offset+*filters.Limit < total {
		end = offset + *filters.Limit
	}

	return matched[offset:end], total, nil
}

func (b *BookingRepository) HasOverlap(ctx context.Context, excludeID string, start, end pgtype.Timestamptz) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, booking := range b.bookings {
		if booking.ID == excludeID {
			continue
		}
		if booking.Status != model.BookingStatusPending && booking.Status != model.BookingStatusConfirmed {
			continue
		}
		if booking.StartTime.Time.Before(end.Time) && booking.EndTime.Time.After(start.Time) {
			return true, nil
		}
	}
	return false, nil
}
