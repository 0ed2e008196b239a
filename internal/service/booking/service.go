package booking_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/metrics"
	"portfolio-content-service/internal/model"
	booking_repository "portfolio-content-service/internal/repository/booking"
	"portfolio-content-service/internal/repository/postgres"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/booking --outpkg mocks --filename BookingService.go
type Service interface {
	CreateBooking(ctx context.Context, dto *model.CreateBookingDTO) (*model.Booking, error)
	GetBookingByID(ctx context.Context, id string) (*model.Booking, error)
	ListBookings(ctx context.Context, filters model.BookingFilters) ([]*model.Booking, int, error)
	UpdateBooking(ctx context.Context, id string, dto *model.UpdateBookingDTO) (*model.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
}

type BookingService struct {
	bookingRepo booking_repository.Repository
	uow         postgres.UnitOfWork
	log         *logger.Logger
	metrics     metrics.MetricsProvider
}

func NewBookingService(bookingRepo booking_repository.Repository, uow postgres.UnitOfWork, log *logger.Logger, metrics metrics.MetricsProvider) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		uow:         uow,
		log:         log,
		metrics:     metrics,
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, dto *model.CreateBookingDTO) (*model.Booking, error) {
	if !dto.StartTime.Time.Before(dto.EndTime.Time) {
		s.log.Debug("Booking rejected, start not before end", slog.String("client_email", dto.ClientEmail))
		return nil, custom_errors.ErrBookingTimeOrder
	}

	created, err := s.bookingRepo.Create(ctx, &model.Booking{
		ClientName:  dto.ClientName,
		ClientEmail: dto.ClientEmail,
		StartTime:   dto.StartTime,
		EndTime:     dto.EndTime,
		Status:      model.BookingStatusPending,
		Message:     dto.Message,
	})
	if err != nil {
		s.log.Error("Failed to create booking", slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.IncrementBookingOperations("create", true)
	return created, nil
}

func (s *BookingService) GetBookingByID(ctx context.Context, id string) (*model.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrBookingNotFound) {
			return nil, custom_errors.ErrBookingNotFound
		}
		s.log.Error("Failed to get booking", slog.String("id", id), slog.String("error", err.Error()))
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) ListBookings(ctx context.Context, filters model.BookingFilters) ([]*model.Booking, int, error) {
	bookings, total, err := s.bookingRepo.List(ctx, filters)
	if err != nil {
		s.log.Error("Failed to list bookings", slog.String("error", err.Error()))
		return nil, 0, err
	}
	return bookings, total, nil
}

// UpdateBooking merges the partial update onto the stored booking, enforces
// time ordering and slot exclusivity, and persists inside one transaction so
// the overlap check and the write see the same snapshot.
func (s *BookingService) UpdateBooking(ctx context.Context, id string, dto *model.UpdateBookingDTO) (result *model.Booking, err error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	var txCommitted bool
	defer func() {
		if txCommitted || tx == nil {
			return
		}
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			if !strings.Contains(rollbackErr.Error(), "tx is closed") {
				s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
			}
		}
	}()

	bookingRepo := tx.BookingRepository()

	current, err := bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrBookingNotFound) {
			s.log.Debug("Booking not found during update", slog.String("id", id))
			return nil, custom_errors.ErrBookingNotFound
		}
		s.log.Error("Failed to resolve booking for update", slog.String("id", id), slog.String("error", err.Error()))
		return nil, err
	}

	start, end := current.StartTime, current.EndTime
	if dto.StartTime != nil {
		start = *dto.StartTime
	}
	if dto.EndTime != nil {
		end = *dto.EndTime
	}
	if !start.Time.Before(end.Time) {
		s.log.Debug("Booking update rejected, start not before end", slog.String("id", id))
		return nil, custom_errors.ErrBookingTimeOrder
	}

	status := current.Status
	if dto.Status != nil {
		status = *dto.Status
	}
	// Canceled bookings neither block nor get blocked.
	if status == model.BookingStatusPending || status == model.BookingStatusConfirmed {
		taken, overlapErr := bookingRepo.HasOverlap(ctx, id, start, end)
		if overlapErr != nil {
			s.log.Error("Failed to check booking overlap", slog.String("id", id), slog.String("error", overlapErr.Error()))
			return nil, overlapErr
		}
		if taken {
			s.log.Debug("Booking update rejected, slot taken", slog.String("id", id))
			return nil, custom_errors.ErrBookingSlotTaken
		}
	}

	updated, err := bookingRepo.Update(ctx, id, dto)
	if err != nil {
		s.log.Error("Failed to update booking", slog.String("id", id), slog.String("error", err.Error()))
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	s.metrics.IncrementBookingOperations("update", true)
	return updated, nil
}

func (s *BookingService) DeleteBooking(ctx context.Context, id string) error {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, custom_errors.ErrBookingNotFound) {
			return custom_errors.ErrBookingNotFound
		}
		s.log.Error("Failed to delete booking", slog.String("id", id), slog.String("error", err.Error()))
		return err
	}
	s.metrics.IncrementBookingOperations("delete", true)
	return nil
}
