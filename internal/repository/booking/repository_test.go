package booking_repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/model"
	booking_repository "portfolio-content-service/internal/repository/booking"
	"portfolio-content-service/internal/repository/booking/memory"
)

func setupBookingTest(t *testing.T) booking_repository.Repository {
	t.Helper()
	return memory.NewBookingRepository(logger.New("test"))
}

func ts(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

var base = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func newBooking(name, email string, start, end time.Time, status model.BookingStatus) *model.Booking {
	return &model.Booking{
		ClientName:  name,
		ClientEmail: email,
		StartTime:   ts(start),
		EndTime:     ts(end),
		Status:      status,
	}
}

func TestBookingRepository_Create(t *testing.T) {
	repo := setupBookingTest(t)

	created, err := repo.Create(context.Background(),
		newBooking("Dana", "dana@example.com", base, base.Add(time.Hour), ""))
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, model.BookingStatusPending, created.Status)
	assert.True(t, created.CreatedAt.Valid)
}

func TestBookingRepository_Update(t *testing.T) {
	repo := setupBookingTest(t)
	ctx := context.Background()

	created, err := repo.Create(ctx,
		newBooking("Dana", "dana@example.com", base, base.Add(time.Hour), ""))
	require.NoError(t, err)

	status := model.BookingStatusConfirmed
	updated, err := repo.Update(ctx, created.ID, &model.UpdateBookingDTO{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusConfirmed, updated.Status)
	assert.Equal(t, "Dana", updated.ClientName)

	_, err = repo.Update(ctx, "missing", &model.UpdateBookingDTO{Status: &status})
	assert.ErrorIs(t, err, custom_errors.ErrBookingNotFound)
}

func TestBookingRepository_List(t *testing.T) {
	repo := setupBookingTest(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, newBooking("Dana", "dana@example.com", base, base.Add(time.Hour), model.BookingStatusConfirmed))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newBooking("Erik", "erik@example.com", base.Add(24*time.Hour), base.Add(25*time.Hour), model.BookingStatusPending))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newBooking("Mira", "mira@example.com", base.Add(48*time.Hour), base.Add(49*time.Hour), model.BookingStatusCanceled))
	require.NoError(t, err)

	t.Run("filter by status", func(t *testing.T) {
		status := model.BookingStatusPending
		bookings, total, err := repo.List(ctx, model.BookingFilters{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "Erik", bookings[0].ClientName)
	})

	t.Run("date window", func(t *testing.T) {
		start := ts(base.Add(12 * time.Hour))
		end := ts(base.Add(36 * time.Hour))
		bookings, total, err := repo.List(ctx, model.BookingFilters{StartDate: &start, EndDate: &end})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "Erik", bookings[0].ClientName)
	})

	t.Run("end date bounds the booking end, not its start", func(t *testing.T) {
		end := ts(base.Add(24*time.Hour + 30*time.Minute))
		bookings, total, err := repo.List(ctx, model.BookingFilters{EndDate: &end})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "Dana", bookings[0].ClientName)
	})

	t.Run("search by client", func(t *testing.T) {
		search := "mira@"
		bookings, total, err := repo.List(ctx, model.BookingFilters{Search: &search})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "Mira", bookings[0].ClientName)
	})

	t.Run("sorted by start time by default", func(t *testing.T) {
		bookings, _, err := repo.List(ctx, model.BookingFilters{})
		require.NoError(t, err)
		require.Len(t, bookings, 3)
		assert.Equal(t, "Dana", bookings[0].ClientName)
		assert.Equal(t, "Mira", bookings[2].ClientName)
	})
}

func TestBookingRepository_HasOverlap(t *testing.T) {
	repo := setupBookingTest(t)
	ctx := context.Background()

	confirmed, err := repo.Create(ctx, newBooking("Dana", "dana@example.com", base, base.Add(time.Hour), model.BookingStatusConfirmed))
	require.NoError(t, err)
	canceled, err := repo.Create(ctx, newBooking("Mira", "mira@example.com", base.Add(2*time.Hour), base.Add(3*time.Hour), model.BookingStatusCanceled))
	require.NoError(t, err)

	t.Run("intersecting interval", func(t *testing.T) {
		taken, err := repo.HasOverlap(ctx, "other", ts(base.Add(30*time.Minute)), ts(base.Add(90*time.Minute)))
		require.NoError(t, err)
		assert.True(t, taken)
	})

	t.Run("adjacent interval does not overlap", func(t *testing.T) {
		taken, err := repo.HasOverlap(ctx, "other", ts(base.Add(time.Hour)), ts(base.Add(2*time.Hour)))
		require.NoError(t, err)
		assert.False(t, taken)
	})

	t.Run("canceled bookings do not block", func(t *testing.T) {
		taken, err := repo.HasOverlap(ctx, "other", ts(canceled.StartTime.Time), ts(canceled.EndTime.Time))
		require.NoError(t, err)
		assert.False(t, taken)
	})

	t.Run("the booking itself is excluded", func(t *testing.T) {
		taken, err := repo.HasOverlap(ctx, confirmed.ID, confirmed.StartTime, confirmed.EndTime)
		require.NoError(t, err)
		assert.False(t, taken)
	})
}

func TestBookingRepository_Delete(t *testing.T) {
	repo := setupBookingTest(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newBooking("Dana", "dana@example.com", base, base.Add(time.Hour), ""))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, custom_errors.ErrBookingNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), custom_errors.ErrBookingNotFound)
}
