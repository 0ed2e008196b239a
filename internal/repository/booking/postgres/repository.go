package booking_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"portfolio-content-service/internal/custom_errors"
	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/metrics"
	"portfolio-content-service/internal/model"
	"portfolio-content-service/internal/repository/postgres/db"
)

const bookingColumns = "id, client_name, client_email, start_time, end_time, status, message, created_at, updated_at"

type BookingRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.MetricsProvider
}

func NewBookingRepository(db db.PgDB, log *logger.Logger, metrics metrics.MetricsProvider) *BookingRepository {
	return &BookingRepository{db: db, log: log, metrics: metrics}
}

func scanBooking(row pgx.Row) (*model.Booking, error) {
	var b model.Booking
	err := row.Scan(&b.ID, &b.ClientName, &b.ClientEmail, &b.StartTime, &b.EndTime,
		&b.Status, &b.Message, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (b *BookingRepository) Create(ctx context.Context, booking *model.Booking) (*model.Booking, error) {
	start := time.Now()
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	status := booking.Status
	if status == "" {
		status = model.BookingStatusPending
	}
	args := pgx.NamedArgs{
		"id":           uuid.New().String(),
		"client_name":  booking.ClientName,
		"client_email": booking.ClientEmail,
		"start_time":   booking.StartTime,
		"end_time":     booking.EndTime,
		"status":       status,
		"message":      booking.Message,
		"created_at":   now,
		"updated_at":   now,
	}
	query := `INSERT INTO bookings (id, client_name, client_email, start_time, end_time, status, message, created_at, updated_at)
		VALUES (@id, @client_name, @client_email, @start_time, @end_time, @status, @message, @created_at, @updated_at)
		RETURNING ` + bookingColumns

	created, err := scanBooking(b.db.QueryRow(ctx, query, args))
	if err != nil {
		b.metrics.IncrementDatabaseQueries("booking_create", false)
		b.metrics.RecordDatabaseQueryDuration("booking_create", time.Since(start))
		b.log.Error("Error creating booking", slog.String("client_email", booking.ClientEmail), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	b.metrics.IncrementDatabaseQueries("booking_create", true)
	b.metrics.RecordDatabaseQueryDuration("booking_create", time.Since(start))
	b.log.Debug("Successfully created booking", slog.String("id", created.ID))
	return created, nil
}

func (b *BookingRepository) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	start := time.Now()
	booking, err := scanBooking(b.db.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = @id`, pgx.NamedArgs{"id": id}))
	if err != nil {
		b.metrics.IncrementDatabaseQueries("booking_get_by_id", false)
		b.metrics.RecordDatabaseQueryDuration("booking_get_by_id", time.Since(start))
		if errors.Is(err, pgx.ErrNoRows) {
			b.log.Debug("Booking not found by id", slog.String("id", id))
			return nil, custom_errors.ErrBookingNotFound
		}
		b.log.Error("Error getting booking by id", slog.String("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	b.metrics.IncrementDatabaseQueries("booking_get_by_id", true)
	b.metrics.RecordDatabaseQueryDuration("booking_get_by_id", time.Since(start))
	return booking, nil
}

func (b *BookingRepository) Update(ctx context.Context, id string, dto *model.UpdateBookingDTO) (*model.Booking, error) {
	start := time.Now()
	setClauses := make([]string, 0, 7)
	args := pgx.NamedArgs{"id": id}

	if dto.ClientName != nil {
		setClauses = append(setClauses, "client_name = @client_name")
		args["client_name"] = *dto.ClientName
	}
	if dto.ClientEmail != nil {
		setClauses = append(setClauses, "client_email = @client_email")
		args["client_email"] = *dto.ClientEmail
	}
	if dto.StartTime != nil {
		setClauses = append(setClauses, "start_time = @start_time")
		args["start_time"] = *dto.StartTime
	}
	if dto.EndTime != nil {
		setClauses = append(setClauses, "end_time = @end_time")
		args["end_time"] = *dto.EndTime
	}
	if dto.Status != nil {
		setClauses = append(setClauses, "status = @status")
		args["status"] = *dto.Status
	}
	if dto.Message != nil {
		setClauses = append(setClauses, "message = @message")
		args["message"] = *dto.Message
	}
	setClauses = append(setClauses, "updated_at = @updated_at")
	args["updated_at"] = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	query := `UPDATE bookings SET ` + strings.Join(setClauses, ", ") +
		` WHERE id = @id RETURNING ` + bookingColumns

	booking, err := scanBooking(b.db.QueryRow(ctx, query, args))
	if err != nil {
		b.metrics.IncrementDatabaseQueries("booking_update", false)
		b.metrics.RecordDatabaseQueryDuration("booking_update", time.Since(start))
		if errors.Is(err, pgx.ErrNoRows) {
			b.log.Debug("Booking not found during update", slog.String("id", id))
			return nil, custom_errors.ErrBookingNotFound
		}
		b.log.Error("Error updating booking", slog.String("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	b.metrics.IncrementDatabaseQueries("booking_update", true)
	b.metrics.RecordDatabaseQueryDuration("booking_update", time.Since(start))
	b.log.Debug("Successfully updated booking", slog.String("id", booking.ID))
	return booking, nil
}

func (b *BookingRepository) Delete(ctx context.Context, id string) error {
	start := time.Now()
	result, err := b.db.Exec(ctx, `DELETE FROM bookings WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		b.metrics.IncrementDatabaseQueries("booking_delete", false)
		b.metrics.RecordDatabaseQueryDuration("booking_delete", time.Since(start))
		b.log.Error("Error deleting booking", slog.String("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		b.metrics.IncrementDatabaseQueries("booking_delete", false)
		b.metrics.RecordDatabaseQueryDuration("booking_delete", time.Since(start))
		b.log.Debug("Booking not found during deletion", slog.String("id", id))
		return custom_errors.ErrBookingNotFound
	}
	b.metrics.IncrementDatabaseQueries("booking_delete", true)
	b.metrics.RecordDatabaseQueryDuration("booking_delete", time.Since(start))
	return nil
}

var sortColumns = map[string]string{
	"client_name": "client_name",
	"email":       "client_email",
	"start_time":  "start_time",
	"end_time":    "end_time",
	"status":      "status",
	"created":     "created_at",
}

func (b *BookingRepository) List(ctx context.Context, filters model.BookingFilters) ([]*model.Booking, int, error) {
	start := time.Now()

	args := pgx.NamedArgs{}
	var conditions []string
	if filters.Status != nil {
		conditions = append(conditions, "status = @status")
		args["status"] = *filters.Status
	}
	if filters.StartDate != nil {
		conditions = append(conditions, "start_time >= @start_date")
		args["start_date"] = *filters.StartDate
	}
	if filters.EndDate != nil {
		conditions = append(conditions, "end_time <= @end_date")
		args["end_date"] = *filters.EndDate
	}
	if filters.Search != nil && *filters.Search != "" {
		conditions = append(conditions, "(client_name ILIKE @search OR client_email ILIKE @search)")
		args["search"] = "%" + *filters.Search + "%"
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderBy := " ORDER BY start_time ASC"
	if filters.SortBy != nil {
		if col, ok := sortColumns[*filters.SortBy]; ok {
			direction := "ASC"
			if filters.SortOrder != nil && strings.EqualFold(*filters.SortOrder, "desc") {
				direction = "DESC"
			}
			orderBy = " ORDER BY " + col + " " + direction
		}
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings` + where + orderBy
	if filters.Limit != nil {
		query += " LIMIT @limit"
		args["limit"] = *filters.Limit
	}
	if filters.Offset != nil {
		query += " OFFSET @offset"
		args["offset"] = *filters.Offset
	}

	rows, err := b.db.Query(ctx, query, args)
	if err != nil {
		b.metrics.IncrementDatabaseQueries("booking_list", false)
		b.metrics.RecordDatabaseQueryDuration("booking_list", time.Since(start))
		b.log.Error("Error listing bookings", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var bookings []*model.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			b.metrics.IncrementDatabaseQueries("booking_list", false)
			b.metrics.RecordDatabaseQueryDuration("booking_list", time.Since(start))
			b.log.Error("Error scanning booking", slog.String("error", err.Error()))
			return nil, 0, custom_errors.ErrDatabaseQuery
		}
		bookings = append(bookings, booking)
	}
	if err = rows.Err(); err != nil {
		b.metrics.IncrementDatabaseQueries("booking_list", false)
		b.metrics.RecordDatabaseQueryDuration("booking_list", time.Since(start))
		b.log.Error("Error iterating booking rows", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	countArgs := make(pgx.NamedArgs)
	for k, v := range args {
		if k != "limit" && k != "offset" {
			countArgs[k] = v
		}
	}
	var total int
	err = b.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`+where, countArgs).Scan(&total)
	if err != nil {
		b.metrics.IncrementDatabaseQueries("booking_list", false)
		b.metrics.RecordDatabaseQueryDuration("booking_list", time.Since(start))
		b.log.Error("Error counting bookings", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	b.metrics.IncrementDatabaseQueries("booking_list", true)
	b.metrics.RecordDatabaseQueryDuration("booking_list", time.Since(start))
	return bookings, total, nil
}

// HasOverlap reports whether any pending or confirmed booking other than
// excludeID intersects the [start, end) window. Canceled bookings never block.
func (b *BookingRepository) HasOverlap(ctx context.Context, excludeID string, start, end pgtype.Timestamptz) (bool, error) {
	began := time.Now()
	query := `SELECT EXISTS (
		SELECT 1 FROM bookings
		WHERE id <> @exclude_id
		AND status IN ('pending', 'confirmed')
		AND (
			(start_time <= @start AND end_time > @start)
			OR (start_time < @end AND end_time >= @end)
			OR (start_time >= @start AND end_time <= @end)
		)
	)`
	args := pgx.NamedArgs{
		"exclude_id": excludeID,
		"start":      start,
		"end":        end,
	}

	var exists bool
	err := b.db.QueryRow(ctx, query, args).Scan(&exists)
	if err != nil {
		b.metrics.IncrementDatabaseQueries("booking_has_overlap", false)
		b.metrics.RecordDatabaseQueryDuration("booking_has_overlap", time.Since(began))
		b.log.Error("Error checking booking overlap", slog.String("exclude_id", excludeID), slog.String("error", err.Error()))
		return false, custom_errors.ErrDatabaseQuery
	}
	b.metrics.IncrementDatabaseQueries("booking_has_overlap", true)
	b.metrics.RecordDatabaseQueryDuration("booking_has_overlap", time.Since(began))
	return exists, nil
}
