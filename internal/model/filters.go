package model

import "github.com/jackc/pgx/v5/pgtype"

type PostFilters struct {
	Status     *PostStatus
	CategoryID *string
	Search     *string
	SortBy     *string
	SortOrder  *string
	Limit      *int
	Offset     *int
}

type BookingFilters struct {
	Status    *BookingStatus
	StartDate *pgtype.Timestamptz
	EndDate   *pgtype.Timestamptz
	Search    *string
	SortBy    *string
	SortOrder *string
	Limit     *int
	Offset    *int
}

type CategoryFilters struct {
	Search    *string
	SortBy    *string
	SortOrder *string
	Limit     *int
	Offset    *int
}
