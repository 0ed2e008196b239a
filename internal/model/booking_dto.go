package model

import "github.com/jackc/pgx/v5/pgtype"

type CreateBookingDTO struct {
	ClientName  string             `json:"client_name" validate:"required"`
	ClientEmail string             `json:"client_email" validate:"required,email"`
	StartTime   pgtype.Timestamptz `json:"start_time" validate:"required"`
	EndTime     pgtype.Timestamptz `json:"end_time" validate:"required"`
	Message     *string            `json:"message,omitempty"`
}

type UpdateBookingDTO struct {
	ClientName  *string             `json:"client_name,omitempty"`
	ClientEmail *string             `json:"client_email,omitempty" validate:"omitempty,email"`
	StartTime   *pgtype.Timestamptz `json:"start_time,omitempty"`
	EndTime     *pgtype.Timestamptz `json:"end_time,omitempty"`
	Status      *BookingStatus      `json:"status,omitempty"`
	Message     *string             `json:"message,omitempty"`
}
