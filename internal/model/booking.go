package model

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

type Booking struct {
	ID          string             `json:"id"`
	ClientName  string             `json:"client_name"`
	ClientEmail string             `json:"client_email"`
	StartTime   pgtype.Timestamptz `json:"start_time"`
	EndTime     pgtype.Timestamptz `json:"end_time"`
	Status      BookingStatus      `json:"status"`
	Message     *string            `json:"message,omitempty"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCanceled  BookingStatus = "canceled"
)

func (s BookingStatus) IsValid() error {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCanceled:
		return nil
	}
	return fmt.Errorf("invalid booking status: %s", s)
}

func (s *BookingStatus) UnmarshalText(text []byte) error {
	bs := BookingStatus(text)
	if err := bs.IsValid(); err != nil {
		return err
	}
	*s = bs
	return nil
}
