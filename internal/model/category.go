package model

import "github.com/jackc/pgx/v5/pgtype"

type Category struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}
