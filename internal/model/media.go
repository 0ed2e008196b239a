package model

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

type Media struct {
	ID           string             `json:"id"`
	PostID       string             `json:"post_id"`
	Type         MediaType          `json:"type"`
	Provider     string             `json:"provider,omitempty"`
	PublicID     string             `json:"public_id,omitempty"`
	URL          string             `json:"url"`
	Duration     *float64           `json:"duration,omitempty"`
	Width        *int32             `json:"width,omitempty"`
	Height       *int32             `json:"height,omitempty"`
	Format       *string            `json:"format,omitempty"`
	Size         *int64             `json:"size,omitempty"`
	Metadata     map[string]any     `json:"metadata,omitempty"`
	IsFeatured   bool               `json:"is_featured"`
	DisplayOrder int32              `json:"display_order"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

func (t MediaType) IsValid() error {
	switch t {
	case MediaTypeImage, MediaTypeVideo:
		return nil
	}
	return fmt.Errorf("invalid media type: %s", t)
}

func (t *MediaType) UnmarshalText(text []byte) error {
	mt := MediaType(text)
	if err := mt.IsValid(); err != nil {
		return err
	}
	*t = mt
	return nil
}

const (
	ProviderCloudinary = "cloudinary"
	ProviderMux        = "mux"
)

// MetadataAssetKey holds the asynchronous provider's asset id inside a media
// row's metadata map. Asset deletion on that provider needs it.
const MetadataAssetKey = "asset_id"

// MetadataThumbnailKey holds the still-frame URL derived from a resolved
// playback id.
const MetadataThumbnailKey = "thumbnail_url"
