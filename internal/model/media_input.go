package model

// MediaInput describes one already-uploaded provider blob the client wants
// attached to a post. Optional fields stay nil when the client omits them;
// the reconciler fills in defaults and infers the type.
type MediaInput struct {
	Type         *MediaType     `json:"type,omitempty"`
	Provider     string         `json:"provider,omitempty"`
	PublicID     string         `json:"public_id" validate:"required"`
	SecureURL    string         `json:"secure_url" validate:"required"`
	AssetID      *string        `json:"asset_id,omitempty"`
	Duration     *float64       `json:"duration,omitempty"`
	Width        *int32         `json:"width,omitempty"`
	Height       *int32         `json:"height,omitempty"`
	Format       *string        `json:"format,omitempty"`
	Size         *int64         `json:"size,omitempty"`
	IsFeatured   *bool          `json:"is_featured,omitempty"`
	DisplayOrder *int32         `json:"display_order,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}
