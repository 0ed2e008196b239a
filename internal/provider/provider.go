package provider

import (
	"context"
)

// UploadSignature authorizes a browser to upload straight to the media store.
type UploadSignature struct {
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"`
}

// DirectUpload is a one-shot upload slot on the video platform.
type DirectUpload struct {
	UploadURL string `json:"upload_url"`
	UploadID  string `json:"upload_id"`
	Status    string `json:"status"`
}

// UploadDetails describes the state of a direct upload. AssetID stays empty
// until the platform has ingested the file.
type UploadDetails struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	AssetID string `json:"asset_id"`
}

// AssetDetails describes an ingested video asset.
type AssetDetails struct {
	AssetID             string   `json:"asset_id"`
	Status              string   `json:"status"`
	PlaybackID          string   `json:"playback_id"`
	Duration            *float64 `json:"duration,omitempty"`
	AspectRatio         string   `json:"aspect_ratio,omitempty"`
	MaxStoredResolution string   `json:"max_stored_resolution,omitempty"`
}

// MediaStorage is the synchronous image/video store (Cloudinary-style):
// uploads happen client-side against a server-issued signature, deletes are
// addressed by public id.
//
//go:generate mockery --name MediaStorage --dir . --output ../../mocks/provider --outpkg mocks --filename MediaStorage.go
type MediaStorage interface {
	// SignUpload issues a signature over the upload params the client will
	// send. Folder is optional and included only when non-empty.
	SignUpload(folder string) (*UploadSignature, error)
	// Destroy removes the resource identified by publicID. ResourceType is
	// "image" or "video".
	Destroy(ctx context.Context, publicID, resourceType string) error
}

// VideoPlatform is the asynchronous video pipeline (Mux-style): a direct
// upload resolves to an asset, which resolves to a playback id.
//
//go:generate mockery --name VideoPlatform --dir . --output ../../mocks/provider --outpkg mocks --filename VideoPlatform.go
type VideoPlatform interface {
	CreateDirectUpload(ctx context.Context) (*DirectUpload, error)
	GetUpload(ctx context.Context, uploadID string) (*UploadDetails, error)
	GetAsset(ctx context.Context, assetID string) (*AssetDetails, error)
	DeleteAsset(ctx context.Context, assetID string) error
	StreamURL(playbackID string) string
	ThumbnailURL(playbackID string) string
}
