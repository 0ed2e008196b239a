package post_service

import (
	"context"
	"log/slog"
	"strings"

	"portfolio-content-service/internal/logger"
	"portfolio-content-service/internal/metrics"
	"portfolio-content-service/internal/model"
	"portfolio-content-service/internal/provider"
)

// videoFormats are container extensions that mark an upload as video when no
// explicit type or duration is available.
var videoFormats = map[string]struct{}{
	"mp4":  {},
	"mov":  {},
	"avi":  {},
	"webm": {},
	"mkv":  {},
	"flv":  {},
	"wmv":  {},
	"m3u8": {},
}

// MediaReconciler turns a desired media list into rows to persist and drives
// compensating provider deletes for retired items. Replacing a post's media
// is a full delete-and-reinsert: every current row is retired locally, and
// items whose provider reference no longer appears in the desired list are
// also deleted at the provider.
type MediaReconciler struct {
	storage provider.MediaStorage
	video   provider.VideoPlatform
	log     *logger.Logger
	metrics metrics.MetricsProvider
}

func NewMediaReconciler(storage provider.MediaStorage, video provider.VideoPlatform, log *logger.Logger, metrics metrics.MetricsProvider) *MediaReconciler {
	return &MediaReconciler{
		storage: storage,
		video:   video,
		log:     log,
		metrics: metrics,
	}
}

// Reconcile computes the replacement set for a post's media. The caller is
// responsible for treating an absent desired list as a no-op; a non-nil
// (possibly empty) desired slice always means full replacement. Remote
// deletes for retired items happen here, best-effort: a provider failure is
// logged and never blocks the local replacement.
func (r *MediaReconciler) Reconcile(ctx context.Context, existing []*model.Media, desired []*model.MediaInput) []*model.Media {
	desiredIDs := make(map[string]struct{}, len(desired))
	for _, input := range desired {
		if input.PublicID != "" {
			desiredIDs[input.PublicID] = struct{}{}
		}
	}

	var retired []*model.Media
	for _, md := range existing {
		if _, kept := desiredIDs[md.PublicID]; !kept {
			retired = append(retired, md)
		}
	}
	r.DeleteRemote(ctx, retired)

	toPersist := make([]*model.Media, 0, len(desired))
	for idx, input := range desired {
		toPersist = append(toPersist, r.resolve(ctx, input, idx))
	}

	r.metrics.IncrementMediaOperations("reconcile", true)
	r.log.Debug("Reconciled media set",
		slog.Int("existing", len(existing)),
		slog.Int("desired", len(desired)),
		slog.Int("retired_remote", len(retired)))
	return toPersist
}

// resolve builds the row for one desired item: provider defaults, type
// inference, ordering defaults, and asynchronous-provider reference
// resolution.
func (r *MediaReconciler) resolve(ctx context.Context, input *model.MediaInput, position int) *model.Media {
	md := &model.Media{
		Type:     inferMediaType(input),
		Provider: input.Provider,
		PublicID: input.PublicID,
		URL:      input.SecureURL,
		Duration: input.Duration,
		Width:    input.Width,
		Height:   input.Height,
		Format:   input.Format,
		Size:     input.Size,
		Metadata: input.Metadata,
	}
	if md.Provider == "" {
		md.Provider = model.ProviderCloudinary
	}
	if input.IsFeatured != nil {
		md.IsFeatured = *input.IsFeatured
	}
	if input.DisplayOrder != nil {
		md.DisplayOrder = *input.DisplayOrder
	} else {
		md.DisplayOrder = int32(position)
	}
	if md.Metadata == nil {
		md.Metadata = make(map[string]any)
	}
	if input.AssetID != nil && *input.AssetID != "" {
		md.Metadata[model.MetadataAssetKey] = *input.AssetID
	}

	if md.Provider == model.ProviderMux {
		r.resolveMuxReference(ctx, md)
	}
	return md
}

// resolveMuxReference walks upload id -> asset id -> playback id and rewrites
// the reference and URL to the playable form. Resolution is best-effort: on
// any failure the item keeps its original, possibly still-pending reference.
func (r *MediaReconciler) resolveMuxReference(ctx context.Context, md *model.Media) {
	assetID, _ := md.Metadata[model.MetadataAssetKey].(string)
	if assetID == "" {
		upload, err := r.video.GetUpload(ctx, md.PublicID)
		if err != nil {
			r.log.Warn("Failed to resolve upload, keeping pending reference",
				slog.String("upload_id", md.PublicID),
				slog.String("error", err.Error()))
			return
		}
		if upload.AssetID == "" {
			r.log.Debug("Upload not yet ingested, keeping pending reference",
				slog.String("upload_id", md.PublicID),
				slog.String("status", upload.Status))
			return
		}
		assetID = upload.AssetID
	}

	asset, err := r.video.GetAsset(ctx, assetID)
	if err != nil {
		r.log.Warn("Failed to resolve asset, keeping pending reference",
			slog.String("asset_id", assetID),
			slog.String("error", err.Error()))
		return
	}

	md.Metadata[model.MetadataAssetKey] = assetID
	if asset.Duration != nil {
		md.Duration = asset.Duration
	}
	if asset.PlaybackID != "" {
		md.PublicID = asset.PlaybackID
		md.URL = r.video.StreamURL(asset.PlaybackID)
		md.Metadata[model.MetadataThumbnailKey] = r.video.ThumbnailURL(asset.PlaybackID)
	}
}

// DeleteRemote retires media at their providers. Failures are logged and
// swallowed: local consistency wins over remote cleanup completeness.
func (r *MediaReconciler) DeleteRemote(ctx context.Context, media []*model.Media) {
	for _, md := range media {
		success := true
		switch md.Provider {
		case model.ProviderMux:
			assetID, _ := md.Metadata[model.MetadataAssetKey].(string)
			if assetID == "" {
				r.log.Debug("Skipping remote delete, no asset id recorded",
					slog.String("media_id", md.ID),
					slog.String("public_id", md.PublicID))
				continue
			}
			if err := r.video.DeleteAsset(ctx, assetID); err != nil {
				success = false
				r.log.Warn("Failed to delete remote asset",
					slog.String("media_id", md.ID),
					slog.String("asset_id", assetID),
					slog.String("error", err.Error()))
			}
		default:
			if md.PublicID == "" {
				continue
			}
			resourceType := "image"
			if md.Type == model.MediaTypeVideo {
				resourceType = "video"
			}
			if err := r.storage.Destroy(ctx, md.PublicID, resourceType); err != nil {
				success = false
				r.log.Warn("Failed to delete remote resource",
					slog.String("media_id", md.ID),
					slog.String("public_id", md.PublicID),
					slog.String("error", err.Error()))
			}
		}
		r.metrics.IncrementMediaOperations("remote_delete", success)
	}
}

// inferMediaType trusts an explicit type when present, then falls back to
// duration and format heuristics.
func inferMediaType(input *model.MediaInput) model.MediaType {
	if input.Type != nil && input.Type.IsValid() == nil {
		return *input.Type
	}
	if input.Duration != nil {
		return model.MediaTypeVideo
	}
	if input.Format != nil {
		if _, ok := videoFormats[strings.ToLower(*input.Format)]; ok {
			return model.MediaTypeVideo
		}
	}
	return model.MediaTypeImage
}
