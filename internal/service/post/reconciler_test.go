package post_service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolio-content-service/internal/logger"
	prometheus_metrics "portfolio-content-service/internal/metrics/prometheus"
	"portfolio-content-service/internal/model"
	"portfolio-content-service/internal/provider"
	provider_mock "portfolio-content-service/mocks/provider"
)

func strPtr(s string) *string { return &s }
func f64Ptr(v float64) *float64 { return &v }
func i32Ptr(v int32) *int32 { return &v }
func boolPtr(v bool) *bool { return &v }
func typePtr(t model.MediaType) *model.MediaType { return &t }

func newTestReconciler(storage *provider_mock.MediaStorage, video *provider_mock.VideoPlatform) *MediaReconciler {
	log := logger.New("test")
	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	return NewMediaReconciler(storage, video, log, metrics)
}

func TestMediaReconciler_TypeInference(t *testing.T) {
	tests := []struct {
		name  string
		input *model.MediaInput
		want  model.MediaType
	}{
		{
			name:  "explicit type wins over duration",
			input: &model.MediaInput{PublicID: "p", SecureURL: "u", Type: typePtr(model.MediaTypeImage), Duration: f64Ptr(12.0)},
			want:  model.MediaTypeImage,
		},
		{
			name:  "duration implies video",
			input: &model.MediaInput{PublicID: "p", SecureURL: "u", Duration: f64Ptr(12.0)},
			want:  model.MediaTypeVideo,
		},
		{
			name:  "video container format",
			input: &model.MediaInput{PublicID: "p", SecureURL: "u", Format: strPtr("MP4")},
			want:  model.MediaTypeVideo,
		},
		{
			name:  "image format falls through",
			input: &model.MediaInput{PublicID: "p", SecureURL: "u", Format: strPtr("png")},
			want:  model.MediaTypeImage,
		},
		{
			name:  "no hints defaults to image",
			input: &model.MediaInput{PublicID: "p", SecureURL: "u"},
			want:  model.MediaTypeImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inferMediaType(tt.input))
		})
	}
}

func TestMediaReconciler_Reconcile_Defaults(t *testing.T) {
	storage := new(provider_mock.MediaStorage)
	video := new(provider_mock.VideoPlatform)
	r := newTestReconciler(storage, video)

	desired := []*model.MediaInput{
		{PublicID: "first", SecureURL: "https://cdn/first.jpg"},
		{PublicID: "second", SecureURL: "https://cdn/second.jpg"},
		{PublicID: "third", SecureURL: "https://cdn/third.jpg", DisplayOrder: i32Ptr(9), IsFeatured: boolPtr(true)},
	}

	got := r.Reconcile(context.Background(), nil, desired)

	assert.Len(t, got, 3)
	assert.Equal(t, model.ProviderCloudinary, got[0].Provider)
	assert.Equal(t, int32(0), got[0].DisplayOrder)
	assert.Equal(t, int32(1), got[1].DisplayOrder)
	assert.False(t, got[0].IsFeatured)
	assert.Equal(t, int32(9), got[2].DisplayOrder)
	assert.True(t, got[2].IsFeatured)
	storage.AssertNotCalled(t, "Destroy", mock.Anything, mock.Anything, mock.Anything)
}

func TestMediaReconciler_Reconcile_OrderedInferenceGrid(t *testing.T) {
	storage := new(provider_mock.MediaStorage)
	video := new(provider_mock.VideoPlatform)
	r := newTestReconciler(storage, video)

	desired := []*model.MediaInput{
		{PublicID: "clip", SecureURL: "https://cdn/clip", Duration: f64Ptr(12.0)},
		{PublicID: "shot", SecureURL: "https://cdn/shot", Format: strPtr("png")},
	}

	got := r.Reconcile(context.Background(), nil, desired)

	assert.Len(t, got, 2)
	assert.Equal(t, model.MediaTypeVideo, got[0].Type)
	assert.Equal(t, int32(0), got[0].DisplayOrder)
	assert.Equal(t, model.MediaTypeImage, got[1].Type)
	assert.Equal(t, int32(1), got[1].DisplayOrder)
}

func TestMediaReconciler_Reconcile_RetiresMissingRemotes(t *testing.T) {
	storage := new(provider_mock.MediaStorage)
	video := new(provider_mock.VideoPlatform)
	r := newTestReconciler(storage, video)

	existing := []*model.Media{
		{ID: "m1", PublicID: "kept", Type: model.MediaTypeImage, Provider: model.ProviderCloudinary},
		{ID: "m2", PublicID: "gone", Type: model.MediaTypeVideo, Provider: model.ProviderCloudinary},
	}
	desired := []*model.MediaInput{
		{PublicID: "kept", SecureURL: "https://cdn/kept.jpg"},
	}

	storage.On("Destroy", mock.Anything, "gone", "video").Return(nil)

	got := r.Reconcile(context.Background(), existing, desired)

	assert.Len(t, got, 1)
	assert.Equal(t, "kept", got[0].PublicID)
	storage.AssertExpectations(t)
	storage.AssertNotCalled(t, "Destroy", mock.Anything, "kept", mock.Anything)
}

func TestMediaReconciler_Reconcile_ProviderFailureDoesNotBlock(t *testing.T) {
	storage := new(provider_mock.MediaStorage)
	video := new(provider_mock.VideoPlatform)
	r := newTestReconciler(storage, video)

	existing := []*model.Media{
		{ID: "m1", PublicID: "gone", Type: model.MediaTypeImage, Provider: model.ProviderCloudinary},
	}
	desired := []*model.MediaInput{
		{PublicID: "fresh", SecureURL: "https://cdn/fresh.jpg"},
	}

	storage.On("Destroy", mock.Anything, "gone", "image").Return(assert.AnError)

	got := r.Reconcile(context.Background(), existing, desired)

	assert.Len(t, got, 1)
	assert.Equal(t, "fresh", got[0].PublicID)
	storage.AssertExpectations(t)
}

func TestMediaReconciler_Reconcile_ResolvesMuxReference(t *testing.T) {
	storage := new(provider_mock.MediaStorage)
	video := new(provider_mock.VideoPlatform)
	r := newTestReconciler(storage, video)

	video.On("GetUpload", mock.Anything, "upload-1").Return(&provider.UploadDetails{
		ID:      "upload-1",
		Status:  "asset_created",
		AssetID: "asset-1",
	}, nil)
	video.On("GetAsset", mock.Anything, "asset-1").Return(&provider.AssetDetails{
		AssetID:    "asset-1",
		Status:     "ready",
		PlaybackID: "play-1",
		Duration:   f64Ptr(42.5),
	}, nil)
	video.On("StreamURL", "play-1").Return("https://stream.mux.com/play-1.m3u8")
	video.On("ThumbnailURL", "play-1").Return("https://image.mux.com/play-1/thumbnail.jpg")

	desired := []*model.MediaInput{
		{PublicID: "upload-1", SecureURL: "pending", Provider: model.ProviderMux, Duration: f64Ptr(0)},
	}

	got := r.Reconcile(context.Background(), nil, desired)

	assert.Len(t, got, 1)
	assert.Equal(t, "play-1", got[0].PublicID)
	assert.Equal(t, "https://stream.mux.com/play-1.m3u8", got[0].URL)
	assert.Equal(t, "asset-1", got[0].Metadata[model.MetadataAssetKey])
	assert.Equal(t, "https://image.mux.com/play-1/thumbnail.jpg", got[0].Metadata[model.MetadataThumbnailKey])
	assert.Equal(t, 42.5, *got[0].Duration)
	video.AssertExpectations(t)
}

func TestMediaReconciler_Reconcile_KeepsPendingReferenceOnFailure(t *testing.T) {
	storage := new(provider_mock.MediaStorage)
	video := new(provider_mock.VideoPlatform)
	r := newTestReconciler(storage, video)

	video.On("GetUpload", mock.Anything, "upload-1").Return(nil, assert.AnError)

	desired := []*model.MediaInput{
		{PublicID: "upload-1", SecureURL: "pending", Provider: model.ProviderMux},
	}

	got := r.Reconcile(context.Background(), nil, desired)

	assert.Len(t, got, 1)
	assert.Equal(t, "upload-1", got[0].PublicID)
	assert.Equal(t, "pending", got[0].URL)
	video.AssertNotCalled(t, "GetAsset", mock.Anything, mock.Anything)
}

func TestMediaReconciler_DeleteRemote(t *testing.T) {
	tests := []struct {
		name  string
		media []*model.Media
		mocks func(storage *provider_mock.MediaStorage, video *provider_mock.VideoPlatform)
		check func(t *testing.T, storage *provider_mock.MediaStorage, video *provider_mock.VideoPlatform)
	}{
		{
			name: "cloudinary image",
			media: []*model.Media{
				{ID: "m1", PublicID: "pic", Type: model.MediaTypeImage, Provider: model.ProviderCloudinary},
			},
			mocks: func(storage *provider_mock.MediaStorage, video *provider_mock.VideoPlatform) {
				storage.On("Destroy", mock.Anything, "pic", "image").Return(nil)
			},
			check: func(t *testing.T, storage *provider_mock.MediaStorage, video *provider_mock.VideoPlatform) {
				storage.AssertExpectations(t)
			},
		},
		{
			name: "mux asset via metadata",
			media: []*model.Media{
				{ID: "m1", PublicID: "play-1", Type: model.MediaTypeVideo, Provider: model.ProviderMux,
					Metadata: map[string]any{model.MetadataAssetKey: "asset-1"}},
			},
			mocks: func(storage *provider_mock.MediaStorage, video *provider_mock.VideoPlatform) {
				video.On("DeleteAsset", mock.Anything, "asset-1").Return(nil)
			},
			check: func(t *testing.T, storage *provider_mock.MediaStorage, video *provider_mock.VideoPlatform) {
				video.AssertExpectations(t)
			},
		},
		{
			name: "mux without recorded asset is skipped",
			media: []*model.Media{
				{ID: "m1", PublicID: "upload-1", Type: model.MediaTypeVideo, Provider: model.ProviderMux},
			},
			mocks: func(storage *provider_mock.MediaStorage, video *provider_mock.VideoPlatform) {},
			check: func(t *testing.T, storage *provider_mock.MediaStorage, video *provider_mock.VideoPlatform) {
				video.AssertNotCalled(t, "DeleteAsset", mock.Anything, mock.Anything)
				storage.AssertNotCalled(t, "Destroy", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name: "delete failure is swallowed",
			media: []*model.Media{
				{ID: "m1", PublicID: "pic", Type: model.MediaTypeImage, Provider: model.ProviderCloudinary},
			},
			mocks: func(storage *provider_mock.MediaStorage, video *provider_mock.VideoPlatform) {
				storage.On("Destroy", mock.Anything, "pic", "image").Return(assert.AnError)
			},
			check: func(t *testing.T, storage *provider_mock.MediaStorage, video *provider_mock.VideoPlatform) {
				storage.AssertExpectations(t)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := new(provider_mock.MediaStorage)
			video := new(provider_mock.VideoPlatform)
			r := newTestReconciler(storage, video)

			tt.mocks(storage, video)
			r.DeleteRemote(context.Background(), tt.media)
			tt.check(t, storage, video)
		})
	}
}
