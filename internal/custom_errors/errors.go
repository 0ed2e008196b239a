package custom_errors

import "errors"

var (
	// Not found
	ErrPostNotFound     = errors.New("post not found")
	ErrMediaNotFound    = errors.New("media not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrBookingNotFound  = errors.New("booking not found")

	// Validation
	ErrValidationFailed     = errors.New("validation failed")
	ErrBookingTimeOrder     = errors.New("end time must be after start time")
	ErrBookingSlotTaken     = errors.New("time slot is already booked")
	ErrCategoryAlreadyExist = errors.New("category with this name already exists")

	// Auth
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidToken       = errors.New("could not validate credentials")
	ErrAuthNotConfigured  = errors.New("admin credentials not configured")

	// Storage
	ErrDatabaseQuery      = errors.New("database query error")
	ErrNoUpdateRows       = errors.New("no fields to update")
	ErrMediaAttachFailed  = errors.New("failed to attach media")
	ErrMediaDetachFailed  = errors.New("failed to detach media")
	ErrMediaQueryFailed   = errors.New("failed to query media")
	ErrCategoryLinkFailed = errors.New("failed to link categories")

	// Providers
	ErrProviderNotConfigured = errors.New("upload provider not configured")
	ErrProviderRequest       = errors.New("upload provider request failed")

	// Cache
	ErrCacheMiss = errors.New("cache miss")
)
