package apperrors

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrNoCurrentUser = errors.New("no current user selected")
	ErrStorageQuota  = errors.New("local store is full")
	ErrPhotoLimit    = errors.New("photo limit reached")
)
