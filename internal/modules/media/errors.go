package media

import "errors"

var (
	ErrEmptyFile       = errors.New("empty file")
	ErrFileTooLarge    = errors.New("file too large")
	ErrInvalidMimeType = errors.New("file type not allowed")
	ErrNotFound        = errors.New("media item not found")
)
