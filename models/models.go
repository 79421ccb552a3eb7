// Package models holds the board's persisted entities and the error kinds
// shared by the storage and HTTP layers.
package models

import "errors"

var (
	// ErrValidation means a submission is missing its handle or message.
	ErrValidation = errors.New("handle and message are required")

	// ErrStorageUnavailable means the backing file could not be opened or written.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrSchemaMismatch means the backing file holds a messages table of the wrong shape.
	ErrSchemaMismatch = errors.New("messages table does not match the expected schema")
)
