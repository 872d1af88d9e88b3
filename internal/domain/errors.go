package domain

import "errors"

var (
	// ErrInvalidCommand marks malformed or unrecognized inbound data. It is
	// reported to the caller at ingestion time and never enqueued.
	ErrInvalidCommand = errors.New("invalid command")

	// ErrAssetNotFound means a referenced static or custom asset is missing on
	// disk. The command is dropped without touching the active session.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrNoBackendAvailable means every player backend failed to launch
	ErrNoBackendAvailable = errors.New("no backend available")

	// ErrQueueFull means the command queue reached its capacity bound
	ErrQueueFull = errors.New("command queue full")
)
