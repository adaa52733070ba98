// Package export coordinates a single export attempt: optional translation,
// off-screen rendering, rasterization and PDF encoding.
package export

import (
	"errors"
	"fmt"
)

// ErrExportInFlight is returned when an export is requested while another
// one is still running. The attempt is rejected, never queued.
var ErrExportInFlight = errors.New("an export is already in progress")

// RenderTargetMissingError indicates the off-screen render surface was not
// available when the export began.
type RenderTargetMissingError struct {
	Message string
}

func (e *RenderTargetMissingError) Error() string {
	return fmt.Sprintf("render target missing: %s", e.Message)
}

// EncodingError represents a rasterization or PDF encoding failure.
type EncodingError struct {
	Message string
	Cause   error
}

func (e *EncodingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("encoding failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("encoding failed: %s", e.Message)
}

func (e *EncodingError) Unwrap() error {
	return e.Cause
}
