/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrManifestNotFound is returned when a manifest file does not exist
	ErrManifestNotFound = errors.New("asset manifest not found")

	// ErrManifestInvalid is returned when a manifest file cannot be decoded
	ErrManifestInvalid = errors.New("asset manifest invalid")
)

// ManifestNotFoundError reports a missing manifest file for a handle
type ManifestNotFoundError struct {
	Handle string
	Path   string
}

func (e *ManifestNotFoundError) Error() string {
	return fmt.Sprintf("manifest for %q not found at %s", e.Handle, e.Path)
}

func (e *ManifestNotFoundError) Is(target error) bool {
	return target == ErrManifestNotFound
}

// ManifestInvalidError reports a manifest file that exists but cannot be decoded
type ManifestInvalidError struct {
	Handle string
	Path   string
	Err    error
}

func (e *ManifestInvalidError) Error() string {
	return fmt.Sprintf("manifest for %q at %s is invalid: %v", e.Handle, e.Path, e.Err)
}

func (e *ManifestInvalidError) Unwrap() error {
	return e.Err
}

func (e *ManifestInvalidError) Is(target error) bool {
	return target == ErrManifestInvalid
}

// Helper functions for creating errors

// NewManifestNotFound creates a new ManifestNotFoundError
func NewManifestNotFound(handle, path string) error {
	return &ManifestNotFoundError{Handle: handle, Path: path}
}

// NewManifestInvalid creates a new ManifestInvalidError
func NewManifestInvalid(handle, path string, err error) error {
	return &ManifestInvalidError{Handle: handle, Path: path, Err: err}
}

// IsManifestNotFound checks if an error is a manifest not found error
func IsManifestNotFound(err error) bool {
	return errors.Is(err, ErrManifestNotFound)
}

// IsManifestInvalid checks if an error is a manifest invalid error
func IsManifestInvalid(err error) bool {
	return errors.Is(err, ErrManifestInvalid)
}
