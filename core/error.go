//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Copyright (C) 2025 Aaron Mathis aaron.mathis@gmail.com
//
// This file is part of GoAnon.
//
// GoAnon is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GoAnon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GoAnon. If not, see https://www.gnu.org/licenses/.

package core

import "context"

// Package core defines the error handling types for the GoAnon library.
//
// This file contains the unified transformation error, error handling interfaces,
// strategies, and function adapters.

// TransformError is the single failure type produced by field transformations.
//
// FieldName and FieldValue identify the failure site when it is known. Both are
// empty when the failure originated in an external library that had no knowledge
// of the field. Reason is a free-form, human-readable description.
//
// TransformError is a comparable value type: two errors are equal exactly when
// all three fields are equal, and assigning one copies it.
type TransformError struct {
	FieldName  string
	FieldValue string
	Reason     string
}

// NewTransformError builds a TransformError from any three values with a textual form.
// Conversion to text happens immediately, see Text.
func NewTransformError(fieldName, fieldValue, reason any) TransformError {
	return TransformError{
		FieldName:  Text(fieldName),
		FieldValue: Text(fieldValue),
		Reason:     Text(reason),
	}
}

// Error implements the error interface.
// Only the reason is rendered; the field identity must be inspected programmatically.
func (e TransformError) Error() string {
	return "failed to transform field: " + e.Reason
}

// WithFieldContext returns a copy of e with empty identity fields set to name and value.
// Identity recorded at the failure site is never overwritten.
func (e TransformError) WithFieldContext(name, value string) TransformError {
	if e.FieldName == "" {
		e.FieldName = name
	}
	if e.FieldValue == "" {
		e.FieldValue = value
	}
	return e
}

// ErrorHandler defines how errors are handled during processing.
// Custom error handlers can be used to log, collect, or transform errors.
type ErrorHandler interface {
	// HandleError processes an error that occurred during transformation.
	// Returning a non-nil error will stop processing; returning nil will continue.
	HandleError(ctx context.Context, record Record, err error) error
}

// ErrorStrategy defines how to handle transformation errors.
type ErrorStrategy int

const (
	// FailFast stops processing on the first error encountered.
	FailFast ErrorStrategy = iota
	// SkipErrors continues processing, leaving failed fields unchanged.
	SkipErrors
	// CollectErrors continues processing, collecting all errors for later inspection.
	CollectErrors
)

// String returns the strategy name.
func (s ErrorStrategy) String() string {
	switch s {
	case FailFast:
		return "fail_fast"
	case SkipErrors:
		return "skip_errors"
	case CollectErrors:
		return "collect_errors"
	default:
		return "unknown"
	}
}

// ErrorHandlerFunc is a function adapter for the ErrorHandler interface.
// Allows ordinary functions to be used as error handlers.
type ErrorHandlerFunc func(ctx context.Context, record Record, err error) error

// HandleError implements the ErrorHandler interface for ErrorHandlerFunc.
func (f ErrorHandlerFunc) HandleError(ctx context.Context, record Record, err error) error {
	return f(ctx, record, err)
}
