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

import (
	"fmt"

	"github.com/spf13/cast"
)

// Package core defines the core types for the GoAnon library.
//
// This file contains the transformation result type, its constructors, and the
// text coercion policy shared by every constructor.

// Record represents a single data record handed to a dispatcher.
// Each record is a map from field names to values, supporting heterogeneous data.
type Record map[string]interface{}

// TransformResult is the outcome of transforming one field value.
//
// A result is exactly one of:
//   - present: success carrying a replacement text (which may be empty),
//   - absent: success without a replacement, read by dispatchers as null / no value,
//   - failed: a TransformError.
//
// The zero value is the absent result. TransformResult is comparable.
type TransformResult struct {
	value   string
	present bool
	failed  bool
	failure TransformError
}

// Present returns a successful result whose replacement is the textual form of value.
func Present[T any](value T) TransformResult {
	return TransformResult{value: Text(value), present: true}
}

// Absent returns a successful result carrying no replacement.
func Absent() TransformResult {
	return TransformResult{}
}

// Error returns a failed result carrying a TransformError built from the textual
// forms of fieldName, fieldValue and reason.
func Error(fieldName, fieldValue, reason any) TransformResult {
	return TransformResult{failed: true, failure: NewTransformError(fieldName, fieldValue, reason)}
}

// Failure returns a failed result for err, converted with FromError.
// It lets transformers return external library errors directly:
//
//	out, err := time.Parse(layout, value)
//	if err != nil {
//		return core.Failure(err)
//	}
func Failure(err error) TransformResult {
	return TransformResult{failed: true, failure: FromError(err)}
}

// Value returns the replacement and true for a present result.
// It returns "" and false for absent and failed results.
func (r TransformResult) Value() (string, bool) {
	return r.value, r.present
}

// Replacement returns the replacement text, or nil when there is none.
func (r TransformResult) Replacement() *string {
	if !r.present {
		return nil
	}
	v := r.value
	return &v
}

// Failure returns the TransformError and true for a failed result.
func (r TransformResult) Failure() (TransformError, bool) {
	return r.failure, r.failed
}

// Err returns the TransformError of a failed result, or nil on success.
func (r TransformResult) Err() error {
	if !r.failed {
		return nil
	}
	return r.failure
}

// IsPresent reports whether r is a success carrying a replacement.
func (r TransformResult) IsPresent() bool { return r.present }

// IsAbsent reports whether r is a success without a replacement.
func (r TransformResult) IsAbsent() bool { return !r.present && !r.failed }

// Failed reports whether r carries a TransformError.
func (r TransformResult) Failed() bool { return r.failed }

// String renders r for debugging output.
func (r TransformResult) String() string {
	switch {
	case r.failed:
		return r.failure.Error()
	case r.present:
		return fmt.Sprintf("present(%q)", r.value)
	default:
		return "absent"
	}
}

// Text returns the textual form of v.
// Scalars, byte slices, fmt.Stringer and error values are rendered by cast;
// anything else falls back to fmt.Sprint. nil renders as "".
func Text(v any) string {
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}
