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
	"context"
)

// Package core defines the core interfaces for the GoAnon library.
//
// GoAnon is the transformation contract of a data anonymization engine: concrete
// anonymizers implement Transformer, and dispatchers invoke it for every field of
// every record they process.
//
// This file contains the field-level Transformer capability and the record-level
// seam dispatchers plug field transformers into.

// Transformer is implemented by every concrete anonymizer.
//
// Transform maps the current value of a field to a TransformResult. Implementations
// must not modify globals, must return in finite time, and must report every
// internal failure, including external library errors, as a TransformError.
// Dispatchers may call Transform concurrently across records, so implementations
// should be safe for concurrent use unless documented otherwise.
type Transformer interface {
	Transform(fieldName, fieldValue string, globals Globals) TransformResult
}

// TransformerFunc is a function adapter for the Transformer interface.
// Allows ordinary functions to be used as Transformers.
type TransformerFunc func(fieldName, fieldValue string, globals Globals) TransformResult

// Transform implements the Transformer interface for TransformerFunc.
func (f TransformerFunc) Transform(fieldName, fieldValue string, globals Globals) TransformResult {
	return f(fieldName, fieldValue, globals)
}

// RecordTransformer transforms a whole record.
// The transform package builds RecordTransformers from field Transformers.
type RecordTransformer interface {
	// Transform applies the transformation to a record and returns the result.
	Transform(ctx context.Context, record Record) (Record, error)
}

// RecordTransformFunc is a function adapter for the RecordTransformer interface.
type RecordTransformFunc func(ctx context.Context, record Record) (Record, error)

// Transform implements the RecordTransformer interface for RecordTransformFunc.
func (f RecordTransformFunc) Transform(ctx context.Context, record Record) (Record, error) {
	return f(ctx, record)
}
