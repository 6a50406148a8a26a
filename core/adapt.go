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
	"errors"
	"reflect"
	"time"
)

// External libraries do not know which field they were asked to process, so every
// adaptation below leaves FieldName and FieldValue empty and carries the external
// error's text as the reason. Callers that know the field can enrich the result
// with TransformError.WithFieldContext.

// Adapt converts any external error into a TransformError with empty identity.
// New external error sources need no dedicated code; Adapt is the uniform pattern.
// A nil error, including a typed nil pointer, yields the zero TransformError.
func Adapt[E error](err E) TransformError {
	if isNilError(err) {
		return TransformError{}
	}
	return TransformError{Reason: err.Error()}
}

func isNilError(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// FromTemplateError adapts an error returned while parsing or executing a
// text/template (including template.ExecError).
func FromTemplateError(err error) TransformError {
	return Adapt(err)
}

// FromDateParseError adapts a failure returned by time.Parse and friends.
func FromDateParseError(err *time.ParseError) TransformError {
	return Adapt(err)
}

// FromError converts err into a TransformError.
//
// If err is, or wraps, a TransformError that value is returned unchanged.
// Any other error is adapted with Adapt. A nil error yields the zero TransformError.
func FromError(err error) TransformError {
	if isNilError(err) {
		return TransformError{}
	}
	var te TransformError
	if errors.As(err, &te) {
		return te
	}
	var pte *TransformError
	if errors.As(err, &pte) {
		if pte == nil {
			return TransformError{}
		}
		return *pte
	}
	return Adapt(err)
}
