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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upperName string

func (u upperName) String() string { return "NAME:" + string(u) }

type point struct{ X, Y int }

func TestPresent(t *testing.T) {
	tests := []struct {
		name     string
		result   TransformResult
		expected string
	}{
		{name: "string", result: Present("alice"), expected: "alice"},
		{name: "int", result: Present(42), expected: "42"},
		{name: "empty string", result: Present(""), expected: ""},
		{name: "float", result: Present(3.5), expected: "3.5"},
		{name: "bool", result: Present(true), expected: "true"},
		{name: "bytes", result: Present([]byte("raw")), expected: "raw"},
		{name: "stringer", result: Present(upperName("bob")), expected: "NAME:bob"},
		{name: "struct falls back to fmt", result: Present(point{1, 2}), expected: "{1 2}"},
		{name: "nil", result: Present[any](nil), expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := tt.result.Value()
			require.True(t, ok)
			assert.Equal(t, tt.expected, value)
			assert.True(t, tt.result.IsPresent())
			assert.False(t, tt.result.IsAbsent())
			assert.False(t, tt.result.Failed())
			assert.NoError(t, tt.result.Err())

			replacement := tt.result.Replacement()
			require.NotNil(t, replacement)
			assert.Equal(t, tt.expected, *replacement)
		})
	}
}

func TestEmptyPresentIsNotAbsent(t *testing.T) {
	empty := Present("")
	absent := Absent()

	assert.NotEqual(t, empty, absent)
	assert.True(t, empty.IsPresent())
	assert.True(t, absent.IsAbsent())

	_, ok := absent.Value()
	assert.False(t, ok)
	assert.Nil(t, absent.Replacement())
	assert.NotNil(t, empty.Replacement())
}

func TestAbsentIsZeroValue(t *testing.T) {
	var zero TransformResult
	assert.Equal(t, Absent(), zero)
	assert.Nil(t, zero.Err())
	assert.Equal(t, "absent", zero.String())
}

func TestError(t *testing.T) {
	res := Error("email", "a@b", "invalid domain")

	require.True(t, res.Failed())
	assert.False(t, res.IsPresent())
	assert.False(t, res.IsAbsent())
	assert.Nil(t, res.Replacement())

	failure, ok := res.Failure()
	require.True(t, ok)
	assert.Equal(t, TransformError{FieldName: "email", FieldValue: "a@b", Reason: "invalid domain"}, failure)

	err := res.Err()
	require.Error(t, err)
	assert.Equal(t, "failed to transform field: invalid domain", err.Error())

	var te TransformError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, failure, te)
}

func TestErrorCoercesEveryArgument(t *testing.T) {
	res := Error(upperName("id"), 7, fmt.Errorf("boom"))

	failure, ok := res.Failure()
	require.True(t, ok)
	assert.Equal(t, "NAME:id", failure.FieldName)
	assert.Equal(t, "7", failure.FieldValue)
	assert.Equal(t, "boom", failure.Reason)
}

func TestFailure(t *testing.T) {
	t.Run("external error", func(t *testing.T) {
		failure, ok := Failure(errors.New("dictionary unavailable")).Failure()
		require.True(t, ok)
		assert.Equal(t, TransformError{Reason: "dictionary unavailable"}, failure)
	})

	t.Run("typed nil error", func(t *testing.T) {
		var missing *TransformError
		var res TransformResult
		require.NotPanics(t, func() { res = Failure(missing) })
		failure, ok := res.Failure()
		require.True(t, ok)
		assert.Equal(t, TransformError{}, failure)
	})

	t.Run("wrapped transform error kept", func(t *testing.T) {
		orig := NewTransformError("phone", "555", "too short")
		failure, ok := Failure(fmt.Errorf("lookup: %w", orig)).Failure()
		require.True(t, ok)
		assert.Equal(t, orig, failure)
	})
}

func TestTransformResultString(t *testing.T) {
	assert.Equal(t, `present("x")`, Present("x").String())
	assert.Equal(t, "failed to transform field: bad", Error("a", "b", "bad").String())
}
