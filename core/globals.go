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
	"io"

	"github.com/goccy/go-json"
)

// Globals is the shared, read-only context a dispatcher supplies to every
// transformer invocation. Values are JSON-shaped: nil, bool, json.Number, string,
// []interface{} or map[string]interface{}.
//
// A nil Globals means no shared context is available for the invocation.
// Transformers must not modify Globals.
type Globals map[string]interface{}

// DecodeGlobals reads a single JSON object from r.
// Numbers are decoded as json.Number so integer values stay exact.
// A JSON null yields nil Globals. Anything after the object is rejected.
func DecodeGlobals(r io.Reader) (Globals, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var g Globals
	if err := dec.Decode(&g); err != nil {
		return nil, fmt.Errorf("failed to decode globals: %w", err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode globals: unexpected data after JSON object")
	}
	return g, nil
}

// Get returns the value stored under key. It is safe to call on a nil Globals.
func (g Globals) Get(key string) (interface{}, bool) {
	if g == nil {
		return nil, false
	}
	v, ok := g[key]
	return v, ok
}
