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

package transform

import (
	"context"
	"sort"

	"github.com/aaronlmathis/goanon/core"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// Package transform adapts field-level core.Transformer implementations to whole records.
//
// A dispatcher that holds a Record and knows which Transformer applies to which
// field uses Field or Fields to run them without knowing their concrete types.
// Both return core.RecordTransformer implementations.

// FieldOptions configures how field transformers are applied to a record.
type FieldOptions struct {
	Globals      core.Globals
	Strategy     core.ErrorStrategy
	ErrorHandler core.ErrorHandler
	Logger       log.FieldLogger
}

// FieldOption allows functional customization of FieldOptions.
type FieldOption func(*FieldOptions)

// WithGlobals sets the shared context passed to every transformer invocation.
func WithGlobals(globals core.Globals) FieldOption {
	return func(o *FieldOptions) { o.Globals = globals }
}

// WithErrorStrategy sets how field failures are handled.
func WithErrorStrategy(strategy core.ErrorStrategy) FieldOption {
	return func(o *FieldOptions) { o.Strategy = strategy }
}

// WithErrorHandler sets a handler consulted for every failure under SkipErrors and CollectErrors.
func WithErrorHandler(handler core.ErrorHandler) FieldOption {
	return func(o *FieldOptions) { o.ErrorHandler = handler }
}

// WithLogger overrides the logrus standard logger.
// Failures are logged at Debug with the field name and strategy only; reasons
// often quote the input value and are left to the returned error.
func WithLogger(logger log.FieldLogger) FieldOption {
	return func(o *FieldOptions) { o.Logger = logger }
}

func newFieldOptions(options []FieldOption) FieldOptions {
	opts := FieldOptions{
		Strategy: core.FailFast,
		Logger:   log.StandardLogger(),
	}
	for _, opt := range options {
		opt(&opts)
	}
	return opts
}

// Field creates a transformer that applies t to a single field of each record.
func Field(name string, t core.Transformer, options ...FieldOption) core.RecordTransformer {
	return Fields(map[string]core.Transformer{name: t}, options...)
}

// Fields creates a transformer that applies each transformer to the field it is keyed by.
//
// Fields are visited in name order. For every field present in the record:
//   - a present result replaces the value with the replacement text,
//   - an absent result sets the value to nil,
//   - a failure leaves the value unchanged and is handled by the error strategy.
//
// Fields missing from the record are left alone; nil values are transformed as "".
// The input record is not modified. Under CollectErrors every field is attempted
// and the transformed record is returned together with all failures combined by
// multierr; use multierr.Errors to list them.
func Fields(transformers map[string]core.Transformer, options ...FieldOption) core.RecordTransformer {
	opts := newFieldOptions(options)
	transformers = lo.Assign(transformers)
	names := lo.Keys(transformers)
	sort.Strings(names)

	return core.RecordTransformFunc(func(ctx context.Context, record core.Record) (core.Record, error) {
		result := make(core.Record, len(record))
		for k, v := range record {
			result[k] = v
		}

		var errs error
		for _, name := range names {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			value, exists := record[name]
			if !exists {
				continue
			}

			text := core.Text(value)
			res := transformers[name].Transform(name, text, opts.Globals)

			failure, failed := res.Failure()
			if !failed {
				if replacement, ok := res.Value(); ok {
					result[name] = replacement
				} else {
					result[name] = nil
				}
				continue
			}

			failure = failure.WithFieldContext(name, text)
			opts.Logger.WithFields(log.Fields{
				"field":    failure.FieldName,
				"strategy": opts.Strategy.String(),
			}).Debug("field transformation failed")

			switch opts.Strategy {
			case core.SkipErrors:
				if err := opts.handle(ctx, record, failure); err != nil {
					return nil, err
				}
			case core.CollectErrors:
				if err := opts.handle(ctx, record, failure); err != nil {
					return nil, err
				}
				errs = multierr.Append(errs, failure)
			default:
				return nil, failure
			}
		}

		if errs != nil {
			return result, errs
		}
		return result, nil
	})
}

func (o FieldOptions) handle(ctx context.Context, record core.Record, err core.TransformError) error {
	if o.ErrorHandler == nil {
		return nil
	}
	return o.ErrorHandler.HandleError(ctx, record, err)
}
