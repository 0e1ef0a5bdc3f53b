// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package club

import (
	"errors"
	"fmt"
)

// Common errors returned by the package.
var (
	ErrInvalidCriteria = errors.New("invalid filter criteria")
	ErrUnknownShape    = errors.New("unknown data shape")
)

// SourceError reports a source that could not be fetched or decoded.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
