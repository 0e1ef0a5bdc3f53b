// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

// Package textutils holds text helpers shared by the CLI and the map session.
package textutils

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fold returns s case folded for case-insensitive comparison. Diacritics are
// kept: å, ä and ö are letters of their own in Swedish.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Sprintf formats according to Swedish conventions.
func Sprintf(format string, args ...any) string {
	return message.NewPrinter(language.Swedish).Sprintf(format, args...)
}

