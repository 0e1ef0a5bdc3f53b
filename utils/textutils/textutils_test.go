// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package textutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello World", "hello world"},
		{"ÅRE", "åre"},
		{"Göteborg", "göteborg"},
		{"STRÖMSTAD", "strömstad"},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, Fold(tc.input))
		})
	}
}

func TestSprintf(t *testing.T) {
	assert.Equal(t, "3 träffar", Sprintf("%d träffar", 3))
	assert.Equal(t, "1\u00a0234 av 1\u00a0234\u00a0567", Sprintf("%d av %d", 1234, 1234567))
}
