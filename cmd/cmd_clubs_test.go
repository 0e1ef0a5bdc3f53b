// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFit(t *testing.T) {
	assert.Equal(t, "Åsa  ", fit("Åsa", 5))
	assert.Equal(t, "Göteborgs…", fit("Göteborgs Golfklubb", 10))
	assert.Equal(t, "exakt", fit("exakt", 5))
}
