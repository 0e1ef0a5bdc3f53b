// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/golfkarta/golfkarta/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
