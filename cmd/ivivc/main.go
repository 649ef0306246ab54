// SPDX-License-Identifier: MIT
// Package: ivivc/cmd/ivivc
//
// main.go — ivivc binary entry point.

package main

import "github.com/katalvlaran/ivivc/internal/cli"

func main() {
	cli.Execute()
}
