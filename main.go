/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command spectra-rules parses and checks steno rule files.
package main

import (
	"os"

	"github.com/4hrue2kd83f/spectra-lexer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
