// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package conform

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/davecgh/go-spew/spew"
)

var (
	// Debug is true when the CONFORM_DEBUG env var is not empty.
	Debug = os.Getenv("CONFORM_DEBUG") != ""

	// validateLogger is a debug logger for this package
	validateLogger *log.Logger
)

func init() {
	debugOptions()
}

func debugOptions() {
	validateLogger = log.New(os.Stdout, "conform:", log.LstdFlags)
}

func debugLog(msg string, args ...interface{}) {
	// A private, trivial trace logger, grounded at the caller's line
	if Debug {
		_, file1, pos1, _ := runtime.Caller(1)
		validateLogger.Printf("%s:%d: %s", filepath.Base(file1), pos1, fmt.Sprintf(msg, args...))
	}
}

// debugDump spells out a whole value when tracing. Kept apart from debugLog:
// dumps are multi-line and costly to render.
func debugDump(label string, value interface{}) {
	if Debug {
		_, file1, pos1, _ := runtime.Caller(1)
		validateLogger.Printf("%s:%d: %s:\n%s", filepath.Base(file1), pos1, label, spew.Sdump(value))
	}
}
