// SPDX-FileCopyrightText: Copyright 2026 statline maintainers
// SPDX-License-Identifier: Apache-2.0

package conform

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	logMutex = &sync.Mutex{}
)

func TestDebug(t *testing.T) {
	tmpFile, _ := os.CreateTemp("", "debug-test")
	tmpName := tmpFile.Name()
	defer func() {
		Debug = false
		// mutex for -race
		logMutex.Unlock()
		os.Remove(tmpName)
	}()

	// mutex for -race
	logMutex.Lock()
	Debug = true
	debugOptions()
	defer func() {
		validateLogger.SetOutput(os.Stdout)
	}()

	validateLogger.SetOutput(tmpFile)

	debugLog("A debug")
	debugDump("a value", map[string]interface{}{"name": "Tim Duncan"})
	Debug = false
	tmpFile.Close()

	flushed, _ := os.Open(tmpName)
	buf := make([]byte, 2000)
	_, _ = flushed.Read(buf)
	validateLogger.SetOutput(os.Stdout)
	assert.Contains(t, string(buf), "A debug")
	assert.Contains(t, string(buf), "Tim Duncan")
}
