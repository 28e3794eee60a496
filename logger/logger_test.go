// logger project logger_test.go
/*
Copyright 2021 Bruce Golden and Matt Spangler

Permission is hereby granted, free of charge, to any person obtaining a copy of
this software and associated documentation files (the "Software"), to deal in
the Software without restriction, including without limitation the rights to
use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
of the Software, and to permit persons to whom the Software is furnished to do
so, subject to the following conditions:
The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/
package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func inTempDir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLogWriterAppendsToSeedFile(t *testing.T) {
	inTempDir(t)
	seed := int64(9876)
	mode := "model"
	Seed, OutputMode = &seed, &mode

	LogWriter("first", zap.Int("herd", 1))
	LogWriter("second")
	Sync()

	b, err := os.ReadFile(filepath.Join(".", "log.flockDemog.9876"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "first")
	assert.Contains(t, string(b), "herd")
	assert.Contains(t, string(b), "second")
}

func TestLogWriterFatalExits(t *testing.T) {
	inTempDir(t)
	seed := int64(5432)
	mode := "quiet"
	Seed, OutputMode = &seed, &mode

	code := -1
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = os.Exit })

	LogWriterFatal("bad parameter")
	assert.Equal(t, 1, code)

	b, err := os.ReadFile("log.flockDemog.5432")
	require.NoError(t, err)
	assert.Contains(t, string(b), "bad parameter")
}

func TestModeDefaults(t *testing.T) {
	OutputMode = nil
	assert.Equal(t, "quiet", Mode())
	assert.False(t, Verbose())
}
