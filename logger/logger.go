// logger
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
	"fmt"
	"os"
	"strconv"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var OutputMode *string // verbose, model or quiet
var User *string       // name of this user running this run
var Seed *int64        // Random number generator seed

// exit is replaced by the tests
var exit = os.Exit

var (
	mu      sync.Mutex
	loggers = map[string]*zap.Logger{} // by log file name
)

// Mode is *OutputMode, or quiet before the flags are parsed
func Mode() string {
	if OutputMode == nil {
		return "quiet"
	}
	return *OutputMode
}

func Verbose() bool { return Mode() == "verbose" }

// FileName is the run log for the current seed
func FileName() string {
	var seed int64
	if Seed != nil {
		seed = *Seed
	}
	return "log.flockDemog." + strconv.FormatInt(seed, 10)
}

func fileLogger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()

	name := FileName()
	if l, ok := loggers[name]; ok {
		return l
	}

	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{name}
	config.ErrorOutputPaths = []string{"stderr"}
	config.Sampling = nil

	l, err := config.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		l = zap.NewNop()
	}
	l = l.Named("flockDemog")
	if User != nil && *User != "" {
		l = l.With(zap.String("user", *User))
	}
	loggers[name] = l
	return l
}

// LogWriter appends message to the run log
func LogWriter(message string, fields ...zap.Field) {
	fileLogger().Info(message, fields...)
}

// LogWriterFatal logs message, echoes it in verbose mode and exits
func LogWriterFatal(message string, fields ...zap.Field) {
	l := fileLogger()
	l.Error(message, fields...)
	_ = l.Sync()

	if Verbose() {
		fmt.Println(message)
	}
	exit(1)
}

// Sync flushes every open run log
func Sync() {
	mu.Lock()
	defer mu.Unlock()
	for _, l := range loggers {
		_ = l.Sync()
	}
}
