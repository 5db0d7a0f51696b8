// /*
// Copyright 2024 The Grove Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
// */

package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel is the minimum severity a logger emits.
type LogLevel string

const (
	// DebugLevel enables info logs and logs at verbosity 1.
	DebugLevel LogLevel = "debug"
	// InfoLevel is the default log level.
	InfoLevel LogLevel = "info"
	// ErrorLevel only emits errors.
	ErrorLevel LogLevel = "error"
)

// LogFormat is the encoding of log entries.
type LogFormat string

const (
	// LogFormatJSON encodes every entry as a JSON object.
	LogFormatJSON LogFormat = "json"
	// LogFormatText encodes entries in a human-readable console format.
	LogFormatText LogFormat = "text"
)

// AllLogLevels lists the accepted log levels.
var AllLogLevels = []LogLevel{DebugLevel, InfoLevel, ErrorLevel}

// AllLogFormats lists the accepted log formats.
var AllLogFormats = []LogFormat{LogFormatJSON, LogFormatText}

// MustNewLogger creates a logger writing to stderr and panics if the level or format is not supported.
func MustNewLogger(devMode bool, level LogLevel, format LogFormat) logr.Logger {
	logger, err := NewLogger(os.Stderr, devMode, level, format)
	if err != nil {
		panic(err)
	}
	return logger
}

// NewLogger creates a zap backed logr.Logger writing to out.
func NewLogger(out io.Writer, devMode bool, level LogLevel, format LogFormat) (logr.Logger, error) {
	zapLevel, err := toZapLevel(level)
	if err != nil {
		return logr.Discard(), err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	if devMode {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	}
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch format {
	case LogFormatJSON:
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	case LogFormatText:
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	default:
		return logr.Discard(), fmt.Errorf("unsupported log format %q", format)
	}

	var opts []zap.Option
	if devMode {
		opts = append(opts, zap.Development(), zap.AddCaller())
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(out), zapLevel)
	return zapr.NewLogger(zap.New(core, opts...)), nil
}

func toZapLevel(level LogLevel) (zapcore.Level, error) {
	switch level {
	case DebugLevel:
		return zapcore.DebugLevel, nil
	case InfoLevel:
		return zapcore.InfoLevel, nil
	case ErrorLevel:
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unsupported log level %q", level)
	}
}
