/*
 * Copyright 2024 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package logger is a thin zap wrapper with a process wide default logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	Field  = zap.Field
	Logger = zap.Logger
	Option = zap.Option
)

var (
	String   = zap.String
	Strings  = zap.Strings
	Any      = zap.Any
	Int      = zap.Int
	Int64    = zap.Int64
	Int64s   = zap.Int64s
	Float64  = zap.Float64
	Bool     = zap.Bool
	Duration = zap.Duration
)

// newLogger builds a zap logger writing to ws. ws is used for the
// "stdout" output and is normally os.Stderr so that command output
// on stdout stays clean.
func newLogger(c *Config, ws zapcore.WriteSyncer) (*zap.Logger, error) {
	lv := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if err := lv.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, errors.Wrap(err, "logger: level")
	}

	zapOptions := make([]zap.Option, 0, 3)
	zapOptions = append(zapOptions, zap.AddStacktrace(zap.DPanicLevel))
	if c.AddCaller {
		zapOptions = append(zapOptions, zap.AddCaller(), zap.AddCallerSkip(c.CallerSkip))
	}

	switch c.Output {
	case OutputDiscard:
		ws = zapcore.AddSync(io.Discard)
	case OutputFile:
		ws = zapcore.AddSync(newRotate(c))
	case OutputStdout, "":
	default:
		return nil, errors.Errorf("logger: unknown output %q", c.Output)
	}

	encoderConfig := defaultZapConfig()
	var enc zapcore.Encoder
	if c.Debug {
		encoderConfig.EncodeLevel = debugEncodeLevel
		enc = zapcore.NewConsoleEncoder(*encoderConfig)
	} else {
		enc = zapcore.NewJSONEncoder(*encoderConfig)
	}
	core := zapcore.NewCore(enc, ws, lv)
	return zap.New(core, zapOptions...).Named(c.Name), nil
}

func stderr() zapcore.WriteSyncer {
	return zapcore.Lock(os.Stderr)
}

func defaultZapConfig() *zapcore.EncoderConfig {
	return &zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     timeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func debugEncodeLevel(lv zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	colorize := color.RedString
	switch lv {
	case zapcore.DebugLevel:
		colorize = color.BlueString
	case zapcore.InfoLevel:
		colorize = color.GreenString
	case zapcore.WarnLevel:
		colorize = color.YellowString
	}
	enc.AppendString(colorize(fmt.Sprintf("[%s]", lv.CapitalString())))
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Local().Format("2006-01-02 15:04:05.000"))
}
