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

package logger

import (
	"strings"

	"go.uber.org/zap"
)

var defaultLogger = zap.NewNop()

func Default() *Logger {
	return defaultLogger
}

// SetDefault replaces the default logger. A nil l installs a no-op logger.
func SetDefault(l *Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	defaultLogger = l
}

func Debug(msg string, fields ...Field) {
	defaultLogger.Debug(msg, fields...)
}

// Info logs a message at InfoLevel. The message includes any fields passed
// at the log site, as well as any fields accumulated on the logger.
func Info(msg string, fields ...Field) {
	defaultLogger.Info(msg, fields...)
}

// Warn logs a message at WarnLevel. The message includes any fields passed
// at the log site, as well as any fields accumulated on the logger.
func Warn(msg string, fields ...Field) {
	defaultLogger.Warn(msg, fields...)
}

// Error logs a message at ErrorLevel. The message includes any fields passed
// at the log site, as well as any fields accumulated on the logger.
func Error(msg string, fields ...Field) {
	defaultLogger.Error(msg, fields...)
}

// With creates a child logger and adds structured context to it.
func With(fields ...Field) *Logger {
	return defaultLogger.With(fields...)
}

// Close flushes buffered log entries.
func Close() {
	_ = defaultLogger.Sync()
}

// FieldErr ...
func FieldErr(err error) Field {
	return zap.Error(err)
}

// FieldCmd names the running subcommand.
func FieldCmd(value string) Field {
	return String("cmd", strings.Replace(value, " ", ".", -1))
}

func FieldPath(value string) Field {
	return String("path", value)
}
