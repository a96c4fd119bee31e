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
	"path/filepath"

	"go.uber.org/zap/zapcore"
)

const (
	OutputStdout  = "stdout" // the process' stderr, see newLogger
	OutputFile    = "file"
	OutputDiscard = "discard"
)

type Config struct {
	// Output is one of stdout, file, discard
	Output string `yaml:"output" json:"output" toml:"output"`
	// Dir and Name locate the log file when Output is file
	Dir  string `yaml:"dir" json:"dir" toml:"dir"`
	Name string `yaml:"name" json:"name" toml:"name"`
	// Level is a zap level name
	Level      string `yaml:"level" json:"level" toml:"level"`
	AddCaller  bool   `yaml:"add_caller" json:"add_caller" toml:"add_caller"`
	CallerSkip int    `yaml:"caller_skip" json:"caller_skip" toml:"caller_skip"`
	// rotation, in MB, days and files
	MaxSize   int `yaml:"max_size" json:"max_size" toml:"max_size"`
	MaxAge    int `yaml:"max_age" json:"max_age" toml:"max_age"`
	MaxBackup int `yaml:"max_backup" json:"max_backup" toml:"max_backup"`
	// Debug switches to the colored console encoder
	Debug bool `yaml:"debug" json:"debug" toml:"debug"`
}

func (c *Config) Filename() string {
	return filepath.Join(c.Dir, c.Name+".log")
}

// Build creates a logger from c.
func (c *Config) Build() (*Logger, error) {
	return c.build(stderr())
}

func (c *Config) build(ws zapcore.WriteSyncer) (*Logger, error) {
	return newLogger(c, ws)
}

func DefaultConfig() Config {
	return Config{
		Output:    OutputStdout,
		Dir:       "./logs/",
		Name:      "hashprimes",
		Level:     "info",
		AddCaller: false,
		MaxSize:   100, // 100M
		MaxAge:    7,   // 7 days
		MaxBackup: 3,
	}
}
