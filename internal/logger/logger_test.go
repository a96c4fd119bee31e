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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestBuildJSON(t *testing.T) {
	var b bytes.Buffer
	c := DefaultConfig()
	l, err := c.build(zapcore.AddSync(&b))
	require.NoError(t, err)

	l.Info("selected", Int("primes", 57), FieldCmd("select"))
	l.Debug("hidden")
	require.NoError(t, l.Sync())

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 1)
	m := map[string]interface{}{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &m))
	assert.Equal(t, "selected", m["msg"])
	assert.Equal(t, "info", m["level"])
	assert.Equal(t, "hashprimes", m["logger"])
	assert.Equal(t, float64(57), m["primes"])
	assert.Equal(t, "select", m["cmd"])
}

func TestBuildDebugConsole(t *testing.T) {
	var b bytes.Buffer
	c := DefaultConfig()
	c.Debug = true
	c.Level = "debug"
	l, err := c.build(zapcore.AddSync(&b))
	require.NoError(t, err)
	l.Debug("visible")
	require.NoError(t, l.Sync())
	assert.Contains(t, b.String(), "[DEBUG]")
	assert.Contains(t, b.String(), "visible")
}

func TestBuildDiscard(t *testing.T) {
	var b bytes.Buffer
	c := DefaultConfig()
	c.Output = OutputDiscard
	l, err := c.build(zapcore.AddSync(&b))
	require.NoError(t, err)
	l.Error("dropped")
	assert.Equal(t, 0, b.Len())
}

func TestBuildFile(t *testing.T) {
	c := DefaultConfig()
	c.Output = OutputFile
	c.Dir = t.TempDir()
	l, err := c.Build()
	require.NoError(t, err)
	l.Warn("to file", FieldPath("primes.txt"))
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(filepath.Join(c.Dir, "hashprimes.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Contains(t, string(data), "primes.txt")
}

func TestBuildInvalid(t *testing.T) {
	c := DefaultConfig()
	c.Level = "loud"
	_, err := c.Build()
	require.Error(t, err)

	c = DefaultConfig()
	c.Output = "syslog"
	_, err = c.Build()
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	require.NotNil(t, Default())
	Info("no-op logger must not panic")

	var b bytes.Buffer
	c := DefaultConfig()
	l, err := c.build(zapcore.AddSync(&b))
	require.NoError(t, err)
	SetDefault(l)
	defer SetDefault(nil)

	With(String("k", "v")).Warn("child")
	Close()
	assert.Contains(t, b.String(), `"k":"v"`)
	assert.Same(t, l, Default())
}
