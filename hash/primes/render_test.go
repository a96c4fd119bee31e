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

package primes

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tb := Table{1, 3, 5}
	var b strings.Builder
	err := Render(&b, tb, []int64{0, 1, 2})
	require.NoError(t, err)
	want := "[1, 3, 5]\n" +
		"    1,\n" +
		"    3,\n" +
		"    5,\n" +
		"    case 0: index = index % 1; break;\n" +
		"    case 1: index = index % 3; break;\n" +
		"    case 2: index = index % 5; break;\n" +
		"0\n1\n2\n"
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Fatalf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderGo(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Render(&b, Table{1, 3}, nil, FormatGo))
	require.Equal(t, "var Primes = []uint32{\n\t1,\n\t3,\n}\n", b.String())
}

func TestRenderEmptyTable(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Render(&b, nil, nil, FormatList, FormatSwitch))
	require.Equal(t, "[]\n", b.String())
}

func TestRenderUnknownFormat(t *testing.T) {
	var b strings.Builder
	err := Render(&b, Table{1}, nil, Format(42))
	require.Error(t, err)
	assert.Equal(t, "", b.String())
}

type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) { return 0, errors.New("no space left on device") }

func TestRenderWriteError(t *testing.T) {
	err := Render(errWriter{}, Table{1, 3}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no space left on device")
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{FormatList, FormatLiterals, FormatSwitch, FormatBuckets, FormatGo} {
		got, err := ParseFormat(" " + strings.ToUpper(f.String()))
		require.NoError(t, err)
		require.Equal(t, f, got)
	}
	_, err := ParseFormat("yaml")
	require.Error(t, err)
	require.Equal(t, "Format(9)", Format(9).String())
}
