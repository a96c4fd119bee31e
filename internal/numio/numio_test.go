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

package numio

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderReadLine(t *testing.T) {
	r := NewReader(strings.NewReader("3 5  7\n\n11\t13\r\n-17"))
	defer r.Release()

	vv, err := r.ReadLine(nil)
	require.NoError(t, err)
	require.Equal(t, []int64{3, 5, 7}, vv)

	vv, err = r.ReadLine(nil)
	require.NoError(t, err)
	require.Empty(t, vv)

	vv, err = r.ReadLine(nil)
	require.NoError(t, err)
	require.Equal(t, []int64{11, 13}, vv)

	vv, err = r.ReadLine(vv[:0])
	require.NoError(t, err)
	require.Equal(t, []int64{-17}, vv)

	_, err = r.ReadLine(nil)
	require.Equal(t, io.EOF, err)
	require.Equal(t, 4, r.Lines())
}

func TestReaderSmallReads(t *testing.T) {
	var b strings.Builder
	want := make([]int64, 0, 5000)
	for i := int64(0); i < 5000; i++ {
		want = append(want, i*7919)
		b.WriteString(strconv.FormatInt(i*7919, 10))
		if i%9 == 0 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}
	r := NewReader(iotest.OneByteReader(strings.NewReader(b.String())))
	defer r.Release()
	got, err := r.ReadAll()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReaderLongToken(t *testing.T) {
	// token bigger than the initial buffer forces a grow
	s := "1 " + strings.Repeat("9", defaultBufSize+10) + " 2"
	r := NewReader(strings.NewReader(s))
	defer r.Release()
	_, err := r.ReadAll()
	require.Error(t, err)

	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
}

func TestReaderBadToken(t *testing.T) {
	r := NewReader(strings.NewReader("3 5\n7 x11 13\n"))
	defer r.Release()
	_, err := r.ReadAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "x11")
}

func TestReaderIOError(t *testing.T) {
	ioErr := errors.New("disk gone")
	r := NewReader(iotest.DataErrReader(io.MultiReader(strings.NewReader("3 5 7"), iotest.ErrReader(ioErr))))
	defer r.Release()
	_, err := r.ReadAll()
	require.Equal(t, ioErr, err)
}

func TestReaderEmpty(t *testing.T) {
	r := NewReader(strings.NewReader(""))
	defer r.Release()
	vv, err := r.ReadAll()
	require.NoError(t, err)
	require.Empty(t, vv)
	require.Equal(t, 0, r.Lines())
}

func TestWriter(t *testing.T) {
	var b bytes.Buffer
	w := NewWriter(&b)
	defer w.Release()
	w.WriteString("[")
	w.WriteInts([]int64{1, 3, -5}, ", ")
	w.WriteString("]\n")
	require.Equal(t, 0, b.Len())
	require.NoError(t, w.Flush())
	require.Equal(t, "[1, 3, -5]\n", b.String())
	require.Equal(t, b.Len(), w.WrittenLen())
}

func TestWriterLarge(t *testing.T) {
	var b bytes.Buffer
	w := NewWriter(&b)
	defer w.Release()
	big := strings.Repeat("x", 3*defaultBufSize)
	for i := 0; i < 3000; i++ {
		w.WriteInt(int64(i))
		w.WriteString(" ")
	}
	w.WriteString(big)
	require.NoError(t, w.Flush())
	require.Equal(t, w.WrittenLen(), b.Len())
	require.True(t, strings.HasSuffix(b.String(), big))
	require.True(t, strings.HasPrefix(b.String(), "0 1 2 3 "))
}

type failWriter struct{ err error }

func (f failWriter) Write(p []byte) (int, error) { return 0, f.err }

func TestWriterSticky(t *testing.T) {
	werr := errors.New("disk full")
	w := NewWriter(failWriter{werr})
	defer w.Release()
	w.WriteString(strings.Repeat("1", 2*defaultBufSize))
	w.WriteString("x")
	w.WriteInt(1)
	require.Equal(t, werr, w.Flush())
	require.Equal(t, werr, w.Flush())
}

func BenchmarkReadAll(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 100000; i++ {
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte('\n')
	}
	s := sb.String()
	b.SetBytes(int64(len(s)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := NewReader(strings.NewReader(s))
		_, _ = r.ReadAll()
		r.Release()
	}
}
