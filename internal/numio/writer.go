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
	"io"
	"strconv"

	"github.com/bytedance/gopkg/lang/mcache"
)

// maxIntLen is the length of "-9223372036854775808".
const maxIntLen = 20

// Writer buffers text output. The first write error is sticky:
// later writes are dropped and Flush returns it.
type Writer struct {
	buf []byte
	wl  int // written len

	wd  io.Writer
	err error
}

// NewWriter returns a new Writer that writes to wd.
func NewWriter(wd io.Writer) *Writer {
	return &Writer{wd: wd}
}

func (w *Writer) acquire(n int) bool {
	if w.err != nil {
		return false
	}
	// fast path, for inline
	if len(w.buf)+n <= cap(w.buf) {
		return true
	}
	return w.acquireSlow(n)
}

func (w *Writer) acquireSlow(n int) bool {
	if w.flushBuf() != nil {
		return false
	}
	if n > cap(w.buf) {
		var ncap int
		for ncap = defaultBufSize; ncap < n; ncap *= 2 {
		}
		if cap(w.buf) > 0 {
			mcache.Free(w.buf)
		}
		w.buf = mcache.Malloc(0, ncap)
	}
	return true
}

func (w *Writer) flushBuf() error {
	if len(w.buf) == 0 {
		return nil
	}
	_, err := w.wd.Write(w.buf)
	w.buf = w.buf[:0]
	if err != nil {
		w.err = err
	}
	return err
}

// WriteInt appends v in base 10.
func (w *Writer) WriteInt(v int64) {
	if !w.acquire(maxIntLen) {
		return
	}
	n := len(w.buf)
	w.buf = strconv.AppendInt(w.buf, v, 10)
	w.wl += len(w.buf) - n
}

// WriteInts appends vv joined by sep.
func (w *Writer) WriteInts(vv []int64, sep string) {
	for i, v := range vv {
		if i > 0 {
			w.WriteString(sep)
		}
		w.WriteInt(v)
	}
}

// WriteString appends s.
func (w *Writer) WriteString(s string) {
	if !w.acquire(len(s)) {
		return
	}
	w.buf = append(w.buf, s...)
	w.wl += len(s)
}

// WrittenLen returns the number of bytes accepted so far, flushed or not.
func (w *Writer) WrittenLen() int {
	return w.wl
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	return w.flushBuf()
}

// Release frees the buffer without flushing it.
func (w *Writer) Release() {
	if cap(w.buf) > 0 {
		mcache.Free(w.buf)
	}
	w.buf = nil
}
