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

// Package numio reads and writes whitespace separated integer lists
// in bounded memory.
package numio

import (
	"io"
	"strconv"

	"github.com/bytedance/gopkg/lang/mcache"
	"github.com/pkg/errors"
)

const (
	defaultBufSize           = 8 * 1024
	maxConsecutiveEmptyReads = 100
)

// Reader tokenizes integers from an io.Reader line by line.
// Its buffer only grows when a single token is larger than the buffer.
type Reader struct {
	buf []byte // buf[ri:] is the unread data
	ri  int

	rd  io.Reader
	err error

	lines int
}

// NewReader returns a new Reader that reads from rd.
func NewReader(rd io.Reader) *Reader {
	return &Reader{rd: rd}
}

// fill moves unread data to the front of buf and reads more.
// It returns false if nothing new could be read.
func (r *Reader) fill() bool {
	if r.err != nil {
		return false
	}
	if r.buf == nil {
		r.buf = mcache.Malloc(0, defaultBufSize)
	}
	if r.ri > 0 {
		n := copy(r.buf, r.buf[r.ri:])
		r.buf = r.buf[:n]
		r.ri = 0
	}
	if len(r.buf) == cap(r.buf) {
		nbuf := mcache.Malloc(len(r.buf), cap(r.buf)*2)
		copy(nbuf, r.buf)
		mcache.Free(r.buf)
		r.buf = nbuf
	}
	for i := 0; i < maxConsecutiveEmptyReads; i++ {
		m, err := r.rd.Read(r.buf[len(r.buf):cap(r.buf)])
		r.buf = r.buf[:len(r.buf)+m]
		if err != nil {
			r.err = err
			return m > 0
		}
		if m > 0 {
			return true
		}
	}
	r.err = io.ErrNoProgress
	return false
}

// token returns the token starting at ri and advances past it.
// The returned bytes are only valid until the next call.
func (r *Reader) token() []byte {
	i := r.ri
	for {
		for ; i < len(r.buf); i++ {
			if isSpace(r.buf[i]) {
				tok := r.buf[r.ri:i]
				r.ri = i
				return tok
			}
		}
		off := i - r.ri
		if !r.fill() {
			tok := r.buf[r.ri:]
			r.ri = len(r.buf)
			return tok
		}
		i = r.ri + off
	}
}

// ReadLine appends the integers of the next line to dst.
// A blank line yields dst unchanged and a nil error.
// It returns io.EOF once the input is exhausted.
func (r *Reader) ReadLine(dst []int64) ([]int64, error) {
	started := false
	for {
		if r.ri == len(r.buf) && !r.fill() {
			if r.err != io.EOF {
				return dst, r.err
			}
			if started {
				r.lines++
				return dst, nil
			}
			return dst, io.EOF
		}
		started = true
		c := r.buf[r.ri]
		if c == '\n' {
			r.ri++
			r.lines++
			return dst, nil
		}
		if isSpace(c) {
			r.ri++
			continue
		}
		tok := r.token()
		v, err := strconv.ParseInt(string(tok), 10, 64)
		if err != nil {
			return dst, errors.Wrapf(err, "numio: line %d", r.lines+1)
		}
		dst = append(dst, v)
	}
}

// ReadAll reads integers until EOF, ignoring line structure.
func (r *Reader) ReadAll() ([]int64, error) {
	var vv []int64
	for {
		var err error
		vv, err = r.ReadLine(vv)
		if err == io.EOF {
			return vv, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Lines returns the number of lines consumed so far.
func (r *Reader) Lines() int {
	return r.lines
}

// Release frees the buffer. The Reader must not be used afterwards.
func (r *Reader) Release() {
	if r.buf != nil {
		mcache.Free(r.buf)
	}
	r.buf = nil
	r.ri = 0
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
