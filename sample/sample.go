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

// Package sample thins a large integer list into small sorted random samples.
package sample

import (
	"io"
	"math/rand"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/cloudwego/hashprimes/internal/numio"
)

const (
	DefaultChunkSize  = 10000
	DefaultSampleSize = 30
)

// Sampler reads integers line by line. Once more than ChunkSize integers
// are buffered it writes a sorted random sample of SampleSize of them as
// one line and starts a new chunk.
//
// A final chunk holding ChunkSize integers or fewer is dropped without output.
type Sampler struct {
	chunkSize  int
	sampleSize int
	rnd        *rand.Rand
}

// Option configures a Sampler.
type Option func(s *Sampler)

// WithChunkSize sets the number of integers a chunk must exceed.
func WithChunkSize(n int) Option {
	return func(s *Sampler) {
		s.chunkSize = n
	}
}

// WithSampleSize sets the number of integers written per chunk.
func WithSampleSize(n int) Option {
	return func(s *Sampler) {
		s.sampleSize = n
	}
}

// WithSeed makes sampling reproducible.
func WithSeed(seed int64) Option {
	return func(s *Sampler) {
		s.rnd = rand.New(rand.NewSource(seed))
	}
}

// WithRand sets the random source.
func WithRand(rnd *rand.Rand) Option {
	return func(s *Sampler) {
		s.rnd = rnd
	}
}

// New creates a Sampler.
func New(opts ...Option) (*Sampler, error) {
	s := &Sampler{
		chunkSize:  DefaultChunkSize,
		sampleSize: DefaultSampleSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sampleSize <= 0 {
		return nil, errors.Errorf("sample: sample size %d must be positive", s.sampleSize)
	}
	if s.chunkSize < s.sampleSize {
		return nil, errors.Errorf("sample: chunk size %d is smaller than sample size %d", s.chunkSize, s.sampleSize)
	}
	if s.rnd == nil {
		s.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s, nil
}

// Stats summarizes a Run.
type Stats struct {
	Lines   int // input lines
	Tokens  int // input integers
	Chunks  int // output lines
	Dropped int // integers of the trailing partial chunk
}

// Run samples r into w. w receives one line per full chunk.
func (s *Sampler) Run(r io.Reader, w io.Writer) (Stats, error) {
	var st Stats
	nr := numio.NewReader(r)
	defer nr.Release()
	nw := numio.NewWriter(w)
	defer nw.Release()

	chunk := make([]int64, 0, s.chunkSize+1)
	for {
		var err error
		chunk, err = nr.ReadLine(chunk)
		if err == io.EOF {
			break
		}
		if err != nil {
			return st, errors.Wrap(err, "sample: read")
		}
		if len(chunk) > s.chunkSize {
			st.Tokens += len(chunk)
			st.Chunks++
			nw.WriteInts(s.pick(chunk), " ")
			nw.WriteString("\n")
			chunk = chunk[:0]
		}
	}
	st.Lines = nr.Lines()
	st.Dropped = len(chunk)
	st.Tokens += len(chunk)
	if err := nw.Flush(); err != nil {
		return st, errors.Wrap(err, "sample: write")
	}
	return st, nil
}

// pick moves a uniform random sample to the front of chunk and sorts it.
func (s *Sampler) pick(chunk []int64) []int64 {
	for i := 0; i < s.sampleSize; i++ {
		j := i + s.rnd.Intn(len(chunk)-i)
		chunk[i], chunk[j] = chunk[j], chunk[i]
	}
	ret := chunk[:s.sampleSize]
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}
