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

// Package primes selects prime bucket counts for hashtables that grow
// geometrically.
//
// A hashtable with SlotsPerBucket slots per bucket and n slots needs about
// n/SlotsPerBucket buckets. Starting from a small slot count, Select grows the
// slot count by a fixed ratio and, for every step, picks the smallest
// candidate prime strictly greater than the bucket count. The result is a
// table of prime moduli, one per capacity step.
package primes

import (
	"io"
	"sort"

	"github.com/pkg/errors"

	"github.com/cloudwego/hashprimes/internal/numio"
)

const (
	// MaxInt is the largest 31-bit signed integer.
	MaxInt = 1<<31 - 1

	// SlotsPerBucket is the number of slots sharing a bucket.
	SlotsPerBucket = 4

	MaxBuckets = MaxInt/SlotsPerBucket - 31
	MaxSlots   = MaxBuckets * SlotsPerBucket
)

// Bootstrap is always merged into candidates so that the smallest
// tables can be selected even if the loaded list starts high.
var Bootstrap = []int64{3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61}

// Candidates is a strictly increasing list of primes.
// Values are assumed to be prime and are never checked.
type Candidates []int64

// NewCandidates merges vv with Bootstrap, then sorts and dedups the result.
// vv is not modified.
func NewCandidates(vv []int64) Candidates {
	c := make([]int64, 0, len(vv)+len(Bootstrap))
	c = append(c, vv...)
	c = append(c, Bootstrap...)
	return Candidates(sortUniq(c))
}

// LoadCandidates reads whitespace separated integers from r
// and returns them merged with Bootstrap.
func LoadCandidates(r io.Reader) (Candidates, error) {
	nr := numio.NewReader(r)
	defer nr.Release()
	vv, err := nr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "primes: load candidates")
	}
	return NewCandidates(vv), nil
}

// Next returns the smallest candidate strictly greater than b.
// A candidate equal to b never matches.
func (c Candidates) Next(b int64) (int64, bool) {
	i := sort.Search(len(c), func(i int) bool { return c[i] > b })
	if i >= len(c) {
		return 0, false
	}
	return c[i], true
}

// Max returns the largest candidate, or 0 if c is empty.
func (c Candidates) Max() int64 {
	if len(c) == 0 {
		return 0
	}
	return c[len(c)-1]
}

// Table is a strictly increasing list of selected primes.
// It always starts with the sentinel 1.
type Table []int64

// Select walks the slot growth schedule and picks a prime for every step.
//
// The walk stops at the slot limit, or earlier as soon as no candidate is
// greater than the current bucket count.
func Select(c Candidates, opts ...Option) Table {
	o := newOptions(opts)
	t := make([]int64, 0, 64)
	for slots := o.start; slots < o.maxSlots; slots = o.grow(slots) {
		p, ok := c.Next(bucketCount(slots))
		if !ok {
			break
		}
		t = append(t, p)
	}
	t = append(t, 1)
	return Table(sortUniq(t))
}

// BucketCounts returns the bucket count of every step of the growth
// schedule starting at start slots. WithStart is ignored.
func BucketCounts(start float64, opts ...Option) []int64 {
	o := newOptions(append(opts, WithStart(start)))
	var bb []int64
	for slots := o.start; slots < o.maxSlots; slots = o.grow(slots) {
		bb = append(bb, bucketCount(slots))
	}
	return bb
}

func bucketCount(slots float64) int64 {
	return int64(slots) / SlotsPerBucket
}

func sortUniq(vv []int64) []int64 {
	if len(vv) == 0 {
		return vv
	}
	sort.Slice(vv, func(i, j int) bool { return vv[i] < vv[j] })
	j := 1
	for i := 1; i < len(vv); i++ {
		if vv[i] != vv[j-1] {
			vv[j] = vv[i]
			j++
		}
	}
	return vv[:j]
}
