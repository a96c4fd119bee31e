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

package primetable

import (
	"fmt"
)

// Stats describes how keys land in the buckets of one table.
type Stats struct {
	Index   int
	Buckets int
	Keys    int
	Empty   int // buckets without any key
	MaxLoad int
	// Overflow counts buckets holding more keys than SlotsPerBucket,
	// i.e. keys that must probe into a neighbour.
	Overflow int
}

// Spread hashes every key with XXH3 and reports the bucket load
// of the table at index i.
func Spread(i int, keys [][]byte) Stats {
	return SpreadWith(i, keys, XXH3)
}

// SpreadWith is Spread with the hash function h.
func SpreadWith(i int, keys [][]byte, h Hasher) Stats {
	// a map keeps memory bound to len(keys) for the largest tables
	loads := make(map[uint32]int, len(keys))
	for _, k := range keys {
		loads[Mod(i, uint32(h(k)))]++
	}
	s := Stats{
		Index:   i,
		Buckets: int(Primes[i]),
		Keys:    len(keys),
		Empty:   int(Primes[i]) - len(loads),
	}
	for _, n := range loads {
		if n > s.MaxLoad {
			s.MaxLoad = n
		}
		if n > SlotsPerBucket {
			s.Overflow++
		}
	}
	return s
}

// LoadFactor returns keys per slot.
func (s Stats) LoadFactor() float64 {
	return float64(s.Keys) / float64(s.Buckets*SlotsPerBucket)
}

func (s Stats) String() string {
	return fmt.Sprintf("index=%d buckets=%d keys=%d load=%.3f empty=%d max=%d overflow=%d",
		s.Index, s.Buckets, s.Keys, s.LoadFactor(), s.Empty, s.MaxLoad, s.Overflow)
}
