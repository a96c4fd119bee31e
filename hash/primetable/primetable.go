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

// Package primetable holds a prime bucket table produced by
// `hashprimes select --format go` with the default schedule.
package primetable

import "sort"

// SlotsPerBucket must match the value used when the table was generated.
const SlotsPerBucket = 4

// Primes is indexed by capacity step. Primes[0] is the sentinel 1.
var Primes = []uint32{
	1,
	3,
	5,
	7,
	11,
	17,
	23,
	29,
	41,
	59,
	83,
	113,
	157,
	223,
	307,
	431,
	599,
	839,
	1181,
	1657,
	2297,
	3217,
	4507,
	6301,
	8821,
	12373,
	17291,
	24203,
	33889,
	47441,
	66413,
	92987,
	130171,
	182233,
	255121,
	357169,
	500029,
	700057,
	980069,
	1387649,
	1923127,
	2691401,
	3766703,
	5276969,
	7385767,
	10332557,
	14484739,
	20253691,
	28352173,
	39688177,
	55572581,
	77792227,
	108908411,
	152471503,
	213461819,
	298836649,
	418363973,
}

// Index returns the index of the smallest entry holding at least nslots
// slots, clamped to the last entry.
func Index(nslots int) int {
	nbuckets := nslots / SlotsPerBucket
	if nbuckets <= 1 {
		return 0
	}
	i := sort.Search(len(Primes), func(i int) bool { return int(Primes[i]) >= nbuckets })
	if i >= len(Primes) {
		return len(Primes) - 1
	}
	return i
}

// Slots returns the number of slots of the table at index i.
func Slots(i int) int {
	return int(Primes[i]) * SlotsPerBucket
}

// Mod maps h to a bucket of the table at index i.
// It panics if i is out of range.
func Mod(i int, h uint32) uint32 {
	return h % Primes[i]
}
