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
	"strings"
	"unsafe"

	"github.com/bytedance/gopkg/util/xxhash3"
	"github.com/pkg/errors"
)

// Hasher maps a key to the hash fed into Mod.
type Hasher func(b []byte) uint64

var (
	XXH3 Hasher = xxhash3.Hash
	FNV  Hasher = fnv64
)

var hashers = map[string]Hasher{
	"xxh3": XXH3,
	"fnv":  FNV,
}

// ParseHasher returns the Hasher named by s, "xxh3" or "fnv".
func ParseHasher(s string) (Hasher, error) {
	h, ok := hashers[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return nil, errors.Errorf("primetable: unknown hash %q", s)
	}
	return h, nil
}

const (
	fnvOffset64 = uint64(14695981039346656037)
	fnvPrime64  = uint64(1099511628211)
)

// fnv64 is FNV-1a folding 8 bytes per round in native byte order,
// so results differ across cpu archs. Never persist them.
func fnv64(b []byte) uint64 {
	h := fnvOffset64
	n := len(b)
	if n == 0 {
		return h
	}
	p := unsafe.Pointer(unsafe.SliceData(b))
	i := 0
	for m := n >> 3; i < m; i++ {
		h ^= *(*uint64)(unsafe.Add(p, i<<3))
		h *= fnvPrime64
	}
	for i <<= 3; i < n; i++ {
		h ^= uint64(*(*byte)(unsafe.Add(p, i)))
		h *= fnvPrime64
	}
	return h
}
