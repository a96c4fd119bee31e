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
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/cloudwego/hashprimes/internal/numio"
)

// Format is a textual rendering of a Table.
type Format int

const (
	// FormatList renders the table as one literal list: [1, 3, 5]
	FormatList Format = iota
	// FormatLiterals renders one "    <value>," line per entry.
	FormatLiterals
	// FormatSwitch renders one "case <index>: index = index % <value>; break;" line per entry.
	FormatSwitch
	// FormatBuckets renders the diagnostic bucket counts, one per line.
	FormatBuckets
	// FormatGo renders a Go slice declaration named Primes.
	FormatGo
)

var formatNames = [...]string{
	FormatList:     "list",
	FormatLiterals: "literals",
	FormatSwitch:   "switch",
	FormatBuckets:  "buckets",
	FormatGo:       "go",
}

// DefaultFormats are the blocks printed by the selector, in order.
var DefaultFormats = []Format{FormatList, FormatLiterals, FormatSwitch, FormatBuckets}

func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range formatNames {
		if name == s {
			return Format(i), nil
		}
	}
	return 0, errors.Errorf("primes: unknown format %q", s)
}

// Render writes t, and buckets for FormatBuckets, to w in the given formats.
// DefaultFormats is used if fmts is empty.
func Render(w io.Writer, t Table, buckets []int64, fmts ...Format) error {
	if len(fmts) == 0 {
		fmts = DefaultFormats
	}
	nw := numio.NewWriter(w)
	defer nw.Release()
	for _, f := range fmts {
		switch f {
		case FormatList:
			nw.WriteString("[")
			nw.WriteInts(t, ", ")
			nw.WriteString("]\n")
		case FormatLiterals:
			for _, p := range t {
				nw.WriteString("    ")
				nw.WriteInt(p)
				nw.WriteString(",\n")
			}
		case FormatSwitch:
			for i, p := range t {
				nw.WriteString("    case ")
				nw.WriteInt(int64(i))
				nw.WriteString(": index = index % ")
				nw.WriteInt(p)
				nw.WriteString("; break;\n")
			}
		case FormatBuckets:
			for _, b := range buckets {
				nw.WriteInt(b)
				nw.WriteString("\n")
			}
		case FormatGo:
			nw.WriteString("var Primes = []uint32{\n")
			for _, p := range t {
				nw.WriteString("\t")
				nw.WriteInt(p)
				nw.WriteString(",\n")
			}
			nw.WriteString("}\n")
		default:
			return errors.Errorf("primes: unknown format %v", f)
		}
	}
	return errors.Wrap(nw.Flush(), "primes: render")
}
