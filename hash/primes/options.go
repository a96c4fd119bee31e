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

import "fmt"

const (
	DefaultStart     = 4.0
	DefaultGrowthNum = 7.0
	DefaultGrowthDen = 5.0
)

type options struct {
	start    float64
	num, den float64
	maxSlots float64
}

// Option configures the growth schedule.
type Option func(o *options)

// WithStart sets the initial slot count.
func WithStart(slots float64) Option {
	return func(o *options) {
		o.start = slots
	}
}

// WithGrowth sets the growth ratio num/den applied to the slot count per step.
func WithGrowth(num, den float64) Option {
	return func(o *options) {
		o.num = num
		o.den = den
	}
}

// WithMaxSlots sets the exclusive upper bound of the slot count.
func WithMaxSlots(n int64) Option {
	return func(o *options) {
		o.maxSlots = float64(n)
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		start:    DefaultStart,
		num:      DefaultGrowthNum,
		den:      DefaultGrowthDen,
		maxSlots: MaxSlots,
	}
	for _, opt := range opts {
		opt(o)
	}
	// the schedule must move forward or the walk never ends
	if o.start <= 0 || o.den <= 0 || o.num <= o.den {
		panic(fmt.Sprintf("primes: bad schedule start=%v growth=%v/%v", o.start, o.num, o.den))
	}
	return o
}

// grow keeps the multiply-then-divide order so results match the
// published tables bit for bit.
func (o *options) grow(slots float64) float64 {
	return slots * o.num / o.den
}
