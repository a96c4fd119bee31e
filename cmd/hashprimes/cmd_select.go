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

package main

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cloudwego/hashprimes/hash/primes"
	"github.com/cloudwego/hashprimes/internal/config"
	"github.com/cloudwego/hashprimes/internal/logger"
)

func (a *app) selectCmd() *cobra.Command {
	d := config.Default().Select
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select a prime per growth step and print the table",
		Long: `Loads candidate primes (whitespace separated integers) and the built-in
small primes, then walks slot counts start, start*num/den, ... below the
31-bit slot limit. Every step takes the smallest candidate strictly greater
than slots/4. The deduplicated table, with the sentinel 1, is printed in
each requested format:

  list      [1, 3, 5, ...]
  literals  one "    <p>," line per entry
  switch    one "    case <i>: index = index % <p>; break;" line per entry
  buckets   bucket counts of the schedule from --bucket-start
  go        a Go []uint32 declaration`,
		Args: cobra.NoArgs,
		RunE: a.runSelect,
	}
	f := cmd.Flags()
	f.StringP("input", "i", d.Input, "candidate prime list")
	f.Float64("start", d.Start, "first slot count")
	f.Float64("growth-num", d.GrowthNum, "growth ratio numerator")
	f.Float64("growth-den", d.GrowthDen, "growth ratio denominator")
	f.Float64("bucket-start", d.BucketStart, "first slot count of the bucket listing")
	f.StringSliceP("format", "f", d.Formats, "output blocks, in order")
	return cmd
}

func applySelectFlags(cmd *cobra.Command, c *config.SelectConfig) {
	f := cmd.Flags()
	if f.Changed("input") {
		c.Input, _ = f.GetString("input")
	}
	if f.Changed("start") {
		c.Start, _ = f.GetFloat64("start")
	}
	if f.Changed("growth-num") {
		c.GrowthNum, _ = f.GetFloat64("growth-num")
	}
	if f.Changed("growth-den") {
		c.GrowthDen, _ = f.GetFloat64("growth-den")
	}
	if f.Changed("bucket-start") {
		c.BucketStart, _ = f.GetFloat64("bucket-start")
	}
	if f.Changed("format") {
		c.Formats, _ = f.GetStringSlice("format")
	}
}

func (a *app) runSelect(cmd *cobra.Command, args []string) (err error) {
	c := a.cfg
	applySelectFlags(cmd, &c.Select)
	if err := c.Validate(); err != nil {
		return err
	}
	formats, _ := c.SelectFormats()

	begin := time.Now()
	fh, err := os.Open(c.Select.Input)
	if err != nil {
		return errors.Wrap(err, "select: open input")
	}
	defer func() { err = closeAll(err, fh) }()

	cands, err := primes.LoadCandidates(fh)
	if err != nil {
		return err
	}
	logger.Debug("candidates loaded",
		logger.FieldPath(c.Select.Input),
		logger.Int("count", len(cands)),
		logger.Int64("max", cands.Max()))

	opts := c.SelectOptions()
	table := primes.Select(cands, opts...)
	if steps := primes.BucketCounts(c.Select.Start, opts...); len(steps) > 0 && cands.Max() <= steps[len(steps)-1] {
		logger.Warn("candidates exhausted before the slot limit",
			logger.Int64("max_candidate", cands.Max()),
			logger.Int64("max_bucket_count", steps[len(steps)-1]))
	}

	buckets := primes.BucketCounts(c.Select.BucketStart, opts...)
	if err := primes.Render(cmd.OutOrStdout(), table, buckets, formats...); err != nil {
		return err
	}
	logger.Info("table selected",
		logger.Int("primes", len(table)),
		logger.Int64("largest", table[len(table)-1]),
		logger.Duration("cost", time.Since(begin)))
	return nil
}
