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

	"github.com/cloudwego/hashprimes/internal/config"
	"github.com/cloudwego/hashprimes/internal/logger"
	"github.com/cloudwego/hashprimes/sample"
)

func (a *app) sampleCmd() *cobra.Command {
	d := config.Default().Sample
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Thin a large prime list into sorted random samples",
		Long: `Streams the input line by line. Whenever more than --chunk-size integers
are buffered, --sample-size of them are picked at random, sorted and written
as one space separated line, and the buffer is emptied.

A trailing chunk that never grows past --chunk-size is dropped.`,
		Args: cobra.NoArgs,
		RunE: a.runSample,
	}
	f := cmd.Flags()
	f.StringP("input", "i", d.Input, "prime list to read")
	f.StringP("output", "o", d.Output, "file to overwrite with samples")
	f.Int("chunk-size", d.ChunkSize, "integers a chunk must exceed before sampling")
	f.Int("sample-size", d.SampleSize, "integers written per chunk")
	f.Int64("seed", d.Seed, "random seed, 0 seeds from the clock")
	return cmd
}

func applySampleFlags(cmd *cobra.Command, c *config.SampleConfig) {
	f := cmd.Flags()
	if f.Changed("input") {
		c.Input, _ = f.GetString("input")
	}
	if f.Changed("output") {
		c.Output, _ = f.GetString("output")
	}
	if f.Changed("chunk-size") {
		c.ChunkSize, _ = f.GetInt("chunk-size")
	}
	if f.Changed("sample-size") {
		c.SampleSize, _ = f.GetInt("sample-size")
	}
	if f.Changed("seed") {
		c.Seed, _ = f.GetInt64("seed")
	}
}

func (a *app) runSample(cmd *cobra.Command, args []string) (err error) {
	c := a.cfg
	applySampleFlags(cmd, &c.Sample)
	if err := c.Validate(); err != nil {
		return err
	}
	s, err := sample.New(c.SampleOptions()...)
	if err != nil {
		return err
	}

	begin := time.Now()
	in, err := os.Open(c.Sample.Input)
	if err != nil {
		return errors.Wrap(err, "sample: open input")
	}
	out, err := os.Create(c.Sample.Output)
	if err != nil {
		return closeAll(errors.Wrap(err, "sample: create output"), in)
	}
	defer func() { err = closeAll(err, in, out) }()

	st, err := s.Run(in, out)
	if err != nil {
		return err
	}
	logger.Info("sample written",
		logger.FieldPath(c.Sample.Output),
		logger.Int("lines", st.Lines),
		logger.Int("tokens", st.Tokens),
		logger.Int("chunks", st.Chunks),
		logger.Duration("cost", time.Since(begin)))
	if st.Dropped > 0 {
		logger.Warn("trailing partial chunk dropped",
			logger.Int("tokens", st.Dropped),
			logger.Int("chunk_size", c.Sample.ChunkSize))
	}
	return nil
}
