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

// Package config loads hashprimes settings from YAML, TOML or JSON files.
// Every setting has a default, so a config file is optional.
package config

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/cloudwego/hashprimes/hash/primes"
	"github.com/cloudwego/hashprimes/hash/primetable"
	"github.com/cloudwego/hashprimes/internal/logger"
	"github.com/cloudwego/hashprimes/sample"
)

type Config struct {
	Logger logger.Config `yaml:"logger" json:"logger" toml:"logger"`
	Select SelectConfig  `yaml:"select" json:"select" toml:"select"`
	Sample SampleConfig  `yaml:"sample" json:"sample" toml:"sample"`
	Spread SpreadConfig  `yaml:"spread" json:"spread" toml:"spread"`
}

type SelectConfig struct {
	Input string `yaml:"input" json:"input" toml:"input"`
	// Start is the first slot count of the growth schedule
	Start float64 `yaml:"start" json:"start" toml:"start"`
	// slot count grows by GrowthNum/GrowthDen per step
	GrowthNum float64 `yaml:"growth_num" json:"growth_num" toml:"growth_num"`
	GrowthDen float64 `yaml:"growth_den" json:"growth_den" toml:"growth_den"`
	// BucketStart is the first slot count of the diagnostic bucket listing
	BucketStart float64  `yaml:"bucket_start" json:"bucket_start" toml:"bucket_start"`
	Formats     []string `yaml:"formats" json:"formats" toml:"formats"`
}

type SampleConfig struct {
	Input      string `yaml:"input" json:"input" toml:"input"`
	Output     string `yaml:"output" json:"output" toml:"output"`
	ChunkSize  int    `yaml:"chunk_size" json:"chunk_size" toml:"chunk_size"`
	SampleSize int    `yaml:"sample_size" json:"sample_size" toml:"sample_size"`
	// Seed 0 means seeded from the clock
	Seed int64 `yaml:"seed" json:"seed" toml:"seed"`
}

type SpreadConfig struct {
	Keys int   `yaml:"keys" json:"keys" toml:"keys"`
	Seed int64 `yaml:"seed" json:"seed" toml:"seed"`
	// Hash is xxh3 or fnv
	Hash string `yaml:"hash" json:"hash" toml:"hash"`
}

// Default returns the built-in settings: primes.txt in, out.txt out, the
// 7/5 schedule from 4 slots and 30 samples per 10000 integers.
func Default() *Config {
	return &Config{
		Logger: logger.DefaultConfig(),
		Select: SelectConfig{
			Input:       "primes.txt",
			Start:       primes.DefaultStart,
			GrowthNum:   primes.DefaultGrowthNum,
			GrowthDen:   primes.DefaultGrowthDen,
			BucketStart: 1.0,
			Formats:     []string{"list", "literals", "switch", "buckets"},
		},
		Sample: SampleConfig{
			Input:      "primes.txt",
			Output:     "out.txt",
			ChunkSize:  sample.DefaultChunkSize,
			SampleSize: sample.DefaultSampleSize,
		},
		Spread: SpreadConfig{
			Keys: 100000,
			Hash: "xxh3",
		},
	}
}

// Load reads path and fills unset fields from Default.
// The format is picked by file extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: read")
	}
	c := &Config{}
	if err := decode(filepath.Ext(path), data, c); err != nil {
		return nil, errors.Wrapf(err, "config: decode %s", path)
	}
	if err := mergo.Merge(c, Default()); err != nil {
		return nil, errors.Wrap(err, "config: merge defaults")
	}
	return c, nil
}

func decode(ext string, data []byte, c *Config) error {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err := dec.Decode(c)
		if err == io.EOF {
			return nil // empty file
		}
		return err
	case "toml":
		md, err := toml.Decode(string(data), c)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return errors.Errorf("unknown keys %v", undecoded)
		}
		return nil
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(c)
	}
	return errors.Errorf("unsupported format %q", ext)
}

// Validate rejects settings the tools cannot run with.
func (c *Config) Validate() error {
	s := c.Select
	if s.Start <= 0 || s.BucketStart <= 0 {
		return errors.Errorf("config: select start %v and bucket_start %v must be positive", s.Start, s.BucketStart)
	}
	if s.GrowthDen <= 0 || s.GrowthNum <= s.GrowthDen {
		return errors.Errorf("config: select growth %v/%v must be greater than 1", s.GrowthNum, s.GrowthDen)
	}
	if _, err := c.SelectFormats(); err != nil {
		return errors.Wrap(err, "config")
	}
	if c.Sample.SampleSize <= 0 || c.Sample.ChunkSize < c.Sample.SampleSize {
		return errors.Errorf("config: sample size %d must be in [1, chunk_size=%d]", c.Sample.SampleSize, c.Sample.ChunkSize)
	}
	if c.Spread.Keys <= 0 {
		return errors.Errorf("config: spread keys %d must be positive", c.Spread.Keys)
	}
	if _, err := primetable.ParseHasher(c.Spread.Hash); err != nil {
		return errors.Wrap(err, "config")
	}
	return nil
}

// SelectFormats parses Select.Formats.
func (c *Config) SelectFormats() ([]primes.Format, error) {
	ff := make([]primes.Format, 0, len(c.Select.Formats))
	for _, s := range c.Select.Formats {
		f, err := primes.ParseFormat(s)
		if err != nil {
			return nil, err
		}
		ff = append(ff, f)
	}
	return ff, nil
}

// SelectOptions returns the growth schedule of Select.
func (c *Config) SelectOptions() []primes.Option {
	return []primes.Option{
		primes.WithStart(c.Select.Start),
		primes.WithGrowth(c.Select.GrowthNum, c.Select.GrowthDen),
	}
}

// SampleOptions returns the sampler settings of Sample.
func (c *Config) SampleOptions() []sample.Option {
	opts := []sample.Option{
		sample.WithChunkSize(c.Sample.ChunkSize),
		sample.WithSampleSize(c.Sample.SampleSize),
	}
	if c.Sample.Seed != 0 {
		opts = append(opts, sample.WithSeed(c.Sample.Seed))
	}
	return opts
}
