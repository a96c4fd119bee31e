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
	"fmt"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cloudwego/hashprimes/hash/primetable"
	"github.com/cloudwego/hashprimes/internal/config"
	"github.com/cloudwego/hashprimes/internal/logger"
)

const keyLen = 8

func (a *app) spreadCmd() *cobra.Command {
	d := config.Default().Spread
	cmd := &cobra.Command{
		Use:   "spread",
		Short: "Report bucket load of the built-in prime table for random keys",
		Args:  cobra.NoArgs,
		RunE:  a.runSpread,
	}
	f := cmd.Flags()
	f.IntP("keys", "n", d.Keys, "number of random 8-byte keys")
	f.Int64("seed", d.Seed, "random seed, 0 seeds from the clock")
	f.Int("index", -1, "table index, -1 picks the table sized for --keys slots")
	f.Bool("all", false, "report every table up to the chosen index")
	f.String("hash", d.Hash, "key hash, xxh3 or fnv")
	return cmd
}

func (a *app) runSpread(cmd *cobra.Command, args []string) error {
	c := a.cfg
	f := cmd.Flags()
	if f.Changed("keys") {
		c.Spread.Keys, _ = f.GetInt("keys")
	}
	if f.Changed("seed") {
		c.Spread.Seed, _ = f.GetInt64("seed")
	}
	if f.Changed("hash") {
		c.Spread.Hash, _ = f.GetString("hash")
	}
	if err := c.Validate(); err != nil {
		return err
	}
	h, _ := primetable.ParseHasher(c.Spread.Hash)
	idx, _ := f.GetInt("index")
	all, _ := f.GetBool("all")
	if idx < 0 {
		idx = primetable.Index(c.Spread.Keys)
	}
	if idx >= len(primetable.Primes) {
		return errors.Errorf("spread: index %d out of range [0, %d)", idx, len(primetable.Primes))
	}

	seed := c.Spread.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))
	buf := make([]byte, keyLen*c.Spread.Keys)
	rnd.Read(buf)
	keys := make([][]byte, c.Spread.Keys)
	for i := range keys {
		keys[i] = buf[i*keyLen : (i+1)*keyLen]
	}
	logger.Debug("keys generated", logger.Int("keys", len(keys)), logger.Int64("seed", seed))

	from := idx
	if all {
		from = 0
	}
	w := cmd.OutOrStdout()
	for i := from; i <= idx; i++ {
		if _, err := fmt.Fprintln(w, primetable.SpreadWith(i, keys, h).String()); err != nil {
			return errors.Wrap(err, "spread: write")
		}
	}
	return nil
}
