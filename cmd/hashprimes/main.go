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

// Command hashprimes builds prime bucket tables for hashtables.
//
//	hashprimes select                 # table, C fragments and bucket counts from primes.txt
//	hashprimes select --format go     # Go slice for hash/primetable
//	hashprimes sample                 # primes.txt -> out.txt, 30 samples per 10000 primes
//	hashprimes spread --keys 1000000  # bucket load of the table chosen for 1M keys
package main

import (
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/cloudwego/hashprimes/internal/config"
	"github.com/cloudwego/hashprimes/internal/logger"
)

type app struct {
	cfgFile string
	verbose bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "hashprimes",
		Short: "Pick prime bucket counts for growing hashtables",
		Long: `hashprimes walks a geometric slot growth schedule and picks, for every
step, the smallest prime above the bucket count. The output is meant to be
pasted into hashtable sources by hand.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Close()
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (.yaml, .toml or .json)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(a.selectCmd(), a.sampleCmd(), a.spreadCmd())
	return root
}

// setup loads the config and installs the default logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	c := config.Default()
	if a.cfgFile != "" {
		var err error
		if c, err = config.Load(a.cfgFile); err != nil {
			return err
		}
	}
	if a.verbose {
		c.Logger.Level = "debug"
		c.Logger.Debug = true
	}
	l, err := c.Logger.Build()
	if err != nil {
		return err
	}
	logger.SetDefault(l.With(logger.FieldCmd(cmd.CommandPath())))
	a.cfg = c
	return nil
}

// closeAll closes every c and folds close failures into err.
func closeAll(err error, cc ...io.Closer) error {
	merr := err
	for _, c := range cc {
		if cerr := c.Close(); cerr != nil {
			merr = multierror.Append(merr, cerr)
		}
	}
	return merr
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error("hashprimes failed", logger.FieldErr(err))
		logger.Close()
		os.Exit(1)
	}
}
