// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lassandro/lc3emu/pkg/config"
	"github.com/lassandro/lc3emu/pkg/console"
	"github.com/lassandro/lc3emu/pkg/debugger"
	"github.com/lassandro/lc3emu/pkg/machine"
)

const usage = "lc3emu [flags] [image-file ...]"

func newCommand(code *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   usage,
		Short: "Runs LC-3 program images",
		Long: "lc3emu loads each image-file in order, then runs from 0x3000 " +
			"until the program halts.",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := cmd.Flags().GetString("config")

			if err != nil {
				return err
			}

			cfg, err := config.Load(cmd.Flags(), file)

			if err != nil {
				return err
			}

			*code = lc3emu(cfg, args)
			return nil
		},
	}

	config.Flags(cmd.Flags())

	return cmd
}

// Loads every image in order. With skip set a failed image is logged and
// the rest still load, otherwise the first failure is returned.
func loadImages(mc *machine.Machine, paths []string, skip bool) error {
	for _, path := range paths {
		origin, words, err := mc.LoadImageFile(path)

		fields := logrus.Fields{
			"image":  path,
			"origin": fmt.Sprintf("%#04x", origin),
			"words":  words,
		}

		if err != nil {
			if !skip {
				return err
			}

			logrus.WithFields(fields).WithError(err).Warn("skipping image")
			continue
		}

		logrus.WithFields(fields).Info("image loaded")
	}

	return nil
}

func lc3emu(cfg config.Config, paths []string) int {
	logfile, err := setupLogging(cfg)

	if err != nil {
		logrus.Error(err)
		return 1
	}

	defer logfile.Close()

	term := console.NewTerminal(os.Stdin, os.Stdout)
	mc := machine.New(term)

	var dbg *debugger.Debugger

	if cfg.Debug || cfg.Trace {
		dbg = &debugger.Debugger{}
		mc.Debugger = dbg

		if cfg.Trace {
			dbg.Trace = logrus.StandardLogger()
		}

		if cfg.Debug {
			repl := newREPL(term, paths, cfg.SkipInvalid)
			dbg.HandleBreak = repl.handleBreak
			dbg.HandleRead = repl.handleRead
			dbg.HandleWrite = repl.handleWrite
		}
	}

	if len(paths) == 0 {
		logrus.Warn("no images given, usage: " + usage)
	}

	if err := loadImages(mc, paths, cfg.SkipInvalid); err != nil {
		logrus.WithError(err).Error("failed to load")
		return 1
	}

	if err := term.EnterRaw(); err != nil {
		logrus.WithError(err).Debug("input stays line buffered")
	}

	defer func() {
		if err := term.Restore(); err != nil {
			logrus.WithError(err).Error("failed to restore terminal")
		}
	}()

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupts)

	go func() {
		for sig := range interrupts {
			if cfg.Debug && sig == os.Interrupt {
				dbg.Interrupt()
				continue
			}

			term.Restore()
			fmt.Println()
			os.Exit(130)
		}
	}()

	if cfg.Debug {
		dbg.HandleBreak(dbg, mc)
	}

	if err := mc.Run(); err != nil {
		logrus.WithFields(logrus.Fields{
			"pc": fmt.Sprintf("%#04x", mc.State.Registers.Get(machine.REG_PC)),
		}).WithError(err).Error("machine fault")
		return 1
	}

	return 0
}

func main() {
	code := 0

	if err := newCommand(&code).Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}

	os.Exit(code)
}
