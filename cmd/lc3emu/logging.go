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
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lassandro/lc3emu/pkg/config"
)

type nopCloser struct{}

func (nopCloser) Close() error {
	return nil
}

// Points the standard logrus logger at stderr or a rotated log file.
func setupLogging(cfg config.Config) (io.Closer, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)

	if err != nil {
		return nil, err
	}

	if cfg.Trace && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}

	logrus.SetLevel(level)

	if cfg.LogFile == "" {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		logrus.SetOutput(os.Stderr)
		return nopCloser{}, nil
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: 3,
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetOutput(rotator)

	return rotator, nil
}
