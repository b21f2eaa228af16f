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

// Package config merges defaults, an optional config file, LC3EMU_*
// environment variables and command line flags into one Config.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "LC3EMU"

const (
	KeyDebug       = "debug"
	KeyTrace       = "trace"
	KeyLogLevel    = "log.level"
	KeyLogFile     = "log.file"
	KeyLogMaxSize  = "log.max-size"
	KeySkipInvalid = "images.skip-invalid"
)

type Config struct {
	Debug bool
	Trace bool

	LogLevel   string
	LogFile    string
	LogMaxSize int // megabytes

	// SkipInvalid logs and skips images that fail to load instead of
	// aborting the run
	SkipInvalid bool
}

func defaults(v *viper.Viper) {
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyTrace, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogMaxSize, 10)
	v.SetDefault(KeySkipInvalid, false)
}

// Flags registers the command line flags Load understands on fs.
func Flags(fs *pflag.FlagSet) {
	fs.String("config", "", "Reads settings from a YAML, TOML or JSON file")
	fs.Bool("debug", false, "Runs the machine in a debug CLI")
	fs.Bool("trace", false, "Logs every executed instruction at debug level")
	fs.String("log-level", "info", "Sets the log level (error, warn, info, debug)")
	fs.String("log-file", "", "Writes logs to a rotated file instead of stderr")
	fs.Bool(
		"skip-invalid", false,
		"Skips images that fail to load instead of aborting",
	)
}

var flagKeys = map[string]string{
	"debug":        KeyDebug,
	"trace":        KeyTrace,
	"log-level":    KeyLogLevel,
	"log-file":     KeyLogFile,
	"skip-invalid": KeySkipInvalid,
}

// Load resolves the configuration. fs may be nil, file may be empty.
func Load(fs *pflag.FlagSet, file string) (Config, error) {
	v := viper.New()
	defaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)

		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			if flag := fs.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return Config{}, err
				}
			}
		}
	}

	return Config{
		Debug:       v.GetBool(KeyDebug),
		Trace:       v.GetBool(KeyTrace),
		LogLevel:    v.GetString(KeyLogLevel),
		LogFile:     v.GetString(KeyLogFile),
		LogMaxSize:  v.GetInt(KeyLogMaxSize),
		SkipInvalid: v.GetBool(KeySkipInvalid),
	}, nil
}
