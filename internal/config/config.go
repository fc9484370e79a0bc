// Copyright 2026 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config holds the process-wide settings of the fluent library.
//
// All settings are read from the environment once, on first use:
//
//   - FLUENT_COLOR: "always", "never" or "auto" (default). In "auto" mode
//     colors are enabled iff stdout is a terminal.
//   - FLUENT_VERBOSE: any true value accepted by strconv.ParseBool makes
//     verbose findings render in full.
//   - FLUENT_LOG_LEVEL: a go-logging level name (DEBUG, INFO, WARNING, ...).
package config

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

const (
	// ColorEnv selects the colorization mode.
	ColorEnv = "FLUENT_COLOR"
	// VerboseEnv turns on verbose rendering of findings.
	VerboseEnv = "FLUENT_VERBOSE"
	// LogLevelEnv sets the level of the library logger.
	LogLevelEnv = "FLUENT_LOG_LEVEL"

	// DefaultLogLevel is used when LogLevelEnv is unset.
	DefaultLogLevel = "WARNING"
)

// Settings is the parsed library configuration.
type Settings struct {
	// Colorize enables ANSI colors in rendered diffs.
	Colorize bool
	// Verbose renders verbose findings instead of an omission message.
	Verbose bool
	// LogLevel is the go-logging level name for the library logger.
	LogLevel string
}

var (
	loadOnce sync.Once
	loaded   Settings
)

// Get returns the Settings loaded from the process environment.
func Get() Settings {
	loadOnce.Do(func() {
		loaded = Parse(os.Getenv, isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
	})
	return loaded
}

// Parse builds Settings from `getenv`.
//
// `tty` reports whether the output is a terminal, and is used for the "auto"
// colorization mode.
func Parse(getenv func(string) string, tty bool) Settings {
	ret := Settings{
		Colorize: tty,
		LogLevel: DefaultLogLevel,
	}

	switch strings.ToLower(strings.TrimSpace(getenv(ColorEnv))) {
	case "always", "1", "true", "yes":
		ret.Colorize = true
	case "never", "0", "false", "no":
		ret.Colorize = false
	}

	if v, err := strconv.ParseBool(strings.TrimSpace(getenv(VerboseEnv))); err == nil {
		ret.Verbose = v
	}

	if lvl := strings.TrimSpace(getenv(LogLevelEnv)); lvl != "" {
		ret.LogLevel = strings.ToUpper(lvl)
	}

	return ret
}
