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

// Package logging sets up the go-logging based logger used by the library
// internals.
//
// The library reports assertion failures through the test handle, never
// through this logger. The logger only carries diagnostics about the library
// itself (scope transitions, failures dropped by a foreign panic).
package logging

import (
	"io"
	"os"
	"sync"

	gol "github.com/op/go-logging"

	"go.chromium.org/fluent/internal/config"
)

// Module is the go-logging module name of the library logger.
const Module = "fluent"

// StandardFormat prints time, filename and level, colored, then the message.
const StandardFormat = `%{color}[%{time:15:04:05.000} %{shortfile} %{level:.4s}]` +
	`%{color:reset} %{message}`

var (
	loggerOnce sync.Once
	logger     *gol.Logger
)

// Get returns the library logger.
//
// It writes to stderr at the level configured by the FLUENT_LOG_LEVEL
// environment variable.
func Get() *gol.Logger {
	loggerOnce.Do(func() {
		logger = New(os.Stderr, levelOf(config.Get().LogLevel))
	})
	return logger
}

// New creates a library logger writing messages of `level` or above to `w`.
func New(w io.Writer, level gol.Level) *gol.Logger {
	backend := gol.NewBackendFormatter(
		gol.NewLogBackend(w, "", 0),
		gol.MustStringFormatter(StandardFormat))
	leveled := gol.AddModuleLevel(backend)
	leveled.SetLevel(level, Module)

	l := gol.MustGetLogger(Module)
	l.SetBackend(leveled)
	return l
}

func levelOf(name string) gol.Level {
	lvl, err := gol.LogLevel(name)
	if err != nil {
		return gol.WARNING
	}
	return lvl
}
