// Copyright 2025 go-vector Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vector

import (
	"math/bits"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/xyproto/env/v2"
)

// Environment variables read by ConfigFromEnv.
const (
	// EnvNoSIMD forces the scalar level (and a 128-bit ShapeMax) when set
	// to a true value.
	EnvNoSIMD = "VECTOR_NO_SIMD"

	// EnvMaxBits overrides the width of ShapeMax.
	EnvMaxBits = "VECTOR_MAX_BITS"
)

// Bounds for Config.MaxBits. Every kind must divide the width evenly, and
// the largest kind is 64 bits wide.
const (
	minMaxBits = 64
	maxMaxBits = 2048
)

// Config selects the platform-maximal width.
type Config struct {
	// NoSIMD ignores the detected SIMD level and uses the scalar level.
	NoSIMD bool

	// MaxBits overrides the width of ShapeMax. Zero keeps the width of the
	// selected level. Otherwise it must be a power of two in [64, 2048].
	MaxBits int

	// Logger, if not nil, replaces the package logger (see SetLogger).
	Logger log.Logger
}

// ConfigFromEnv reads VECTOR_NO_SIMD and VECTOR_MAX_BITS from the current
// environment.
func ConfigFromEnv() Config {
	// env caches the environment on first read; reload it so changes made
	// after init are seen.
	env.Load()
	return Config{
		NoSIMD:  env.Bool(EnvNoSIMD),
		MaxBits: env.Int(EnvMaxBits, 0),
	}
}

// Validate reports whether cfg can be applied.
func (cfg Config) Validate() error {
	if cfg.MaxBits == 0 {
		return nil
	}
	if cfg.MaxBits < minMaxBits || cfg.MaxBits > maxMaxBits || bits.OnesCount(uint(cfg.MaxBits)) != 1 {
		return errors.Wrapf(ErrInvalidConfig, "max bits %d is not a power of two in [%d, %d]", cfg.MaxBits, minMaxBits, maxMaxBits)
	}
	return nil
}

// Configure applies cfg. An invalid cfg is rejected and leaves the current
// settings unchanged.
//
// Species already created with ShapeMax keep the width they were created
// with. Configure is not safe for concurrent use with other operations.
func Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Logger != nil {
		SetLogger(cfg.Logger)
	}

	lvl, width := detectedLevel, detectedBits
	if cfg.NoSIMD {
		lvl, width = DispatchScalar, scalarBits
	}
	if cfg.MaxBits != 0 {
		width = cfg.MaxBits
	}
	currentLevel, currentBits = lvl, width

	level.Info(logger).Log("msg", "configured vector width", "dispatch", lvl, "max_bits", width, "detected", detectedLevel)
	return nil
}

func configureFromEnv() {
	cfg := ConfigFromEnv()
	if err := Configure(cfg); err != nil {
		level.Warn(logger).Log("msg", "ignoring vector environment", "err", err)
	}
}
