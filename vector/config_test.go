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
	"bytes"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/require"
)

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchSVE, "sve"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("%d: got %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	lvl, bits := detect()
	if bits < scalarBits || bits&(bits-1) != 0 {
		t.Errorf("detected %v with %d bits", lvl, bits)
	}
	if lvl != DetectedLevel() {
		t.Errorf("detect: got %v, DetectedLevel %v", lvl, DetectedLevel())
	}
	if CurrentName() == "" {
		t.Error("empty CurrentName")
	}
	if MaxBits() < minMaxBits {
		t.Errorf("MaxBits %d", MaxBits())
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		maxBits int
		wantErr bool
	}{
		{"default", 0, false},
		{"min", 64, false},
		{"avx512", 512, false},
		{"max", 2048, false},
		{"too small", 32, true},
		{"too large", 4096, true},
		{"not a power of two", 384, true},
		{"negative", -128, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Config{MaxBits: tt.maxBits}.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfigure(t *testing.T) {
	restoreConfig(t)

	t.Run("no simd", func(t *testing.T) {
		require.NoError(t, Configure(Config{NoSIMD: true}))
		require.Equal(t, DispatchScalar, CurrentLevel())
		require.Equal(t, scalarBits, MaxBits())
		require.Equal(t, 4, Of(Float32, ShapeMax).LaneCount())
	})

	t.Run("max bits", func(t *testing.T) {
		require.NoError(t, Configure(Config{MaxBits: 1024}))
		require.Equal(t, DetectedLevel(), CurrentLevel())
		require.Equal(t, 1024, MaxBits())
		require.Equal(t, 128, Of(Int8, ShapeMax).LaneCount())
	})

	t.Run("invalid leaves settings unchanged", func(t *testing.T) {
		require.NoError(t, Configure(Config{MaxBits: 256}))
		require.ErrorIs(t, Configure(Config{NoSIMD: true, MaxBits: 100}), ErrInvalidConfig)
		require.Equal(t, 256, MaxBits())
		require.Equal(t, DetectedLevel(), CurrentLevel())
	})

	t.Run("logs", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Configure(Config{MaxBits: 512, Logger: log.NewLogfmtLogger(&buf)}))
		out := buf.String()
		for _, want := range []string{"component=vector", "max_bits=512", "level=info"} {
			if !strings.Contains(out, want) {
				t.Errorf("log %q does not contain %q", out, want)
			}
		}
	})
}

func TestConfigFromEnv(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		t.Setenv(EnvNoSIMD, "")
		t.Setenv(EnvMaxBits, "")
		require.Equal(t, Config{}, ConfigFromEnv())
	})

	t.Run("set", func(t *testing.T) {
		t.Setenv(EnvNoSIMD, "1")
		t.Setenv(EnvMaxBits, "512")
		cfg := ConfigFromEnv()
		require.True(t, cfg.NoSIMD)
		require.Equal(t, 512, cfg.MaxBits)
	})

	t.Run("sees later changes", func(t *testing.T) {
		t.Setenv(EnvMaxBits, "256")
		require.Equal(t, 256, ConfigFromEnv().MaxBits)
		t.Setenv(EnvMaxBits, "1024")
		require.Equal(t, 1024, ConfigFromEnv().MaxBits)
	})

	t.Run("invalid is ignored", func(t *testing.T) {
		restoreConfig(t)
		require.NoError(t, Configure(Config{MaxBits: 256}))

		t.Setenv(EnvNoSIMD, "")
		t.Setenv(EnvMaxBits, "100")
		configureFromEnv()
		require.Equal(t, 256, MaxBits())
	})
}

func TestSetLoggerNil(t *testing.T) {
	restoreConfig(t)
	SetLogger(nil)
	require.NotNil(t, logger)
	require.NoError(t, Configure(Config{}))
}
