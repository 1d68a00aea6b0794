// SPDX-License-Identifier: MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parseConfig()
	require.NoError(t, err)
	require.Equal(t, Config{LogLevel: "info", Workers: 0, ZeroTolerance: 1e-12}, cfg)
}

func TestParseConfig_Env(t *testing.T) {
	t.Setenv("SIMPLEALGEBRA_LOG_LEVEL", "warn")
	t.Setenv("SIMPLEALGEBRA_WORKERS", "3")
	t.Setenv("SIMPLEALGEBRA_ZERO_TOLERANCE", "1e-9")

	cfg, err := parseConfig()
	require.NoError(t, err)
	require.Equal(t, Config{LogLevel: "warn", Workers: 3, ZeroTolerance: 1e-9}, cfg)
}

func TestParseConfig_Invalid(t *testing.T) {
	for name, kv := range map[string][2]string{
		"not a number":       {"SIMPLEALGEBRA_WORKERS", "many"},
		"negative workers":   {"SIMPLEALGEBRA_WORKERS", "-1"},
		"negative tolerance": {"SIMPLEALGEBRA_ZERO_TOLERANCE", "-0.1"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := parseConfig()
			require.ErrorContains(t, err, "parse env:")
		})
	}
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger(Config{LogLevel: "warn"}, false)
	require.NoError(t, err)
	require.False(t, l.Core().Enabled(zapcore.InfoLevel))
	require.True(t, l.Core().Enabled(zapcore.WarnLevel))

	l, err = newLogger(Config{LogLevel: "warn"}, true)
	require.NoError(t, err)
	require.True(t, l.Core().Enabled(zapcore.DebugLevel))

	_, err = newLogger(Config{LogLevel: "loud"}, false)
	require.ErrorContains(t, err, "log level")

	_, err = run(t, "det", "--verbose=false", writeFile(t, "a.yaml", diagDoc))
	require.NoError(t, err)
}
