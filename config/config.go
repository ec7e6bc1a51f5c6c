// Package config loads the engine's tunables from a TOML file: the knobs
// the original C source hardcoded as preprocessor constants
// (CONFIG_ECMA_STRING_MAX_CONCATENATION_LENGTH, the magic-string length
// limit), plus pool-pressure logging watermarks and a debug flag. A Go
// embedding of the engine exposes them as ordinary configuration instead.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config holds every tunable the engine consults outside the spec's core
// algorithms.
type Config struct {
	// MaxConcatenationLength is the largest combined byte-size Concat may
	// produce. It is checked by Concat's precondition assertion, so
	// exceeding it panics when Debug is true and is not checked when
	// Debug is false. Zero means unbounded.
	MaxConcatenationLength int `toml:"max_concatenation_length"`

	// MagicLengthLimit bounds how long a string can be and still be
	// checked against the magic tables during recognition (spec.md
	// §4.11). Strings longer than this are rejected without
	// materializing them.
	MagicLengthLimit int `toml:"magic_length_limit"`

	// NumberPoolWatermark is the outstanding-bytes threshold above which
	// the engine logs pool pressure.
	NumberPoolWatermark int64 `toml:"number_pool_watermark"`

	// ChunkPoolWatermark is the heap-chunk allocator's equivalent
	// watermark.
	ChunkPoolWatermark int64 `toml:"chunk_pool_watermark"`

	// Debug gates the precondition assertions in assert.go. Production
	// embeddings should leave this false, matching JERRY_NDEBUG builds.
	Debug bool `toml:"debug"`
}

// Default returns the configuration used when no file is loaded.
func Default() Config {
	return Config{
		MaxConcatenationLength: 0,
		MagicLengthLimit:       16,
		NumberPoolWatermark:    1 << 20,
		ChunkPoolWatermark:     1 << 20,
		Debug:                  false,
	}
}

// Load reads and decodes a TOML configuration file, starting from
// Default() so an incomplete file still yields sane values.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config: decode %s", path)
	}
	return cfg, nil
}
