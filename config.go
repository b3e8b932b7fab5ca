package natrix

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TuningConfig holds the few knobs spec.md leaves as implementation
// constants (arena chunk size, GC threshold and survival ratio, root-
// and indent-stack capacities) so they can be overridden for testing
// or tuning without touching source. Every field has the spec's
// default baked into NewTuningConfig; running without a -config flag
// behaves exactly as if this struct didn't exist. The parser reads
// ArenaChunkSize and IndentStackCap; the GC fields are read by
// NewGCTuned only, and NewEvaluator always builds its GC from the
// defaults, so the CLI's -config does not change GC behaviour.
//
// Grounded on the teacher's Config (config.go): a flat, named
// settings bag the loader and compiler both read from — generalized
// here from a typed string-keyed map to a plain struct, since
// natrix's tuning surface is a small fixed set of integers rather than
// the grammar compiler's open-ended boolean/int/string options.
type TuningConfig struct {
	ArenaChunkSize  int `yaml:"arena_chunk_size"`
	GCInitialThresh int `yaml:"gc_initial_threshold"`
	GCSurvivalNum   int `yaml:"gc_survival_numerator"`
	GCSurvivalDen   int `yaml:"gc_survival_denominator"`
	RootStackCap    int `yaml:"root_stack_capacity"`
	IndentStackCap  int `yaml:"indent_stack_capacity"`
}

// NewTuningConfig returns the spec's defaults.
func NewTuningConfig() *TuningConfig {
	return &TuningConfig{
		ArenaChunkSize:  defaultChunkSize,
		GCInitialThresh: initialThreshold,
		GCSurvivalNum:   survivalNum,
		GCSurvivalDen:   survivalDen,
		RootStackCap:    maxRoots,
		IndentStackCap:  maxIndentDepth,
	}
}

// LoadTuningConfig reads YAML overrides from path on top of the
// defaults. Any field the file omits keeps its default value.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	cfg := NewTuningConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tuning config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing tuning config: %w", err)
	}
	return cfg, nil
}
