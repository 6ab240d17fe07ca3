package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// RunConfig is a YAML preset for the `run` command. Unset keys keep the
// flag defaults; flags given on the command line win over the preset.
type RunConfig struct {
	N       *int    `yaml:"n"`
	Trials  *int    `yaml:"trials"`
	Seed    *int64  `yaml:"seed"`
	Workers *int    `yaml:"workers"`
	Output  *string `yaml:"output"`
	Trace   *bool   `yaml:"trace"`
}

// LoadRunConfig reads and parses a YAML run preset.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	var rc RunConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	// An empty document is an empty preset.
	if err := decoder.Decode(&rc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing run config: %w", err)
	}
	return &rc, nil
}

// applyRunConfig copies preset values into the flag variables of flags the
// user did not set explicitly.
func applyRunConfig(cmd *cobra.Command, rc *RunConfig) {
	changed := cmd.Flags().Changed
	if rc.N != nil && !changed("n") {
		gridSize = *rc.N
	}
	if rc.Trials != nil && !changed("trials") {
		trials = *rc.Trials
	}
	if rc.Seed != nil && !changed("seed") {
		seed = *rc.Seed
	}
	if rc.Workers != nil && !changed("workers") {
		workers = *rc.Workers
	}
	if rc.Output != nil && !changed("output") {
		outputFormat = *rc.Output
	}
	if rc.Trace != nil && !changed("trace") {
		traceTrials = *rc.Trace
	}
}
