// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package config holds the settings that steer DXL translation.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Translator configures the query-to-DXL translator.
type Translator struct {
	// EnableMasterOnlyQueries allows queries over master-only (single node)
	// tables. Such tables are mostly catalog tables, which are rarely
	// analyzed; when disabled the translator reports them as unsupported so
	// the host planner handles the query instead.
	EnableMasterOnlyQueries bool `yaml:"enable_master_only_queries"`

	// FirstColumnID is the first id handed out by the column id generator of
	// a translation unit. Zero is reserved to mean "unknown column".
	FirstColumnID uint32 `yaml:"first_column_id"`

	// Verbosity is the log verbosity applied by tools embedding the
	// translator.
	Verbosity int `yaml:"verbosity"`
}

// Default returns the default translator configuration.
func Default() Translator {
	return Translator{
		EnableMasterOnlyQueries: false,
		FirstColumnID:           1,
	}
}

// Load reads a YAML configuration file. Fields absent from the file keep
// their default values.
func Load(path string) (Translator, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Translator{}, errors.Wrapf(err, "reading translator config")
	}
	if err := Parse(data, &cfg); err != nil {
		return Translator{}, errors.Wrapf(err, "loading %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg and validates the result. Unknown keys are
// rejected.
func Parse(data []byte, cfg *Translator) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "decoding translator config")
	}
	return cfg.Validate()
}

// Validate checks the configuration for values the translator cannot use.
func (c *Translator) Validate() error {
	if c.FirstColumnID == 0 {
		return errors.New("first_column_id must be positive; column id 0 is reserved")
	}
	if c.Verbosity < 0 {
		return errors.Newf("verbosity must be non-negative, got %d", c.Verbosity)
	}
	return nil
}

// AddFlags registers command-line flags that override the configuration.
func (c *Translator) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&c.EnableMasterOnlyQueries, "enable-master-only-queries", c.EnableMasterOnlyQueries,
		"translate queries over master-only tables instead of falling back")
	fs.Uint32Var(&c.FirstColumnID, "first-column-id", c.FirstColumnID,
		"first column id handed out by the id generator")
	fs.IntVarP(&c.Verbosity, "verbosity", "v", c.Verbosity, "log verbosity")
}
