// Package config loads the "Configuration surface consumed" from
// spec §6: preprocessor definitions, include directories, and line
// length limits. Adapted from the teacher's cmd/smpe_lint/config.go,
// which loads YAML (and, by extension, JSON) via gopkg.in/yaml.v3.
// This is a library loader, not workspace configuration discovery —
// callers hand the resulting Options (or its PPDefs and IncludeDirs)
// to diagnostics.Collect and preprocessor.Run directly.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Options holds every knob named in spec §6. All fields default to
// their zero value, which spec §6 defines as "inactive".
type Options struct {
	// PPDefs seeds the preprocessor's working definitions map.
	PPDefs map[string]string `yaml:"pp_defs" json:"pp_defs"`
	// IncludeDirs is consulted in order for `#include "file"`
	// resolution; first match wins (see the ordered-list Open
	// Question in spec §9).
	IncludeDirs []string `yaml:"include_dirs" json:"include_dirs"`
	// MaxLineLength, zero means inactive.
	MaxLineLength int `yaml:"max_line_length" json:"max_line_length"`
	// MaxCommentLineLength, zero means inactive.
	MaxCommentLineLength int `yaml:"max_comment_line_length" json:"max_comment_line_length"`
	// PPSuffixes lists file extensions that trigger preprocessing,
	// compared exactly (case-sensitively). When empty, a file is preprocessed iff its
	// extension equals its own upper-case form (spec §6).
	PPSuffixes []string `yaml:"pp_suffixes" json:"pp_suffixes"`
}

// Default returns the all-inactive configuration.
func Default() *Options {
	return &Options{
		PPDefs: make(map[string]string),
	}
}

// Load reads configuration from path, choosing the decoder by
// extension: a ".json" file is decoded as JSON, anything else as YAML.
func Load(path string) (*Options, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	opts := Default()

	if filepath.Ext(path) == ".json" {
		err = json.Unmarshal(raw, opts)
	} else {
		err = yaml.Unmarshal(raw, opts)
	}
	if err != nil {
		return nil, err
	}
	if opts.PPDefs == nil {
		opts.PPDefs = make(map[string]string)
	}
	return opts, nil
}

// ShouldPreprocess decides whether a file needs preprocessing, per
// spec §6: its extension appears in PPSuffixes, or (when PPSuffixes
// is empty) the extension equals its own upper-case form, e.g. ".F90".
func (o *Options) ShouldPreprocess(path string) bool {
	ext := filepath.Ext(path)
	if len(o.PPSuffixes) > 0 {
		for _, suffix := range o.PPSuffixes {
			if ext == suffix {
				return true
			}
		}
		return false
	}
	return ext != "" && ext == strings.ToUpper(ext)
}
