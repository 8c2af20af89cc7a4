// SPDX-License-Identifier: MIT
// Package: netgen/batch

package batch

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML batch layout:
//
//	problems:
//	  - seed: 13502460
//	    problem: 1
//	    nodes: 512
//	    sources: 10
//	    ...
type File struct {
	Problems []Record `yaml:"problems"`
}

// DecodeYAML decodes a batch file. Unknown keys are rejected so that a
// misspelled parameter cannot silently default to zero.
func DecodeYAML(r io.Reader) ([]Record, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("batch: decode yaml: %w", err)
	}
	return f.Problems, nil
}

// LoadYAML reads and decodes a batch file from path.
func LoadYAML(path string) ([]Record, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("batch: open %s: %w", path, err)
	}
	defer fh.Close()

	return DecodeYAML(fh)
}
