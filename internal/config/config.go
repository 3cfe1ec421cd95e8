// Package config loads YAML run files for the drivers.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNotScalar is returned when a params entry is a list or a mapping.
var ErrNotScalar = errors.New("param is not a scalar")

// File is a run file:
//
//	sim: meta
//	seed: 7
//	scale: 4
//	tps: 30
//	params:
//	  w: 8
//	  sub: 16
type File struct {
	Sim    string               `yaml:"sim"`
	Seed   *int64               `yaml:"seed"`
	Scale  int                  `yaml:"scale"`
	TPS    int                  `yaml:"tps"`
	Params map[string]yaml.Node `yaml:"params"`
}

// Load reads and decodes the run file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read %s: %w", path, err)
	}
	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Decode parses a run file. Unknown top-level keys are rejected.
func Decode(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("yaml decode: %w", err)
	}
	if _, err := f.SimParams(); err != nil {
		return File{}, err
	}
	return f, nil
}

// SimParams flattens params into the string map sim factories take. Values
// keep the text they were written with, so 0.10 stays "0.10".
func (f File) SimParams() (map[string]string, error) {
	if len(f.Params) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(f.Params))
	for key, node := range f.Params {
		if node.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("params.%s: %w", key, ErrNotScalar)
		}
		out[key] = node.Value
	}
	return out, nil
}
