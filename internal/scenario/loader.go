package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/elastic/pkg/collision"
)

// File is the batch description read by the collide command, in YAML or JSON.
type File struct {
	Method        string     `json:"method" yaml:"method"`
	StrictCenters *bool      `json:"strict_centers,omitempty" yaml:"strict_centers,omitempty"`
	InvertY       bool       `json:"invert_y" yaml:"invert_y"`
	Tolerance     float64    `json:"tolerance" yaml:"tolerance"`
	Workers       int        `json:"workers" yaml:"workers"`
	LogLevel      string     `json:"log_level" yaml:"log_level"`
	Scenarios     []Scenario `json:"scenarios" yaml:"scenarios"`
}

// Scenario is one pair of bodies at the instant of contact.
type Scenario struct {
	ID    string         `json:"id,omitempty" yaml:"id,omitempty"`
	Name  string         `json:"name,omitempty" yaml:"name,omitempty"`
	Body1 collision.Body `json:"body1" yaml:"body1"`
	Body2 collision.Body `json:"body2" yaml:"body2"`
}

// LoadJSON loads a scenario file from a JSON reader.
func LoadJSON(r io.Reader) (*File, error) {
	var f File
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadYAML loads a scenario file from a YAML reader.
func LoadYAML(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadFile picks the decoder from the file extension and validates the result.
func LoadFile(path string) (*File, error) {
	var load func(io.Reader) (*File, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		load = LoadYAML
	case ".json":
		load = LoadJSON
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	f, err := load(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err = f.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return f, nil
}

// Validate checks the header and every body, and assigns IDs to scenarios that have none.
// Unnamed scenarios are named after their ID.
func (f *File) Validate() error {
	if _, err := f.Config(); err != nil {
		return err
	}
	if len(f.Scenarios) == 0 {
		return ErrNoScenarios
	}

	seen := make(map[string]struct{}, len(f.Scenarios))
	for i := range f.Scenarios {
		s := &f.Scenarios[i]
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		if s.Name == "" {
			s.Name = s.ID
		}
		if _, ok := seen[s.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateScenarios, s.ID)
		}
		seen[s.ID] = struct{}{}

		if err := s.Body1.Validate(); err != nil {
			return fmt.Errorf("scenario %d (%s) body1: %w", i, s.Name, err)
		}
		if err := s.Body2.Validate(); err != nil {
			return fmt.Errorf("scenario %d (%s) body2: %w", i, s.Name, err)
		}
	}
	return nil
}
