package toml

import "fmt"

const currentSchemaVersion = 1

type deckSchema struct {
	Version int               `toml:"version"`
	Title   string            `toml:"title"`
	Slides  []slideSchema     `toml:"slides"`
	Views   map[string]string `toml:"views,omitempty"`
}

func (s *deckSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if s.Title == "" {
		s.Title = "Untitled deck"
	}
}

func (s deckSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported deck schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type slideSchema struct {
	ID       string `toml:"id"`
	Module   string `toml:"module"`
	Kind     string `toml:"kind"`
	Title    string `toml:"title"`
	Subtitle string `toml:"subtitle,omitempty"`
	View     string `toml:"view"`
}
