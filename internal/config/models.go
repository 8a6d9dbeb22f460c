package config

import (
	"sort"
	"time"

	"github.com/muurk/wordfinder/internal/generator"
	"github.com/muurk/wordfinder/internal/puzzle"
)

// CurrentVersion is the settings file schema version.
const CurrentVersion = 1

// Settings represents the entire user configuration file.
type Settings struct {
	Version         int                 `yaml:"version"`
	Endpoint        string              `yaml:"endpoint,omitempty"`         // Generation service URL
	TimeoutSeconds  int                 `yaml:"timeout_seconds,omitempty"`  // Request timeout
	DefaultRows     string              `yaml:"default_rows,omitempty"`     // Initial rows form value
	DefaultColumns  string              `yaml:"default_columns,omitempty"`  // Initial columns form value
	DiscoverTimeout int                 `yaml:"discover_timeout,omitempty"` // mDNS browse timeout in seconds
	WordLists       map[string][]string `yaml:"word_lists,omitempty"`       // Named word lists for --list
}

// NewSettings creates Settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:         CurrentVersion,
		Endpoint:        generator.DefaultEndpoint,
		TimeoutSeconds:  int(generator.DefaultTimeout / time.Second),
		DefaultRows:     puzzle.DefaultRows,
		DefaultColumns:  puzzle.DefaultColumns,
		DiscoverTimeout: 5,
		WordLists:       make(map[string][]string),
	}
}

// fillDefaults sets zero fields to their defaults.
func (s *Settings) fillDefaults() {
	def := NewSettings()
	if s.Endpoint == "" {
		s.Endpoint = def.Endpoint
	}
	if s.TimeoutSeconds <= 0 {
		s.TimeoutSeconds = def.TimeoutSeconds
	}
	if s.DefaultRows == "" {
		s.DefaultRows = def.DefaultRows
	}
	if s.DefaultColumns == "" {
		s.DefaultColumns = def.DefaultColumns
	}
	if s.DiscoverTimeout <= 0 {
		s.DiscoverTimeout = def.DiscoverTimeout
	}
	if s.WordLists == nil {
		s.WordLists = make(map[string][]string)
	}
}

// Timeout returns the request timeout as a duration.
func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// WordList returns a named word list and whether it exists.
func (s *Settings) WordList(name string) ([]string, bool) {
	words, ok := s.WordLists[name]
	return words, ok
}

// WordListNames returns the configured list names, sorted.
func (s *Settings) WordListNames() []string {
	names := make([]string, 0, len(s.WordLists))
	for name := range s.WordLists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InitialConfiguration returns the form values the client starts with.
func (s *Settings) InitialConfiguration() puzzle.Configuration {
	cfg := puzzle.NewConfiguration()
	if s.DefaultRows != "" {
		cfg.Rows = s.DefaultRows
	}
	if s.DefaultColumns != "" {
		cfg.Columns = s.DefaultColumns
	}
	return cfg
}
