package tui

import (
	"context"

	"github.com/muurk/wordfinder/internal/puzzle"
)

// Field identifies one configuration input.
type Field int

const (
	FieldWords Field = iota
	FieldRows
	FieldColumns
)

// String returns the field name used in logs.
func (f Field) String() string {
	switch f {
	case FieldWords:
		return "words"
	case FieldRows:
		return "rows"
	case FieldColumns:
		return "columns"
	default:
		return "unknown"
	}
}

// Store holds the configuration shared by all screens. It is owned by the
// root model; screens read it when mounted and report edits with
// configChangedMsg.
type Store struct {
	Config puzzle.Configuration
}

// NewStore creates a store holding cfg.
func NewStore(cfg puzzle.Configuration) *Store {
	return &Store{Config: cfg}
}

// Set stores a raw field value as typed, without validation.
func (s *Store) Set(field Field, value string) {
	switch field {
	case FieldWords:
		s.Config.WordText = value
	case FieldRows:
		s.Config.Rows = value
	case FieldColumns:
		s.Config.Columns = value
	}
}

// Sequence hands out generation request numbers. Numbers start at 1 and
// only increase, so a response can be matched against the latest request.
// It is only touched from the Bubble Tea update loop.
type Sequence struct {
	last uint64
}

// Next returns a new request number.
func (s *Sequence) Next() uint64 {
	s.last++
	return s.last
}

// Last returns the most recently issued number, or 0.
func (s *Sequence) Last() uint64 {
	return s.last
}

// GenerateFunc requests a puzzle from the generation service.
type GenerateFunc func(ctx context.Context, req puzzle.GenerationRequest) (*puzzle.Result, error)
