package puzzle

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMissingGrid is returned when a response has no theGrid field.
	ErrMissingGrid = errors.New("response has no theGrid")
	// ErrMissingPlacedWords is returned when a response has no placedWords field.
	ErrMissingPlacedWords = errors.New("response has no placedWords")
)

// GenerationResponse is the body returned by the generation service.
type GenerationResponse struct {
	TheGrid     string      `json:"theGrid"`
	PlacedWords PlacedWords `json:"placedWords"`
}

// wireResponse uses pointers so absent fields can be told apart from empty ones.
type wireResponse struct {
	TheGrid     *string      `json:"theGrid"`
	PlacedWords *PlacedWords `json:"placedWords"`
}

// EncodeGrid renders grid as the JSON string carried in theGrid.
func EncodeGrid(grid Grid) (string, error) {
	if grid == nil {
		grid = Grid{}
	}
	data, err := json.Marshal(grid)
	if err != nil {
		return "", fmt.Errorf("encode grid: %w", err)
	}
	return string(data), nil
}

// DecodeGrid parses the JSON string carried in theGrid.
func DecodeGrid(encoded string) (Grid, error) {
	var grid Grid
	if err := json.Unmarshal([]byte(encoded), &grid); err != nil {
		return nil, fmt.Errorf("decode theGrid: %w", err)
	}
	if grid == nil {
		// "null"
		return nil, fmt.Errorf("decode theGrid: %w", ErrMissingGrid)
	}
	return grid, nil
}

// DecodeResponse decodes a full response body into a Result.
func DecodeResponse(body []byte) (*Result, error) {
	var wire wireResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if wire.TheGrid == nil {
		return nil, ErrMissingGrid
	}
	if wire.PlacedWords == nil {
		return nil, ErrMissingPlacedWords
	}

	grid, err := DecodeGrid(*wire.TheGrid)
	if err != nil {
		return nil, err
	}
	return NewResult(grid, *wire.PlacedWords), nil
}

// EncodeResponse builds the response body for result.
func EncodeResponse(result *Result) ([]byte, error) {
	encoded, err := EncodeGrid(result.Grid)
	if err != nil {
		return nil, err
	}
	placed := result.PlacedWords
	if placed == nil {
		placed = PlacedWords{}
	}
	return json.Marshal(GenerationResponse{
		TheGrid:     encoded,
		PlacedWords: placed,
	})
}
