package puzzle

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Default form values used when the client starts.
const (
	DefaultRows    = "15"
	DefaultColumns = "15"

	// MinDimension and MaxDimension are the advisory bounds shown next to
	// the row and column inputs. They are not enforced.
	MinDimension = 5
	MaxDimension = 30
)

// Configuration is the raw state of the configuration form. Rows and Columns
// hold exactly what was typed, so "", "007" and "12abc" are all legal values.
type Configuration struct {
	Rows     string
	Columns  string
	WordText string
}

// NewConfiguration returns the configuration the client starts with.
func NewConfiguration() Configuration {
	return Configuration{
		Rows:    DefaultRows,
		Columns: DefaultColumns,
	}
}

// Words derives the word list from WordText: one entry per line, trimmed,
// empty lines dropped, order and duplicates preserved. The result is never
// nil so it encodes as [] rather than null.
func (c Configuration) Words() []string {
	return SplitWords(c.WordText)
}

// Request builds the payload sent to the generation service.
func (c Configuration) Request() GenerationRequest {
	return GenerationRequest{
		Rows:    ParseDimension(c.Rows),
		Columns: ParseDimension(c.Columns),
		Words:   c.Words(),
	}
}

// SplitWords splits text into trimmed, non-empty lines.
func SplitWords(text string) []string {
	words := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	return words
}

// Dimension is a row or column count as sent on the wire. An invalid
// dimension marshals as JSON null.
type Dimension struct {
	Value int
	Valid bool
}

// Dim returns a valid Dimension.
func Dim(n int) Dimension {
	return Dimension{Value: n, Valid: true}
}

// ParseDimension reads the leading integer of raw the way a browser's
// parseInt does: surrounding whitespace and an optional sign are accepted,
// a 0x prefix switches to hexadecimal, and parsing stops at the first
// character that is not a digit. Input with no leading digits, including a
// bare "0x", yields an invalid Dimension. Unlike parseInt, a value that does
// not fit in an int is also invalid rather than a rounded float.
func ParseDimension(raw string) Dimension {
	s := strings.TrimSpace(raw)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return Dimension{}
	}

	n, err := strconv.ParseInt(s[:end], base, 0)
	if err != nil {
		// out of int range
		return Dimension{}
	}
	if neg {
		n = -n
	}
	return Dim(int(n))
}

func isDigit(b byte, base int) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case base == 16 && b >= 'a' && b <= 'f':
		return true
	case base == 16 && b >= 'A' && b <= 'F':
		return true
	}
	return false
}

// InAdvisoryRange reports whether the dimension is within the bounds shown
// to the user.
func (d Dimension) InAdvisoryRange() bool {
	return d.Valid && d.Value >= MinDimension && d.Value <= MaxDimension
}

// String returns the decimal value, or "NaN" for an invalid dimension.
func (d Dimension) String() string {
	if !d.Valid {
		return "NaN"
	}
	return strconv.Itoa(d.Value)
}

// MarshalJSON implements json.Marshaler.
func (d Dimension) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, int64(d.Value), 10), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Dimension) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Dimension{}
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*d = Dim(n)
	return nil
}

// GenerationRequest is the body POSTed to the generation service.
type GenerationRequest struct {
	Rows    Dimension `json:"rows"`
	Columns Dimension `json:"columns"`
	Words   []string  `json:"words"`
}
