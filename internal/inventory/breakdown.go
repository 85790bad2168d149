package inventory

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rshade/carbonfocus/internal/factors"
)

// Breakdown lists per-category emissions in category declaration order.
// It encodes to JSON as an object keyed by label, preserving that order.
type Breakdown []Line

// Map returns the breakdown as label -> tCO2e.
func (b Breakdown) Map() map[string]float64 {
	m := make(map[string]float64, len(b))
	for _, l := range b {
		m[l.Label] = l.Emissions
	}
	return m
}

// Get returns the emissions for c and whether c is present.
func (b Breakdown) Get(c factors.Category) (float64, bool) {
	for _, l := range b {
		if l.Category == c {
			return l.Emissions, true
		}
	}
	return 0, false
}

// Sum adds up every line.
func (b Breakdown) Sum() float64 {
	var s float64
	for _, l := range b {
		s += l.Emissions
	}
	return s
}

// MarshalJSON writes {"Label": value, ...} in declaration order.
func (b Breakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, l := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(l.Label)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(l.Emissions)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the object form written by MarshalJSON, keeping the
// order the keys appear in.
func (b *Breakdown) UnmarshalJSON(data []byte) error {
	if b == nil {
		return errors.New("cannot unmarshal into nil Breakdown")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*b = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("breakdown: expected object, got %v", tok)
	}

	out := Breakdown{}
	for dec.More() {
		keyTok, keyErr := dec.Token()
		if keyErr != nil {
			return keyErr
		}
		label, _ := keyTok.(string)
		var v float64
		if err = dec.Decode(&v); err != nil {
			return fmt.Errorf("breakdown %q: %w", label, err)
		}
		c, catErr := factors.CategoryForLabel(label)
		if catErr != nil {
			return catErr
		}
		out = append(out, Line{Category: c, Label: label, Emissions: v})
	}
	*b = out
	return nil
}
