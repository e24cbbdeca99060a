package asciiart

import (
	"encoding/json"
	"time"
)

// Result is the output of one conversion.
type Result struct {
	// Text is the grid as plain text, rows joined by "\n".
	Text string `json:"text" yaml:"text"`
	// HTML is the grid wrapped in one <pre>, every glyph escaped. Colored output wraps each glyph in a <span>.
	HTML string `json:"html" yaml:"html"`
	// Characters is the row-major glyph grid.
	Characters [][]string `json:"characters" yaml:"characters"`
	// Colors is the row-major color grid. It is nil unless colored output was requested.
	Colors   [][]CellColor `json:"colors,omitempty" yaml:"colors,omitempty"`
	Metadata Metadata      `json:"metadata" yaml:"metadata"`
}

// Metadata describes a Result.
type Metadata struct {
	Width          int
	Height         int
	CharacterCount int
	// ProcessingTime covers re-sampling and the grid loop.
	ProcessingTime time.Duration
	// Charset is the resolved glyph ramp, darkest first.
	Charset  string
	HasColor bool
}

// metadataWire is the serialised form of Metadata, with the processing time in milliseconds.
type metadataWire struct {
	Width          int     `json:"width" yaml:"width"`
	Height         int     `json:"height" yaml:"height"`
	CharacterCount int     `json:"characterCount" yaml:"characterCount"`
	ProcessingTime float64 `json:"processingTime" yaml:"processingTime"`
	Charset        string  `json:"charset" yaml:"charset"`
	HasColor       bool    `json:"hasColor" yaml:"hasColor"`
}

func (m Metadata) wire() metadataWire {
	return metadataWire{
		Width:          m.Width,
		Height:         m.Height,
		CharacterCount: m.CharacterCount,
		ProcessingTime: float64(m.ProcessingTime) / float64(time.Millisecond),
		Charset:        m.Charset,
		HasColor:       m.HasColor,
	}
}

// MarshalJSON writes the processing time in milliseconds.
func (m Metadata) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.wire())
}

// MarshalYAML writes the processing time in milliseconds.
func (m Metadata) MarshalYAML() (any, error) {
	return m.wire(), nil
}
