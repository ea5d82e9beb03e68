package syntax

import "fmt"

// Location represents a position in the analysed source
type Location struct {
	Line   int `yaml:"line" json:"line" msgpack:"line"`                               // 1-based line number
	Column int `yaml:"column,omitempty" json:"column,omitempty" msgpack:"column"` // 1-based column, 0 when unspecified
}

// NewLocation creates a location, column 0 means unspecified
func NewLocation(line, column int) Location {
	if column < 0 {
		column = 0
	}
	return Location{Line: line, Column: column}
}

// HasColumn returns true if column was specified
func (l Location) HasColumn() bool {
	return l.Column > 0
}

func (l Location) String() string {
	if l.HasColumn() {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%d", l.Line)
}
