package syntax

import "fmt"

// TokenizeError reports malformed lexical structure
type TokenizeError struct {
	Location Location `yaml:"location" json:"location" msgpack:"location"`
	Reason   string   `yaml:"reason" json:"reason" msgpack:"reason"`
}

func (e *TokenizeError) Error() string {
	return fmt.Sprintf("tokenize error at %v: %s", e.Location, e.Reason)
}

// ParseError reports malformed grammar
type ParseError struct {
	Location Location `yaml:"location" json:"location" msgpack:"location"`
	Reason   string   `yaml:"reason" json:"reason" msgpack:"reason"`
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %v: %s", e.Location, e.Reason)
}
