package rule

import (
	"fmt"
	"unicode/utf8"

	"github.com/viant/pylinter/inspector/syntax"
)

// DefaultMaxIdentifierLength is PEP 8 maximum line length, applied to identifier tokens
const DefaultMaxIdentifierLength = 79

// LongIdentifier flags name tokens longer than Max characters.
// The token text length is compared, not the physical line length.
type LongIdentifier struct {
	Max int
}

// NewLongIdentifier creates the rule, limit <= 0 falls back to DefaultMaxIdentifierLength
func NewLongIdentifier(limit int) *LongIdentifier {
	if limit <= 0 {
		limit = DefaultMaxIdentifierLength
	}
	return &LongIdentifier{Max: limit}
}

func (r *LongIdentifier) Name() string       { return "long-identifier" }
func (r *LongIdentifier) Category() Category { return Style }
func (r *LongIdentifier) Description() string {
	return fmt.Sprintf("identifier token longer than %d characters", r.Max)
}

func (r *LongIdentifier) CheckTokens(tokens []syntax.Token) []Diagnostic {
	var result []Diagnostic
	for _, token := range tokens {
		if token.Kind != syntax.Name || utf8.RuneCountInString(token.Text) <= r.Max {
			continue
		}
		line := token.Location.Line
		result = append(result, NewDiagnostic(r, token.Location,
			fmt.Sprintf("Line %d: identifier exceeds %d characters", line, r.Max)))
	}
	return result
}
