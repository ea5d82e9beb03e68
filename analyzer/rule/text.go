package rule

import (
	"strings"
	"unicode/utf8"

	"github.com/viant/pylinter/inspector/syntax"
)

// locate converts byte offset in source into a location
func locate(source string, offset int) syntax.Location {
	if offset < 0 {
		offset = 0
	}
	if offset > len(source) {
		offset = len(source)
	}
	prefix := source[:offset]
	line := strings.Count(prefix, "\n") + 1
	lineStart := strings.LastIndexByte(prefix, '\n') + 1
	return syntax.NewLocation(line, utf8.RuneCountInString(prefix[lineStart:])+1)
}
