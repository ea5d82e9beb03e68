package syntax

// TokenKind represents a lexical token class
type TokenKind int

const (
	Name TokenKind = iota
	Number
	String
	Operator
	Comment
	Newline
	NL // non-logical line break (blank line or inside brackets)
	Indent
	Dedent
	EndMarker
)

var tokenKindNames = [...]string{
	Name:      "NAME",
	Number:    "NUMBER",
	String:    "STRING",
	Operator:  "OP",
	Comment:   "COMMENT",
	Newline:   "NEWLINE",
	NL:        "NL",
	Indent:    "INDENT",
	Dedent:    "DEDENT",
	EndMarker: "ENDMARKER",
}

func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "UNKNOWN"
}

// Token represents a single lexical token
type Token struct {
	Kind     TokenKind
	Text     string
	Location Location
}

// IsSignificant returns true for tokens that carry code (not layout or comments)
func (t Token) IsSignificant() bool {
	switch t.Kind {
	case Name, Number, String, Operator:
		return true
	}
	return false
}
