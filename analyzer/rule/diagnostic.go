package rule

import (
	"fmt"
	"strings"

	"github.com/viant/pylinter/inspector/syntax"
)

// Category represents diagnostic category
type Category int

const (
	Style Category = iota
	Security
	Performance
)

// Categories lists all categories in reporting order
var Categories = []Category{Style, Security, Performance}

func (c Category) String() string {
	switch c {
	case Style:
		return "style"
	case Security:
		return "security"
	case Performance:
		return "performance"
	}
	return "unknown"
}

func (c Category) MarshalText() ([]byte, error) {
	if c < Style || c > Performance {
		return nil, fmt.Errorf("invalid category: %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	category, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = category
	return nil
}

// ParseCategory parses category name
func ParseCategory(name string) (Category, error) {
	for _, candidate := range Categories {
		if strings.EqualFold(candidate.String(), name) {
			return candidate, nil
		}
	}
	return 0, fmt.Errorf("unknown category: %q", name)
}

// Diagnostic represents a single reported finding
type Diagnostic struct {
	Rule     string          `yaml:"rule" json:"rule" msgpack:"rule"`
	Category Category        `yaml:"category" json:"category" msgpack:"category"`
	Message  string          `yaml:"message" json:"message" msgpack:"message"`
	Location syntax.Location `yaml:"location" json:"location" msgpack:"location"`
}

// NewDiagnostic creates diagnostic emitted by the supplied rule
func NewDiagnostic(rule Rule, location syntax.Location, message string) Diagnostic {
	return Diagnostic{
		Rule:     rule.Name(),
		Category: rule.Category(),
		Message:  message,
		Location: location,
	}
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%v [%v] %s", d.Location, d.Rule, d.Message)
}
