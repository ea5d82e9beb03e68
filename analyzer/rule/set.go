package rule

// Set contains rules in registration order
type Set struct {
	rules []Rule
}

// NewSet creates a rule set
func NewSet(rules ...Rule) *Set {
	result := &Set{rules: make([]Rule, 0, len(rules))}
	for _, rule := range rules {
		result.Add(rule)
	}
	return result
}

// Add appends a rule, the registration order drives evaluation order
func (s *Set) Add(rule Rule) {
	if rule == nil {
		return
	}
	s.rules = append(s.rules, rule)
}

// Rules returns all rules
func (s *Set) Rules() []Rule {
	return s.rules
}

// Lookup returns rule by name
func (s *Set) Lookup(name string) Rule {
	for _, rule := range s.rules {
		if rule.Name() == name {
			return rule
		}
	}
	return nil
}

// Without returns a set excluding named rules
func (s *Set) Without(names ...string) *Set {
	if len(names) == 0 {
		return s
	}
	excluded := make(map[string]bool, len(names))
	for _, name := range names {
		excluded[name] = true
	}
	result := NewSet()
	for _, rule := range s.rules {
		if !excluded[rule.Name()] {
			result.Add(rule)
		}
	}
	return result
}

// TextRules returns rules inspecting raw text
func (s *Set) TextRules() []TextRule {
	var result []TextRule
	for _, rule := range s.rules {
		if textRule, ok := rule.(TextRule); ok {
			result = append(result, textRule)
		}
	}
	return result
}

// TokenRules returns rules inspecting token stream
func (s *Set) TokenRules() []TokenRule {
	var result []TokenRule
	for _, rule := range s.rules {
		if tokenRule, ok := rule.(TokenRule); ok {
			result = append(result, tokenRule)
		}
	}
	return result
}

// NodeRules returns rules inspecting syntax nodes
func (s *Set) NodeRules() []NodeRule {
	var result []NodeRule
	for _, rule := range s.rules {
		if nodeRule, ok := rule.(NodeRule); ok {
			result = append(result, nodeRule)
		}
	}
	return result
}
