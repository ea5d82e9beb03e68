package rule

// Default returns built-in rules in evaluation order
func Default(maxIdentifierLength int) *Set {
	return NewSet(
		NewBannedCallText(),
		&AppendInLoopText{},
		NewLongIdentifier(maxIdentifierLength),
		NewBannedCall(),
		&AppendCall{},
	)
}
