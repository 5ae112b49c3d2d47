package bank

import (
	_ "embed"
)

//go:embed default.yaml
var defaultBank []byte

// DefaultPath is the display name of the built-in bank.
const DefaultPath = "<built-in>"

// Default returns the built-in practice bank.
func Default() (*File, error) {
	return Parse(defaultBank, FormatYAML)
}
