package profile

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed default.json
var defaultDocument []byte

// Default returns the embedded profile used whenever a fetch fails. Each call
// decodes a fresh copy.
func Default() Profile {
	p, err := Decode(defaultDocument)
	if err != nil {
		panic(fmt.Sprintf("embedded default profile is invalid: %v", err))
	}
	return p
}

// Decode parses and validates a JSON profile document. The document must be
// a single JSON value.
func Decode(data []byte) (Profile, error) {
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}
