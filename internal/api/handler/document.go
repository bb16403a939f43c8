package handler

import (
	"encoding/json"
	"fmt"
	"strings"
)

// document is the loosely-typed view of a published artifact. Player entries
// are bare name strings in legacy-mode documents and objects in
// directory-mode documents; both are handled transparently.
type document struct {
	Teams map[string][]playerValue `json:"teams"`
}

// playerValue is one player entry, keeping the raw bytes for passthrough
// alongside the identity fields used for matching.
type playerValue struct {
	raw  json.RawMessage
	id   string
	name string
}

func (p *playerValue) UnmarshalJSON(b []byte) error {
	p.raw = append(p.raw[:0], b...)

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		p.name = s
		return nil
	}

	var obj struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	p.id = obj.ID
	p.name = obj.Name
	return nil
}

// matches implements the consumer matching contract: by id when both sides
// have one, else by case-insensitive name.
func (p playerValue) matches(id, name string) bool {
	if id != "" && p.id != "" {
		return id == p.id
	}
	return name != "" && strings.EqualFold(p.name, name)
}

func parseDocument(data []byte) (*document, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse player database: %w", err)
	}
	return &doc, nil
}
