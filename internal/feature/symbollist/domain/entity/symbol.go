// Package entity defines the domain models for the symbollist feature.
package entity

// Symbol represents a tracked crypto asset in the catalog.
// ID is the uppercase ticker assigned by the provisioning process.
// Name, Image and Description stay empty until Initialized becomes true.
type Symbol struct {
	ID          string `json:"id"`
	Initialized bool   `json:"initialized"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// Metadata is the descriptive part of a Symbol fetched once from the market-data provider.
type Metadata struct {
	Name        string
	Image       string
	Description string
}

// Complete reports whether every metadata field is populated.
func (m Metadata) Complete() bool {
	return m.Name != "" && m.Image != "" && m.Description != ""
}

// WithMetadata returns a copy of s marked as initialized with md applied.
func (s Symbol) WithMetadata(md Metadata) Symbol {
	s.Initialized = true
	s.Name = md.Name
	s.Image = md.Image
	s.Description = md.Description
	return s
}
