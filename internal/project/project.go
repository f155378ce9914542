// Package project loads the yaml split plan: who holds shares, how many of
// them must come together, and how shares are tagged and integrity-checked.
package project

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seb-m/tss"
)

// Holder is a person who will keep one share.
type Holder struct {
	Name    string `yaml:"name"`
	Contact string `yaml:"contact,omitempty"`
}

// Plan describes one splitting operation.
type Plan struct {
	Identifier string   `yaml:"identifier"`
	Threshold  int      `yaml:"threshold"`
	Shares     int      `yaml:"shares,omitempty"` // defaults to len(holders)
	Hash       string   `yaml:"hash,omitempty"`   // none, sha1 or sha256 (default)
	Holders    []Holder `yaml:"holders,omitempty"`
}

// Load reads a plan file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan file: %w", err)
	}
	return &p, nil
}

// Save writes the plan to path.
func (p *Plan) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing plan file: %w", err)
	}
	return nil
}

// ShareCount returns the number of shares the plan produces.
func (p *Plan) ShareCount() int {
	if p.Shares > 0 {
		return p.Shares
	}
	return len(p.Holders)
}

// HashChoice resolves the plan's hash name, defaulting to sha256.
func (p *Plan) HashChoice() (tss.Hash, error) {
	if p.Hash == "" {
		return tss.HashSHA256, nil
	}
	return tss.ParseHash(p.Hash)
}

// HolderName returns the name for share i (0-based), empty when the plan
// names fewer holders than shares.
func (p *Plan) HolderName(i int) string {
	if i < len(p.Holders) {
		return p.Holders[i].Name
	}
	return ""
}

// Validate checks the plan against the same bounds the engine enforces, so
// mistakes surface before any secret is read.
func (p *Plan) Validate() error {
	count := p.ShareCount()
	if p.Threshold < 1 {
		return fmt.Errorf("threshold must be at least 1, got %d", p.Threshold)
	}
	if count < p.Threshold {
		return fmt.Errorf("threshold (%d) cannot exceed share count (%d)", p.Threshold, count)
	}
	if count > tss.MaxShares {
		return fmt.Errorf("at most %d shares supported, got %d", tss.MaxShares, count)
	}
	if len(p.Identifier) > tss.IdentifierSize {
		return fmt.Errorf("identifier must be at most %d bytes, got %d", tss.IdentifierSize, len(p.Identifier))
	}
	if p.Shares > 0 && len(p.Holders) > p.Shares {
		return fmt.Errorf("%d holders named for %d shares", len(p.Holders), p.Shares)
	}
	for i, h := range p.Holders {
		if h.Name == "" {
			return fmt.Errorf("holder %d: name is required", i+1)
		}
	}
	if _, err := p.HashChoice(); err != nil {
		return err
	}
	return nil
}
