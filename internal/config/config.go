// Package config loads the CLI's YAML profile: an explicit column mapping
// for imports, the group's cost-sharing ratio and the member roster. The
// core library takes these as plain arguments; only the CLI reads files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/warikan/warikan-core/internal/household"
	"github.com/warikan/warikan-core/internal/ingest"
	"github.com/warikan/warikan-core/internal/settlement"
)

// Profile is one household's import and settlement configuration.
//
// Example:
//
//	columns:
//	  date: 利用日
//	  amount: 金額
//	  description: 摘要
//	  payer: 支払者
//	group:
//	  user_a: alice
//	  user_b: bob
//	  ratio_a: 60
//	  ratio_b: 40
//	members:
//	  - user_id: alice
//	    name: Alice
//	  - user_id: bob
//	    name: Bob
type Profile struct {
	// Columns, when present, overrides header auto-detection.
	Columns *ingest.ColumnMapping `yaml:"columns"`

	Group   GroupConfig        `yaml:"group"`
	Members []household.Member `yaml:"members"`
}

// GroupConfig is the YAML shape of the group's sharing configuration.
type GroupConfig struct {
	UserA  string `yaml:"user_a"`
	UserB  string `yaml:"user_b"`
	RatioA int    `yaml:"ratio_a"`
	RatioB int    `yaml:"ratio_b"`
}

// Load reads and validates a profile file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("config.Load: parsing %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %s: %w", path, err)
	}
	return &p, nil
}

// Validate applies the contract the core will enforce anyway, so a broken
// profile fails at load time instead of at settlement time.
func (p *Profile) Validate() error {
	if err := settlement.ValidateRatio(p.Group.RatioA, p.Group.RatioB); err != nil {
		return err
	}
	if len(p.Members) > 2 {
		return fmt.Errorf("a household has at most two members, got %d", len(p.Members))
	}
	seen := make(map[string]bool, len(p.Members))
	for _, m := range p.Members {
		if m.UserID == "" {
			return fmt.Errorf("member %q has no user_id", m.DisplayName)
		}
		if seen[m.UserID] {
			return fmt.Errorf("duplicate member user_id %q", m.UserID)
		}
		seen[m.UserID] = true
	}
	if p.Columns != nil && !p.Columns.Complete() {
		return fmt.Errorf("columns must map date, amount and description")
	}
	return nil
}

// SettlementGroup converts the profile's group section into the calculator's
// input shape.
func (p *Profile) SettlementGroup() settlement.Group {
	return settlement.Group{
		UserAID: p.Group.UserA,
		UserBID: p.Group.UserB,
		RatioA:  p.Group.RatioA,
		RatioB:  p.Group.RatioB,
	}
}
