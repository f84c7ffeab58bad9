// Package pricing resolves unit prices, tier labels and programming fees
// from the tiered pricing configuration document.
package pricing

import (
	"fmt"

	"atelier/internal/commons"
)

type Group string

const (
	GroupA Group = "GroupA"
	GroupB Group = "GroupB"
	GroupC Group = "GroupC"
)

type Embroidery string

const (
	EmbroideryLogo        Embroidery = "logo"
	EmbroideryLogoAndText Embroidery = "logoAndText"
)

func (e Embroidery) Valid() bool {
	return e == EmbroideryLogo || e == EmbroideryLogoAndText
}

// Tier is an inclusive quantity range. A nil Max has no upper bound.
type Tier struct {
	Min   int     `json:"min" yaml:"min"`
	Max   *int    `json:"max,omitempty" yaml:"max,omitempty"`
	Price float64 `json:"price" yaml:"price"`
}

func (t Tier) Contains(quantity int) bool {
	if quantity < t.Min {
		return false
	}
	return t.Max == nil || quantity <= *t.Max
}

type Config struct {
	ProductGroups map[string]Group                `json:"productGroups" yaml:"productGroups"`
	Tiers         map[Group]map[Embroidery][]Tier `json:"tiers" yaml:"tiers"`
}

// Validate checks that every tier list starts at 1, has no gaps or
// overlaps and ends unbounded, so exactly one tier matches any quantity.
func (c *Config) Validate() error {
	if len(c.ProductGroups) == 0 {
		return fmt.Errorf("productGroups are required")
	}

	for product, group := range c.ProductGroups {
		if _, ok := c.Tiers[group]; !ok {
			return fmt.Errorf("product %q maps to group %q with no tiers", product, group)
		}
	}

	for group, options := range c.Tiers {
		for option, tiers := range options {
			if err := validateTiers(tiers); err != nil {
				return fmt.Errorf("tiers %s/%s: %w", group, option, err)
			}
		}
	}

	return nil
}

func validateTiers(tiers []Tier) error {
	if len(tiers) == 0 {
		return fmt.Errorf("no tiers")
	}

	next := 1
	for i, t := range tiers {
		if t.Min != next {
			return fmt.Errorf("tier %d starts at %d, expected %d", i, t.Min, next)
		}
		if t.Max == nil {
			if i != len(tiers)-1 {
				return fmt.Errorf("tier %d is unbounded but not last", i)
			}
			return nil
		}
		if *t.Max < t.Min {
			return fmt.Errorf("tier %d has max %d below min %d", i, *t.Max, t.Min)
		}
		next = *t.Max + 1
	}

	return fmt.Errorf("last tier must be unbounded")
}

// LoadFile reads a YAML pricing document and validates it.
func LoadFile(path string) (*Config, error) {
	var cfg Config
	if err := commons.LoadYAML(path, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pricing config: %w", err)
	}
	return &cfg, nil
}

func bound(v int) *int { return &v }

// DefaultConfig is the built-in price list used when no document is stored.
func DefaultConfig() *Config {
	return &Config{
		ProductGroups: map[string]Group{
			"Corporate Jacket":  GroupA,
			"Reversible Jacket": GroupA,
			"Varsity Jacket":    GroupA,
			"Windbreaker":       GroupB,
			"Hoodie":            GroupB,
			"Polo Shirt":        GroupC,
			"Cap":               GroupC,
		},
		Tiers: map[Group]map[Embroidery][]Tier{
			GroupA: {
				EmbroideryLogo: {
					{Min: 1, Max: bound(1), Price: 1650},
					{Min: 2, Max: bound(5), Price: 1500},
					{Min: 6, Max: bound(9), Price: 1400},
					{Min: 10, Max: bound(49), Price: 1300},
					{Min: 50, Price: 1200},
				},
				EmbroideryLogoAndText: {
					{Min: 1, Max: bound(1), Price: 1850},
					{Min: 2, Max: bound(5), Price: 1700},
					{Min: 6, Max: bound(9), Price: 1600},
					{Min: 10, Max: bound(49), Price: 1500},
					{Min: 50, Price: 1400},
				},
			},
			GroupB: {
				EmbroideryLogo: {
					{Min: 1, Max: bound(1), Price: 1350},
					{Min: 2, Max: bound(5), Price: 1250},
					{Min: 6, Max: bound(9), Price: 1150},
					{Min: 10, Max: bound(49), Price: 1050},
					{Min: 50, Price: 950},
				},
				EmbroideryLogoAndText: {
					{Min: 1, Max: bound(1), Price: 1500},
					{Min: 2, Max: bound(5), Price: 1400},
					{Min: 6, Max: bound(9), Price: 1300},
					{Min: 10, Max: bound(49), Price: 1200},
					{Min: 50, Price: 1100},
				},
			},
			GroupC: {
				EmbroideryLogo: {
					{Min: 1, Max: bound(1), Price: 650},
					{Min: 2, Max: bound(5), Price: 580},
					{Min: 6, Max: bound(9), Price: 520},
					{Min: 10, Max: bound(49), Price: 480},
					{Min: 50, Price: 420},
				},
				EmbroideryLogoAndText: {
					{Min: 1, Max: bound(1), Price: 780},
					{Min: 2, Max: bound(5), Price: 700},
					{Min: 6, Max: bound(9), Price: 640},
					{Min: 10, Max: bound(49), Price: 590},
					{Min: 50, Price: 530},
				},
			},
		},
	}
}
