package domain

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// HazardUnclassified is the fallback category when no rule matches.
const HazardUnclassified = "unclassified"

// HazardRule is one entry in the priority-ordered classification list.
// Require is a conjunction of keyword groups: a body matches when it
// contains at least one keyword from every group. Matching is
// case-insensitive substring search.
type HazardRule struct {
	Category string     `yaml:"category"`
	Require  [][]string `yaml:"require"`
}

type hazardRuleFile struct {
	Rules []HazardRule `yaml:"rules"`
}

//go:embed hazard_rules.yaml
var defaultRulesYAML []byte

var defaultRules = mustParseRules(defaultRulesYAML)

// DefaultHazardRules returns a copy of the embedded priority-ordered
// rule list.
func DefaultHazardRules() []HazardRule {
	rules := make([]HazardRule, len(defaultRules))
	copy(rules, defaultRules)
	return rules
}

// ParseHazardRules decodes a YAML rule document. Rule order in the
// document is the classification priority order.
func ParseHazardRules(data []byte) ([]HazardRule, error) {
	var f hazardRuleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse hazard rules: %w", err)
	}
	if len(f.Rules) == 0 {
		return nil, errors.New("hazard rules: empty rule list")
	}
	for i, r := range f.Rules {
		if r.Category == "" {
			return nil, fmt.Errorf("hazard rules: rule %d has no category", i)
		}
		if len(r.Require) == 0 {
			return nil, fmt.Errorf("hazard rules: rule %q has no keyword groups", r.Category)
		}
	}
	return f.Rules, nil
}

// LoadHazardRules reads an override rule document from disk.
func LoadHazardRules(path string) ([]HazardRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read hazard rules: %w", err)
	}
	return ParseHazardRules(data)
}

// ClassifyHazard returns the category of the first matching rule,
// falling back to HazardUnclassified. First match wins: the rule order
// is the priority order, not a specificity score.
func ClassifyHazard(body string, rules []HazardRule) string {
	text := strings.ToUpper(body)
	for _, r := range rules {
		if r.matches(text) {
			return r.Category
		}
	}
	return HazardUnclassified
}

func (r HazardRule) matches(upperBody string) bool {
	if len(r.Require) == 0 {
		return false
	}
	for _, group := range r.Require {
		if !containsAny(upperBody, group) {
			return false
		}
	}
	return true
}

func containsAny(upperBody string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(upperBody, strings.ToUpper(kw)) {
			return true
		}
	}
	return false
}

func mustParseRules(data []byte) []HazardRule {
	rules, err := ParseHazardRules(data)
	if err != nil {
		panic(fmt.Sprintf("embedded hazard rules: %v", err))
	}
	return rules
}
