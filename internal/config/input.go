package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/rgehrsitz/savings-advisor/internal/domain"
	"gopkg.in/yaml.v3"
)

// ProfileInput is the on-disk description of a savings session: the profile plus
// an optional fund allocation and an optional regime display override.
type ProfileInput struct {
	Profile        domain.UserProfile `yaml:"profile"`
	Allocation     map[string]int     `yaml:"allocation,omitempty"`
	RegimeOverride string             `yaml:"regime_override,omitempty"`
}

// InputParser handles parsing of profile files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a profile from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*ProfileInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes YAML into a ProfileInput. Fields missing from the document keep
// the values of domain.DefaultProfile.
func (ip *InputParser) Parse(data []byte) (*ProfileInput, error) {
	input := ProfileInput{Profile: domain.DefaultProfile()}
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}

	return &input, nil
}

// ValidateInput checks enumerated values only. Amounts, horizon and age are
// passed to the engine untouched.
func (ip *InputParser) ValidateInput(input *ProfileInput) error {
	if input == nil {
		return fmt.Errorf("input is required")
	}
	if _, err := domain.ParseGoal(string(input.Profile.Goal)); err != nil {
		return fmt.Errorf("profile.goal: %w", err)
	}
	if _, err := input.FundPercentages(); err != nil {
		return err
	}
	if _, err := input.Override(); err != nil {
		return err
	}
	return nil
}

// FundPercentages converts the allocation section into tier percentages
func (in *ProfileInput) FundPercentages() (map[domain.FundType]int, error) {
	if len(in.Allocation) == 0 {
		return nil, nil
	}

	// sorted so the first bad key reported is stable
	keys := make([]string, 0, len(in.Allocation))
	for k := range in.Allocation {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	percentages := make(map[domain.FundType]int, len(keys))
	for _, k := range keys {
		ft, err := domain.ParseFundType(k)
		if err != nil {
			return nil, fmt.Errorf("allocation: %w", err)
		}
		percentages[ft] = in.Allocation[k]
	}
	return percentages, nil
}

// Override returns the regime display override, or nil when none is set
func (in *ProfileInput) Override() (*domain.RegimeType, error) {
	if in.RegimeOverride == "" {
		return nil, nil
	}
	r, err := domain.ParseRegimeType(in.RegimeOverride)
	if err != nil {
		return nil, fmt.Errorf("regime_override: %w", err)
	}
	return &r, nil
}

// SaveToFile writes the input back out as YAML
func (ip *InputParser) SaveToFile(input *ProfileInput, filename string) error {
	data, err := yaml.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
