package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/savings-advisor/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProfileYAML = `
profile:
  salary: 5000000
  monthly_contribution: 200000
  goal: PROJECT
  horizon: 8
  age: 41
allocation:
  A: 40
  C: 60
regime_override: B
`

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser, "Should create input parser")
}

func TestInputParser_LoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()

	input, err := parser.LoadFromFile("nonexistent.yaml")

	assert.Error(t, err, "Should error for nonexistent file")
	assert.Nil(t, input)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestInputParser_LoadFromFile_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	invalidFile := filepath.Join(tmpDir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalidFile, []byte("invalid: yaml: content: [unclosed"), 0644))

	parser := NewInputParser()
	input, err := parser.LoadFromFile(invalidFile)

	assert.Error(t, err)
	assert.Nil(t, input)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestInputParser_LoadFromFile_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	validFile := filepath.Join(tmpDir, "profile.yaml")
	require.NoError(t, os.WriteFile(validFile, []byte(validProfileYAML), 0644))

	parser := NewInputParser()
	input, err := parser.LoadFromFile(validFile)
	require.NoError(t, err)

	assert.True(t, input.Profile.Salary.Equal(decimal.NewFromInt(5000000)))
	assert.True(t, input.Profile.MonthlyContribution.Equal(decimal.NewFromInt(200000)))
	assert.Equal(t, domain.GoalProject, input.Profile.Goal)
	assert.Equal(t, 8, input.Profile.Horizon)
	assert.Equal(t, 41, input.Profile.Age)

	percentages, err := input.FundPercentages()
	require.NoError(t, err)
	assert.Equal(t, map[domain.FundType]int{domain.FundA: 40, domain.FundC: 60}, percentages)

	override, err := input.Override()
	require.NoError(t, err)
	require.NotNil(t, override)
	assert.Equal(t, domain.RegimeB, *override)
}

func TestInputParser_Parse_MissingFieldsUseDefaults(t *testing.T) {
	parser := NewInputParser()
	input, err := parser.Parse([]byte("profile:\n  salary: 900000\n"))
	require.NoError(t, err)

	defaults := domain.DefaultProfile()
	assert.True(t, input.Profile.Salary.Equal(decimal.NewFromInt(900000)))
	assert.Equal(t, defaults.Goal, input.Profile.Goal)
	assert.Equal(t, defaults.Horizon, input.Profile.Horizon)
	assert.Equal(t, defaults.Age, input.Profile.Age)

	percentages, err := input.FundPercentages()
	assert.NoError(t, err)
	assert.Nil(t, percentages)

	override, err := input.Override()
	assert.NoError(t, err)
	assert.Nil(t, override)
}

func TestInputParser_Parse_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "unknown goal",
			yaml:    "profile:\n  goal: HOLIDAY\n",
			wantErr: "profile.goal",
		},
		{
			name:    "lowercase goal",
			yaml:    "profile:\n  goal: pension\n",
			wantErr: "profile.goal",
		},
		{
			name:    "unknown fund tier",
			yaml:    "allocation:\n  A: 50\n  F: 50\n",
			wantErr: "allocation",
		},
		{
			name:    "unknown regime",
			yaml:    "regime_override: C\n",
			wantErr: "regime_override",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := parser.Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Nil(t, input)
			assert.Contains(t, err.Error(), "profile validation failed")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInputParser_Parse_NoRangeValidation(t *testing.T) {
	parser := NewInputParser()
	input, err := parser.Parse([]byte(`
profile:
  salary: -10
  monthly_contribution: -5
  horizon: -3
  age: 0
allocation:
  A: 150
  B: -50
`))
	require.NoError(t, err, "numeric ranges are the caller's concern")
	assert.True(t, input.Profile.Salary.Equal(decimal.NewFromInt(-10)))
	assert.Equal(t, -3, input.Profile.Horizon)
}

func TestInputParser_ValidateInput_Nil(t *testing.T) {
	assert.Error(t, NewInputParser().ValidateInput(nil))
}

func TestInputParser_SaveToFile_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	original, err := parser.Parse([]byte(validProfileYAML))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, parser.SaveToFile(original, path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, loaded.Profile.Salary.Equal(original.Profile.Salary))
	assert.Equal(t, original.Profile.Goal, loaded.Profile.Goal)
	assert.Equal(t, original.Allocation, loaded.Allocation)
	assert.Equal(t, original.RegimeOverride, loaded.RegimeOverride)
}
