package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FundType identifies a risk tier, A being the most aggressive and E the most conservative
type FundType string

const (
	FundA FundType = "A"
	FundB FundType = "B"
	FundC FundType = "C"
	FundD FundType = "D"
	FundE FundType = "E"
)

// FundTypes lists every tier from most aggressive to most conservative
var FundTypes = []FundType{FundA, FundB, FundC, FundD, FundE}

// ParseFundType converts a tier letter into a FundType
func ParseFundType(s string) (FundType, error) {
	for _, ft := range FundTypes {
		if string(ft) == s {
			return ft, nil
		}
	}
	return "", fmt.Errorf("unknown fund type %q (valid: A, B, C, D, E)", s)
}

// FundOption describes a fund tier together with the user's share in it.
// Everything but Percent is reference data; Label, Description and Color are display-only.
type FundOption struct {
	Type        FundType        `yaml:"type" json:"type"`
	Label       string          `yaml:"label" json:"label"`
	Description string          `yaml:"description" json:"description"`
	Color       string          `yaml:"color" json:"color"`
	Percent     int             `yaml:"percent" json:"percent"`
	AnnualRate  decimal.Decimal `yaml:"annual_rate" json:"annualRate"`
}

// IsActive reports whether the user currently holds a share of this fund
func (f FundOption) IsActive() bool {
	return f.Percent > 0
}
