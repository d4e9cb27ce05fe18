package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Goal is the user's stated reason for saving
type Goal string

const (
	GoalPension     Goal = "PENSION"
	GoalFlexibility Goal = "FLEXIBILITY"
	GoalEmergency   Goal = "EMERGENCY"
	GoalProject     Goal = "PROJECT"
)

// Goals lists every supported goal in display order
var Goals = []Goal{GoalPension, GoalFlexibility, GoalEmergency, GoalProject}

// IsValid reports whether g is one of the known goals
func (g Goal) IsValid() bool {
	for _, known := range Goals {
		if g == known {
			return true
		}
	}
	return false
}

// NeedsLiquidity reports whether the goal requires money to stay accessible
func (g Goal) NeedsLiquidity() bool {
	return g == GoalFlexibility || g == GoalEmergency || g == GoalProject
}

// String returns a human readable label
func (g Goal) String() string {
	switch g {
	case GoalPension:
		return "Pension"
	case GoalFlexibility:
		return "Flexibility"
	case GoalEmergency:
		return "Emergency fund"
	case GoalProject:
		return "Project"
	default:
		return string(g)
	}
}

// ParseGoal converts a case-sensitive goal tag into a Goal
func ParseGoal(s string) (Goal, error) {
	g := Goal(s)
	if !g.IsValid() {
		return "", fmt.Errorf("unknown goal %q (valid: PENSION, FLEXIBILITY, EMERGENCY, PROJECT)", s)
	}
	return g, nil
}

// UserProfile holds everything the advisor knows about the user. Amounts are monthly.
// The engine treats every value as authoritative and never rejects a profile.
type UserProfile struct {
	Salary              decimal.Decimal `yaml:"salary" json:"salary"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthlyContribution"`
	Goal                Goal            `yaml:"goal" json:"goal"`
	Horizon             int             `yaml:"horizon" json:"horizon"` // years
	Age                 int             `yaml:"age" json:"age"`
}

// DefaultProfile returns the profile a new session starts with
func DefaultProfile() UserProfile {
	return UserProfile{
		Salary:              decimal.Zero,
		MonthlyContribution: decimal.Zero,
		Goal:                GoalPension,
		Horizon:             5,
		Age:                 30,
	}
}

// AnnualContribution returns twelve months of contributions
func (p UserProfile) AnnualContribution() decimal.Decimal {
	return p.MonthlyContribution.Mul(decimal.NewFromInt(12))
}

// ProfileField names an editable field of UserProfile
type ProfileField string

const (
	FieldSalary              ProfileField = "salary"
	FieldMonthlyContribution ProfileField = "monthlyContribution"
	FieldGoal                ProfileField = "goal"
	FieldHorizon             ProfileField = "horizon"
	FieldAge                 ProfileField = "age"
)

// ProfileFields lists the editable fields in form order
var ProfileFields = []ProfileField{FieldSalary, FieldMonthlyContribution, FieldGoal, FieldHorizon, FieldAge}

// With returns a copy of the profile with field set to value. Monetary fields accept
// decimal.Decimal, int, int64 or float64; goal accepts Goal or string; horizon and age accept int.
func (p UserProfile) With(field ProfileField, value any) (UserProfile, error) {
	switch field {
	case FieldSalary, FieldMonthlyContribution:
		amount, err := toDecimal(value)
		if err != nil {
			return p, fmt.Errorf("field %s: %w", field, err)
		}
		if field == FieldSalary {
			p.Salary = amount
		} else {
			p.MonthlyContribution = amount
		}
	case FieldGoal:
		switch v := value.(type) {
		case Goal:
			p.Goal = v
		case string:
			p.Goal = Goal(v)
		default:
			return p, fmt.Errorf("field %s: unsupported value type %T", field, value)
		}
	case FieldHorizon, FieldAge:
		n, ok := value.(int)
		if !ok {
			return p, fmt.Errorf("field %s: unsupported value type %T", field, value)
		}
		if field == FieldHorizon {
			p.Horizon = n
		} else {
			p.Age = n
		}
	default:
		return p, fmt.Errorf("unknown profile field %q", field)
	}
	return p, nil
}

func toDecimal(value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case float64:
		return decimal.NewFromFloat(v), nil
	default:
		return decimal.Zero, fmt.Errorf("unsupported value type %T", value)
	}
}
