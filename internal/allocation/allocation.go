// Package allocation implements the rules for splitting contributions across fund tiers.
// Every function returns a new slice and leaves its input untouched.
package allocation

import (
	"github.com/rgehrsitz/savings-advisor/internal/domain"
)

// FullAllocation is the total every finalized allocation must reach
const FullAllocation = 100

// Clone returns an independent copy of an allocation
func Clone(allocation []domain.FundOption) []domain.FundOption {
	if allocation == nil {
		return nil
	}
	out := make([]domain.FundOption, len(allocation))
	copy(out, allocation)
	return out
}

// ToggleFund switches target in or out of the allocation.
//
// An active fund is dropped to 0 and the others keep their shares. An inactive fund
// becomes the sole holder of 100% when nothing else is active; otherwise every active
// fund is reset to floor(100/(n+1)) and the toggled fund takes the remainder, so the
// total after an activation is always exactly 100. A target missing from the allocation
// leaves it unchanged.
func ToggleFund(allocation []domain.FundOption, target domain.FundType) []domain.FundOption {
	out := Clone(allocation)

	idx := indexOf(out, target)
	if idx < 0 {
		return out
	}

	if out[idx].Percent > 0 {
		out[idx].Percent = 0
		return out
	}

	others := 0
	for i, f := range out {
		if i != idx && f.Percent > 0 {
			others++
		}
	}

	if others == 0 {
		out[idx].Percent = FullAllocation
		return out
	}

	share := FullAllocation / (others + 1)
	for i := range out {
		if i != idx && out[i].Percent > 0 {
			out[i].Percent = share
		}
	}
	out[idx].Percent = FullAllocation - share*others

	return out
}

// SetPercent sets target's share directly, as a slider would. Values are not clamped.
func SetPercent(allocation []domain.FundOption, target domain.FundType, percent int) []domain.FundOption {
	out := Clone(allocation)
	if idx := indexOf(out, target); idx >= 0 {
		out[idx].Percent = percent
	}
	return out
}

// TotalPercent sums the shares of every fund
func TotalPercent(allocation []domain.FundOption) int {
	total := 0
	for _, f := range allocation {
		total += f.Percent
	}
	return total
}

// IsValidDistribution reports whether the shares add up to exactly 100
func IsValidDistribution(allocation []domain.FundOption) bool {
	return TotalPercent(allocation) == FullAllocation
}

// Active returns the funds holding a positive share, in allocation order
func Active(allocation []domain.FundOption) []domain.FundOption {
	var active []domain.FundOption
	for _, f := range allocation {
		if f.Percent > 0 {
			active = append(active, f)
		}
	}
	return active
}

// FromPercentages applies a tier-to-percent map onto a base allocation, e.g. the catalog
func FromPercentages(base []domain.FundOption, percentages map[domain.FundType]int) []domain.FundOption {
	out := Clone(base)
	for i := range out {
		if p, ok := percentages[out[i].Type]; ok {
			out[i].Percent = p
		}
	}
	return out
}

func indexOf(allocation []domain.FundOption, target domain.FundType) int {
	for i, f := range allocation {
		if f.Type == target {
			return i
		}
	}
	return -1
}
