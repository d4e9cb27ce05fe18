package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rgehrsitz/savings-advisor/internal/allocation"
	"github.com/rgehrsitz/savings-advisor/internal/calculation"
	"github.com/rgehrsitz/savings-advisor/internal/config"
	"github.com/rgehrsitz/savings-advisor/internal/domain"
	"github.com/rgehrsitz/savings-advisor/internal/report"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [profile-file]",
	Short: "Recommend a savings product for a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, sess, err := loadProfile(args[0])
		if err != nil {
			return err
		}

		r, err := renderer(cmd)
		if err != nil {
			return err
		}

		var override *domain.RegimeType
		if regime, ok := sess.RegimeOverride(); ok {
			override = &regime
		}

		out, err := r.Recommendation(sess.Recommendation(), override)
		if err != nil {
			return fmt.Errorf("failed to render recommendation: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var fundsCmd = &cobra.Command{
	Use:   "funds",
	Short: "List the fund catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := renderer(cmd)
		if err != nil {
			return err
		}
		out, err := r.Catalog(calculation.FundCatalog())
		if err != nil {
			return fmt.Errorf("failed to render catalog: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var projectCmd = &cobra.Command{
	Use:   "project [profile-file]",
	Short: "Project a fund allocation and compare it with every single fund",
	Long: "Projects the profile's monthly contribution over its horizon using the allocation " +
		"from the profile file or --allocation, and compares the result with a 100% " +
		"allocation to each fund. The allocation must total 100%.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, sess, err := loadProfile(args[0])
		if err != nil {
			return err
		}

		if flagValue, _ := cmd.Flags().GetString("allocation"); flagValue != "" {
			percentages, err := parseAllocation(flagValue)
			if err != nil {
				return err
			}
			sess.SetAllocation(percentages)
		}

		result, err := sess.FinalizeProjection()
		if err != nil {
			return fmt.Errorf("cannot project: %w", err)
		}

		profile := sess.Profile()
		logger.Info("projection complete",
			zap.String("op", "project"),
			zap.String("userAmount", result.UserStrategyAmount.StringFixed(2)),
			zap.Int("scenarios", len(result.Scenarios)),
		)

		comparison := report.NewComparison(result, profile.MonthlyContribution, profile.Horizon)
		if compact, _ := cmd.Flags().GetBool("compact"); compact {
			fmt.Fprintln(cmd.OutOrStdout(), (&report.TableFormatter{}).FormatCompact(comparison))
			return nil
		}

		r, err := renderer(cmd)
		if err != nil {
			return err
		}
		out, err := r.Projection(comparison)
		if err != nil {
			return fmt.Errorf("failed to render projection: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init [profile-file]",
	Short: "Write a starter profile file",
	Long: "Writes the default profile (goal PENSION, 5 year horizon, age 30) with an empty " +
		"allocation so it can be edited and passed to the other commands.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if force, _ := cmd.Flags().GetBool("force"); !force && fileExists(path) {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		input := &config.ProfileInput{
			Profile:    domain.DefaultProfile(),
			Allocation: make(map[string]int, len(domain.FundTypes)),
		}
		for _, ft := range domain.FundTypes {
			input.Allocation[string(ft)] = 0
		}

		if err := config.NewInputParser().SaveToFile(input, path); err != nil {
			return err
		}
		logger.Debug("profile written", zap.String("op", "init"), zap.String("path", path))
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote starter profile to %s\n", path)
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [profile-file]",
	Short: "Validate a profile file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, sess, err := loadProfile(args[0])
		if err != nil {
			return err
		}

		warnings := profileWarnings(input.Profile, sess.Recommendation(), sess.Funds(), len(input.Allocation) > 0)
		for _, w := range warnings {
			logger.Warn("profile warning: "+w, zap.String("op", "validate"))
			fmt.Fprintf(cmd.OutOrStdout(), "warning: %s\n", w)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Profile %s is valid\n", args[0])
		return nil
	},
}

// profileWarnings flags values the engine accepts but that likely indicate a mistake
func profileWarnings(p domain.UserProfile, rec *domain.SimulationOutput, funds []domain.FundOption, hasAllocation bool) []string {
	var warnings []string
	if rec == nil {
		warnings = append(warnings, "salary is not positive, no product will be recommended")
	}
	if p.MonthlyContribution.IsNegative() {
		warnings = append(warnings, "monthly contribution is negative")
	}
	if p.Horizon <= 0 {
		warnings = append(warnings, "horizon is not positive, projections will be zero")
	}
	if hasAllocation {
		if rec == nil || rec.BestProduct != domain.ProductCuenta2 {
			warnings = append(warnings, "allocation is ignored unless the recommendation is CUENTA2")
		} else if !allocation.IsValidDistribution(funds) {
			warnings = append(warnings, fmt.Sprintf("allocation totals %d%%, projections require %d%%",
				allocation.TotalPercent(funds), allocation.FullAllocation))
		}
	}
	return warnings
}

// parseAllocation reads "A=50,C=50" into tier percentages. Tiers not named get 0.
func parseAllocation(flagValue string) (map[domain.FundType]int, error) {
	percentages := make(map[domain.FundType]int, len(domain.FundTypes))
	for _, ft := range domain.FundTypes {
		percentages[ft] = 0
	}
	for _, part := range strings.Split(flagValue, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("invalid allocation entry %q (expected FUND=PERCENT)", part)
		}
		ft, err := domain.ParseFundType(strings.ToUpper(strings.TrimSpace(name)))
		if err != nil {
			return nil, fmt.Errorf("invalid allocation entry %q: %w", part, err)
		}
		pct, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid allocation entry %q: %w", part, err)
		}
		percentages[ft] = pct
	}
	return percentages, nil
}

func init() {
	projectCmd.Flags().String("allocation", "", "Allocation override, e.g. A=50,C=50")
	projectCmd.Flags().Bool("compact", false, "Print a single-line summary instead of the full report")
	initCmd.Flags().Bool("force", false, "Overwrite an existing file")
}
