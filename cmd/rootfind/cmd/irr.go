// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rootfind/finance"
)

// dateLayout is the accepted date format for xirr flows.
const dateLayout = "2006-01-02"

func newIRRCmd(a *app) *cobra.Command {
	var guess float64

	c := &cobra.Command{
		Use:   "irr [flags] -- AMOUNT...",
		Short: "Internal rate of return of periodic cash flows",
		Example: `  rootfind irr -- -100 10 10 10 10 110
  rootfind irr --guess 0.2 -- -70000 12000 15000 18000 21000 26000`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amounts, err := parseAmounts(args)
			if err != nil {
				return err
			}
			calc, err := a.calculator()
			if err != nil {
				return err
			}

			rate, err := calc.IRR(cmd.Context(), amounts, guess)
			if err != nil {
				return err
			}
			a.logger.Info("irr solved", "flows", len(amounts), "guess", guess, "rate", rate)
			fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", rate)

			return nil
		},
	}
	c.Flags().Float64Var(&guess, "guess", 0.1, "initial rate estimate")

	return c
}

func newXIRRCmd(a *app) *cobra.Command {
	var guess float64

	c := &cobra.Command{
		Use:   "xirr [flags] DATE=AMOUNT...",
		Short: "Internal rate of return of dated cash flows (Actual/365)",
		Example: `  rootfind xirr 2008-01-01=-10000 2008-03-01=2750 2008-10-30=4250 \
                2009-02-15=3250 2009-04-01=2750`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			flows, err := parseFlows(args)
			if err != nil {
				return err
			}
			calc, err := a.calculator()
			if err != nil {
				return err
			}

			rate, err := calc.XIRR(cmd.Context(), flows, guess)
			if err != nil {
				return err
			}
			a.logger.Info("xirr solved", "flows", len(flows), "guess", guess, "rate", rate)
			fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", rate)

			return nil
		},
	}
	c.Flags().Float64Var(&guess, "guess", 0.1, "initial rate estimate")

	return c
}

func parseAmounts(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("amount %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

// parseFlows reads DATE=AMOUNT pairs.
func parseFlows(args []string) ([]finance.CashFlow, error) {
	out := make([]finance.CashFlow, len(args))
	for i, s := range args {
		date, amount, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("flow %d: %q is not DATE=AMOUNT", i, s)
		}
		d, err := time.Parse(dateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("flow %d: %w", i, err)
		}
		v, err := strconv.ParseFloat(amount, 64)
		if err != nil {
			return nil, fmt.Errorf("flow %d: %w", i, err)
		}
		out[i] = finance.CashFlow{Date: d, Amount: v}
	}

	return out, nil
}
