package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/resource-lending-go/lending/core"
)

func newPolicyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "Print the lending policy per resource kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printPolicy(cmd.OutOrStdout())
		},
	}
}

func printPolicy(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tFEE/DAY\tLOAN DAYS\tRENEW\tRESERVABLE")

	for _, p := range core.Policies() {
		fmt.Fprintf(tw, "%s\t%.2f\t%d\t%s\t%t\n", p.Kind, p.FeePerLateDay, p.MaxLoanPeriodDays, p.RenewRule, p.Reservable)
	}

	return tw.Flush()
}
