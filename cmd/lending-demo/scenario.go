package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/resource-lending-go/journal"
	"github.com/AntonStoeckl/resource-lending-go/lending/core"
	"github.com/AntonStoeckl/resource-lending-go/lending/features/command/borrowresource"
	"github.com/AntonStoeckl/resource-lending-go/lending/features/command/cancelreservation"
	"github.com/AntonStoeckl/resource-lending-go/lending/features/command/renewloan"
	"github.com/AntonStoeckl/resource-lending-go/lending/features/command/reserveresource"
	"github.com/AntonStoeckl/resource-lending-go/lending/features/command/returnresource"
	"github.com/AntonStoeckl/resource-lending-go/lending/features/query/memberloans"
	"github.com/AntonStoeckl/resource-lending-go/lending/shell"
)

func newScenarioCmd(rt *runtime) *cobra.Command {
	var (
		start       string
		showJournal bool
	)

	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Run the reference lending scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			startAt := time.Now()
			if start != "" {
				parsed, err := time.Parse(time.RFC3339, start)
				if err != nil {
					return fmt.Errorf("parsing --start: %w", err)
				}
				startAt = parsed
			}

			app, err := newLendingApp(rt, shell.WithClock(func() time.Time { return startAt }))
			if err != nil {
				return err
			}

			ctx := shell.WithCorrelationID(cmd.Context(), uuid.New())
			out := cmd.OutOrStdout()

			if err := runScenario(ctx, app, out, startAt); err != nil {
				return err
			}

			if showJournal {
				return printJournal(ctx, app.journal, out)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "RFC3339 time the scenario starts at (default now)")
	cmd.Flags().BoolVar(&showJournal, "journal", false, "print the journal after the scenario")

	return cmd
}

// runScenario borrows, renews, reserves and returns across two members and all three resource kinds.
func runScenario(ctx context.Context, app *lendingApp, out io.Writer, startAt time.Time) error {
	book, err := core.BuildBook("B001", "Java Programming", "John Doe", "123456789")
	if err != nil {
		return err
	}

	digital, err := core.BuildDigitalContent("D001", "Python Tutorial", 15.5, "PDF")
	if err != nil {
		return err
	}

	periodical, err := core.BuildPeriodical("P001", "Tech Weekly", 45, "WEEKLY")
	if err != nil {
		return err
	}

	alice, err := core.BuildMember("M001", "Alice", core.TierStandard)
	if err != nil {
		return err
	}

	bob, err := core.BuildMember("M002", "Bob", core.TierPremium)
	if err != nil {
		return err
	}

	for _, r := range []core.Resource{book, digital, periodical} {
		if err := app.library.AddResource(ctx, r, true); err != nil {
			return err
		}
	}

	for _, m := range []core.Member{alice, bob} {
		if err := app.library.RegisterMember(ctx, m); err != nil {
			return err
		}
	}

	at := func(days int) time.Time { return startAt.AddDate(0, 0, days) }

	if err := borrow(ctx, app, out, book, alice, at(0)); err != nil {
		return err
	}

	if err := borrow(ctx, app, out, digital, bob, at(0)); err != nil {
		return err
	}

	if err := borrow(ctx, app, out, book, bob, at(1)); err != nil {
		return err
	}

	if err := renew(ctx, app, out, book, alice, at(2)); err != nil {
		return err
	}

	if err := renew(ctx, app, out, digital, bob, at(2)); err != nil {
		return err
	}

	if _, err := app.reserve.Handle(ctx, reserveresource.BuildCommand(periodical, alice.ID, at(3))); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s reserved by: %s\n", periodical.Kind(), alice.Name)

	if _, err := app.cancel.Handle(ctx, cancelreservation.BuildCommand(periodical, alice.ID, at(3))); err != nil {
		return err
	}
	fmt.Fprintf(out, "Reservation canceled by: %s\n", alice.Name)

	if err := giveBack(ctx, app, out, book, alice, at(17)); err != nil {
		return err
	}

	loans, err := app.loans.Handle(ctx, memberloans.BuildQuery(bob.ID, at(17)))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s (%s, %d of %d loans):\n", bob.Name, loans.Tier, len(loans.Loans), loans.Capacity)
	for _, l := range loans.Loans {
		fmt.Fprintf(out, "  %s %q due %s, %d days late, fee %.2f\n",
			l.ResourceID, l.Title, l.DueAt.Format(time.DateOnly), l.DaysLate, l.AccruedFee)
	}

	fmt.Fprintf(out, "Late fee for a periodical 10 days late: %.2f\n", core.CalculateLateFee(core.KindPeriodical, 10))
	fmt.Fprintf(out, "Late fee for a book 3 days late: %.2f\n", core.CalculateLateFee(core.KindBook, 3))

	return nil
}

func borrow(ctx context.Context, app *lendingApp, out io.Writer, r core.Resource, m core.Member, at time.Time) error {
	_, err := app.borrow.Handle(ctx, borrowresource.BuildCommand(r.ResourceID(), m.ID, at))

	switch {
	case err == nil:
		fmt.Fprintf(out, "Resource borrowed successfully by %s: %s\n", m.Name, r.ResourceTitle())
		return nil
	case errors.Is(err, core.ErrResourceUnavailable), errors.Is(err, core.ErrLoanLimitExceeded):
		fmt.Fprintf(out, "%s cannot borrow %s: %v\n", m.Name, r.ResourceTitle(), err)
		return nil
	default:
		return err
	}
}

func renew(ctx context.Context, app *lendingApp, out io.Writer, r core.Renewable, m core.Member, at time.Time) error {
	_, handleErr := app.renew.Handle(ctx, renewloan.BuildCommand(r, m.ID, at))

	granted, err := renewloan.Granted(handleErr)
	if err != nil {
		return err
	}

	if granted {
		fmt.Fprintf(out, "%s renewed successfully for %s\n", r.Kind(), m.Name)
	} else {
		fmt.Fprintf(out, "%s renewal refused for %s\n", r.Kind(), m.Name)
	}

	return nil
}

func giveBack(ctx context.Context, app *lendingApp, out io.Writer, r core.Resource, m core.Member, at time.Time) error {
	loan, onLoan := app.library.Loan(r.ResourceID())

	if _, err := app.ret.Handle(ctx, returnresource.BuildCommand(r.ResourceID(), m.ID, at)); err != nil {
		return err
	}

	fmt.Fprintf(out, "Resource returned successfully: %s", r.ResourceTitle())
	if onLoan && loan.MemberID == m.ID {
		fmt.Fprintf(out, " (%d days late, fee %.2f)", loan.DaysLateAt(at), loan.LateFeeAt(at))
	}
	fmt.Fprintln(out)

	return nil
}

func printJournal(ctx context.Context, j *journal.MemoryJournal, out io.Writer) error {
	entries, _, err := j.Query(ctx, journal.BuildFilter().MatchingAnyEvent())
	if err != nil {
		return err
	}

	envelopes, err := shell.EventEnvelopesFrom(entries)
	if err != nil {
		return err
	}

	for _, e := range envelopes {
		marker := " "
		if e.DomainEvent.IsErrorEvent() {
			marker = "!"
		}

		fmt.Fprintf(out, "%3d %s %-24s %s\n",
			e.SequenceNumber, marker, e.DomainEvent.IsEventType(), e.DomainEvent.HasOccurredAt().Format(time.RFC3339))
	}

	return nil
}
