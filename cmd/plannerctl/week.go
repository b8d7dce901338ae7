package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/arnavshah/shift-planner-go/pkg/calendar"
)

func newWeekCmd(location func() (*time.Location, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "week <year> <week>",
		Short: "Print the days of an ISO week",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[0])
			}
			week, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid week %q", args[1])
			}
			loc, err := location()
			if err != nil {
				return err
			}

			anchor, err := calendar.AnchorFromISOWeek(year, week, loc)
			if err != nil {
				return err
			}
			printWeek(cmd.OutOrStdout(), anchor)
			return nil
		},
	}
}

func newWeekOfCmd(location func() (*time.Location, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "weekof <date>",
		Short: "Print the ISO week containing a date (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := location()
			if err != nil {
				return err
			}
			date, err := calendar.ParseNetworkDate(args[0], loc)
			if err != nil {
				return err
			}
			printWeek(cmd.OutOrStdout(), calendar.AnchorOf(date))
			return nil
		},
	}
}

func printWeek(w io.Writer, anchor calendar.WeekAnchor) {
	year, week := anchor.ISOWeek()
	fmt.Fprintf(w, "%d-W%02d (%d weeks in %d)\n", year, week, calendar.WeeksInYear(year), year)
	for day := 0; day < 7; day++ {
		date := anchor.Day(day)
		fmt.Fprintf(w, "  %d %-9s %s\n", day, date.Weekday(), calendar.ToNetworkDate(date))
	}
}
