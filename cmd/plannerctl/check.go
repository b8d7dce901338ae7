package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/arnavshah/shift-planner-go/pkg/auth"
	"github.com/arnavshah/shift-planner-go/pkg/calendar"
	"github.com/arnavshah/shift-planner-go/pkg/models"
	"github.com/arnavshah/shift-planner-go/pkg/reservation"
)

func newCheckCmd(location func() (*time.Location, error)) *cobra.Command {
	var (
		schedulePath string
		start        string
		end          string
		monday       string
		anyDay       bool
		asJSON       bool
	)

	c := &cobra.Command{
		Use:   "check",
		Short: "Check a reservation window against a schedule snapshot file",
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := location()
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(schedulePath)
			if err != nil {
				return err
			}
			var snapshot models.ScheduleSnapshot
			if err := json.Unmarshal(raw, &snapshot); err != nil {
				return fmt.Errorf("decode %s: %w", schedulePath, err)
			}
			schedule, err := snapshot.ToSchedule(loc)
			if err != nil {
				return err
			}

			var window models.ProposedWindow
			if window.Start, err = calendar.ParseNetworkInstant(start, loc); err != nil {
				return err
			}
			if window.End, err = calendar.ParseNetworkInstant(end, loc); err != nil {
				return err
			}
			if monday != "" {
				if window.Anchor, err = calendar.ParseMondayAnchor(monday, loc); err != nil {
					return err
				}
			}
			if anyDay {
				window.Day = reservation.AnyDay
			}

			result := reservation.Validate(schedule, window)
			out := cmd.OutOrStdout()
			if asJSON {
				if err := json.NewEncoder(out).Encode(result); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(out, describe(result))
			}

			if !result.Valid {
				cmd.SilenceUsage = true
				cmd.SilenceErrors = true
				return errRejected
			}
			return nil
		},
	}

	c.Flags().StringVar(&schedulePath, "schedule", "", "path to a schedule snapshot (JSON)")
	c.Flags().StringVar(&start, "start", "", "window start, YYYY-MM-DDTHH:MM")
	c.Flags().StringVar(&end, "end", "", "window end, YYYY-MM-DDTHH:MM")
	c.Flags().StringVar(&monday, "monday", "", "week the window belongs to, defaults to the week of --start")
	c.Flags().BoolVar(&anyDay, "any-day", false, "only check the duration bounds")
	c.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	_ = c.MarkFlagRequired("schedule")
	_ = c.MarkFlagRequired("start")
	_ = c.MarkFlagRequired("end")
	return c
}

var errRejected = errors.New("reservation rejected")

func describe(result reservation.Result) string {
	if result.Valid {
		return "valid"
	}
	if len(result.Params) == 0 {
		return "invalid: " + string(result.Reason)
	}
	keys := make([]string, 0, len(result.Params))
	for k := range result.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	params := make([]string, 0, len(keys))
	for _, k := range keys {
		params = append(params, fmt.Sprintf("%s=%d", k, result.Params[k]))
	}
	return fmt.Sprintf("invalid: %s (%s)", result.Reason, strings.Join(params, ", "))
}

func newHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <password>",
		Short: "Print the stored hash of a password, for seeding users by hand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
