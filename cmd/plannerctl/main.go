package main

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"
)

var Version = "dev"

func newRootCmd() *cobra.Command {
	var timezone string

	root := &cobra.Command{
		Use:     "plannerctl",
		Short:   "Week arithmetic and reservation checks for the shift planner",
		Version: Version,
	}
	root.PersistentFlags().StringVar(&timezone, "timezone", "Europe/Paris", "timezone shop wall clocks are read in")

	location := func() (*time.Location, error) {
		loc, err := time.LoadLocation(timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid --timezone: %w", err)
		}
		return loc, nil
	}

	root.AddCommand(newWeekCmd(location))
	root.AddCommand(newWeekOfCmd(location))
	root.AddCommand(newCheckCmd(location))
	root.AddCommand(newHashCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errRejected) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
