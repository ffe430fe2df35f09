package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Pure-Company/funcdemo"
	"github.com/Pure-Company/funcdemo/internal/demo"
)

// Execute runs the funcdemo CLI with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree. Each call returns an independent
// tree, so tests can run it with their own arguments and output.
func NewRootCommand() *cobra.Command {
	var (
		rosterPath string
		today      string
		opts       demo.Options
	)

	root := &cobra.Command{
		Use:          "funcdemo",
		Short:        "Functional-style Go demonstrations",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if rosterPath != "" {
				persons, err := demo.LoadRosterFile(rosterPath)
				if err != nil {
					return err
				}
				opts.Persons = persons
			}
			if today != "" {
				t, err := time.ParseInLocation(demo.DateLayout, today, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --today %q: %w", today, err)
				}
				opts.Clock = funcdemo.FixedClock(t)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&rosterPath, "roster", "", "YAML file with the sample persons (default built-in roster)")
	root.PersistentFlags().StringVar(&today, "today", "", "pin today's date as YYYY-MM-DD (default system clock)")

	root.AddCommand(
		lambdasCmd(&opts),
		interfacesCmd(),
		streamsCmd(&opts),
		allCmd(&opts),
	)
	return root
}
