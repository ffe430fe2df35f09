package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pure-Company/funcdemo/internal/demo"
)

func lambdasCmd(opts *demo.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "lambdas",
		Short: "Function values, comparators and sorting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return demo.Lambdas(cmd.OutOrStdout(), *opts)
		},
	}
}

func interfacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interfaces",
		Short: "Equipment built through suppliers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return demo.Interfaces(cmd.OutOrStdout())
		},
	}
}

func streamsCmd(opts *demo.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "streams",
		Short: "Lazy stream sources, operations and statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return demo.Streams(cmd.OutOrStdout(), *opts)
		},
	}
}

func allCmd(opts *demo.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every demo in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			sections := []struct {
				title string
				run   func() error
			}{
				{"Lambdas", func() error { return demo.Lambdas(out, *opts) }},
				{"Interfaces", func() error { return demo.Interfaces(out) }},
				{"Streams", func() error { return demo.Streams(out, *opts) }},
			}
			for _, s := range sections {
				if _, err := fmt.Fprintf(out, "=== %s ===\n", s.title); err != nil {
					return err
				}
				if err := s.run(); err != nil {
					return fmt.Errorf("%s: %w", s.title, err)
				}
			}
			return nil
		},
	}
}
