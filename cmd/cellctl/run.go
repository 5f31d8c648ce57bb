package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ucell/internal/script"
)

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Execute a YAML cell script",
		Long: `The run command executes a script of create, dup, write, expect and
free steps against a heap of float64 cells and stops at the first failure.

Example:
  cellctl run aliasing.yaml
  cellctl run aliasing.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, args)
		},
	}
	return cmd
}

func runScript(cmd *cobra.Command, args []string) error {
	path := args[0]
	printVerbose("Loading script: %s\n", path)

	s, err := script.Load(path)
	if err != nil {
		return err
	}

	var obs script.Observer
	if !jsonOut {
		obs = func(ev script.Event) {
			printInfo("  %3d  %-6s %-8s ref=%d value=%v\n", ev.Index, ev.Op, ev.Handle, ev.Ref, ev.Value)
		}
		printInfo("Script %q (%d steps)\n", s.Name, len(s.Steps))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	res, runErr := s.Run(ctx, obs)
	if jsonOut {
		if err := printJSON(res); err != nil {
			return err
		}
		return runErr
	}
	if runErr != nil {
		return fmt.Errorf("%s: %w", path, runErr)
	}

	printInfo("\nOK: %d steps, %d allocs, %d frees, %d live\n",
		res.Steps, res.Stats.AllocCalls, res.Stats.FreeCalls, res.Stats.Live)
	return nil
}
