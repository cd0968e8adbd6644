package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	env := &environment{}

	rootCmd := &cobra.Command{
		Use:   "pcorr",
		Short: "Multiple-comparison thresholds for a family of p-values",
		Long: `pcorr reports the largest p-value that stays significant under
no correction, Bonferroni, Holm, Hochberg and Benjamini-Hochberg.

Defaults are read from the environment (and a .env file when present):
PCORR_ALPHA, PCORR_SORT, PCORR_FORMAT, PCORR_WORKERS, LOG_LEVEL.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.load()
		},
	}

	rootCmd.AddCommand(
		newReportCmd(env),
		newThresholdCmd(env),
		newAdjustCmd(env),
		newBatchCmd(env),
	)
	return rootCmd
}

func newReportCmd(env *environment) *cobra.Command {
	var in inputFlags
	var format string

	cmd := &cobra.Command{
		Use:   "report [p-values...]",
		Short: "Compare every correction method over one family",
		Long: `Compare every correction method over one family of p-values.

Example: pcorr report 0.001 0.01 0.02 0.03 0.04 0.5 --alpha 0.05
         pcorr report --file results.xlsx --column trial_a --format markdown`,
		RunE: func(cmd *cobra.Command, args []string) error {
			family, err := in.family(cmd, env, args)
			if err != nil {
				return err
			}
			alpha, sortInput := in.settings(cmd, env)
			if !cmd.Flags().Changed("format") {
				format = env.cfg.Report.Format
			}
			return runReport(cmd.OutOrStdout(), env, family, alpha, sortInput, format)
		},
	}

	in.register(cmd)
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text|markdown|json|html")
	return cmd
}

func newThresholdCmd(env *environment) *cobra.Command {
	var in inputFlags
	var method string

	cmd := &cobra.Command{
		Use:   "threshold [p-values...]",
		Short: "Print one method's threshold and significant count",
		Long: `Print the largest significant p-value for a single method.

Example: pcorr threshold --method holm 0.01 0.02 0.03 0.04 0.05`,
		RunE: func(cmd *cobra.Command, args []string) error {
			family, err := in.family(cmd, env, args)
			if err != nil {
				return err
			}
			alpha, sortInput := in.settings(cmd, env)
			return runThreshold(cmd.OutOrStdout(), env, method, family, alpha, sortInput)
		},
	}

	in.register(cmd)
	cmd.Flags().StringVar(&method, "method", "bh", "Method: none|bonferroni|holm|hochberg|bh")
	return cmd
}

func newAdjustCmd(env *environment) *cobra.Command {
	var in inputFlags
	var method string

	cmd := &cobra.Command{
		Use:   "adjust [p-values...]",
		Short: "Print adjusted p-values in input order",
		Long: `Print adjusted p-values, one per line, in the order they were given.

Example: pcorr adjust --method bh 0.04 0.01 0.03`,
		RunE: func(cmd *cobra.Command, args []string) error {
			family, err := in.family(cmd, env, args)
			if err != nil {
				return err
			}
			return runAdjust(cmd.OutOrStdout(), env, method, family)
		},
	}

	in.register(cmd)
	cmd.Flags().StringVar(&method, "method", "bh", "Method: none|bonferroni|holm|hochberg|bh")
	return cmd
}

func newBatchCmd(env *environment) *cobra.Command {
	var in inputFlags
	var format string
	var workers int

	cmd := &cobra.Command{
		Use:   "batch --file FILE",
		Short: "Report every column of a CSV or Excel file as its own family",
		Long: `Evaluate every column of a CSV or Excel file as an independent family.

Example: pcorr batch --file screens.xlsx --sheet Sheet1 --workers 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.file == "" {
				return fmt.Errorf("--file is required")
			}
			alpha, sortInput := in.settings(cmd, env)
			if !cmd.Flags().Changed("format") {
				format = env.cfg.Report.Format
			}
			if !cmd.Flags().Changed("workers") {
				workers = env.cfg.Batch.Workers
			}
			return runBatch(cmd, env, in, alpha, sortInput, format, workers)
		},
	}

	in.register(cmd)
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text|markdown|json|html")
	cmd.Flags().IntVar(&workers, "workers", 4, "Families evaluated concurrently")
	return cmd
}
