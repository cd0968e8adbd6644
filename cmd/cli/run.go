package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/AlexandreDecan/pcorr/adapters/excel"
	"github.com/AlexandreDecan/pcorr/adapters/report"
	"github.com/AlexandreDecan/pcorr/app"
	"github.com/AlexandreDecan/pcorr/domain/core"
	"github.com/AlexandreDecan/pcorr/domain/correction"
	"github.com/AlexandreDecan/pcorr/internal"
	"github.com/AlexandreDecan/pcorr/internal/config"
	"github.com/AlexandreDecan/pcorr/internal/errors"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// environment is resolved once per invocation, before any subcommand runs
type environment struct {
	cfg     *config.Config
	logger  *internal.Logger
	reports *app.ReportService
}

func (e *environment) load() error {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.logger = internal.NewLogger(cfg.Log.Level)
	e.reports = app.NewReportService(report.Text{}, e.logger)
	return nil
}

// inputFlags are shared by every subcommand that reads a family
type inputFlags struct {
	alpha  float64
	noSort bool
	file   string
	column string
	sheet  string
}

func (in *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&in.alpha, "alpha", correction.DefaultAlpha, "Significance level in (0, 1]")
	cmd.Flags().BoolVar(&in.noSort, "no-sort", false, "Treat the input as already ascending")
	cmd.Flags().StringVar(&in.file, "file", "", "Read p-values from a .csv or .xlsx file")
	cmd.Flags().StringVar(&in.column, "column", "", "Column header to read from --file")
	cmd.Flags().StringVar(&in.sheet, "sheet", "", "Worksheet to read from an .xlsx file")
}

// settings merges flags over configured defaults
func (in *inputFlags) settings(cmd *cobra.Command, env *environment) (float64, bool) {
	alpha := env.cfg.Report.Alpha
	if cmd.Flags().Changed("alpha") {
		alpha = in.alpha
	}
	sortInput := env.cfg.Report.Sort
	if cmd.Flags().Changed("no-sort") {
		sortInput = !in.noSort
	}
	return alpha, sortInput
}

func (in *inputFlags) family(cmd *cobra.Command, env *environment, args []string) (correction.Family, error) {
	if in.file == "" {
		pv, err := parsePValues(args)
		if err != nil {
			return correction.Family{}, err
		}
		return correction.Family{Name: "args", PValues: pv}, nil
	}
	if len(args) > 0 {
		return correction.Family{}, fmt.Errorf("p-value arguments cannot be combined with --file")
	}

	reader := excel.NewDataReader(in.file, env.logger).WithSheet(in.sheet)
	if in.column != "" {
		return reader.ReadFamily(cmd.Context(), in.column)
	}
	families, err := reader.ReadFamilies(cmd.Context())
	if err != nil {
		return correction.Family{}, err
	}
	if len(families) != 1 {
		return correction.Family{}, fmt.Errorf("%s has %d columns; choose one with --column or use batch", in.file, len(families))
	}
	return families[0], nil
}

func parsePValues(args []string) ([]float64, error) {
	pv := make([]float64, 0, len(args))
	for i, raw := range args {
		p, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.InvalidInput("non-numeric p-value", core.NewPValueError(fmt.Sprintf("argument %d", i+1), raw))
		}
		pv = append(pv, p)
	}
	return pv, nil
}

func runReport(w io.Writer, env *environment, family correction.Family, alpha float64, sortInput bool, format string) error {
	renderer, err := report.ForFormat(format)
	if err != nil {
		return err
	}
	if _, ok := renderer.(report.Text); ok {
		return env.reports.MaximalPValue(w, family.PValues, alpha, sortInput)
	}

	r, err := env.reports.EvaluateFamily(family, alpha, sortInput)
	if err != nil {
		return err
	}
	return renderer.Render(w, r)
}

func runThreshold(w io.Writer, env *environment, method string, family correction.Family, alpha float64, sortInput bool) error {
	row, err := env.reports.Threshold(method, family.PValues, alpha, sortInput)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\tp-value=%s\t%d significant p-values\n", row.Method, row.Threshold, row.Significant)
	return err
}

func runAdjust(w io.Writer, env *environment, method string, family correction.Family) error {
	_, adjusted, err := env.reports.Adjust(method, family.PValues)
	if err != nil {
		return err
	}
	for i, q := range adjusted {
		if _, err := fmt.Fprintf(w, "%g\t%.6f\n", family.PValues[i], q); err != nil {
			return err
		}
	}
	return nil
}

func runBatch(cmd *cobra.Command, env *environment, in inputFlags, alpha float64, sortInput bool, format string, workers int) error {
	renderer, err := report.ForFormat(format)
	if err != nil {
		return err
	}

	reader := excel.NewDataReader(in.file, env.logger).WithSheet(in.sheet)
	families, err := reader.ReadFamilies(cmd.Context())
	if err != nil {
		return err
	}

	batch := app.NewBatchService(env.reports, workers, env.logger)
	result, err := batch.Run(cmd.Context(), app.BatchRequest{
		Families: families,
		Alpha:    alpha,
		Sort:     sortInput,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if _, ok := renderer.(report.JSON); ok {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	for i, r := range result.Reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if _, ok := renderer.(report.Text); ok {
			fmt.Fprintf(w, "== %s ==\n", r.Family)
		}
		if err := renderer.Render(w, r); err != nil {
			return err
		}
	}
	return nil
}
