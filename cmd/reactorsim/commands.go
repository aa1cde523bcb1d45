package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/reactorsim/internal/config"
	"github.com/san-kum/reactorsim/internal/export"
	"github.com/san-kum/reactorsim/internal/prompt"
	"github.com/san-kum/reactorsim/internal/reactor"
	"github.com/san-kum/reactorsim/internal/recordstore"
	"github.com/san-kum/reactorsim/internal/stats"
	"github.com/san-kum/reactorsim/internal/sweep"
	"github.com/san-kum/reactorsim/internal/telemetry"
	"github.com/san-kum/reactorsim/internal/viz"
)

// simulate validates p and runs it, recording metrics along the way.
func simulate(p reactor.Params, n int) (*reactor.Trajectory, error) {
	log := telemetry.Logger()

	if err := reactor.CheckInputs(p); err != nil {
		log.Warn("simulation.invalid_input", "error", err)
		return nil, err
	}
	v := reactor.ValidateFlows(p.Flows)
	app.metrics.ObserveValidation(v)
	if err := v.Err(); err != nil {
		log.Warn("simulation.constraints_violated", "violations", len(v.Violations), "residuals", v.Residuals)
		return nil, err
	}

	start := time.Now()
	tr, err := reactor.Simulate(p, n)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)
	app.metrics.ObserveSimulation(elapsed)

	final := tr.Final()
	log.Info("simulation.completed", "points", n, "t_final", final.T,
		"c1", final.C1, "c2", final.C2, "c3", final.C3, "elapsed", elapsed)
	return tr, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	p, n, err := resolveParams(cmd)
	if err != nil {
		return err
	}
	tr, err := simulate(p, n)
	if err != nil {
		return err
	}

	if saveScen != "" {
		name := strings.TrimSuffix(filepath.Base(saveScen), filepath.Ext(saveScen))
		sc := config.FromParams(name, p)
		sc.Points = n
		if err := config.Save(saveScen, sc); err != nil {
			return fmt.Errorf("save scenario: %w", err)
		}
		telemetry.Logger().Info("scenario.saved", "path", saveScen)
	}

	w := cmd.OutOrStdout()
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if err := render(w, format, p, tr); err != nil {
		return err
	}
	if outFile != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outFile)
	}
	return nil
}

func render(w io.Writer, format string, p reactor.Params, tr *reactor.Trajectory) error {
	switch format {
	case "chart":
		plot, err := viz.Chart(tr, viz.DefaultChartOptions())
		if err != nil {
			return err
		}
		fmt.Fprintln(w, plot)
		writeFinal(w, tr)
	case "braille":
		c, err := viz.PlotTrajectory(tr, 60, 15)
		if err != nil {
			return err
		}
		fmt.Fprint(w, c.Render(viz.SeriesStyles))
		fmt.Fprintln(w, viz.Legend())
		writeFinal(w, tr)
	case "csv":
		return export.WriteCSV(w, tr)
	case "json":
		return export.WriteJSON(w, p, tr)
	case "svg":
		svg, err := export.SVG(tr, 800, 400)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, svg)
		return err
	default:
		return fmt.Errorf("unknown format: %s (available: chart, braille, csv, json, svg)", format)
	}
	return nil
}

func writeFinal(w io.Writer, tr *reactor.Trajectory) {
	f := tr.Final()
	fmt.Fprintln(w, strings.Join([]string{
		viz.KeyValue("t", f.T),
		viz.KeyValue("C1", f.C1),
		viz.KeyValue("C2", f.C2),
		viz.KeyValue("C3", f.C3),
	}, "  "))
}

func validateInputs(cmd *cobra.Command, args []string) error {
	p, _, err := resolveParams(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	inputErr := reactor.CheckInputs(p)
	if inputErr != nil {
		for _, line := range strings.Split(inputErr.Error(), "\n") {
			fmt.Fprintln(out, "Sorry,", line)
		}
	}

	v := reactor.ValidateFlows(p.Flows)
	app.metrics.ObserveValidation(v)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "EQUATION\tRESIDUAL\tSTATUS")
	for _, eq := range reactor.Equations {
		status := "ok"
		if v.Residuals[eq] != 0 {
			status = "violated"
		}
		fmt.Fprintf(tw, "%s\t%g\t%s\n", eq, v.Residuals[eq], status)
	}
	tw.Flush()

	if err := errors.Join(inputErr, v.Err()); err != nil {
		return err
	}
	fmt.Fprintln(out, "inputs are valid")
	return nil
}

func listRecords(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.List()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no saved records")
		return nil
	}
	prompt.WriteRecords(cmd.OutOrStdout(), records)
	return nil
}

func showRecord(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid record number: %s", args[0])
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	rec, err := st.Get(n - 1)
	if err != nil {
		return fmt.Errorf("record %d: %w", n, err)
	}
	prompt.WriteRecord(cmd.OutOrStdout(), n, rec)
	return nil
}

func addRecord(cmd *cobra.Command, args []string) error {
	p, _, err := resolveParams(cmd)
	if err != nil {
		return err
	}
	if err := reactor.CheckInputs(p); err != nil {
		return err
	}
	v := reactor.ValidateFlows(p.Flows)
	app.metrics.ObserveValidation(v)
	if err := v.Err(); err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Append(recordstore.FromParams(p)); err != nil {
		return err
	}
	app.metrics.RecordsSaved.Inc()

	count, err := st.Count()
	if err != nil {
		return err
	}
	telemetry.Logger().Info("record.saved", "count", count, "backend", app.settings.Store)
	fmt.Fprintf(cmd.OutOrStdout(), "saved record %d of %d\n", count, recordstore.MaxRecords)
	return nil
}

func clearRecords(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Clear(); err != nil {
		return err
	}
	telemetry.Logger().Info("records.cleared", "backend", app.settings.Store)
	fmt.Fprintln(cmd.OutOrStdout(), "records cleared")
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	var jobs []sweep.Job
	if len(args) == 0 {
		for _, name := range config.ListPresets() {
			sc := config.GetPreset(name)
			jobs = append(jobs, sweep.Job{Name: name, Params: sc.Params(), Points: pointCount(sc)})
		}
	}
	for _, path := range args {
		sc, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		name := sc.Name
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		jobs = append(jobs, sweep.Job{Name: name, Params: sc.Params(), Points: pointCount(sc)})
	}

	if len(vary) > 0 {
		axes := make([]sweep.Axis, 0, len(vary))
		for _, v := range vary {
			ax, err := sweep.ParseAxis(v)
			if err != nil {
				return err
			}
			axes = append(axes, ax)
		}
		var expanded []sweep.Job
		for _, job := range jobs {
			expanded = append(expanded, sweep.Grid(job, axes)...)
		}
		jobs = expanded
	}

	results, err := sweep.New(app.settings.Workers, app.metrics, telemetry.Logger()).Run(cmd.Context(), jobs)
	if err != nil {
		return err
	}

	failed := 0
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTATUS\tC1\tC2\tC3\tMIN\tMAX\tTIME")
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(tw, "%s\terror\t-\t-\t-\t-\t-\t%s\n", r.Job.Name, strings.ReplaceAll(r.Err.Error(), "\n", "; "))
			continue
		}
		f := r.Trajectory.Final()
		lo, hi, err := stats.Bounds(r.Trajectory.Series()...)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\tok\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%v\n",
			r.Job.Name, f.C1, f.C2, f.C3, lo, hi, r.Elapsed.Round(time.Microsecond))
	}
	tw.Flush()

	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(results))
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tV1\tV2\tV3\tQ01\tQ03\tQ33\tTF")
	for _, name := range config.ListPresets() {
		sc := config.GetPreset(name)
		fmt.Fprintf(tw, "%s\t%g\t%g\t%g\t%g\t%g\t%g\t%g\n", name,
			sc.Geometry.V1, sc.Geometry.V2, sc.Geometry.V3,
			sc.Flows.Q01, sc.Flows.Q03, sc.Flows.Q33, sc.TFinal)
	}
	return tw.Flush()
}
