package main

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/reactorsim/internal/config"
	"github.com/san-kum/reactorsim/internal/prompt"
	"github.com/san-kum/reactorsim/internal/reactor"
	"github.com/san-kum/reactorsim/internal/recordstore"
	"github.com/san-kum/reactorsim/internal/telemetry"
	"github.com/san-kum/reactorsim/internal/tui"
)

// runInteractive is the classic session: offer a saved record, otherwise
// collect inputs until they balance, offer to save them, then chart.
func runInteractive(cmd *cobra.Command, args []string) error {
	log := telemetry.Logger()
	out := cmd.OutOrStdout()
	c := prompt.New(cmd.InOrStdin(), out)

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.List()
	if err != nil {
		return err
	}
	choice, err := c.ChooseRecord(records)
	if err != nil {
		return err
	}

	var p reactor.Params
	if choice >= 0 {
		p = records[choice].Params()
		log.Info("session.record_loaded", "record", choice+1)
	} else {
		p, err = collect(c, out)
		if err != nil {
			return err
		}
		if len(records) < recordstore.MaxRecords {
			if err := offerSave(c, st, p); err != nil {
				return err
			}
		}
	}

	tr, err := simulate(p, pointCount(nil))
	if err != nil {
		return err
	}
	return render(out, "chart", p, tr)
}

// collect reads inputs through the prompt, or through the form when --tui is
// set. The form reads from the collector's buffer so keystrokes typed ahead
// of it are not lost.
func collect(c *prompt.Collector, out io.Writer) (reactor.Params, error) {
	if useTUI {
		p, err := tui.RunForm(config.DefaultScenario().Params(),
			tea.WithInput(c.Input()), tea.WithOutput(out))
		if errors.Is(err, tui.ErrAborted) {
			return reactor.Params{}, fmt.Errorf("input cancelled: %w", err)
		}
		return p, err
	}
	return c.CollectValid(func(v reactor.Validation) {
		app.metrics.ObserveValidation(v)
		telemetry.Logger().Info("session.input_rejected", "violations", len(v.Violations))
	})
}

func offerSave(c *prompt.Collector, st recordstore.Store, p reactor.Params) error {
	ok, err := c.ConfirmSave()
	if err != nil || !ok {
		return err
	}
	if err := st.Append(recordstore.FromParams(p)); err != nil {
		return err
	}
	app.metrics.RecordsSaved.Inc()
	telemetry.Logger().Info("record.saved", "backend", app.settings.Store)
	return nil
}
