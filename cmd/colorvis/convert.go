package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/jsvensson/colorvis/internal/controller"
	"github.com/jsvensson/colorvis/internal/model"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var convertCmd = &cobra.Command{
	Use:   "convert MODEL A B C",
	Short: "Convert one triple into every model",
	Long: `Convert a triple given in MODEL into every supported model and print
the result as a table. MODEL is one of rgb, cmy, hsv, hsl, yuv, yiq.`,
	Example: "  colorvis convert hsv 210 60 80\n  colorvis convert yuv 76 -43 127",
	Args:    cobra.ExactArgs(4),
	RunE:    runConvert,
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the supported models and their component bounds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := newTable("Model", "Components", "Notation")
		for _, m := range model.All() {
			zero := m.Clamp(model.Triple{})
			t.Row(m.Name, m.Bounds(), m.Format(zero))
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		return nil
	},
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

// convert feeds the triple through a controller, exactly as three field
// edits in the UI would, and returns the synchronized controller.
func convert(id model.ID, texts []string) (*controller.Controller, error) {
	ctrl := controller.New(nil)
	for i, text := range texts {
		ctrl.Edit(id, i, text)
	}
	if ctrl.Swatch().Valid {
		return ctrl, nil
	}
	for i := range texts {
		if _, err := ctrl.Value(id, i); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%s triple is invalid", id)
}

// convertRows returns one row per model: its name and three components.
func convertRows(ctrl *controller.Controller) ([][]string, error) {
	rows := make([][]string, 0, len(model.IDs()))
	for _, m := range ctrl.Bounds() {
		t, err := ctrl.Triple(m.ID)
		if err != nil {
			return nil, err
		}
		row := []string{m.Name}
		for i, v := range t {
			row = append(row, fmt.Sprintf("%s %d", m.Components[i].Name, v))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	configureLogging(true)

	id, ok := model.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown model %q (valid: %s)", args[0], strings.Join(model.Names(), ", "))
	}

	ctrl, err := convert(id, args[1:])
	if err != nil {
		return fmt.Errorf("converting: %w", err)
	}
	rows, err := convertRows(ctrl)
	if err != nil {
		return fmt.Errorf("converting: %w", err)
	}
	log.Debugf("converted %s %v to %s", id, args[1:], ctrl.Swatch().Color.Hex())

	out := cmd.OutOrStdout()
	t := newTable("Model", "", "", "").Rows(rows...)
	fmt.Fprintln(out, t.Render())

	hex := ctrl.Swatch().Color.Hex()
	if isTerminal(out) {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("        ")
		fmt.Fprintf(out, "%s %s\n", swatch, hex)
	} else {
		fmt.Fprintln(out, hex)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
