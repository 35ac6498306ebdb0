package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/polyterm/internal/config"
	"github.com/san-kum/polyterm/internal/poly"
	"github.com/san-kum/polyterm/internal/storage"
	"github.com/san-kum/polyterm/internal/viz"
)

// readPolynomial parses args joined by spaces, or one line of stdin when no
// args are given. Negative coefficients need a "--" before them on the
// command line.
func readPolynomial(cmd *cobra.Command, args []string) (*poly.Polynomial, error) {
	p, err := cfg.NewPolynomial()
	if err != nil {
		return nil, err
	}

	line := strings.Join(args, " ")
	if len(args) == 0 {
		line, err = poly.FirstLine(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
	}

	if err := p.ParseStrict(line); err != nil {
		if cfg.Strict {
			return nil, err
		}
		logger.Debug("parse stopped early", zap.String("input", line), zap.Error(err))
	}
	logger.Debug("parsed input", zap.Int("terms", p.Len()), zap.Int("capacity", p.Capacity()))
	return p, nil
}

func currentTheme() viz.Theme {
	t, err := viz.ThemeByName(cfg.Theme)
	if err != nil {
		return viz.ThemePlain
	}
	return t
}

func renderPolynomial(cmd *cobra.Command, args []string) error {
	p, err := readPolynomial(cmd, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if raw {
		terms := p.Terms()
		parts := make([]string, len(terms))
		for i, t := range terms {
			parts[i] = t.String()
		}
		fmt.Fprintln(out, strings.Join(parts, " "))
		return nil
	}

	s := p.Render()
	if color {
		s = viz.Highlight(s, currentTheme())
	}
	fmt.Fprintln(out, s)
	return nil
}

func plotPolynomial(cmd *cobra.Command, args []string) error {
	var (
		p   *poly.Polynomial
		err error
	)
	if plotName != "" {
		p, err = storage.New(cfg.DataDir).LoadPolynomial(plotName, cfg.Capacity)
	} else {
		p, err = readPolynomial(cmd, args)
	}
	if err != nil {
		return err
	}

	graph, err := viz.Spectrum(p, cfg.Plot.Height, cfg.Plot.Width)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, p.Render())
	fmt.Fprintln(out)
	fmt.Fprintln(out, graph)
	return nil
}

func savePolynomial(cmd *cobra.Command, args []string) error {
	name := args[0]
	p, err := readPolynomial(cmd, args[1:])
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	meta, err := st.Save(name, p)
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	logger.Info("polynomial saved", zap.String("name", name), zap.String("dir", cfg.DataDir), zap.Int("terms", meta.Terms))

	fmt.Fprintf(cmd.OutOrStdout(), "saved %s: %s\n", meta.Name, meta.Canonical)
	return nil
}

func listPolynomials(cmd *cobra.Command, args []string) error {
	records, err := storage.New(cfg.DataDir).List()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "no saved polynomials")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTERMS\tCAPACITY\tSAVED\tPOLYNOMIAL")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n",
			r.Name,
			r.Terms,
			r.Capacity,
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Canonical,
		)
	}
	return w.Flush()
}

func showPolynomial(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.DataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	p, err := st.LoadPolynomial(args[0], cfg.Capacity)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (saved %s)\n", meta.Name, meta.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(out, viz.Highlight(p.Render(), currentTheme()))
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EXPONENT\tCOEFFICIENT")
	for _, t := range p.Terms() {
		fmt.Fprintf(w, "%d\t%g\n", t.Exponent(), t.Coefficient())
	}
	return w.Flush()
}

func deletePolynomial(cmd *cobra.Command, args []string) error {
	if err := storage.New(cfg.DataDir).Delete(args[0]); err != nil {
		return err
	}
	logger.Info("polynomial deleted", zap.String("name", args[0]))
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
	return nil
}

func exportPolynomial(cmd *cobra.Command, args []string) error {
	p, err := storage.New(cfg.DataDir).LoadPolynomial(args[0], cfg.Capacity)
	if err != nil {
		return err
	}
	if err := storage.ExportJSON(args[1], p); err != nil {
		return fmt.Errorf("export %s: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported %s to %s\n", args[0], args[1])
	return nil
}

func showPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tINPUT\tDESCRIPTION")
		for _, name := range config.ListPresets() {
			preset, _ := config.GetPreset(name)
			fmt.Fprintf(w, "%s\t%s\t%s\n", preset.Name, preset.Input, preset.Description)
		}
		return w.Flush()
	}

	preset, ok := config.GetPreset(args[0])
	if !ok {
		return fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
	}
	p, err := cfg.NewPolynomial()
	if err != nil {
		return err
	}
	p.Parse(preset.Input)
	fmt.Fprintln(out, p.Render())
	return nil
}
