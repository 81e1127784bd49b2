package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"sarconf/internal/app"
	"sarconf/internal/config"
	"sarconf/internal/geometry"
	"sarconf/internal/monitoring"
	"sarconf/internal/plotting"
	"sarconf/internal/sar"
)

var (
	params          = sar.Default()
	flagConvention  string
	flagLogFile     string
	flagOut         string
	flagFormat      string
	flagInteractDir string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sarconf",
		Short: "SAR-CONF - Terminal configurator for airborne SAR timing and geometry",
		Long: `SAR-CONF edits the parameters of an airborne synthetic aperture radar and
redraws two diagrams on every change: the chronogram of TX/RX/noise windows
folded into the pulse repetition interval, and the side-view geometry of the
carrier, beam and receive range window.

Keys: up/down select, left/right adjust (shift for x10), u undo, c angle
convention, r reset, e export diagrams, q quit.`,
		SilenceUsage:      true,
		PersistentPreRunE: loadParams,
		RunE:              run,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&params.Name, "name", params.Name, "Configuration name")
	flags.StringVar(&flagConvention, "angle-convention", geometry.LookAngle.String(),
		"How --look-angle is measured: look (from nadir) or depression (from horizontal)")
	for _, f := range sar.Fields() {
		usage := f.Help
		if usage == "" {
			usage = f.Label
		}
		if f.Unit != "" {
			usage += " (" + f.Unit + ")"
		}
		if ref := f.CountRef(&params); ref != nil {
			flags.IntVar(ref, f.Key, *ref, usage)
			continue
		}
		ref := f.FloatRef(&params)
		flags.Float64Var(ref, f.Key, *ref, usage)
	}

	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write diagnostics to this file while the configurator runs")
	rootCmd.Flags().StringVar(&flagInteractDir, "export-dir", ".", "Directory the e key exports diagrams into")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the chronogram and geometry diagrams to image files",
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&flagOut, "out", ".", "Output directory")
	exportCmd.Flags().StringVarP(&flagFormat, "format", "f", "png",
		"Image format: "+strings.Join(plotting.Formats, ", "))

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Print derived figures and the folded window table",
		RunE:  runSummary,
	}

	rootCmd.AddCommand(exportCmd, summaryCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadParams(cmd *cobra.Command, args []string) error {
	conv, err := geometry.ParseAngleConvention(flagConvention)
	if err != nil {
		return err
	}
	params.Convention = conv
	return params.Validate()
}

func run(cmd *cobra.Command, args []string) error {
	// The configurator owns the terminal; diagnostics go to a file or nowhere.
	if flagLogFile != "" {
		f, err := tea.LogToFile(flagLogFile, "sarconf")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
	} else {
		monitoring.SetLogger(nil)
	}

	model := app.New(params, flagInteractDir, "png")
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

func runExport(cmd *cobra.Command, args []string) error {
	files, err := plotting.Export(flagOut, flagFormat, params)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Fprintln(cmd.OutOrStdout(), f)
	}
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	tl, err := params.Timeline()
	if err != nil {
		return err
	}
	near, far := params.RangeWindow()

	title := lipgloss.NewStyle().Bold(true)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, title.Render(fmt.Sprintf("%s v%s - %s", config.AppName, config.AppVersion, params.Name)))
	fmt.Fprintf(out, "PRF             %.1f Hz\n", params.PRF())
	fmt.Fprintf(out, "Final PRF       %.1f Hz\n", params.FinalPRF())
	fmt.Fprintf(out, "Look angle      %.2f° (%s %.2f°)\n", params.Look(), params.Convention, params.LookAngle)
	fmt.Fprintf(out, "Incidence       %.2f°\n", params.Incidence())
	fmt.Fprintf(out, "Target dist.    %.1f m\n", params.TargetDistance())
	fmt.Fprintf(out, "Nadir echo      %.2f µs\n", params.NadirDelay())
	if near < far {
		fmt.Fprintf(out, "Range window    %.1f .. %.1f m\n", near, far)
	} else {
		fmt.Fprintln(out, "Range window    none")
	}
	fmt.Fprintf(out, "Ambiguities     %d (span %.1f µs)\n", tl.Replicas-1, tl.Span())
	if tl.Truncated {
		fmt.Fprintf(out, "Replica count capped at %d\n", config.MaxReplicas)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Window", "Replica", "Start (µs)", "End (µs)")
	for _, in := range tl.Instances {
		t.Row(in.Label,
			fmt.Sprintf("%d", in.Replica),
			fmt.Sprintf("%.2f", in.Start),
			fmt.Sprintf("%.2f", in.End()))
	}
	fmt.Fprintln(out, t.Render())

	monitoring.Logf("summary: %d windows folded into %d instances", len(params.Windows()), len(tl.Instances))
	return nil
}
