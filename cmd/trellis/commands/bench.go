package commands

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/trellis-research/trellis/bench"
	"github.com/trellis-research/trellis/config"
	"github.com/trellis-research/trellis/render"
)

// BenchCmd runs the rendering benchmark suite
var BenchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the rendering benchmark suite",
	Long: `Run the rendering pipeline across a series of synthetic dataset
sizes, measure render time and sampled frame rate per size, and print a
markdown report with an overall classification.

Sizes run one at a time; interrupting with Ctrl-C stops at the next size
boundary and reports the partial results.`,
	RunE: runBench,
}

func init() {
	BenchCmd.Flags().IntSlice("sizes", nil, "Dataset sizes to benchmark (default from config)")
	BenchCmd.Flags().Float64("target-fps", 0, "Frame-rate target for classification (default from config)")
	BenchCmd.Flags().StringP("output", "o", "", "Write the markdown report to a file instead of stdout")
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	sizes, _ := cmd.Flags().GetIntSlice("sizes")
	if len(sizes) == 0 {
		sizes = cfg.Bench.Sizes
	}
	targetFPS, _ := cmd.Flags().GetFloat64("target-fps")
	if targetFPS <= 0 {
		targetFPS = cfg.Bench.TargetFPS
	}
	sampleWindow := time.Duration(cfg.Bench.SampleWindowMS) * time.Millisecond

	// Ctrl-C cancels cooperatively at the next size boundary
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	harness := bench.New(
		bench.WithSampleWindow(sampleWindow),
		bench.WithTargetFPS(targetFPS),
	)
	settings := render.FromConfig(cfg.Visualization)
	renderFn := bench.PipelineRenderFunc(settings, harness.SampleWindow())

	pterm.Info.Printfln("Benchmarking %d dataset sizes (sample window %s)", len(sizes), sampleWindow)

	spinner, _ := pterm.DefaultSpinner.Start("Running benchmark suite...")
	suite := harness.Run(ctx, sizes, renderFn)
	if ctx.Err() != nil {
		spinner.Warning(fmt.Sprintf("Interrupted after %d of %d sizes", len(suite.Order), len(sizes)))
	} else {
		spinner.Success("Benchmark suite complete")
	}

	report := bench.Report(suite)

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := os.WriteFile(output, []byte(report), 0o644); err != nil {
			return err
		}
		pterm.Success.Printfln("Report written to %s", output)
	} else {
		fmt.Println(report)
	}

	switch bench.Classify(suite) {
	case bench.ClassExcellent, bench.ClassGood:
		pterm.Success.Printfln("Classification: %s", bench.Classify(suite))
	case bench.ClassFair:
		pterm.Warning.Printfln("Classification: %s", bench.Classify(suite))
	default:
		pterm.Error.Printfln("Classification: %s", bench.Classify(suite))
	}

	return nil
}
