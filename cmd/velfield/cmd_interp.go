package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/seisgo/velfield/internal/config"
	"github.com/seisgo/velfield/vel/core"
	"github.com/seisgo/velfield/vel/export"
	"github.com/seisgo/velfield/vel/field"
	"github.com/seisgo/velfield/vel/pick"
	"github.com/seisgo/velfield/vel/rbf"
	"github.com/seisgo/velfield/velio"
)

func init() {
	rootCmd.AddCommand(interpCmd)

	interpCmd.Flags().String("picks", "", "velocity picks file (required)")
	interpCmd.Flags().String("geometry", "", "trace geometry file (trace, x, y)")
	interpCmd.Flags().Float64("max-time", 0, "record length in ms (default: last pick time)")
	interpCmd.Flags().String("method", "", "linear|linear-custom|logarithmic|logarithmic-custom|rbf|two-step")
	interpCmd.Flags().Float64("v0", 0, "intercept velocity for the custom models")
	interpCmd.Flags().Float64("k", 0, "gradient for the custom models")
	interpCmd.Flags().String("kernel", "", "rbf kernel: multiquadric|linear|thinplate|gaussian")
	interpCmd.Flags().Float64("epsilon", 0, "rbf shape parameter (0 = kernel default)")
	interpCmd.Flags().Float64("rbf-smoothing", 0, "rbf ridge factor (0 = exact interpolation)")
	interpCmd.Flags().Int("min-trace-picks", 0, "two-step per-trace pick threshold")
	interpCmd.Flags().Int("smooth-level", 0, "final Gaussian smoothing level, 0 or 1-100")
	interpCmd.Flags().Float64("time-step", 0, "grid time sampling in ms")
	interpCmd.Flags().Int("workers", 0, "parallel evaluation workers (0 = all cores)")
	interpCmd.Flags().String("out-dir", "", "output directory")
	interpCmd.Flags().String("delimiter", "", "text export column delimiter")
	interpCmd.Flags().Bool("text-only", false, "skip the binary export")
	_ = interpCmd.MarkFlagRequired("picks")
}

var interpCmd = &cobra.Command{
	Use:   "interp",
	Short: "Interpolate a velocity field from a picks file",
	Args:  cobra.NoArgs,
	RunE:  runInterp,
}

func runInterp(cmd *cobra.Command, args []string) error {
	picksPath, _ := cmd.Flags().GetString("picks")

	cfg, err := fieldConfigFromFlags(cmd)
	if err != nil {
		return err
	}
	cfg.Progress = func(percent int, message string) {
		log.Debug().Int("percent", percent).Msg(message)
	}

	store, err := loadPickStore(picksPath)
	if err != nil {
		return err
	}
	snapshot := store.Snapshot()

	if dups := store.Duplicates(); len(dups) > 0 {
		log.Warn().Int("count", len(dups)).Msg("duplicate pick positions; later rows override earlier ones")
	}

	geom, err := loadGeometry(cmd, snapshot)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("method", cfg.Method.String()).
		Int("picks", len(snapshot)).
		Msg("constructing velocity field")

	grid, err := field.Construct(ctx, snapshot, geom, cfg)
	if err != nil {
		return err
	}

	asm, err := export.NewAssembler(grid, geom)
	if err != nil {
		return err
	}

	out := config.GetOutputConfig()
	if dir, _ := cmd.Flags().GetString("out-dir"); dir != "" {
		out.Dir = dir
	}
	if d, _ := cmd.Flags().GetString("delimiter"); cmd.Flags().Changed("delimiter") {
		out.Delimiter = d
	}
	if textOnly, _ := cmd.Flags().GetBool("text-only"); textOnly {
		out.Binary = false
	}

	if err := os.MkdirAll(out.Dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(picksPath), filepath.Ext(picksPath))
	textPath := filepath.Join(out.Dir, base+"_interpolated_2D.dat")
	if err := writeTextField(asm, textPath, out.Delimiter); err != nil {
		return err
	}
	log.Info().Str("path", textPath).Msg("wrote text field")

	if out.Binary {
		binPath := filepath.Join(out.Dir, base+"_interpolated_2D.bin")
		if err := writeBinaryField(asm, binPath); err != nil {
			return err
		}
		log.Info().Str("path", binPath).Msg("wrote binary field")
	}

	log.Info().
		Int("traces", grid.Axes.NumTraces).
		Int("samples", grid.Axes.NumSamples).
		Float64("timeStep", grid.Axes.TimeStep).
		Msg("done")
	return nil
}

// fieldConfigFromFlags merges the loaded configuration with any flags
// the user set explicitly.
func fieldConfigFromFlags(cmd *cobra.Command) (field.Config, error) {
	fc := config.GetFieldConfig()

	if cmd.Flags().Changed("method") {
		fc.Method, _ = cmd.Flags().GetString("method")
	}
	if cmd.Flags().Changed("v0") {
		fc.V0, _ = cmd.Flags().GetFloat64("v0")
	}
	if cmd.Flags().Changed("k") {
		fc.K, _ = cmd.Flags().GetFloat64("k")
	}
	if cmd.Flags().Changed("kernel") {
		fc.Kernel, _ = cmd.Flags().GetString("kernel")
	}
	if cmd.Flags().Changed("epsilon") {
		fc.Epsilon, _ = cmd.Flags().GetFloat64("epsilon")
	}
	if cmd.Flags().Changed("rbf-smoothing") {
		fc.Smoothing, _ = cmd.Flags().GetFloat64("rbf-smoothing")
	}
	if cmd.Flags().Changed("min-trace-picks") {
		fc.MinTracePicks, _ = cmd.Flags().GetInt("min-trace-picks")
	}
	if cmd.Flags().Changed("smooth-level") {
		fc.SmoothLevel, _ = cmd.Flags().GetInt("smooth-level")
	}
	if cmd.Flags().Changed("time-step") {
		fc.TimeStep, _ = cmd.Flags().GetFloat64("time-step")
	}
	if cmd.Flags().Changed("workers") {
		fc.Workers, _ = cmd.Flags().GetInt("workers")
	}

	method, err := field.ParseMethod(fc.Method)
	if err != nil {
		return field.Config{}, err
	}
	kernel, err := rbf.ParseKernel(fc.Kernel)
	if err != nil {
		return field.Config{}, err
	}

	cfg := field.Config{
		Method:        method,
		V0:            fc.V0,
		K:             fc.K,
		Kernel:        kernel,
		Epsilon:       fc.Epsilon,
		RBFSmoothing:  fc.Smoothing,
		MinTracePicks: fc.MinTracePicks,
		SmoothLevel:   fc.SmoothLevel,
		TimeStep:      fc.TimeStep,
		Workers:       fc.Workers,
	}
	return cfg, cfg.Validate()
}

func loadPickStore(path string) (*pick.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open picks file: %w", err)
	}
	defer f.Close()

	rows, err := velio.ReadPicks(f)
	if err != nil {
		return nil, err
	}

	store := pick.NewStore()
	if err := store.Load(rows); err != nil {
		return nil, err
	}
	return store, nil
}

// loadGeometry reads the optional geometry file and fixes its record
// length from the --max-time flag or the latest pick.
func loadGeometry(cmd *cobra.Command, picks []pick.Pick) (*core.Geometry, error) {
	path, _ := cmd.Flags().GetString("geometry")
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open geometry file: %w", err)
	}
	defer f.Close()

	geom, err := velio.ReadGeometry(f)
	if err != nil {
		return nil, err
	}

	maxTime, _ := cmd.Flags().GetFloat64("max-time")
	if maxTime <= 0 {
		for _, p := range picks {
			if p.Time > maxTime {
				maxTime = p.Time
			}
		}
	}
	geom.MaxTime = maxTime
	return geom, nil
}

func writeTextField(asm *export.Assembler, path, delimiter string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := asm.WriteText(f, delimiter); err != nil {
		return err
	}
	return f.Close()
}

func writeBinaryField(asm *export.Assembler, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := asm.WriteBinary(f); err != nil {
		return err
	}
	return f.Close()
}
