package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/seisgo/velfield/velio"
)

func init() {
	rootCmd.AddCommand(picksCmd)
	picksCmd.AddCommand(picksCheckCmd, picksShiftCmd)

	picksCheckCmd.Flags().String("picks", "", "velocity picks file (required)")
	_ = picksCheckCmd.MarkFlagRequired("picks")

	picksShiftCmd.Flags().String("picks", "", "velocity picks file (required)")
	picksShiftCmd.Flags().Float64("delta", 0, "time shift in ms (required)")
	picksShiftCmd.Flags().String("out", "", "output file (default: stdout)")
	picksShiftCmd.Flags().String("delimiter", "\t", "output column delimiter")
	_ = picksShiftCmd.MarkFlagRequired("picks")
	_ = picksShiftCmd.MarkFlagRequired("delta")
}

var picksCmd = &cobra.Command{
	Use:   "picks",
	Short: "Inspect and edit velocity pick files",
}

var picksCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a picks file and report its contents",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("picks")

		store, err := loadPickStore(path)
		if err != nil {
			return err
		}

		traces := store.Traces()
		fmt.Fprintf(os.Stdout, "%d picks on %d traces\n", store.Len(), len(traces))

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TRACE\tPICKS\tFIRST (ms)\tLAST (ms)")
		for _, tr := range traces {
			tp := store.TracePicks(tr)
			fmt.Fprintf(w, "%d\t%d\t%g\t%g\n", tr, len(tp), tp[0].Time, tp[len(tp)-1].Time)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if dups := store.Duplicates(); len(dups) > 0 {
			fmt.Fprintf(os.Stdout, "%d duplicate positions:\n", len(dups))
			for _, p := range dups {
				fmt.Fprintf(os.Stdout, "  trace %d, time %g ms\n", p.Trace, p.Time)
			}
		}
		return nil
	},
}

var picksShiftCmd = &cobra.Command{
	Use:   "shift",
	Short: "Shift every pick in time and write the result",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("picks")
		delta, _ := cmd.Flags().GetFloat64("delta")
		outPath, _ := cmd.Flags().GetString("out")
		delimiter, _ := cmd.Flags().GetString("delimiter")

		store, err := loadPickStore(path)
		if err != nil {
			return err
		}

		clamped := store.ShiftTime(delta)
		if len(clamped) > 0 {
			log.Warn().Int("count", len(clamped)).Msg("picks clamped at time zero")
		}

		out := os.Stdout
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			defer f.Close()
			out = f
		}
		return velio.WritePicks(out, store.Snapshot(), delimiter)
	},
}
