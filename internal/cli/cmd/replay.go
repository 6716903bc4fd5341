package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/bnema/lrucache/internal/application/usecase"
	"github.com/bnema/lrucache/internal/domain/trace"
	"github.com/bnema/lrucache/internal/infrastructure/config"
	"github.com/bnema/lrucache/internal/logging"
)

var (
	replayPlain   bool
	replayVerbose bool
)

var replayCmd = &cobra.Command{
	Use:   "replay [file]",
	Short: "Replay a trace of get/put operations",
	Long: `Replay every operation of a trace file (or stdin when no file is
given) against a fresh cache and print the outcome.

Examples:
  lrucache replay ops.trace
  printf 'put a 1\nget a\n' | lrucache replay -c 2 --verbose`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVar(&replayPlain, "plain", false, "print plain text instead of styled output")
	replayCmd.Flags().BoolVarP(&replayVerbose, "verbose", "v", false, "print every operation")
}

func runReplay(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Context(), "replay")

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open trace: %w", err)
		}
		defer f.Close()
		in = f
	}

	ops, err := trace.Parse(in)
	if err != nil {
		return fmt.Errorf("parse trace: %w", err)
	}

	replayUC := usecase.NewReplayTraceUseCase()
	cache, err := app.NewCache(replayUC)
	if err != nil {
		return err
	}

	out, err := replayUC.Execute(ctx, usecase.ReplayTraceInput{Cache: cache, Ops: ops})
	if err != nil {
		return fmt.Errorf("replay trace: %w", err)
	}

	w := cmd.OutOrStdout()
	if replayPlain || app.Config.Output.Format == config.OutputPlain {
		writePlainReplay(w, app.Config.Cache.Capacity, out, replayVerbose)
		return nil
	}
	fmt.Fprintln(w, app.Theme.RenderReplay(app.Config.Cache.Capacity, out, replayVerbose))
	return nil
}

func writePlainReplay(w io.Writer, capacity int, out *usecase.ReplayTraceOutput, verbose bool) {
	if verbose {
		for _, step := range out.Steps {
			fmt.Fprintf(w, "%d\t%s\t%s", step.Op.Line, step.Op, step.Outcome)
			if step.Outcome == usecase.OutcomeHit {
				fmt.Fprintf(w, "\t%s", step.Value)
			}
			for _, ev := range step.Evicted {
				fmt.Fprintf(w, "\tevicted=%s", ev.Key)
			}
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintf(w, "capacity=%d ops=%d hits=%d misses=%d inserts=%d updates=%d evictions=%d\n",
		capacity, len(out.Steps), out.Hits, out.Misses, out.Inserts, out.Updates, out.Evictions)
	fmt.Fprintf(w, "order:")
	for _, key := range out.Order {
		fmt.Fprintf(w, " %s", key)
	}
	fmt.Fprintln(w)

	keys := make([]string, 0, len(out.Contents))
	for key := range out.Contents {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(w, "%s=%s\n", key, out.Contents[key])
	}
}
