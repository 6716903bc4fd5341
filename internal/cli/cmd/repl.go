package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/lrucache/internal/application/usecase"
	"github.com/bnema/lrucache/internal/cli/model"
	"github.com/bnema/lrucache/internal/logging"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Drive a cache interactively",
	Long: `Start an interactive session. Type "put <key> <value>" or "get <key>"
and watch the recency order update after each command.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Context(), "repl")

	replayUC := usecase.NewReplayTraceUseCase()
	cache, err := app.NewCache(replayUC)
	if err != nil {
		return err
	}

	m := model.NewReplModel(ctx, app.Theme, cache, replayUC, app.Config.Cache.Capacity)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run repl: %w", err)
	}
	return nil
}
