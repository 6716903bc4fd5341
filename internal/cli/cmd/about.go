package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/lrucache/internal/domain/build"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display version, build info, repository URL, and contributors.`,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	t := app.Theme
	info := app.BuildInfo

	lines := []string{
		t.Title.Render("lrucache") + " " + t.AccentBadge(orDefault(info.Version, "dev")),
		t.Subtle.Render("commit:  ") + orDefault(info.Commit, "unknown"),
		t.Subtle.Render("built:   ") + orDefault(info.BuildDate, "unknown"),
		t.Subtle.Render("go:      ") + orDefault(info.GoVersion, "unknown"),
		t.Subtle.Render("repo:    ") + build.RepoURL(),
		t.Subtle.Render("authors: ") + strings.Join(build.Contributors(), ", "),
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.Box.Render(strings.Join(lines, "\n")))
	return nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
