package cmd

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/bnema/lrucache/internal/application/usecase"
	"github.com/bnema/lrucache/internal/infrastructure/config"
)

var configKeysSection string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show the effective configuration, list the supported keys, or print the JSON schema.`,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List configuration keys with defaults",
	Long: `List every configuration key with its type, default and accepted values.
Keys can also be set through LRUCACHE_<SECTION>_<KEY> environment variables.`,
	RunE: runConfigKeys,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configKeysCmd)
	configKeysCmd.Flags().StringVar(&configKeysSection, "section", "", "only list keys of this section")
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	data, err := toml.Marshal(app.Config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	data, err := config.GenerateJSONSchema()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
	out, err := uc.Execute(app.Context(), usecase.GetConfigSchemaInput{Section: configKeysSection})
	if err != nil {
		return fmt.Errorf("get config schema: %w", err)
	}
	if len(out.Keys) == 0 {
		return fmt.Errorf("no config keys in section %q", configKeysSection)
	}

	t := app.Theme
	w := cmd.OutOrStdout()
	section := ""
	for _, key := range out.Keys {
		if key.Section != section {
			if section != "" {
				fmt.Fprintln(w)
			}
			section = key.Section
			fmt.Fprintln(w, t.Title.Render(section))
		}

		line := fmt.Sprintf("  %s %s %s", t.HelpKey.Render(key.Key), t.Subtle.Render(key.Type), t.MutedBadge(key.Default))
		switch {
		case len(key.Values) > 0:
			line += " " + t.Subtle.Render("["+strings.Join(key.Values, "|")+"]")
		case key.Range != "":
			line += " " + t.Subtle.Render(key.Range)
		}
		fmt.Fprintln(w, line)
		fmt.Fprintln(w, "    "+t.HelpDesc.Render(key.Description))
	}
	return nil
}
