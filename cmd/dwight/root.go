package main

import (
	"context"
	"os"

	"github.com/sandevgo/dwight/internal/config"
	"github.com/sandevgo/dwight/internal/service/ui"
	"github.com/sandevgo/dwight/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "dwight",
	Short: "Dwight — an audio forensics assistant",
	Long:  `Dwight answers questions about audio analysis and annotates recordings with simple sound patterns.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}

// CustomizeHelp renders cobra help with the shared terminal palette.
func CustomizeHelp(cmd *cobra.Command) {
	styles := map[string]func(string) string{
		"StyleTitle": func(s string) string { return ui.TitleStyle.Render(s) },
		"StyleUsage": func(s string) string { return ui.UsageStyle.Render(s) },
		"StyleFlag":  func(s string) string { return ui.FlagStyle.Render(s) },
		"StyleDesc":  func(s string) string { return ui.DescStyle.Render(s) },
	}
	for name, fn := range styles {
		cobra.AddTemplateFunc(name, fn)
	}

	cmd.SetHelpTemplate(`{{with (or .Long .Short)}}{{.}}
{{end}}
{{StyleTitle "USAGE"}}
  {{StyleUsage .UseLine}}
{{if .HasExample}}
{{StyleTitle "EXAMPLES"}}
{{.Example}}
{{end}}{{if .HasAvailableSubCommands}}
{{StyleTitle "COMMANDS"}}{{range .Commands}}{{if .IsAvailableCommand}}
  {{rpad .Name .NamePadding}} {{StyleDesc .Short}}{{end}}{{end}}
{{end}}{{if .HasAvailableLocalFlags}}
{{StyleTitle "FLAGS"}}
{{StyleFlag (.LocalFlags.FlagUsages | trimTrailingWhitespaces)}}
{{end}}{{if .HasAvailableInheritedFlags}}
{{StyleTitle "GLOBAL FLAGS"}}
{{StyleFlag (.InheritedFlags.FlagUsages | trimTrailingWhitespaces)}}
{{end}}`)
}
