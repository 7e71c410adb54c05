package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sandevgo/dwight/internal/core"
	"github.com/sandevgo/dwight/internal/service/command"
	"github.com/spf13/cobra"
)

var saveRecord bool

var analyzeCmd = &cobra.Command{
	Use:          "analyze <file>",
	Short:        "Analyze an audio file",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	Example:      "  dwight analyze ~/recordings/garage.wav --save",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.db.Close()

		path, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}

		res, err := a.assistant.AnalyzeFile(ctx, path)
		if err != nil {
			return err
		}

		var id int64
		if saveRecord {
			id, err = a.assistant.SaveRecording(ctx, core.AudioRecord{
				FilePath: path,
				Duration: res.Duration,
				Triggers: strings.Join(res.Observations, "; "),
			})
			if err != nil {
				return err
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), command.FormatAnalysis(command.NewResponseFormatter(), res, id))
		return nil
	},
}

func init() {
	analyzeCmd.Flags().BoolVarP(&saveRecord, "save", "s", false, "store the file as a recording")
	rootCmd.AddCommand(analyzeCmd)
}
