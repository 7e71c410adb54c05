package main

import (
	"fmt"
	"strings"

	"github.com/sandevgo/dwight/internal/transport/cli"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:          "ask <text>",
	Short:        "Ask Dwight a single question",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	Example:      "  dwight ask how do I detect glass breaking\n  dwight ask /triggers",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.db.Close()

		input := strings.Join(args, " ")
		if out, ok := a.router.Execute(ctx, input); ok {
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		}

		reply, err := a.assistant.Chat(ctx, input)
		if err != nil {
			return err
		}
		cli.WriteReply(cmd.OutOrStdout(), reply)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
