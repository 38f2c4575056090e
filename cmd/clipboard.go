package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var clipboardCmd = &cobra.Command{
	Use:   "clipboard",
	Short: "Read or write the system clipboard",
}

var clipboardGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the clipboard contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		adapter, _, err := newAdapter()
		if err != nil {
			return err
		}
		defer func() { _ = adapter.Close() }()

		text, err := adapter.Clipboard().ReadText()
		if err != nil {
			return fmt.Errorf("clipboard read failed: %w", err)
		}
		fmt.Println(text)
		return nil
	},
}

var clipboardSetCmd = &cobra.Command{
	Use:   "set TEXT",
	Short: "Replace the clipboard contents",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		adapter, _, err := newAdapter()
		if err != nil {
			return err
		}
		defer func() { _ = adapter.Close() }()

		if err := adapter.Clipboard().WriteText(strings.Join(args, " ")); err != nil {
			return fmt.Errorf("clipboard write failed: %w", err)
		}
		return nil
	},
}

func init() {
	clipboardCmd.AddCommand(clipboardGetCmd)
	clipboardCmd.AddCommand(clipboardSetCmd)
	rootCmd.AddCommand(clipboardCmd)
}
