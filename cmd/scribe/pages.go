package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/scribe/internal/presentation/tui"
	"github.com/aretw0/scribe/pkg/blocks"
	"github.com/aretw0/scribe/pkg/domain"
	"github.com/aretw0/scribe/pkg/operations"
)

var errOperationFailed = errors.New("operation failed")

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a page with plain text content",
	Example: `  scribe create --title Notes --data "Hello world"
  scribe create --title Notes --data "Hello world" --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := operations.CreatePageInput{}
		in.Title, _ = cmd.Flags().GetString("title")
		in.Emoji, _ = cmd.Flags().GetString("emoji")
		in.Data, _ = cmd.Flags().GetString("data")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		if dryRun {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			emoji := in.Emoji
			if emoji == "" {
				emoji = cfg.DefaultEmoji
			}
			req := blocks.ComposeCreate(cfg.ParentPageID, in.Title, emoji, blocks.Paragraph(in.Data))
			return preview(cmd.OutOrStdout(), req, req.Title(), req.Children)
		}

		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), app.Service.CreatePage(cmd.Context(), in))
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <page-id>",
	Short: "Append an optional heading and a paragraph to a page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := operations.UpdatePageInput{PageID: args[0]}
		in.Data, _ = cmd.Flags().GetString("data")
		in.Heading, _ = cmd.Flags().GetString("heading")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		if dryRun {
			req := blocks.ComposeAppend(in.Heading, in.Data)
			return preview(cmd.OutOrStdout(), req, "", req.Children)
		}

		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), app.Service.UpdatePage(cmd.Context(), in))
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(updateCmd)

	createCmd.Flags().String("title", operations.DefaultTitle, "Page title")
	createCmd.Flags().String("emoji", "", "Emoji icon (defaults to the configured icon)")
	createCmd.Flags().String("data", "", "Plain text content")
	createCmd.Flags().Bool("dry-run", false, "Print the request body instead of sending it")

	updateCmd.Flags().String("data", "", "Paragraph content to append")
	updateCmd.Flags().String("heading", "", "Optional heading")
	updateCmd.Flags().Bool("dry-run", false, "Print the request body instead of sending it")
}

// preview prints the request body, then a rendered markdown view when stdout is a terminal.
func preview(w io.Writer, body any, title string, children []domain.ContentBlock) error {
	data, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	fmt.Fprintln(w, string(data))

	if f, ok := w.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	rendered, err := tui.NewRenderer()(tui.Markdown(title, children))
	if err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}
	fmt.Fprint(w, rendered)
	return nil
}

func printResult(w io.Writer, res domain.OperationResult) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Fprintln(w, string(data))
	if !res.OK() {
		return errOperationFailed
	}
	return nil
}
