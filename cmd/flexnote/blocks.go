package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/flexnote/pkg/core"
)

var (
	addType    string
	addLevel   int
	addChecked bool
)

var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Append a block using the command palette grammar",
	Long: `Append one block to the document. The text is parsed like the
command palette: "h1 ", "h2 ", "todo " and "code " prefixes pick the block
type, anything else becomes a paragraph.

With --type the text is stored verbatim in a block of that type.`,
	Example: `  flexnote add "h1 Weekly plan"
  flexnote add "todo Buy milk"
  flexnote add --type image https://example.com/cat.png
  flexnote add --type heading --level 2 "Notes"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var opts []core.BlockOption
		var blockType core.BlockType
		if addType != "" {
			t, err := core.ParseBlockType(addType)
			if err != nil {
				fatal("Invalid --type", err)
			}
			blockType = t
			opts = typedBlockOptions(cmd)
		}

		session, err := openSession(printNotifier(cmd))
		if err != nil {
			fatal("Error opening store", err)
		}
		defer session.Close()

		ctx := context.Background()
		text := strings.Join(args, " ")

		var id string
		if blockType == "" {
			id = session.Editor.ExecuteCommand(ctx, text)
		} else {
			id = session.Editor.AddBlock(ctx, blockType, append(opts, core.WithContent(text))...)
			session.Editor.StopEditing()
		}
		fmt.Fprintln(cmd.OutOrStdout(), id)
	},
}

// typedBlockOptions turns the --level and --checked flags into block
// options. Flags left at their defaults add nothing.
func typedBlockOptions(cmd *cobra.Command) []core.BlockOption {
	var opts []core.BlockOption
	if cmd.Flags().Changed("level") {
		opts = append(opts, core.WithLevel(addLevel))
	}
	if cmd.Flags().Changed("checked") {
		opts = append(opts, core.WithChecked(addChecked))
	}
	return opts
}

var editCmd = &cobra.Command{
	Use:   "edit <id> <content>",
	Short: "Replace the content of a block",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		withBlock(args[0], func(session *core.Session) {
			session.Editor.UpdateBlock(context.Background(), args[0], strings.Join(args[1:], " "))
		}, nil)
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Check or uncheck a todo block",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withBlock(args[0], func(session *core.Session) {
			session.Editor.ToggleTodo(context.Background(), args[0])
			b, _ := session.Editor.Block(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), describeType(b))
		}, nil)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a block",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withBlock(args[0], func(session *core.Session) {
			session.Editor.DeleteBlock(context.Background(), args[0])
		}, printNotifier(cmd))
	},
}

// withBlock opens the store and runs fn when the block exists. The editor
// treats unknown ids as no-ops, so the CLI reports them itself.
func withBlock(id string, fn func(*core.Session), notifier core.Notifier) {
	session, err := openSession(notifier)
	if err != nil {
		fatal("Error opening store", err)
	}
	defer session.Close()

	if _, ok := session.Editor.Block(id); !ok {
		fatalClose(session, "Error finding block", fmt.Errorf("%w: %s", core.ErrNotFound, id))
	}
	fn(session)
}

func init() {
	addCmd.Flags().StringVarP(&addType, "type", "t", "", "Block type (heading, paragraph, todo, code, image)")
	addCmd.Flags().IntVar(&addLevel, "level", 1, "Heading level (1 or 2), with --type heading")
	addCmd.Flags().BoolVar(&addChecked, "checked", false, "Todo state, with --type todo")
	rootCmd.AddCommand(addCmd, editCmd, toggleCmd, deleteCmd)
}
