package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var menuWeekly bool

// menuCmd prints one restaurant's menu. The restaurant is looked up in a
// fresh directory snapshot; an unknown id is reported, not fetched blind.
var menuCmd = &cobra.Command{
	Use:   "menu <restaurant-id>",
	Short: "Show a restaurant's daily or weekly menu",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		ctx := cmd.Context()
		if err := a.dir.Refresh(ctx); err != nil {
			return err
		}
		r, ok := a.dir.Get(args[0])
		if !ok {
			return fmt.Errorf("unknown restaurant id %q", args[0])
		}

		var markdown string
		if menuWeekly {
			markdown = a.viewer.Weekly(ctx, r, a.tr)
		} else {
			markdown = a.viewer.Daily(ctx, r, a.tr)
		}

		renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
		if err != nil {
			fmt.Println(markdown)
			return nil
		}
		out, err := renderer.Render(markdown)
		if err != nil {
			fmt.Println(markdown)
			return nil
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	menuCmd.Flags().BoolVarP(&menuWeekly, "weekly", "w", false, "show the weekly menu")
	rootCmd.AddCommand(menuCmd)
}
