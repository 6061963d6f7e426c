// Pillnav-demo shows the bottom navigation bar on a handheld or desktop.
//
// It loads a style file and a menu file, switches a coloured content area
// as slots are selected, and exits when the selection is confirmed.
//
// Usage:
//
//	pillnav-demo [command] [flags]
//
// Running without a command opens the demo screen.
// See 'pillnav-demo --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pillnav-demo",
	Short: "Bottom navigation bar demo",
	Long: `Opens a screen with a pill-shaped bottom navigation bar.

Slots can be selected with the d-pad, shoulder buttons, a mouse or a
touchscreen. A or Start confirms the selection and exits, B cancels.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDemo,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pillnav-demo %s\n", Version)
	},
}
