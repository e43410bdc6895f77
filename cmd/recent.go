package cmd

import (
	"github.com/spf13/cobra"

	"github.com/updown/updown-shell/internal/output"
	"github.com/updown/updown-shell/internal/recent"
)

// RecentResult is the output of the recent subcommands.
type RecentResult struct {
	OK    bool     `yaml:"ok"              json:"ok"`
	Files []string `yaml:"files"           json:"files"`
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Inspect or edit the recent-files record",
}

var recentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent files, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := newRecentStore()
		return output.Print(RecentResult{OK: true, Files: store.All()})
	},
}

var recentAddCmd = &cobra.Command{
	Use:   "add <path>",
	Short: "Push a path to the top of the recent-files record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := newRecentStore()
		store.Add(args[0])
		return output.Print(RecentResult{OK: true, Files: store.All()})
	},
}

var recentClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the recent-files record",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := newRecentStore()
		store.Clear()
		return output.Print(RecentResult{OK: true, Files: store.All()})
	},
}

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.AddCommand(recentListCmd)
	recentCmd.AddCommand(recentAddCmd)
	recentCmd.AddCommand(recentClearCmd)
}

// newRecentStore opens the store at the configured location and loads the
// persisted record. CLI maintenance runs without a menu, so no change hook.
func newRecentStore() *recent.Store {
	store := recent.NewStore(appConfig.RecentFilesPath())
	store.Load()
	return store
}
