// Package cli defines the kuradex command tree. Commands only parse flags
// and wire adapters together; all behaviour lives behind the driving ports.
package cli

import (
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	projectPath string
	configPath  string
)

var rootCmd = &cobra.Command{
	Use:   "kuradex",
	Short: "Serve a collection catalogue over HTTP",
	Long: `Kuradex indexes the collection folders of a cataloguing project
and serves search, inventory status and collection files to a browser UI.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectPath, "project", "p", "", "path to the project descriptor (.crec) file")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the server config (TOML) file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
