package cmd

import "github.com/spf13/cobra"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Schedoosh server",
	Long:  `Start the Schedoosh server to handle account, group and event requests.`,
	Example: `schedoosh serve --config config.yml
schedoosh serve -c /path/to/config.yml --log-level debug`,
	Run: startServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
