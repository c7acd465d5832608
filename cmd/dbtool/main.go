// dbtool imports a launch records CSV or XLSX file into a SQL launch_records
// table so the dashboard can be pointed at sqlite:// or postgres:// sources.
//
// Usage:
//
//	dbtool import --file data/spacex_launch_dash.csv --sqlite data/launches.db
//	dbtool import --file data/spacex_launch_dash.csv --database-url postgres://...
//	dbtool inspect --source sqlite://data/launches.db
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dbtool",
	Short: "Manage SQL copies of the SpaceX launch records",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(inspectCmd)
}

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found (using environment variables)")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
