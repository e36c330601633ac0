// Command linkreport prints the duplicate link report from the terminal.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var logLevel string

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	rootCmd := &cobra.Command{
		Use:   "linkreport",
		Short: "Inspect the tracked links sheet",
		Long: `linkreport fetches the links sheet, numbers every link in 30-per-page
order and lists the links whose URL was already seen earlier.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override LOG_LEVEL")

	rootCmd.AddCommand(newReportCmd(), newSheetsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
