// Package main is the entry point for the ddtools server and CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Pallarran/Ultimate-D-D-Tools/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "ddtools",
	Short: "D&D 5e combat math server and tools",
	Long: `ddtools analyses character builds against combat scenarios: hit and crit
odds, expected damage per round, the -5/+10 trade-off and time to kill.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", client.DescribeError(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(auditCmd)
}
