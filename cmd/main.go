package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:           "debris-analyzer",
	Short:         "Space debris detection and collection path planning",
	Long:          `Detects debris objects on images and plans a greedy nearest-neighbour collection route from a base position.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a config file (yaml, toml or json)")
	rootCmd.AddCommand(serveCmd, planCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
