package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/orbit-breaker/internal/config"
)

var flagSchemaOut string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the game configuration",
	Long: `Print the JSON Schema of orbit.yaml, or the configuration a game would
start with after the file search and the difficulty preset are applied.

Examples:
  orbit config schema > orbit.schema.json
  orbit config schema -o ./configs/orbit.schema.json
  orbit config dump --difficulty hard`,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema for orbit.yaml",
	Args:  cobra.NoArgs,
	Run:   runConfigSchema,
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	Run:   runConfigDump,
}

func init() {
	configSchemaCmd.Flags().StringVarP(&flagSchemaOut, "output", "o", "", "Output file (default: stdout)")
	addGameFlags(configDumpCmd)

	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configDumpCmd)
}

func runConfigSchema(_ *cobra.Command, _ []string) {
	schema := config.OrbitSchema()

	if flagSchemaOut != "" {
		if err := config.WriteSchema(flagSchemaOut, schema); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote schema to %s\n", flagSchemaOut)
		return
	}

	data, err := config.MarshalSchema(schema)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

func runConfigDump(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadOrbit(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyOrbitPreset(&cfg, config.ParsePreset(flagDifficulty))

	data, err := config.MarshalOrbit(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
