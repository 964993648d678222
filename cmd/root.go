// Package cmd implements CLI commands using cobra framework.
package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"firestige.xyz/framelab/internal/config"
	"firestige.xyz/framelab/internal/log"
)

var (
	// Global flags
	configFile string
	seedFlag   uint32

	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "framelab",
	Short: "Framelab - deterministic network frame teaching lab",
	Long: `Framelab generates synthetic network frames (Ethernet, ARP, IPv4, UDP,
TCP, ICMP) from a seed, decodes arbitrary frame bytes back into layer
records, derives comprehension questions from them, and checks frames a
student rebuilds field by field against a reference encoding.

The same seed always yields the same frames, so a (seed, scenario) pair is
a stable exercise reference that can be shared or printed.`,
	Version:           "0.1.0",
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"config file path (default ./framelab.yml)")
	rootCmd.PersistentFlags().Uint32Var(&seedFlag, "seed", 0,
		"generation seed (0 = config default, or time-derived)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(exportCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configFile)
	if err != nil {
		return err
	}
	return log.Init(&cfg.Log)
}

// effectiveSeed resolves the seed in priority order: --seed flag, config
// default, current time.
func effectiveSeed() uint32 {
	if seedFlag != 0 {
		return seedFlag
	}
	if cfg != nil && cfg.Seed.Default != 0 {
		return cfg.Seed.Default
	}
	return uint32(time.Now().UnixNano())
}
