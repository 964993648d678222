package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"firestige.xyz/framelab/internal/log"
	"firestige.xyz/framelab/internal/scenario"
)

var (
	generateIndex int
	generateHex   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the scenario frames for a seed",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := effectiveSeed()
		log.GetLogger().WithField("seed", seed).Debug("generating scenarios")

		if generateIndex >= 0 {
			s, err := scenario.Select(seed, generateIndex)
			if err != nil {
				return err
			}
			printScenario(s, true)
			return nil
		}

		fmt.Printf("seed %d\n", seed)
		for i, s := range scenario.Generate(seed) {
			fmt.Printf("%d  %-12s %-40s %d bytes\n", i, s.ID, s.Title, len(s.Bytes))
			if generateHex {
				printHexDump(s.Bytes)
			}
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVar(&generateIndex, "index", -1, "dump a single scenario by index")
	generateCmd.Flags().BoolVar(&generateHex, "hex", false, "hex dump every scenario")
}

func printScenario(s scenario.Scenario, hex bool) {
	fmt.Printf("%s  %s  (%d bytes)\n", s.ID, s.Title, len(s.Bytes))
	if hex {
		printHexDump(s.Bytes)
	}
}

func printHexDump(b []byte) {
	for off := 0; off < len(b); off += 16 {
		end := off + 16
		if end > len(b) {
			end = len(b)
		}
		fmt.Printf("  %04x ", off)
		for _, c := range b[off:end] {
			fmt.Printf(" %02x", c)
		}
		fmt.Println()
	}
}
