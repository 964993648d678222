package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"firestige.xyz/framelab/internal/buildtask"
	"firestige.xyz/framelab/internal/core"
	"firestige.xyz/framelab/internal/log"
)

var (
	buildTaskID string
	buildSets   []string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Check a hand-built frame against its reference encoding",
	Long: `Build loads a construction task for the current seed, composes a frame
from the submitted field values and compares it byte for byte against the
reference frame. Without --set it prints the task's fields and their
seeded default values.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := effectiveSeed()
		task, err := buildtask.Load(seed, buildTaskID)
		if err != nil {
			return err
		}

		if len(buildSets) == 0 {
			printTask(task)
			return nil
		}

		values := make(map[string]string, len(task.FieldDefaults))
		for k, v := range task.FieldDefaults {
			values[k] = v
		}
		for _, kv := range buildSets {
			k, v, found := strings.Cut(kv, "=")
			if !found {
				return fmt.Errorf("--set %q is not key=value", kv)
			}
			values[k] = v
		}

		res := buildtask.Check(values, task.Reference)
		printBuildResult(res)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildTaskID, "task", "ipv4-basic", "task id")
	buildCmd.Flags().StringArrayVar(&buildSets, "set", nil, "override a field as key=value (repeatable)")
}

func printTask(task core.BuildTask) {
	fmt.Printf("task %s, reference frame %d bytes\n", task.ID, len(task.Reference))
	fmt.Println("fields:")
	keys := make([]string, 0, len(task.FieldDefaults))
	for k := range task.FieldDefaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-10s %s\n", k, task.FieldDefaults[k])
	}
}

func printBuildResult(res core.BuildResult) {
	switch {
	case len(res.InvalidInputs) > 0:
		fmt.Printf("invalid inputs: %s\n", strings.Join(res.InvalidInputs, ", "))
	case res.LengthMismatch:
		fmt.Printf("length mismatch: want %d bytes, got %d\n", res.WantLen, res.GotLen)
	case !res.OK:
		fmt.Printf("mismatch at byte offset %d\n", res.MismatchOffset)
	default:
		fmt.Println("ok: frame matches the reference")
		log.GetLogger().WithField("task", buildTaskID).Debug("build check passed")
	}
}
