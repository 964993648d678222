package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"firestige.xyz/framelab/internal/core"
	"firestige.xyz/framelab/internal/decoder"
	"firestige.xyz/framelab/internal/quiz"
	"firestige.xyz/framelab/internal/report"
	"firestige.xyz/framelab/internal/scenario"
)

var (
	quizIndex   int
	quizFormat  string
	quizPDF     string
	quizAnswers []string
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Derive comprehension questions from a scenario",
	Long: `Quiz parses the selected scenario and derives up to ten questions from
its decoded layers. Questions can be printed as JSON or YAML, rendered to
a printable PDF worksheet, or checked directly with --answer id=value.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := effectiveSeed()
		s, err := scenario.Select(seed, quizIndex)
		if err != nil {
			return err
		}
		questions := quiz.Derive(decoder.Parse(s.Bytes))

		if len(quizAnswers) > 0 {
			return checkAnswers(questions, quizAnswers)
		}

		if quizPDF != "" {
			ws := report.Worksheet{
				Seed:      seed,
				Index:     quizIndex,
				Title:     s.Title,
				Questions: questions,
				Permalink: quiz.PermalinkText(seed, quizIndex),
			}
			return report.SaveWorksheetPDF(ws, quizPDF)
		}

		switch quizFormat {
		case "json":
			b, err := json.MarshalIndent(questions, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(b))
		case "yaml":
			b, err := yaml.Marshal(questions)
			if err != nil {
				return err
			}
			fmt.Print(string(b))
		default:
			return fmt.Errorf("unsupported format %q (must be json or yaml)", quizFormat)
		}
		return nil
	},
}

func init() {
	quizCmd.Flags().IntVar(&quizIndex, "index", 0, "scenario index")
	quizCmd.Flags().StringVar(&quizFormat, "format", "json", "output format: json or yaml")
	quizCmd.Flags().StringVar(&quizPDF, "pdf", "", "write a printable worksheet PDF to this path")
	quizCmd.Flags().StringArrayVar(&quizAnswers, "answer", nil, "check an answer as id=value (repeatable)")
}

func checkAnswers(questions []core.Question, answers []string) error {
	byID := make(map[string]core.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	for _, a := range answers {
		id, value, found := strings.Cut(a, "=")
		if !found {
			return fmt.Errorf("answer %q is not id=value", a)
		}
		q, ok := byID[id]
		if !ok {
			return fmt.Errorf("no question with id %q", id)
		}
		verdict := "incorrect"
		if quiz.Validate(q, value) {
			verdict = "correct"
		}
		fmt.Printf("%-12s %s\n", id, verdict)
	}
	return nil
}
