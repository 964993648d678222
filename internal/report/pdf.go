// Package report renders printable quiz worksheets.
package report

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"firestige.xyz/framelab/internal/core"
)

// Worksheet bundles everything one printed sheet needs.
type Worksheet struct {
	Seed      uint32
	Index     int
	Title     string
	Questions []core.Question
	// Permalink is encoded into the QR code so a printed sheet can be
	// reopened as the exact same (seed, scenario) pair.
	Permalink string
}

// SaveWorksheetPDF renders the worksheet into a PDF document at out.
// Answer keys are intentionally not printed.
func SaveWorksheetPDF(ws Worksheet, out string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Frame Analysis Worksheet", false)
	pdf.SetAuthor("framelab", false)
	pdf.SetCreator("framelab", false)
	pdf.SetMargins(15, 20, 15)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	addTitle(pdf, "Frame Analysis Worksheet")
	addScenarioHeader(pdf, ws)
	addQuestions(pdf, ws.Questions)

	if err := addPermalinkQR(pdf, ws.Permalink); err != nil {
		return err
	}

	if pdf.Err() {
		return pdf.Error()
	}
	return pdf.OutputFileAndClose(out)
}

func addTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
}

func addScenarioHeader(pdf *gofpdf.Fpdf, ws Worksheet) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, ws.Title)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Seed %d, scenario %d", ws.Seed, ws.Index))
	pdf.Ln(10)
}

func addQuestions(pdf *gofpdf.Fpdf, qs []core.Question) {
	for i, q := range qs {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 6, fmt.Sprintf("%d. %s", i+1, q.Prompt), "", "L", false)

		pdf.SetFont("Helvetica", "", 10)
		if q.Kind == core.QuestionChoice {
			for _, c := range q.Choices {
				pdf.MultiCell(0, 5, "    [ ] "+c, "", "L", false)
			}
		} else {
			pdf.MultiCell(0, 5, "    Answer: ______________________________", "", "L", false)
		}
		pdf.Ln(3)
	}
}
