// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"fmt"
	"io"
	"sort"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"

	"github.com/danielhkuo/quickly-quiz/models"
)

// WriteReport renders the statistics of a test as a PDF
func WriteReport(w io.Writer, test models.Test, responseCount int, questions []models.QuestionStats) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 10, tr(test.Title), "", "L", false)
	if test.Description != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(test.Description), "", "L", false)
	}
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, fmt.Sprintf("Responses: %d", responseCount), "", "L", false)
	pdf.Ln(4)

	for i, qs := range questions {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 7, tr(fmt.Sprintf("Question %d: %s", i+1, qs.Prompt)), "", "L", false)

		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, correctLine(qs), "", "L", false)

		if len(qs.AnswerDistribution) > 0 {
			opts := make([]string, 0, len(qs.AnswerDistribution))
			for opt := range qs.AnswerDistribution {
				opts = append(opts, opt)
			}
			sort.Strings(opts)
			for _, opt := range opts {
				line := fmt.Sprintf("  %s: %d", opt, qs.AnswerDistribution[opt])
				pdf.MultiCell(0, 6, tr(line), "", "L", false)
			}
		}
		pdf.Ln(3)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	return pdf.Output(w)
}

func correctLine(qs models.QuestionStats) string {
	if !qs.HasCorrectAnswer {
		return "Correct: no correct answer set"
	}
	if qs.CorrectPercent == nil {
		return "Correct: no data"
	}
	return fmt.Sprintf("Correct: %d of %d (%d%%)", qs.CorrectCount, qs.TotalAnswers, *qs.CorrectPercent)
}

// QRCode returns a PNG encoding the share link
func QRCode(link string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	png, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return png, nil
}
