// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/quickly-quiz/models"
)

const AnswerSheetName = "Answers"

// Row is one line of an answer sheet
type Row struct {
	Question string
	Answer   string
}

// AnswerSheet pairs every question prompt with the given answer. Multiple
// answers are joined with ", " and unanswered questions stay empty.
func AnswerSheet(test models.Test, answers map[int64]models.Answer) []Row {
	rows := make([]Row, 0, len(test.Questions))
	for _, q := range test.Questions {
		rows = append(rows, Row{Question: q.Prompt, Answer: answers[q.ID].String()})
	}
	return rows
}

// WriteXLSX writes the rows as a workbook with one sheet
func WriteXLSX(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", AnswerSheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(AnswerSheetName, "A1", &[]any{"Question", "Answer"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(AnswerSheetName, cell, &[]any{row.Question, row.Answer}); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	if err := f.SetColWidth(AnswerSheetName, "A", "B", 40); err != nil {
		return err
	}
	return f.Write(w)
}

// WriteCSV writes the rows with a Question,Answer header
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Question", "Answer"}); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write([]string{row.Question, row.Answer}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
