// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package export converts tests and results into files.

# Templates

A Template is title, description, questions and correct answers. It is
written as JSON or YAML:

	err := export.EncodeTemplate(w, export.FromDraft(draft), export.FormatYAML)
	tmpl, err := export.DecodeTemplate(r, export.FormatYAML)
	draft := tmpl.Draft()

Answers keep their stored shape in both formats: a string, a list or null.

# Answer Sheets

AnswerSheet lists each question prompt with the respondent's answer.
WriteXLSX writes it to an "Answers" sheet (excelize); WriteCSV writes CSV.

# Reports

WriteReport renders per-question statistics as a PDF (gofpdf, core
fonts). QRCode encodes a share link as a PNG (go-qrcode).
*/
package export
