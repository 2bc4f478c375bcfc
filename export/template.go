// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/quickly-quiz/builder"
	"github.com/danielhkuo/quickly-quiz/models"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = fmt.Errorf("%w: unknown format", models.ErrValidation)

// ParseFormat accepts json, yaml and yml. An empty string means json.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func (f Format) ContentType() string {
	if f == FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

// Template is a reusable test definition without publishing metadata
type Template struct {
	Title          string                  `json:"title" yaml:"title"`
	Description    string                  `json:"description" yaml:"description"`
	Questions      []models.Question       `json:"questions" yaml:"questions"`
	CorrectAnswers map[int64]models.Answer `json:"correctAnswers" yaml:"correctAnswers"`
}

// FromDraft takes the exportable parts of a draft. The access password is
// never exported.
func FromDraft(d models.DraftTest) Template {
	t := builder.FromDraft(d, "")
	return Template{
		Title:          t.Title,
		Description:    t.Description,
		Questions:      t.Questions,
		CorrectAnswers: t.CorrectAnswers,
	}
}

// Draft returns the template as an editable draft with inconsistent
// correct answers removed.
func (t Template) Draft() models.DraftTest {
	test := builder.FromDraft(models.DraftTest{
		Title:          t.Title,
		Description:    t.Description,
		Questions:      t.Questions,
		CorrectAnswers: t.CorrectAnswers,
	}, "")
	return models.DraftTest{
		Title:          test.Title,
		Description:    test.Description,
		Questions:      test.Questions,
		CorrectAnswers: test.CorrectAnswers,
	}
}

// EncodeTemplate writes the template in the given format
func EncodeTemplate(w io.Writer, t Template, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(t)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// DecodeTemplate reads a template and checks its questions. Decoding
// failures wrap models.ErrParse; structural problems wrap
// models.ErrValidation.
func DecodeTemplate(r io.Reader, format Format) (Template, error) {
	var t Template
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&t)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&t)
	default:
		return Template{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return Template{}, fmt.Errorf("%w: template: %v", models.ErrParse, err)
	}

	if err := builder.ValidateQuestions(t.Questions); err != nil {
		return Template{}, err
	}
	for i, q := range t.Questions {
		if !q.Type.IsChoice() {
			t.Questions[i].Options = []string{}
		}
	}
	if t.Questions == nil {
		t.Questions = []models.Question{}
	}
	return t, nil
}
