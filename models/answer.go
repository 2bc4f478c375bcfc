// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// AnswerKind tags which field of an Answer carries the value.
type AnswerKind int

const (
	AnswerNone AnswerKind = iota
	AnswerSingle
	AnswerMulti
)

// Answer is either absent, a single string (text and single-choice questions)
// or a set of strings (multiple-choice questions).
//
// On the wire it keeps the shape the stored data has always used: a JSON
// string, an array of strings, or null.
type Answer struct {
	Kind   AnswerKind
	Value  string
	Values []string
}

// SingleAnswer returns a text or single-choice answer.
func SingleAnswer(v string) Answer {
	return Answer{Kind: AnswerSingle, Value: v}
}

// MultiAnswer returns a multiple-choice answer. Duplicates are dropped and
// the first-seen order is kept.
func MultiAnswer(values ...string) Answer {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return Answer{Kind: AnswerMulti, Values: out}
}

func (a Answer) IsZero() bool { return a.Kind == AnswerNone }

// Single returns the value of a single answer.
func (a Answer) Single() (string, bool) {
	if a.Kind != AnswerSingle {
		return "", false
	}
	return a.Value, true
}

// Multi returns the distinct values of a multi answer.
func (a Answer) Multi() ([]string, bool) {
	if a.Kind != AnswerMulti {
		return nil, false
	}
	return MultiAnswer(a.Values...).Values, true
}

// Contains reports whether a multi answer includes v.
func (a Answer) Contains(v string) bool {
	if a.Kind != AnswerMulti {
		return false
	}
	for _, s := range a.Values {
		if s == v {
			return true
		}
	}
	return false
}

// Equal compares two answers of the same kind. Multi answers compare as sets.
func (a Answer) Equal(b Answer) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case AnswerSingle:
		return a.Value == b.Value
	case AnswerMulti:
		as, _ := a.Multi()
		bs, _ := b.Multi()
		if len(as) != len(bs) {
			return false
		}
		set := make(map[string]struct{}, len(as))
		for _, s := range as {
			set[s] = struct{}{}
		}
		for _, s := range bs {
			if _, ok := set[s]; !ok {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// String renders the answer for spreadsheets and reports.
func (a Answer) String() string {
	switch a.Kind {
	case AnswerSingle:
		return a.Value
	case AnswerMulti:
		return strings.Join(a.Values, ", ")
	default:
		return ""
	}
}

func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AnswerSingle:
		return json.Marshal(a.Value)
	case AnswerMulti:
		values := a.Values
		if values == nil {
			values = []string{}
		}
		return json.Marshal(values)
	default:
		return []byte("null"), nil
	}
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*a = Answer{}
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = SingleAnswer(s)
		return nil
	case data[0] == '[':
		var values []string
		if err := json.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("answer must be an array of strings: %w", err)
		}
		*a = MultiAnswer(values...)
		return nil
	default:
		return fmt.Errorf("answer must be a string, an array of strings or null")
	}
}

func (a Answer) MarshalYAML() (interface{}, error) {
	switch a.Kind {
	case AnswerSingle:
		return a.Value, nil
	case AnswerMulti:
		values := a.Values
		if values == nil {
			values = []string{}
		}
		return values, nil
	default:
		return nil, nil
	}
}

func (a *Answer) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*a = Answer{}
			return nil
		}
		*a = SingleAnswer(node.Value)
		return nil
	case yaml.SequenceNode:
		var values []string
		if err := node.Decode(&values); err != nil {
			return fmt.Errorf("answer must be a list of strings: %w", err)
		}
		*a = MultiAnswer(values...)
		return nil
	default:
		return fmt.Errorf("answer must be a string, a list of strings or null (line %d)", node.Line)
	}
}
