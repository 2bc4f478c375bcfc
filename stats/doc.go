// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package stats aggregates responses against a test definition.

# Per-question Statistics

For each question Compute reports:

  - TotalAnswers: the number of responses, answered or not
  - CorrectCount: responses whose answer exactly matches the correct answer
  - AnswerDistribution: how often each observed option was chosen

Matching is exact. Text answers are case and whitespace sensitive.
Multiple-choice answers match when the chosen set equals the correct set.
A question with no configured correct answer has CorrectCount 0.

The distribution of a multiple-choice question is a multi-label histogram:
a response adds one to every option it selected, so per-option percentages
do not sum to 100. Text questions have no distribution.

# Percentages

	pct, err := stats.Percentage(correct, total)  // round(correct/total*100)

A zero total yields ErrNoData instead of a division by zero.

# Dashboard

Summarize adds response counts, last submission time and an overall
correctness percentage, with go-humanize relative times.
*/
package stats
