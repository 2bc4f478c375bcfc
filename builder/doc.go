// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package builder edits test definitions while they are being authored.

# Questions

	q, err := builder.AddQuestion(test, models.SingleChoice, time.Now())

Question ids come from the creation time in milliseconds. A colliding id is
bumped past the largest id already in the test. Choice questions start with
"Option 1" and "Option 2"; text questions have no options.

# Options

	builder.AddOptionTo(test, q.ID)         // appends "Option N"
	builder.RenameOption(test, q.ID, 0, "Paris")
	builder.RemoveOption(test, q.ID, 1)     // ErrLastOption for the last one

Removing or renaming an option keeps the correct answers consistent: a
removed option disappears from them, a renamed option is renamed there too.

# Correct Answers

SetCorrectAnswer toggles for choice questions and replaces for text:

	single-choice   same value twice clears the entry
	multiple-choice each call flips membership of one option
	text            empty value clears the entry

# Publishing

ValidateForPublish requires a title, an access password and a creator.
Errors wrap models.ErrValidation.
*/
package builder
