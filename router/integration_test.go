// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-quiz/models"
	"github.com/danielhkuo/quickly-quiz/testutil"
)

// TestCompleteQuizWorkflow walks an author and two respondents through the
// whole lifecycle: register, build, publish, answer, unlock, review.
func TestCompleteQuizWorkflow(t *testing.T) {
	mux, _ := newTestRouter(t)

	do := func(method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest(method, path, body, headers)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		return w
	}

	// Step 1: Register the author
	w := do("POST", "/auth/register", models.RegisterRequest{Username: "ms-frizzle", Password: "chalkboard"}, nil)
	testutil.AssertStatus(t, w, http.StatusCreated)
	var authResp models.AuthResponse
	testutil.AssertJSON(t, w, &authResp)
	authz := testutil.Bearer(authResp.Token)

	// Step 2: Build a draft with the builder endpoints
	w = do("POST", "/builder/questions", models.CreateQuestionRequest{Type: models.SingleChoice}, authz)
	testutil.AssertStatus(t, w, http.StatusCreated)
	var q models.Question
	testutil.AssertJSON(t, w, &q)

	draft := models.DraftTest{
		Title:          "Colours",
		AccessPassword: "rainbow",
		Questions:      []models.Question{q},
	}
	edits := []models.EditDraftRequest{
		{Action: models.EditUpdatePrompt, QuestionID: q.ID, Value: "Colour of the sky?"},
		{Action: models.EditRenameOption, QuestionID: q.ID, Index: 0, Value: "Blue"},
		{Action: models.EditRenameOption, QuestionID: q.ID, Index: 1, Value: "Green"},
		{Action: models.EditSetCorrectAnswer, QuestionID: q.ID, Value: "Blue"},
	}
	for _, e := range edits {
		e.Draft = draft
		w = do("POST", "/builder/draft/edit", e, authz)
		testutil.AssertStatus(t, w, http.StatusOK)
		draft = models.DraftTest{}
		testutil.AssertJSON(t, w, &draft)
	}

	// Step 3: Publish
	w = do("POST", "/builder/publish", draft, authz)
	testutil.AssertStatus(t, w, http.StatusCreated)
	var pub models.PublishResponse
	testutil.AssertJSON(t, w, &pub)

	// Step 4: Respondents load the test and answer it
	w = do("GET", "/tests/"+pub.TestID, nil, nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	var public models.PublicTest
	testutil.AssertJSON(t, w, &public)
	if len(public.Questions) != 1 || public.Questions[0].Prompt != "Colour of the sky?" {
		t.Fatalf("Unexpected public test: %+v", public)
	}

	for _, choice := range []string{"Blue", "Green"} {
		w = do("POST", "/tests/"+pub.TestID+"/responses", models.SubmitResponseRequest{
			Answers: map[int64]models.Answer{q.ID: models.SingleAnswer(choice)},
		}, nil)
		testutil.AssertStatus(t, w, http.StatusCreated)
	}

	// Step 5: A respondent unlocks the answers
	w = do("POST", "/tests/"+pub.TestID+"/unlock", models.UnlockRequest{Password: "wrong"}, nil)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
	w = do("POST", "/tests/"+pub.TestID+"/unlock", models.UnlockRequest{Password: "rainbow"}, nil)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Step 6: The author reviews the dashboard
	w = do("GET", "/dashboard/tests", nil, authz)
	testutil.AssertStatus(t, w, http.StatusOK)
	var summaries []models.TestSummary
	testutil.AssertJSON(t, w, &summaries)
	if len(summaries) != 1 || summaries[0].ResponseCount != 2 {
		t.Fatalf("Unexpected summaries: %+v", summaries)
	}

	w = do("GET", "/dashboard/tests/"+pub.TestID+"/stats", nil, authz)
	testutil.AssertStatus(t, w, http.StatusOK)
	var stats models.StatsResponse
	testutil.AssertJSON(t, w, &stats)
	qs := stats.Questions[0]
	if qs.CorrectCount != 1 || qs.CorrectPercent == nil || *qs.CorrectPercent != 50 {
		t.Errorf("Unexpected question stats: %+v", qs)
	}

	w = do("GET", "/dashboard/tests/"+pub.TestID+"/report.pdf", nil, authz)
	testutil.AssertStatus(t, w, http.StatusOK)
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("Report is not a PDF")
	}

	// Step 7: Another author cannot see the statistics
	w = do("POST", "/auth/register", models.RegisterRequest{Username: "snoop", Password: "peek"}, nil)
	testutil.AssertStatus(t, w, http.StatusCreated)
	var other models.AuthResponse
	testutil.AssertJSON(t, w, &other)

	w = do("GET", "/dashboard/tests/"+pub.TestID+"/stats", nil, testutil.Bearer(other.Token))
	testutil.AssertStatus(t, w, http.StatusForbidden)

	// Step 8: Log out
	w = do("POST", "/auth/logout", nil, authz)
	testutil.AssertStatus(t, w, http.StatusNoContent)
}
