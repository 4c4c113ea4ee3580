package repository

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/Dhanushraagav/ai-interview-platform/internal/model"
	"github.com/Dhanushraagav/ai-interview-platform/internal/util"
)

func testQuestions(n int) []model.Question {
	questions := make([]model.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, model.Question{
			Text:     fmt.Sprintf("question %d", i+1),
			Keywords: []string{"keyword"},
		})
	}
	return questions
}

func fixedScore(score float64) EvaluateFunc {
	return func(model.Question, string) (float64, string) {
		return score, "feedback"
	}
}

func TestCreateInitialState(t *testing.T) {
	store := NewSessionStore()

	session, err := store.Create("alice", "Go", testQuestions(3))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if session.ID == "" {
		t.Fatal("session ID is empty")
	}
	if session.Owner != "alice" || session.Topic != "Go" {
		t.Fatalf("owner/topic = %q/%q, want alice/Go", session.Owner, session.Topic)
	}
	if session.Cursor != 0 || session.Completed {
		t.Fatalf("fresh session cursor=%d completed=%v, want 0/false", session.Cursor, session.Completed)
	}
	if len(session.Answers) != 0 || len(session.Scores) != 0 || len(session.Feedbacks) != 0 {
		t.Fatal("fresh session should have no recorded answers")
	}
	if session.CreatedAt.IsZero() {
		t.Fatal("CreatedAt not set")
	}

	other, err := store.Create("alice", "Go", testQuestions(3))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if other.ID == session.ID {
		t.Fatal("two sessions share an ID")
	}
}

func TestCreateRejectsEmptyQuestionList(t *testing.T) {
	store := NewSessionStore()

	if _, err := store.Create("alice", "Go", nil); !errors.Is(err, util.ErrEmptyQuestionList) {
		t.Fatalf("Create(nil questions) err = %v, want ErrEmptyQuestionList", err)
	}
	if _, err := store.Create("alice", "Go", []model.Question{}); !errors.Is(err, util.ErrEmptyQuestionList) {
		t.Fatalf("Create(empty questions) err = %v, want ErrEmptyQuestionList", err)
	}
}

func TestGetUnknownSession(t *testing.T) {
	store := NewSessionStore()

	if _, err := store.Get("missing"); !errors.Is(err, util.ErrSessionNotFound) {
		t.Fatalf("Get err = %v, want ErrSessionNotFound", err)
	}
}

func TestSubmitAdvancesCursorInLockstep(t *testing.T) {
	store := NewSessionStore()
	session, err := store.Create("alice", "Go", testQuestions(3))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	scores := []float64{6.0, 8.0, 7.0}
	for i, score := range scores {
		outcome, err := store.Submit(session.ID, fmt.Sprintf("answer %d", i+1), fixedScore(score))
		if err != nil {
			t.Fatalf("Submit %d: %v", i+1, err)
		}

		if outcome.Score != score {
			t.Fatalf("outcome.Score = %v, want %v", outcome.Score, score)
		}
		if outcome.QuestionNumber != i+1 || outcome.TotalQuestions != 3 {
			t.Fatalf("ordinal = %d/%d, want %d/3", outcome.QuestionNumber, outcome.TotalQuestions, i+1)
		}

		current, err := store.Get(session.ID)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if current.Cursor != i+1 {
			t.Fatalf("cursor = %d, want %d", current.Cursor, i+1)
		}
		if len(current.Answers) != i+1 || len(current.Scores) != i+1 || len(current.Feedbacks) != i+1 {
			t.Fatalf("answers/scores/feedbacks out of lockstep at step %d", i+1)
		}

		wantCompleted := i == len(scores)-1
		if current.Completed != wantCompleted || outcome.Completed != wantCompleted {
			t.Fatalf("completed = %v, want %v at step %d", current.Completed, wantCompleted, i+1)
		}
		if !outcome.Completed {
			wantNext := fmt.Sprintf("question %d", i+2)
			if outcome.NextQuestion != wantNext {
				t.Fatalf("NextQuestion = %q, want %q", outcome.NextQuestion, wantNext)
			}
		}
	}
}

func TestSubmitFinalOutcomeCarriesAverage(t *testing.T) {
	store := NewSessionStore()
	session, _ := store.Create("alice", "Go", testQuestions(2))

	if _, err := store.Submit(session.ID, "first", fixedScore(6.0)); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	outcome, err := store.Submit(session.ID, "second", fixedScore(8.0))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if !outcome.Completed {
		t.Fatal("session should be completed after the last question")
	}
	if outcome.NextQuestion != "" {
		t.Fatalf("NextQuestion = %q, want empty on completion", outcome.NextQuestion)
	}
	if outcome.AverageScore != 7.0 {
		t.Fatalf("AverageScore = %v, want 7.0", outcome.AverageScore)
	}
}

func TestSubmitAfterCompletionLeavesStateUnchanged(t *testing.T) {
	store := NewSessionStore()
	session, _ := store.Create("alice", "Go", testQuestions(1))

	if _, err := store.Submit(session.ID, "only answer", fixedScore(5.0)); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	before, _ := store.Get(session.ID)

	if _, err := store.Submit(session.ID, "extra", fixedScore(9.0)); !errors.Is(err, util.ErrSessionCompleted) {
		t.Fatalf("Submit err = %v, want ErrSessionCompleted", err)
	}

	after, _ := store.Get(session.ID)
	if after.Cursor != before.Cursor || len(after.Answers) != len(before.Answers) {
		t.Fatal("rejected submission mutated the session")
	}
	if !after.Completed {
		t.Fatal("completed flag reverted")
	}
}

func TestSubmitUnknownSession(t *testing.T) {
	store := NewSessionStore()

	if _, err := store.Submit("missing", "answer", fixedScore(1.0)); !errors.Is(err, util.ErrSessionNotFound) {
		t.Fatalf("Submit err = %v, want ErrSessionNotFound", err)
	}
}

func TestGetReturnsSnapshot(t *testing.T) {
	store := NewSessionStore()
	session, _ := store.Create("alice", "Go", testQuestions(2))

	first, _ := store.Get(session.ID)
	first.Answers = append(first.Answers, "tampered")
	first.Cursor = 99

	second, _ := store.Get(session.ID)
	if len(second.Answers) != 0 || second.Cursor != 0 {
		t.Fatal("mutating a returned session leaked into the store")
	}
}

func TestListByOwner(t *testing.T) {
	store := NewSessionStore()
	store.Create("alice", "Go", testQuestions(1))
	store.Create("alice", "Python", testQuestions(1))
	store.Create("bob", "Go", testQuestions(1))

	if got := len(store.ListByOwner("alice")); got != 2 {
		t.Fatalf("ListByOwner(alice) = %d sessions, want 2", got)
	}
	if got := len(store.ListByOwner("carol")); got != 0 {
		t.Fatalf("ListByOwner(carol) = %d sessions, want 0", got)
	}
}

func TestDelete(t *testing.T) {
	store := NewSessionStore()
	session, _ := store.Create("alice", "Go", testQuestions(1))

	if err := store.Delete(session.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(session.ID); !errors.Is(err, util.ErrSessionNotFound) {
		t.Fatalf("Get after delete err = %v, want ErrSessionNotFound", err)
	}
	if err := store.Delete(session.ID); !errors.Is(err, util.ErrSessionNotFound) {
		t.Fatalf("second Delete err = %v, want ErrSessionNotFound", err)
	}
}

func TestConcurrentSubmitsKeepLockstep(t *testing.T) {
	const total = 100

	store := NewSessionStore()
	session, err := store.Create("alice", "Go", testQuestions(total))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < total; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if _, err := store.Submit(session.ID, fmt.Sprintf("answer %d", n), fixedScore(5.0)); err != nil {
				t.Errorf("Submit %d: %v", n, err)
			}
		}(i)
	}
	wg.Wait()

	final, err := store.Get(session.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if final.Cursor != total {
		t.Fatalf("cursor = %d, want %d", final.Cursor, total)
	}
	if len(final.Answers) != total || len(final.Scores) != total || len(final.Feedbacks) != total {
		t.Fatalf("lockstep broken: %d/%d/%d entries", len(final.Answers), len(final.Scores), len(final.Feedbacks))
	}
	if !final.Completed {
		t.Fatal("session should be completed")
	}
	if final.AverageScore() != 5.0 {
		t.Fatalf("AverageScore = %v, want 5.0", final.AverageScore())
	}
}
