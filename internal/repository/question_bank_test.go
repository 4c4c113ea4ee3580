package repository

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Dhanushraagav/ai-interview-platform/internal/util"
)

const bankFixture = `topics:
  - name: Go
    questions:
      - text: What is a goroutine?
        keywords: [goroutine, lightweight, scheduler]
      - text: Explain channels in Go.
        keywords: [channel, send, receive]
      - text: What does the defer statement do?
        keywords: [defer, stack, cleanup]
  - name: Databases
    questions:
      - text: Explain ACID properties.
        keywords: [atomicity, consistency, isolation, durability]
`

func writeBank(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadQuestionBank(t *testing.T) {
	bank, err := LoadQuestionBank(writeBank(t, bankFixture))
	if err != nil {
		t.Fatalf("LoadQuestionBank: %v", err)
	}

	topics := bank.Topics()
	if len(topics) != 2 || topics[0] != "Go" || topics[1] != "Databases" {
		t.Fatalf("Topics() = %v, want [Go Databases]", topics)
	}

	questions, err := bank.QuestionsForTopic("Go", 0)
	if err != nil {
		t.Fatalf("QuestionsForTopic: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(questions))
	}
	if questions[0].Text != "What is a goroutine?" {
		t.Fatalf("first question = %q, order not preserved", questions[0].Text)
	}
	if len(questions[0].Keywords) != 3 {
		t.Fatalf("keywords = %v, want 3 entries", questions[0].Keywords)
	}
}

func TestQuestionsForTopicTruncates(t *testing.T) {
	bank, err := LoadQuestionBank(writeBank(t, bankFixture))
	if err != nil {
		t.Fatalf("LoadQuestionBank: %v", err)
	}

	questions, err := bank.QuestionsForTopic("Go", 2)
	if err != nil {
		t.Fatalf("QuestionsForTopic: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}

	// Fewer questions than requested is not an error.
	questions, err = bank.QuestionsForTopic("Databases", 5)
	if err != nil {
		t.Fatalf("QuestionsForTopic: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}
}

func TestQuestionsForTopicUnknown(t *testing.T) {
	bank, err := LoadQuestionBank(writeBank(t, bankFixture))
	if err != nil {
		t.Fatalf("LoadQuestionBank: %v", err)
	}

	if _, err := bank.QuestionsForTopic("Quantum Computing", 5); !errors.Is(err, util.ErrUnknownTopic) {
		t.Fatalf("err = %v, want ErrUnknownTopic", err)
	}
}

func TestLoadQuestionBankValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "no topics", content: "topics: []\n"},
		{name: "topic without name", content: "topics:\n  - questions:\n      - text: q\n"},
		{name: "topic without questions", content: "topics:\n  - name: Go\n    questions: []\n"},
		{name: "question without text", content: "topics:\n  - name: Go\n    questions:\n      - keywords: [a]\n"},
		{name: "duplicate topic", content: "topics:\n  - name: Go\n    questions:\n      - text: q\n  - name: Go\n    questions:\n      - text: q\n"},
		{name: "not yaml", content: "{{{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadQuestionBank(writeBank(t, tt.content)); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}

func TestLoadShippedCatalogue(t *testing.T) {
	bank, err := LoadQuestionBank("../../configs/questions.yaml")
	if err != nil {
		t.Fatalf("LoadQuestionBank: %v", err)
	}

	topics := bank.Topics()
	if len(topics) != 10 {
		t.Fatalf("shipped catalogue has %d topics, want 10", len(topics))
	}
	for _, topic := range topics {
		questions, err := bank.QuestionsForTopic(topic, 0)
		if err != nil {
			t.Fatalf("QuestionsForTopic(%q): %v", topic, err)
		}
		if len(questions) != 5 {
			t.Fatalf("topic %q has %d questions, want 5", topic, len(questions))
		}
		for _, q := range questions {
			if len(q.Keywords) == 0 {
				t.Fatalf("topic %q question %q has no keywords", topic, q.Text)
			}
		}
	}
}

func TestLoadQuestionBankMissingFile(t *testing.T) {
	if _, err := LoadQuestionBank(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
