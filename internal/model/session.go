package model

import (
	"math"
	"time"
)

// InterviewSession tracks one user's progress through an ordered question
// list. Answers, Scores and Feedbacks grow in lockstep with Cursor: one entry
// per accepted answer. The session lives in process memory only and is owned
// exclusively by the repository.SessionStore, which serializes all mutation.
type InterviewSession struct {
	ID        string     `json:"sessionId"`
	Owner     string     `json:"owner"`
	Topic     string     `json:"topic"`
	Questions []Question `json:"questions"`
	Cursor    int        `json:"currentQuestionIndex"`
	Answers   []string   `json:"answers"`
	Scores    []float64  `json:"scores"`
	Feedbacks []string   `json:"feedbacks"`
	Completed bool       `json:"completed"`
	CreatedAt time.Time  `json:"createdAt"`
}

// CurrentQuestion returns the question awaiting an answer, or false once the
// session has run out of questions.
func (s *InterviewSession) CurrentQuestion() (Question, bool) {
	if s.Cursor < len(s.Questions) {
		return s.Questions[s.Cursor], true
	}
	return Question{}, false
}

// AverageScore is the arithmetic mean of the recorded scores rounded to two
// decimals, 0.0 while no answer has been accepted.
func (s *InterviewSession) AverageScore() float64 {
	if len(s.Scores) == 0 {
		return 0.0
	}
	var total float64
	for _, sc := range s.Scores {
		total += sc
	}
	return math.Round(total/float64(len(s.Scores))*100) / 100
}
