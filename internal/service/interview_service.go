package service

import (
	"sort"
	"time"

	"github.com/Dhanushraagav/ai-interview-platform/internal/config"
	"github.com/Dhanushraagav/ai-interview-platform/internal/model"
	"github.com/Dhanushraagav/ai-interview-platform/internal/repository"
	"github.com/Dhanushraagav/ai-interview-platform/internal/scoring"
	"github.com/Dhanushraagav/ai-interview-platform/internal/util"
	"github.com/Dhanushraagav/ai-interview-platform/pkg/monitoring"
)

// InterviewService drives interview sessions: it pulls questions from the
// bank, delegates state to the session store and scoring to the scorer, and
// enforces that callers only touch their own sessions. The store itself
// trusts its caller; ownership checks live here.
type InterviewService struct {
	Sessions *repository.SessionStore
	Bank     *repository.QuestionBank
	Cfg      *config.Config
}

func NewInterviewService(sessions *repository.SessionStore, bank *repository.QuestionBank, cfg *config.Config) *InterviewService {
	return &InterviewService{
		Sessions: sessions,
		Bank:     bank,
		Cfg:      cfg,
	}
}

// StartResult describes a freshly created session and its first question.
type StartResult struct {
	SessionID      string `json:"session_id"`
	Topic          string `json:"topic"`
	Question       string `json:"question"`
	QuestionNumber int    `json:"question_number"`
	TotalQuestions int    `json:"total_questions"`
}

// SubmitResult mirrors repository.SubmitOutcome for the HTTP layer.
type SubmitResult struct {
	Score          float64  `json:"score"`
	Feedback       string   `json:"feedback"`
	QuestionNumber int      `json:"question_number"`
	TotalQuestions int      `json:"total_questions"`
	IsComplete     bool     `json:"is_complete"`
	NextQuestion   string   `json:"next_question,omitempty"`
	TotalScore     *float64 `json:"total_score,omitempty"`
}

// Status is a point-in-time view of a session's progress.
type Status struct {
	SessionID       string   `json:"session_id"`
	Topic           string   `json:"topic"`
	CurrentQuestion int      `json:"current_question"`
	TotalQuestions  int      `json:"total_questions"`
	Completed       bool     `json:"completed"`
	AverageScore    *float64 `json:"average_score,omitempty"`
	CreatedAt       string   `json:"created_at"`
}

// ReportEntry is one answered question in a final report.
type ReportEntry struct {
	QuestionNumber int     `json:"question_number"`
	Question       string  `json:"question"`
	Answer         string  `json:"answer"`
	Score          float64 `json:"score"`
	Feedback       string  `json:"feedback"`
}

// Report is the full result of a completed interview.
type Report struct {
	SessionID  string        `json:"session_id"`
	Topic      string        `json:"topic"`
	TotalScore float64       `json:"total_score"`
	MaxScore   float64       `json:"max_score"`
	CreatedAt  string        `json:"created_at"`
	Questions  []ReportEntry `json:"questions"`
}

// Topics lists the topics a user can be interviewed on.
func (s *InterviewService) Topics() []string {
	return s.Bank.Topics()
}

// Start creates a session for the owner on the given topic and returns its
// first question.
func (s *InterviewService) Start(owner, topic string) (*StartResult, error) {
	questions, err := s.Bank.QuestionsForTopic(topic, s.Cfg.Interview.QuestionsPerSession)
	if err != nil {
		return nil, err
	}

	session, err := s.Sessions.Create(owner, topic, questions)
	if err != nil {
		return nil, err
	}

	monitoring.InterviewsStarted.WithLabelValues(topic).Inc()

	return &StartResult{
		SessionID:      session.ID,
		Topic:          session.Topic,
		Question:       session.Questions[0].Text,
		QuestionNumber: 1,
		TotalQuestions: len(session.Questions),
	}, nil
}

// Submit scores the answer to the session's current question.
func (s *InterviewService) Submit(owner, sessionID, answer string) (*SubmitResult, error) {
	if err := s.authorize(owner, sessionID); err != nil {
		return nil, err
	}

	outcome, err := s.Sessions.Submit(sessionID, answer, scoring.Evaluate)
	if err != nil {
		return nil, err
	}

	monitoring.AnswersScored.Inc()
	monitoring.AnswerScores.Observe(outcome.Score)

	result := &SubmitResult{
		Score:          outcome.Score,
		Feedback:       outcome.Feedback,
		QuestionNumber: outcome.QuestionNumber,
		TotalQuestions: outcome.TotalQuestions,
		IsComplete:     outcome.Completed,
		NextQuestion:   outcome.NextQuestion,
	}
	if outcome.Completed {
		avg := outcome.AverageScore
		result.TotalScore = &avg
	}
	return result, nil
}

// GetStatus reports a session's progress; the average score is exposed only
// once the interview has completed.
func (s *InterviewService) GetStatus(owner, sessionID string) (*Status, error) {
	session, err := s.ownedSession(owner, sessionID)
	if err != nil {
		return nil, err
	}

	status := &Status{
		SessionID:       session.ID,
		Topic:           session.Topic,
		CurrentQuestion: session.Cursor + 1,
		TotalQuestions:  len(session.Questions),
		Completed:       session.Completed,
		CreatedAt:       session.CreatedAt.Format(time.RFC3339),
	}
	if session.Completed {
		avg := session.AverageScore()
		status.AverageScore = &avg
	}
	return status, nil
}

// GetReport builds the final report of a completed session.
func (s *InterviewService) GetReport(owner, sessionID string) (*Report, error) {
	session, err := s.ownedSession(owner, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Completed {
		return nil, util.ErrReportNotReady
	}

	report := &Report{
		SessionID:  session.ID,
		Topic:      session.Topic,
		TotalScore: session.AverageScore(),
		MaxScore:   scoring.MaxScore,
		CreatedAt:  session.CreatedAt.Format(time.RFC3339),
		Questions:  make([]ReportEntry, 0, len(session.Questions)),
	}
	for i, question := range session.Questions {
		report.Questions = append(report.Questions, ReportEntry{
			QuestionNumber: i + 1,
			Question:       question.Text,
			Answer:         session.Answers[i],
			Score:          session.Scores[i],
			Feedback:       session.Feedbacks[i],
		})
	}
	return report, nil
}

// ListSessions returns status summaries of the owner's sessions, newest
// first.
func (s *InterviewService) ListSessions(owner string) []*Status {
	sessions := s.Sessions.ListByOwner(owner)
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})

	statuses := make([]*Status, 0, len(sessions))
	for _, session := range sessions {
		status := &Status{
			SessionID:       session.ID,
			Topic:           session.Topic,
			CurrentQuestion: session.Cursor + 1,
			TotalQuestions:  len(session.Questions),
			Completed:       session.Completed,
			CreatedAt:       session.CreatedAt.Format(time.RFC3339),
		}
		if session.Completed {
			avg := session.AverageScore()
			status.AverageScore = &avg
		}
		statuses = append(statuses, status)
	}
	return statuses
}

// DeleteSession removes the owner's session.
func (s *InterviewService) DeleteSession(owner, sessionID string) error {
	if err := s.authorize(owner, sessionID); err != nil {
		return err
	}
	return s.Sessions.Delete(sessionID)
}

func (s *InterviewService) ownedSession(owner, sessionID string) (*model.InterviewSession, error) {
	session, err := s.Sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Owner != owner {
		return nil, util.ErrSessionAccessDenied
	}
	return session, nil
}

func (s *InterviewService) authorize(owner, sessionID string) error {
	_, err := s.ownedSession(owner, sessionID)
	return err
}
