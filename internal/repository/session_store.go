package repository

import (
	"sync"
	"time"

	"github.com/Dhanushraagav/ai-interview-platform/internal/model"
	"github.com/Dhanushraagav/ai-interview-platform/internal/util"

	"github.com/google/uuid"
)

// EvaluateFunc scores an answer against a question. It must be pure; the
// store calls it while holding its lock.
type EvaluateFunc func(question model.Question, answer string) (float64, string)

// SubmitOutcome is the result of one accepted answer submission.
type SubmitOutcome struct {
	Score          float64
	Feedback       string
	QuestionNumber int
	TotalQuestions int
	Completed      bool

	// NextQuestion is set while the session is still active.
	NextQuestion string

	// AverageScore is set once the session completes.
	AverageScore float64
}

// SessionStore owns every live interview session. All access goes through the
// store's mutex so that the read-evaluate-append sequence in Submit is atomic
// and readers never observe a half-applied submission. Sessions are held in
// process memory only; nothing survives a restart.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.InterviewSession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*model.InterviewSession),
	}
}

// Create registers a new session positioned at the first question. A session
// without questions is rejected rather than born completed.
func (st *SessionStore) Create(owner, topic string, questions []model.Question) (*model.InterviewSession, error) {
	if len(questions) == 0 {
		return nil, util.ErrEmptyQuestionList
	}

	session := &model.InterviewSession{
		ID:        uuid.New().String(),
		Owner:     owner,
		Topic:     topic,
		Questions: append([]model.Question(nil), questions...),
		Answers:   []string{},
		Scores:    []float64{},
		Feedbacks: []string{},
		CreatedAt: time.Now().UTC(),
	}

	st.mu.Lock()
	st.sessions[session.ID] = session
	st.mu.Unlock()

	return snapshot(session), nil
}

// Get returns a copy of the session so callers can read it without racing
// concurrent submissions.
func (st *SessionStore) Get(id string) (*model.InterviewSession, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	session, ok := st.sessions[id]
	if !ok {
		return nil, util.ErrSessionNotFound
	}
	return snapshot(session), nil
}

// Submit evaluates the answer to the session's current question and records
// the result. The whole read-modify-write runs under the store lock: either
// the submission fully applies or the session is left untouched.
func (st *SessionStore) Submit(id, answer string, evaluate EvaluateFunc) (*SubmitOutcome, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	session, ok := st.sessions[id]
	if !ok {
		return nil, util.ErrSessionNotFound
	}
	if session.Completed {
		return nil, util.ErrSessionCompleted
	}

	question, ok := session.CurrentQuestion()
	if !ok {
		// Guard against cursor drift; should coincide with Completed.
		return nil, util.ErrNoCurrentQuestion
	}

	score, feedback := evaluate(question, answer)

	session.Answers = append(session.Answers, answer)
	session.Scores = append(session.Scores, score)
	session.Feedbacks = append(session.Feedbacks, feedback)
	session.Cursor++
	session.Completed = session.Cursor == len(session.Questions)

	outcome := &SubmitOutcome{
		Score:          score,
		Feedback:       feedback,
		QuestionNumber: session.Cursor,
		TotalQuestions: len(session.Questions),
		Completed:      session.Completed,
	}
	if session.Completed {
		outcome.AverageScore = session.AverageScore()
	} else {
		next, _ := session.CurrentQuestion()
		outcome.NextQuestion = next.Text
	}

	return outcome, nil
}

// ListByOwner returns copies of every session created by the given owner.
func (st *SessionStore) ListByOwner(owner string) []*model.InterviewSession {
	st.mu.RLock()
	defer st.mu.RUnlock()

	var sessions []*model.InterviewSession
	for _, session := range st.sessions {
		if session.Owner == owner {
			sessions = append(sessions, snapshot(session))
		}
	}
	return sessions
}

// Delete removes a session. Administrative operation; the interview flow
// itself never destroys sessions.
func (st *SessionStore) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[id]; !ok {
		return util.ErrSessionNotFound
	}
	delete(st.sessions, id)
	return nil
}

// snapshot deep-copies the mutable slices so a returned session cannot be
// torn by a later Submit.
func snapshot(s *model.InterviewSession) *model.InterviewSession {
	copied := *s
	copied.Questions = append([]model.Question{}, s.Questions...)
	copied.Answers = append([]string{}, s.Answers...)
	copied.Scores = append([]float64{}, s.Scores...)
	copied.Feedbacks = append([]string{}, s.Feedbacks...)
	return &copied
}
