package util

import "errors"

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect username or password")

	ErrUnknownTopic        = errors.New("unknown interview topic")
	ErrEmptyQuestionList   = errors.New("question list must not be empty")
	ErrSessionNotFound     = errors.New("interview session not found")
	ErrSessionAccessDenied = errors.New("session belongs to another user")
	ErrSessionCompleted    = errors.New("interview already completed")
	ErrNoCurrentQuestion   = errors.New("no more questions available")
	ErrReportNotReady      = errors.New("interview not yet completed")
)
