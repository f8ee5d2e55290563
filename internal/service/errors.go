package service

import (
	"errors"

	"github.com/forest0xia/ai-career-navigator/internal/repository"
)

var (
	ErrSessionNotFound      = repository.ErrSessionNotFound
	ErrQuestionNotFound     = errors.New("question not found")
	ErrAssessmentIncomplete = errors.New("assessment has unanswered questions")
)
