package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/lacnutry/internal/config"
	"github.com/MKhiriev/lacnutry/internal/logger"
	"github.com/MKhiriev/lacnutry/internal/utils"
	"github.com/MKhiriev/lacnutry/models"
)

const saveQuizPath = "/api/quiz"

type httpQuizBackend struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewQuizBackend returns a [QuizBackend] posting to cfg.QuizAddress. When no
// address is configured submissions are only logged.
func NewQuizBackend(cfg config.Adapter, log *logger.Logger) QuizBackend {
	baseURL := utils.NormalizeBaseURL(cfg.QuizAddress)
	if baseURL == "" {
		return &localQuizBackend{logger: log}
	}
	return &httpQuizBackend{client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout), logger: log}
}

// SubmitQuiz implements [QuizBackend] via POST /api/quiz.
func (q *httpQuizBackend) SubmitQuiz(ctx context.Context, submission models.QuizSubmission) error {
	resp, err := q.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(submission).
		Post(saveQuizPath)
	if err != nil {
		return fmt.Errorf("submit quiz request: %w", err)
	}

	return mapHTTPError(resp)
}

type localQuizBackend struct {
	logger *logger.Logger
}

func (q *localQuizBackend) SubmitQuiz(_ context.Context, submission models.QuizSubmission) error {
	q.logger.Info().
		Str("func", "*localQuizBackend.SubmitQuiz").
		Int("answers", len(submission.Answers)).
		Int("score", submission.Score).
		Msg("quiz backend not configured, keeping results local")
	return nil
}
