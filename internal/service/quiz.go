package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/lacnutry/internal/adapter"
	"github.com/MKhiriev/lacnutry/internal/logger"
	"github.com/MKhiriev/lacnutry/internal/utils"
	"github.com/MKhiriev/lacnutry/internal/validators"
	"github.com/MKhiriev/lacnutry/models"
	"github.com/jonboulle/clockwork"
)

// quizSessionTTL is how long an untouched session is kept.
const quizSessionTTL = 24 * time.Hour

type quizSession struct {
	id           string
	index        int
	interstitial bool
	completed    bool
	answers      []models.QuizAnswer
	name         string
	touchedAt    time.Time
}

type quizService struct {
	profiles  ProfileStore
	backend   adapter.QuizBackend
	validator validators.Validator
	clock     clockwork.Clock
	ids       utils.IDGenerator

	mu       sync.Mutex
	sessions map[string]*quizSession

	logger *logger.Logger
}

func NewQuizService(profiles ProfileStore, backend adapter.QuizBackend, validator validators.Validator, clock clockwork.Clock, log *logger.Logger) QuizService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &quizService{
		profiles:  profiles,
		backend:   backend,
		validator: validator,
		clock:     clock,
		ids:       utils.NewUUIDGenerator(),
		sessions:  make(map[string]*quizSession),
		logger:    log,
	}
}

func (q *quizService) Start(_ context.Context) (models.QuizStep, error) {
	now := q.clock.Now()

	q.mu.Lock()
	defer q.mu.Unlock()

	for id, s := range q.sessions {
		if now.Sub(s.touchedAt) > quizSessionTTL {
			delete(q.sessions, id)
		}
	}

	s := &quizSession{id: q.ids.Generate(), touchedAt: now}
	q.sessions[s.id] = s

	q.logger.Debug().Str("func", "*quizService.Start").Str("session_id", s.id).Msg("quiz session started")
	return q.step(s), nil
}

func (q *quizService) Current(_ context.Context, sessionID string) (models.QuizStep, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	s, err := q.session(sessionID)
	if err != nil {
		return models.QuizStep{}, err
	}
	return q.step(s), nil
}

func (q *quizService) Answer(ctx context.Context, sessionID string, optionIndex int) (models.QuizStep, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	s, question, err := q.expect(sessionID, models.QuestionMultipleChoice)
	if err != nil {
		return models.QuizStep{}, err
	}

	answer := models.QuizAnswer{QuestionID: question.ID, OptionIndex: optionIndex}
	if err = q.validator.Validate(ctx, answer, validators.FieldOptionIndex); err != nil {
		return q.step(s), fmt.Errorf("%w: %w", ErrInvalidQuizAnswer, err)
	}
	if optionIndex >= len(question.Options) {
		return q.step(s), fmt.Errorf("%w: %w", ErrInvalidQuizAnswer, validators.ErrInvalidOption)
	}
	answer.Value = question.Options[optionIndex]

	s.answers = append(s.answers, answer)
	q.advance(s)
	return q.step(s), nil
}

func (q *quizService) Continue(_ context.Context, sessionID string) (models.QuizStep, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	s, err := q.session(sessionID)
	if err != nil {
		return models.QuizStep{}, err
	}
	if s.completed {
		return q.step(s), ErrQuizCompleted
	}
	if !s.interstitial {
		return q.step(s), ErrUnexpectedQuizInput
	}

	s.interstitial = false
	s.touchedAt = q.clock.Now()
	return q.step(s), nil
}

func (q *quizService) SubmitText(ctx context.Context, sessionID, value string) (models.QuizStep, error) {
	q.mu.Lock()

	s, question, err := q.expect(sessionID, models.QuestionTextName, models.QuestionTextEmail)
	if err != nil {
		q.mu.Unlock()
		return models.QuizStep{}, err
	}

	field := validators.FieldAnswerName
	if question.Kind == models.QuestionTextEmail {
		field = validators.FieldAnswerEmail
	}

	value = strings.TrimSpace(value)
	if err = q.validator.Validate(ctx, models.QuizAnswer{Value: value}, field); err != nil {
		step := q.step(s)
		q.mu.Unlock()
		return step, fmt.Errorf("%w: %w", ErrInvalidQuizAnswer, err)
	}

	if field == validators.FieldAnswerName {
		s.name = value
		q.advance(s)
		step := q.step(s)
		q.mu.Unlock()
		return step, nil
	}

	// The email is the last answer. Mark the session done before releasing
	// the lock so a second submit cannot complete it twice.
	s.completed = true
	s.touchedAt = q.clock.Now()
	submission := models.QuizSubmission{
		Name:    s.name,
		Email:   value,
		Answers: slices.Clone(s.answers),
	}
	step := q.step(s)
	q.mu.Unlock()

	q.complete(ctx, submission)
	return step, nil
}

// complete reports the results and flips the onboarding flags. Neither step
// can undo the completion: results are best effort and the flags are
// authoritative in memory even when their write fails.
func (q *quizService) complete(ctx context.Context, submission models.QuizSubmission) {
	if err := q.backend.SubmitQuiz(ctx, submission); err != nil {
		q.logger.Warn().Err(err).Str("func", "*quizService.complete").Msg("could not save quiz results, continuing locally")
	}

	if err := q.profiles.CompleteQuiz(ctx, submission.Name, submission.Email); err != nil {
		q.logger.Err(err).Str("func", "*quizService.complete").Msg("quiz completion not persisted")
	}
}

// ── state machine ─────────────────────────────────────────────────────────────

func (q *quizService) session(id string) (*quizSession, error) {
	s, ok := q.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// expect returns the session if it sits on a question of one of kinds.
func (q *quizService) expect(id string, kinds ...models.QuestionKind) (*quizSession, models.QuizQuestion, error) {
	s, err := q.session(id)
	if err != nil {
		return nil, models.QuizQuestion{}, err
	}
	if s.completed {
		return s, models.QuizQuestion{}, ErrQuizCompleted
	}

	question := q.current(s)
	if s.interstitial || !slices.Contains(kinds, question.Kind) {
		return s, models.QuizQuestion{}, ErrUnexpectedQuizInput
	}
	return s, question, nil
}

func (q *quizService) current(s *quizSession) models.QuizQuestion {
	return quizQuestions[s.index]
}

// advance moves to the next question, stopping on its interstitial if it has
// one.
func (q *quizService) advance(s *quizSession) {
	s.touchedAt = q.clock.Now()
	if s.index+1 >= len(quizQuestions) {
		s.completed = true
		return
	}

	s.index++
	_, s.interstitial = quizInterstitials[s.index]
}

func (q *quizService) step(s *quizSession) models.QuizStep {
	step := models.QuizStep{
		SessionID: s.id,
		Index:     s.index,
		Total:     len(quizQuestions),
		Completed: s.completed,
	}

	switch {
	case s.completed:
	case s.interstitial:
		screen := quizInterstitials[s.index]
		step.Interstitial = &screen
	default:
		question := q.current(s)
		question.Options = slices.Clone(question.Options)
		step.Question = &question
	}
	return step
}
