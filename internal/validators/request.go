package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/lacnutry/models"
)

const (
	// FieldOptionIndex targets the chosen option of a multiple choice answer.
	FieldOptionIndex = "option_index"

	// FieldAnswerName targets a typed answer holding the user's name.
	FieldAnswerName = "answer_name"

	// FieldAnswerEmail targets a typed answer holding the user's email.
	FieldAnswerEmail = "answer_email"

	// FieldIngredients targets the ingredient list of a recipe request.
	FieldIngredients = "ingredients"

	// FieldMessage targets the text of a chat message.
	FieldMessage = "message"

	maxChatMessageLength = 4000
)

// RequestValidator validates user input for the quiz and the assistant:
// [models.QuizAnswer], [models.RecipeRequest] and [models.ChatRequest].
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.QuizAnswer:
		return v.validateQuizAnswer(ctx, value, fields...)
	case *models.QuizAnswer:
		return v.validateQuizAnswer(ctx, *value, fields...)

	case models.RecipeRequest:
		return v.validateRecipeRequest(ctx, value, fields...)
	case *models.RecipeRequest:
		return v.validateRecipeRequest(ctx, *value, fields...)

	case models.ChatRequest:
		return v.validateChatRequest(ctx, value, fields...)
	case *models.ChatRequest:
		return v.validateChatRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateQuizAnswer has no default field set: the question kind decides
// which field applies, so callers always name it.
func (v *RequestValidator) validateQuizAnswer(_ context.Context, answer models.QuizAnswer, fields ...string) error {
	for _, f := range fields {
		switch f {
		case FieldOptionIndex:
			if answer.OptionIndex < 0 {
				return ErrInvalidOption
			}
		case FieldAnswerName:
			if strings.TrimSpace(answer.Value) == "" {
				return ErrEmptyName
			}
		case FieldAnswerEmail:
			if !IsValidEmail(strings.TrimSpace(answer.Value)) {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateRecipeRequest(_ context.Context, req models.RecipeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIngredients}
	}

	for _, f := range fields {
		switch f {
		case FieldIngredients:
			if strings.TrimSpace(req.Ingredients) == "" {
				return ErrEmptyIngredients
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateChatRequest(_ context.Context, req models.ChatRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessage}
	}

	for _, f := range fields {
		switch f {
		case FieldMessage:
			if strings.TrimSpace(req.Message) == "" {
				return ErrEmptyMessage
			}
			if utf8.RuneCountInString(req.Message) > maxChatMessageLength {
				return ErrMessageTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
