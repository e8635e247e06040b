package http

import (
	"net/http"

	"github.com/MKhiriev/lacnutry/internal/utils"
	"github.com/go-chi/chi/v5"
)

type quizAnswerRequest struct {
	OptionIndex *int `json:"optionIndex"`
}

type quizTextRequest struct {
	Value string `json:"value"`
}

func (h *Handler) startQuiz(w http.ResponseWriter, r *http.Request) {
	step, err := h.services.QuizService.Start(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.startQuiz")
		return
	}
	_, _ = utils.WriteJSON(w, step, http.StatusCreated)
}

func (h *Handler) getQuizStep(w http.ResponseWriter, r *http.Request) {
	step, err := h.services.QuizService.Current(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		writeError(w, r, err, "*Handler.getQuizStep")
		return
	}
	_, _ = utils.WriteJSON(w, step, http.StatusOK)
}

func (h *Handler) answerQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizAnswerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err, "*Handler.answerQuiz")
		return
	}
	if req.OptionIndex == nil {
		writeError(w, r, ErrMissingOptionIndex, "*Handler.answerQuiz")
		return
	}

	step, err := h.services.QuizService.Answer(r.Context(), chi.URLParam(r, "sessionID"), *req.OptionIndex)
	if err != nil {
		writeError(w, r, err, "*Handler.answerQuiz")
		return
	}
	_, _ = utils.WriteJSON(w, step, http.StatusOK)
}

func (h *Handler) continueQuiz(w http.ResponseWriter, r *http.Request) {
	step, err := h.services.QuizService.Continue(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		writeError(w, r, err, "*Handler.continueQuiz")
		return
	}
	_, _ = utils.WriteJSON(w, step, http.StatusOK)
}

func (h *Handler) submitQuizText(w http.ResponseWriter, r *http.Request) {
	var req quizTextRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err, "*Handler.submitQuizText")
		return
	}

	step, err := h.services.QuizService.SubmitText(r.Context(), chi.URLParam(r, "sessionID"), req.Value)
	if err != nil {
		writeError(w, r, err, "*Handler.submitQuizText")
		return
	}
	_, _ = utils.WriteJSON(w, step, http.StatusOK)
}
