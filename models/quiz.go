package models

// QuestionKind tells the UI which control to render for a question.
type QuestionKind string

const (
	QuestionMultipleChoice QuestionKind = "multiple_choice"
	QuestionTextName       QuestionKind = "text_name"
	QuestionTextEmail      QuestionKind = "text_email"
)

// QuizQuestion is one step of the onboarding quiz.
type QuizQuestion struct {
	ID       int          `json:"id"`
	Kind     QuestionKind `json:"kind"`
	Question string       `json:"question"`
	Options  []string     `json:"options,omitempty"`
	// Explanation is shown once an option is picked.
	Explanation string `json:"explanation,omitempty"`
	// Placeholder is only set for text questions.
	Placeholder string `json:"placeholder,omitempty"`
}

// Interstitial is a motivational screen shown before some questions.
type Interstitial struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// QuizAnswer is what the user picked or typed for a question.
type QuizAnswer struct {
	QuestionID  int    `json:"questionId"`
	OptionIndex int    `json:"optionIndex"`
	Value       string `json:"value"`
}

// QuizStep is the current position of a quiz session.
type QuizStep struct {
	SessionID    string        `json:"sessionId"`
	Index        int           `json:"index"`
	Total        int           `json:"total"`
	Question     *QuizQuestion `json:"question,omitempty"`
	Interstitial *Interstitial `json:"interstitial,omitempty"`
	Completed    bool          `json:"completed"`
}

// QuizSubmission is sent to the quiz backend once the quiz is finished.
type QuizSubmission struct {
	Name    string       `json:"name"`
	Email   string       `json:"email"`
	Answers []QuizAnswer `json:"answers"`
	Score   int          `json:"score"`
}
