package models

// ChatRole is the author of a chat message.
type ChatRole string

const (
	RoleSystem    ChatRole = "system"
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is a single turn sent to or received from a text generator.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// RecipeRequest asks the assistant for a lactose-free recipe.
type RecipeRequest struct {
	Ingredients string `json:"ingredients"`
	Preferences string `json:"preferences,omitempty"`
}

// GeneratedRecipe is the structured part of an assistant recipe answer.
type GeneratedRecipe struct {
	Name        string   `json:"name"`
	PrepTime    string   `json:"prepTime"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Tips        []string `json:"tips,omitempty"`
}

// RecipeAnswer is returned by the recipe generator. Recipe is nil when the
// model's answer did not contain a valid structured block.
type RecipeAnswer struct {
	Text   string           `json:"text"`
	Recipe *GeneratedRecipe `json:"recipe,omitempty"`
}

// ChatRequest is a message to the virtual nutritionist.
type ChatRequest struct {
	ConversationID string `json:"conversationId,omitempty"`
	Message        string `json:"message"`
}

// ChatReply is the nutritionist's answer.
type ChatReply struct {
	ConversationID string `json:"conversationId"`
	Reply          string `json:"reply"`
}
