package service

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/lacnutry/internal/adapter"
	"github.com/MKhiriev/lacnutry/internal/logger"
	"github.com/MKhiriev/lacnutry/internal/utils"
	"github.com/MKhiriev/lacnutry/internal/validators"
	"github.com/MKhiriev/lacnutry/models"
	"github.com/jonboulle/clockwork"
	"github.com/xeipuuv/gojsonschema"
)

const (
	// maxConversationMessages bounds the history replayed to the generator.
	maxConversationMessages = 20
	conversationTTL         = 2 * time.Hour
)

const nutritionistSystemPrompt = `Você é uma nutricionista virtual especializada em alimentação sem lactose.
Responda em português do Brasil, de forma acolhedora, clara e objetiva.
Ajude com dúvidas sobre dietas sem lactose, substituições de ingredientes, leitura de rótulos, nutrição e alimentação saudável.
Quando fizer sentido, estime calorias e macronutrientes por porção.
Não faça diagnósticos médicos; em caso de sintomas persistentes, recomende procurar um profissional de saúde.`

const recipeJSONInstruction = "\n\nAo final, inclua também a mesma receita em um bloco ```json``` com os campos " +
	`"name", "prepTime", "ingredients" (lista), "steps" (lista) e "tips" (lista).`

//go:embed generated_recipe.schema.json
var generatedRecipeSchema []byte

var jsonBlockRe = regexp.MustCompile("(?s)```json\\s*(.*?)```")

type conversation struct {
	messages  []models.ChatMessage
	touchedAt time.Time
}

type assistantService struct {
	generator adapter.TextGenerator
	validator validators.Validator
	observer  TextGenObserver
	schema    *gojsonschema.Schema
	clock     clockwork.Clock
	ids       utils.IDGenerator

	mu            sync.Mutex
	conversations map[string]*conversation

	logger *logger.Logger
}

// NewAssistantService builds the recipe generator and the nutritionist chat.
// A nil generator leaves the service answering ErrAssistantDisabled. The
// observer may be nil.
func NewAssistantService(generator adapter.TextGenerator, validator validators.Validator, observer TextGenObserver, clock clockwork.Clock, log *logger.Logger) (AssistantService, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(generatedRecipeSchema))
	if err != nil {
		return nil, fmt.Errorf("load recipe schema: %w", err)
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &assistantService{
		generator:     generator,
		validator:     validator,
		observer:      observer,
		schema:        schema,
		clock:         clock,
		ids:           utils.NewUUIDGenerator(),
		conversations: make(map[string]*conversation),
		logger:        log,
	}, nil
}

func (a *assistantService) GenerateRecipe(ctx context.Context, req models.RecipeRequest) (models.RecipeAnswer, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.RecipeAnswer{}, fmt.Errorf("%w: %w", ErrNoIngredients, err)
	}
	if a.generator == nil {
		return models.RecipeAnswer{}, ErrAssistantDisabled
	}

	prompt := recipePrompt(strings.TrimSpace(req.Ingredients), strings.TrimSpace(req.Preferences))
	text, err := a.generate(ctx, []models.ChatMessage{
		{Role: models.RoleUser, Content: prompt + recipeJSONInstruction},
	})
	if err != nil {
		return models.RecipeAnswer{}, err
	}

	return a.parseRecipe(text), nil
}

func (a *assistantService) Chat(ctx context.Context, req models.ChatRequest) (models.ChatReply, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.ChatReply{}, err
	}
	if a.generator == nil {
		return models.ChatReply{}, ErrAssistantDisabled
	}

	id, history, err := a.conversation(req.ConversationID)
	if err != nil {
		return models.ChatReply{}, err
	}

	user := models.ChatMessage{Role: models.RoleUser, Content: strings.TrimSpace(req.Message)}
	messages := make([]models.ChatMessage, 0, len(history)+2)
	messages = append(messages, models.ChatMessage{Role: models.RoleSystem, Content: nutritionistSystemPrompt})
	messages = append(messages, history...)
	messages = append(messages, user)

	reply, err := a.generate(ctx, messages)
	if err != nil {
		return models.ChatReply{}, err
	}

	a.remember(id, user, models.ChatMessage{Role: models.RoleAssistant, Content: reply})
	return models.ChatReply{ConversationID: id, Reply: reply}, nil
}

// conversation returns the history of id, opening a new conversation when id
// is empty.
func (a *assistantService) conversation(id string) (string, []models.ChatMessage, error) {
	now := a.clock.Now()

	a.mu.Lock()
	defer a.mu.Unlock()

	if id == "" {
		for key, c := range a.conversations {
			if now.Sub(c.touchedAt) > conversationTTL {
				delete(a.conversations, key)
			}
		}
		id = a.ids.Generate()
		a.conversations[id] = &conversation{touchedAt: now}
		return id, nil, nil
	}

	c, ok := a.conversations[id]
	if !ok {
		return "", nil, ErrConversationNotFound
	}
	c.touchedAt = now
	history := make([]models.ChatMessage, len(c.messages))
	copy(history, c.messages)
	return id, history, nil
}

func (a *assistantService) remember(id string, turn ...models.ChatMessage) {
	a.mu.Lock()
	defer a.mu.Unlock()

	c, ok := a.conversations[id]
	if !ok {
		return
	}
	c.messages = append(c.messages, turn...)
	if extra := len(c.messages) - maxConversationMessages; extra > 0 {
		c.messages = append(c.messages[:0:0], c.messages[extra:]...)
	}
	c.touchedAt = a.clock.Now()
}

func (a *assistantService) generate(ctx context.Context, messages []models.ChatMessage) (string, error) {
	start := a.clock.Now()
	text, err := a.generator.Generate(ctx, messages)
	if a.observer != nil {
		a.observer.ObserveTextGen(a.generator.Provider(), err, a.clock.Since(start))
	}
	if err != nil {
		a.logger.Err(err).Str("func", "*assistantService.generate").Str("provider", a.generator.Provider()).Msg("text generation failed")
		return "", fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
	}
	return text, nil
}

// parseRecipe splits the structured block off the answer. When the block is
// missing or does not match the schema only the text is returned.
func (a *assistantService) parseRecipe(text string) models.RecipeAnswer {
	match := jsonBlockRe.FindStringSubmatchIndex(text)
	if match == nil {
		return models.RecipeAnswer{Text: strings.TrimSpace(text)}
	}
	block := []byte(text[match[2]:match[3]])

	result, err := a.schema.Validate(gojsonschema.NewBytesLoader(block))
	if err != nil || !result.Valid() {
		details := make([]string, 0)
		if result != nil {
			for _, e := range result.Errors() {
				details = append(details, e.String())
			}
		}
		a.logger.Warn().Err(err).Str("func", "*assistantService.parseRecipe").Strs("details", details).Msg("structured recipe rejected")
		return models.RecipeAnswer{Text: strings.TrimSpace(text)}
	}

	var recipe models.GeneratedRecipe
	if err = json.Unmarshal(block, &recipe); err != nil {
		return models.RecipeAnswer{Text: strings.TrimSpace(text)}
	}

	return models.RecipeAnswer{
		Text:   strings.TrimSpace(text[:match[0]] + text[match[1]:]),
		Recipe: &recipe,
	}
}

func recipePrompt(ingredients, preferences string) string {
	var extra string
	if preferences != "" {
		extra = "Preferências adicionais: " + preferences
	}

	return "Crie uma receita sem lactose usando os seguintes ingredientes: " + ingredients + ".\n\n" +
		extra + "\n\n" +
		"Forneça uma receita completa com:\n" +
		"- Nome da receita\n" +
		"- Tempo de preparo\n" +
		"- Ingredientes detalhados\n" +
		"- Modo de preparo passo a passo\n" +
		"- Dicas extras\n\n" +
		"Formate de forma clara e organizada."
}
