package service

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/lacnutry/models"
)

//go:embed recipes.json
var recipesJSON []byte

type catalogService struct {
	recipes []models.Recipe
	byID    map[string]int
}

// NewCatalogService parses the embedded recipe catalog.
func NewCatalogService() (CatalogService, error) {
	return newCatalogService(recipesJSON)
}

func newCatalogService(raw []byte) (*catalogService, error) {
	var recipes []models.Recipe
	if err := json.Unmarshal(raw, &recipes); err != nil {
		return nil, fmt.Errorf("parse recipe catalog: %w", err)
	}

	byID := make(map[string]int, len(recipes))
	for i, r := range recipes {
		if _, dup := byID[r.ID]; dup {
			return nil, fmt.Errorf("parse recipe catalog: duplicate id %q", r.ID)
		}
		byID[r.ID] = i
	}
	return &catalogService{recipes: recipes, byID: byID}, nil
}

// List returns the recipes matching filter in catalog order. Tags match
// case-insensitively.
func (c *catalogService) List(filter models.RecipeFilter) []models.Recipe {
	out := make([]models.Recipe, 0, len(c.recipes))
	for _, r := range c.recipes {
		if filter.OnlyLactoseFree && !r.IsLactoseFree {
			continue
		}
		if filter.Tag != "" && !slices.ContainsFunc(r.Tags, func(tag string) bool {
			return strings.EqualFold(tag, filter.Tag)
		}) {
			continue
		}
		out = append(out, cloneRecipe(r))
	}
	return out
}

func (c *catalogService) Get(id string) (models.Recipe, error) {
	i, ok := c.byID[id]
	if !ok {
		return models.Recipe{}, fmt.Errorf("%w: %s", ErrRecipeNotFound, id)
	}
	return cloneRecipe(c.recipes[i]), nil
}

// Favorites resolves ids in the given order.
func (c *catalogService) Favorites(ids []string) []models.Recipe {
	out := make([]models.Recipe, 0, len(ids))
	for _, id := range ids {
		if i, ok := c.byID[id]; ok {
			out = append(out, cloneRecipe(c.recipes[i]))
		}
	}
	return out
}

func cloneRecipe(r models.Recipe) models.Recipe {
	r.Ingredients = slices.Clone(r.Ingredients)
	r.Instructions = slices.Clone(r.Instructions)
	r.Tags = slices.Clone(r.Tags)
	return r
}
