package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/lacnutry/internal/service"
	"github.com/MKhiriev/lacnutry/models"
)

func TestHandler_ListRecipes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl, false)
	f.catalog.EXPECT().List(models.RecipeFilter{Tag: "Sobremesa", OnlyLactoseFree: true}).
		Return([]models.Recipe{{ID: "3", Title: "Mousse", IsLactoseFree: true}})
	f.catalog.EXPECT().List(models.RecipeFilter{}).Return([]models.Recipe{})

	// The catalog does not wait for the profile store.
	rec := f.do(http.MethodGet, "/api/recipes?tag=Sobremesa&lactoseFree=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	recipes := decodeResponse[[]models.Recipe](t, rec.Body.Bytes())
	require.Len(t, recipes, 1)
	assert.Equal(t, "Mousse", recipes[0].Title)

	rec = f.do(http.MethodGet, "/api/recipes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = f.do(http.MethodGet, "/api/recipes?lactoseFree=sim", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrInvalidQueryParam.Error())
}

func TestHandler_GetRecipe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl, true)
	f.catalog.EXPECT().Get("7").Return(models.Recipe{ID: "7", Title: "Panqueca"}, nil)
	f.catalog.EXPECT().Get("70").Return(models.Recipe{}, service.ErrRecipeNotFound)

	rec := f.do(http.MethodGet, "/api/recipes/7", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Panqueca", decodeResponse[models.Recipe](t, rec.Body.Bytes()).Title)

	rec = f.do(http.MethodGet, "/api/recipes/70", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_FavoriteRecipes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl, true)
	f.profiles.EXPECT().Favorites().Return([]string{"2", "missing"})
	f.catalog.EXPECT().Favorites([]string{"2", "missing"}).Return([]models.Recipe{{ID: "2"}})

	rec := f.do(http.MethodGet, "/api/recipes/favorites", "")

	require.Equal(t, http.StatusOK, rec.Code)
	recipes := decodeResponse[[]models.Recipe](t, rec.Body.Bytes())
	require.Len(t, recipes, 1)
	assert.Equal(t, "2", recipes[0].ID)
}
