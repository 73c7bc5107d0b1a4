package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/nutriveg/nutriveg-cli/cli/listing"
)

// recipeDeleteDenied is reported in the delete response body when the
// acting user does not own the recipe.
const recipeDeleteDenied = "Você não tem permissão para excluir esta receita"

// ratingAddedMessage is the success marker of recipes/rate; any other
// message means the user already rated this recipe.
const ratingAddedMessage = "Rating adicionado com sucesso"

// RecipeService covers the recipe collection. It implements
// listing.Source[Recipe] for the four query modes.
type RecipeService struct {
	client *Client
}

func (s *RecipeService) List(ctx context.Context, offset, limit int) (listing.Page[Recipe], error) {
	var result struct {
		Recipes []Recipe `json:"recipes"`
		Total   int      `json:"totalRecipes"`
	}
	resp, err := s.pageRequest(ctx, offset, limit).SetResult(&result).Get("recipes/list")
	if err != nil {
		return listing.Page[Recipe]{}, fmt.Errorf("failed to list recipes: %w", err)
	}
	if resp.IsError() {
		return listing.Page[Recipe]{}, apiError(resp)
	}
	return page(result.Recipes, result.Total, offset, limit), nil
}

func (s *RecipeService) Search(ctx context.Context, term string, offset, limit int) (listing.Page[Recipe], error) {
	var result struct {
		Recipes []Recipe `json:"recipes"`
		Total   int      `json:"totalSearchedRecipes"`
	}
	resp, err := s.pageRequest(ctx, offset, limit).
		SetResult(&result).
		Get("recipes/search/" + url.PathEscape(term))
	if err != nil {
		return listing.Page[Recipe]{}, fmt.Errorf("failed to search recipes: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return listing.Page[Recipe]{}, listing.ErrNoResults
	}
	if resp.IsError() {
		return listing.Page[Recipe]{}, apiError(resp)
	}
	return page(result.Recipes, result.Total, offset, limit), nil
}

func (s *RecipeService) Sort(ctx context.Context, order string, offset, limit int) (listing.Page[Recipe], error) {
	var result struct {
		Recipes []Recipe `json:"recipes"`
		Total   int      `json:"totalSortedRecipes"`
	}
	resp, err := s.pageRequest(ctx, offset, limit).
		SetQueryParam("order", order).
		SetResult(&result).
		Get("recipes/sort")
	if err != nil {
		return listing.Page[Recipe]{}, fmt.Errorf("failed to sort recipes: %w", err)
	}
	if resp.IsError() {
		return listing.Page[Recipe]{}, apiError(resp)
	}
	return page(result.Recipes, result.Total, offset, limit), nil
}

func (s *RecipeService) Filter(ctx context.Context, facets listing.Facets, offset, limit int) (listing.Page[Recipe], error) {
	filters, err := json.Marshal(facets)
	if err != nil {
		return listing.Page[Recipe]{}, fmt.Errorf("failed to encode filters: %w", err)
	}
	var result struct {
		Recipes []Recipe `json:"recipes"`
		Total   int      `json:"totalFilteredRecipes"`
	}
	resp, err := s.pageRequest(ctx, offset, limit).
		SetQueryParam("filters", string(filters)).
		SetResult(&result).
		Get("recipes/filter")
	if err != nil {
		return listing.Page[Recipe]{}, fmt.Errorf("failed to filter recipes: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return listing.Page[Recipe]{}, listing.ErrNoResults
	}
	if resp.IsError() {
		return listing.Page[Recipe]{}, apiError(resp)
	}
	return page(result.Recipes, result.Total, offset, limit), nil
}

// Details fetches the full recipe record.
func (s *RecipeService) Details(ctx context.Context, id string) (*RecipeDetails, error) {
	var result RecipeDetails
	resp, err := s.client.http.R().SetContext(ctx).
		SetResult(&result).
		Get("recipes/details/" + url.PathEscape(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &result, nil
}

// Create publishes a recipe with its image and returns the new recipe id.
func (s *RecipeService) Create(ctx context.Context, recipe NewRecipe) (string, error) {
	categories, err := json.Marshal(recipe.Categories)
	if err != nil {
		return "", fmt.Errorf("failed to encode categories: %w", err)
	}
	ingredients, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return "", fmt.Errorf("failed to encode ingredients: %w", err)
	}
	steps, err := json.Marshal(recipe.PreparationSteps)
	if err != nil {
		return "", fmt.Errorf("failed to encode preparation steps: %w", err)
	}
	var result struct {
		RecipeID json.Number `json:"idReceita"`
	}
	resp, err := s.client.http.R().SetContext(ctx).
		SetFile("imagem", recipe.ImagePath).
		SetFormData(map[string]string{
			"idUsuario":     recipe.UserID,
			"categoria":     string(categories),
			"alimentacao":   recipe.Diet,
			"tempo":         recipe.PreparationTime,
			"rendimento":    recipe.Servings,
			"nome":          recipe.Title,
			"introducao":    recipe.Summary,
			"ingrediente":   string(ingredients),
			"modoDePreparo": string(steps),
		}).
		SetResult(&result).
		Post("recipes/create")
	if err != nil {
		return "", fmt.Errorf("failed to create recipe: %w", err)
	}
	if resp.IsError() {
		return "", apiError(resp)
	}
	return result.RecipeID.String(), nil
}

// Delete removes a recipe. The platform reports ownership violations inside
// the response body, sometimes on a 2xx.
func (s *RecipeService) Delete(ctx context.Context, recipeID, userID string) error {
	resp, err := s.client.http.R().SetContext(ctx).
		Delete("recipes/delete/" + url.PathEscape(recipeID) + "/" + url.PathEscape(userID))
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	var body errorBody
	if jsonErr := json.Unmarshal(resp.Body(), &body); jsonErr == nil && body.Error == recipeDeleteDenied {
		return ErrNotOwner
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// Rate submits a score for a recipe. ErrAlreadyRated means the user rated
// it before; the displayed average must not change in that case.
func (s *RecipeService) Rate(ctx context.Context, recipeID, userID string, score int) error {
	var result struct {
		Message string `json:"message"`
	}
	resp, err := s.client.http.R().SetContext(ctx).
		SetBody(map[string]any{
			"nota":      score,
			"idUsuario": userID,
			"idReceita": recipeID,
		}).
		SetResult(&result).
		Post("recipes/rate")
	if err != nil {
		return fmt.Errorf("failed to rate recipe: %w", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	if result.Message != ratingAddedMessage {
		return ErrAlreadyRated
	}
	return nil
}

// RecentByNutritionists returns the home rail of latest nutritionist
// recipes.
func (s *RecipeService) RecentByNutritionists(ctx context.Context, limit int) ([]HighlightRecipe, error) {
	var result struct {
		Recipes []HighlightRecipe `json:"recentNutritionistsRecipes"`
	}
	resp, err := s.pageRequest(ctx, 0, limit).SetResult(&result).Get("recipes/recent-by-nutritionists")
	if err != nil {
		return nil, fmt.Errorf("failed to get recent nutritionist recipes: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return result.Recipes, nil
}

func (s *RecipeService) pageRequest(ctx context.Context, offset, limit int) *resty.Request {
	return s.client.http.R().SetContext(ctx).
		SetQueryParam("offset", strconv.Itoa(offset)).
		SetQueryParam("limit", strconv.Itoa(limit))
}

func page[T any](items []T, total, offset, limit int) listing.Page[T] {
	return listing.Page[T]{Items: items, TotalCount: total, Offset: offset, Limit: limit}
}
