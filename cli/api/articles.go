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

const articleDeleteDenied = "Você não tem permissão para excluir este artigo."

// ArticleService covers the article collection. Articles have no filter
// endpoint, so Filter reports listing.ErrFilterUnsupported.
type ArticleService struct {
	client *Client
}

func (s *ArticleService) List(ctx context.Context, offset, limit int) (listing.Page[Article], error) {
	var result struct {
		Articles []Article `json:"articles"`
		Total    int       `json:"totalArticles"`
	}
	resp, err := s.pageRequest(ctx, offset, limit).SetResult(&result).Get("articles/list")
	if err != nil {
		return listing.Page[Article]{}, fmt.Errorf("failed to list articles: %w", err)
	}
	if resp.IsError() {
		return listing.Page[Article]{}, apiError(resp)
	}
	return page(result.Articles, result.Total, offset, limit), nil
}

func (s *ArticleService) Search(ctx context.Context, term string, offset, limit int) (listing.Page[Article], error) {
	var result struct {
		Articles []Article `json:"articles"`
		Total    int       `json:"totalSearchedArticles"`
	}
	resp, err := s.pageRequest(ctx, offset, limit).
		SetResult(&result).
		Get("articles/search/" + url.PathEscape(term))
	if err != nil {
		return listing.Page[Article]{}, fmt.Errorf("failed to search articles: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return listing.Page[Article]{}, listing.ErrNoResults
	}
	if resp.IsError() {
		return listing.Page[Article]{}, apiError(resp)
	}
	return page(result.Articles, result.Total, offset, limit), nil
}

func (s *ArticleService) Sort(ctx context.Context, order string, offset, limit int) (listing.Page[Article], error) {
	var result struct {
		Articles []Article `json:"articles"`
		Total    int       `json:"totalSortedArticles"`
	}
	resp, err := s.pageRequest(ctx, offset, limit).
		SetQueryParam("order", order).
		SetResult(&result).
		Get("articles/sort")
	if err != nil {
		return listing.Page[Article]{}, fmt.Errorf("failed to sort articles: %w", err)
	}
	if resp.IsError() {
		return listing.Page[Article]{}, apiError(resp)
	}
	return page(result.Articles, result.Total, offset, limit), nil
}

func (s *ArticleService) Filter(_ context.Context, _ listing.Facets, _, _ int) (listing.Page[Article], error) {
	return listing.Page[Article]{}, listing.ErrFilterUnsupported
}

// Details fetches the full article record.
func (s *ArticleService) Details(ctx context.Context, id string) (*ArticleDetails, error) {
	var result struct {
		Details ArticleDetails `json:"articleDetails"`
	}
	resp, err := s.client.http.R().SetContext(ctx).
		SetResult(&result).
		Get("articles/details/" + url.PathEscape(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &result.Details, nil
}

// Create publishes an article with its cover image and returns the new
// article id. The body must already be sanitized.
func (s *ArticleService) Create(ctx context.Context, article NewArticle) (string, error) {
	var result struct {
		ArticleID json.Number `json:"articleId"`
	}
	resp, err := s.client.http.R().SetContext(ctx).
		SetFile("articleImage", article.ImagePath).
		SetFormData(map[string]string{
			"nutritionistId": article.NutritionistID,
			"articleTitle":   article.Title,
			"articleText":    article.Text,
		}).
		SetResult(&result).
		Post("articles/create")
	if err != nil {
		return "", fmt.Errorf("failed to create article: %w", err)
	}
	if resp.IsError() {
		return "", apiError(resp)
	}
	return result.ArticleID.String(), nil
}

// Delete removes an article; a 403 ownership payload becomes ErrNotOwner
// without touching the session.
func (s *ArticleService) Delete(ctx context.Context, articleID, userID string) error {
	resp, err := s.client.http.R().SetContext(ctx).
		Delete("articles/delete/" + url.PathEscape(articleID) + "/" + url.PathEscape(userID))
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if resp.StatusCode() == http.StatusForbidden {
		var body errorBody
		if jsonErr := json.Unmarshal(resp.Body(), &body); jsonErr == nil && body.Error == articleDeleteDenied {
			return ErrNotOwner
		}
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

func (s *ArticleService) pageRequest(ctx context.Context, offset, limit int) *resty.Request {
	return s.client.http.R().SetContext(ctx).
		SetQueryParam("offset", strconv.Itoa(offset)).
		SetQueryParam("limit", strconv.Itoa(limit))
}
