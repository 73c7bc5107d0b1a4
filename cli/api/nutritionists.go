package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/nutriveg/nutriveg-cli/cli/listing"
)

// NutritionistService covers the nutritionist directory. Sorting is by
// nutrition focus; there is no filter endpoint.
type NutritionistService struct {
	client *Client
}

func (s *NutritionistService) List(ctx context.Context, offset, limit int) (listing.Page[Nutritionist], error) {
	var result struct {
		Nutritionists []Nutritionist `json:"nutritionists"`
		Total         int            `json:"totalNutritionists"`
	}
	resp, err := s.pageRequest(ctx, offset, limit).SetResult(&result).Get("nutritionists/list")
	if err != nil {
		return listing.Page[Nutritionist]{}, fmt.Errorf("failed to list nutritionists: %w", err)
	}
	if resp.IsError() {
		return listing.Page[Nutritionist]{}, apiError(resp)
	}
	return page(result.Nutritionists, result.Total, offset, limit), nil
}

func (s *NutritionistService) Search(ctx context.Context, term string, offset, limit int) (listing.Page[Nutritionist], error) {
	var result struct {
		Nutritionists []Nutritionist `json:"nutritionists"`
		Total         int            `json:"totalSearchedNutritionists"`
	}
	resp, err := s.pageRequest(ctx, offset, limit).
		SetResult(&result).
		Get("nutritionists/search/" + url.PathEscape(term))
	if err != nil {
		return listing.Page[Nutritionist]{}, fmt.Errorf("failed to search nutritionists: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return listing.Page[Nutritionist]{}, listing.ErrNoResults
	}
	if resp.IsError() {
		return listing.Page[Nutritionist]{}, apiError(resp)
	}
	return page(result.Nutritionists, result.Total, offset, limit), nil
}

func (s *NutritionistService) Sort(ctx context.Context, order string, offset, limit int) (listing.Page[Nutritionist], error) {
	var result struct {
		Nutritionists []Nutritionist `json:"nutritionists"`
		Total         int            `json:"totalSortedNutritionists"`
	}
	resp, err := s.pageRequest(ctx, offset, limit).
		SetQueryParam("order", order).
		SetResult(&result).
		Get("nutritionists/sort")
	if err != nil {
		return listing.Page[Nutritionist]{}, fmt.Errorf("failed to sort nutritionists: %w", err)
	}
	if resp.IsError() {
		return listing.Page[Nutritionist]{}, apiError(resp)
	}
	return page(result.Nutritionists, result.Total, offset, limit), nil
}

func (s *NutritionistService) Filter(_ context.Context, _ listing.Facets, _, _ int) (listing.Page[Nutritionist], error) {
	return listing.Page[Nutritionist]{}, listing.ErrFilterUnsupported
}

func (s *NutritionistService) pageRequest(ctx context.Context, offset, limit int) *resty.Request {
	return s.client.http.R().SetContext(ctx).
		SetQueryParam("offset", strconv.Itoa(offset)).
		SetQueryParam("limit", strconv.Itoa(limit))
}
