package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/nutriveg/nutriveg-cli/cli/listing"
)

// UserService covers accounts and profiles.
type UserService struct {
	client *Client
}

// Login exchanges credentials for a session token. The email is lowercased
// before submission, matching the platform's expectation.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	var result struct {
		Token string `json:"token"`
	}
	resp, err := s.client.http.R().SetContext(ctx).
		SetBody(map[string]string{
			"email": strings.ToLower(email),
			"senha": password,
		}).
		SetResult(&result).
		Post("users/login")
	if err != nil {
		return "", fmt.Errorf("failed to log in: %w", err)
	}
	if resp.StatusCode() == http.StatusBadRequest {
		return "", ErrInvalidCredentials
	}
	if resp.IsError() {
		return "", apiError(resp)
	}
	return result.Token, nil
}

// Register creates an account. A 400 means the email already has one.
func (s *UserService) Register(ctx context.Context, reg Registration) error {
	reg.Email = strings.ToLower(reg.Email)
	resp, err := s.client.http.R().SetContext(ctx).
		SetBody(reg).
		Post("users/register")
	if err != nil {
		return fmt.Errorf("failed to register: %w", err)
	}
	if resp.StatusCode() == http.StatusBadRequest {
		return ErrEmailInUse
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// Details fetches a user's profile record.
func (s *UserService) Details(ctx context.Context, id string) (*UserDetails, error) {
	var result struct {
		UserData UserDetails `json:"userData"`
	}
	resp, err := s.client.http.R().SetContext(ctx).
		SetResult(&result).
		Get("users/details/" + url.PathEscape(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get user details: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &result.UserData, nil
}

// PublishedRecipes lists the recipes a user has published.
func (s *UserService) PublishedRecipes(ctx context.Context, userID string, offset, limit int) (listing.Page[ProfileRecipe], error) {
	var result struct {
		Recipes []ProfileRecipe `json:"userRecipes"`
		Total   int             `json:"totalUserRecipes"`
	}
	resp, err := s.client.http.R().SetContext(ctx).
		SetQueryParam("offset", strconv.Itoa(offset)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&result).
		Get("users/" + url.PathEscape(userID) + "/recipes/published")
	if err != nil {
		return listing.Page[ProfileRecipe]{}, fmt.Errorf("failed to get published recipes: %w", err)
	}
	if resp.IsError() {
		return listing.Page[ProfileRecipe]{}, apiError(resp)
	}
	return page(result.Recipes, result.Total, offset, limit), nil
}

// PublishedArticles lists the articles a nutritionist has published.
func (s *UserService) PublishedArticles(ctx context.Context, userID string, offset, limit int) (listing.Page[ProfileArticle], error) {
	var result struct {
		Articles []ProfileArticle `json:"userArticles"`
		Total    int              `json:"totalUserArticles"`
	}
	resp, err := s.client.http.R().SetContext(ctx).
		SetQueryParam("offset", strconv.Itoa(offset)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&result).
		Get("users/" + url.PathEscape(userID) + "/articles/published")
	if err != nil {
		return listing.Page[ProfileArticle]{}, fmt.Errorf("failed to get published articles: %w", err)
	}
	if resp.IsError() {
		return listing.Page[ProfileArticle]{}, apiError(resp)
	}
	return page(result.Articles, result.Total, offset, limit), nil
}

// UpdateMember saves the editable fields of a member profile. Both path
// segments carry the acting user id; the server verifies they match.
func (s *UserService) UpdateMember(ctx context.Context, id, actingUserID string, update MemberUpdate) error {
	resp, err := s.client.http.R().SetContext(ctx).
		SetFormData(map[string]string{
			"name":  update.Name,
			"email": strings.ToLower(update.Email),
			"about": update.About,
			"phone": update.Phone,
			"city":  update.City,
			"state": update.State,
		}).
		Put("users/update-member/" + url.PathEscape(id) + "/" + url.PathEscape(actingUserID))
	if err != nil {
		return fmt.Errorf("failed to update member profile: %w", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// UpdateNutritionist saves the editable fields of a nutritionist profile.
func (s *UserService) UpdateNutritionist(ctx context.Context, id, actingUserID string, update NutritionistUpdate) error {
	resp, err := s.client.http.R().SetContext(ctx).
		SetFormData(map[string]string{
			"name":      update.Name,
			"email":     strings.ToLower(update.Email),
			"about":     update.About,
			"phone":     update.Phone,
			"city":      update.City,
			"state":     update.State,
			"crn":       update.CRN,
			"education": update.Education,
			"focus":     update.Focus,
			"website":   update.Website,
			"instagram": update.Instagram,
			"linkedin":  update.LinkedIn,
		}).
		Put("users/update-nutritionist/" + url.PathEscape(id) + "/" + url.PathEscape(actingUserID))
	if err != nil {
		return fmt.Errorf("failed to update nutritionist profile: %w", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// UpdatePicture uploads a profile or cover picture. kind is the form field
// the platform expects: "profilePicture" or "coverPicture". It returns the
// refreshed profile so the caller can persist the new avatar reference.
func (s *UserService) UpdatePicture(ctx context.Context, id, actingUserID, kind, imagePath string) (*UserDetails, error) {
	if kind != "profilePicture" && kind != "coverPicture" {
		return nil, fmt.Errorf("unknown picture kind %q", kind)
	}
	resp, err := s.client.http.R().SetContext(ctx).
		SetFile(kind, imagePath).
		Put("users/update-pictures/" + url.PathEscape(id) + "/" + url.PathEscape(actingUserID))
	if err != nil {
		return nil, fmt.Errorf("failed to update pictures: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return s.Details(ctx, id)
}
