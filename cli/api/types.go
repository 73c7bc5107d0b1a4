package api

import "encoding/json"

// Recipe is a collection item as served by the recipe listing endpoints.
type Recipe struct {
	ID      json.Number `json:"id_receitas"`
	Image   string      `json:"imagem"`
	Title   string      `json:"nome_da_receita"`
	Summary string      `json:"introducao"`
}

// Ratings is the aggregate rating block on a recipe detail.
type Ratings struct {
	Sum   float64 `json:"somaAvaliacoes"`
	Count int     `json:"totalAvaliacoes"`
}

// Average returns the mean score, or 0 when the recipe has no ratings.
func (r Ratings) Average() float64 {
	if r.Count <= 0 {
		return 0
	}
	return r.Sum / float64(r.Count)
}

// RecipeDetails is the full recipe record including the author block.
type RecipeDetails struct {
	Image            string      `json:"imagem"`
	PublishedAt      string      `json:"data_criacao"`
	Title            string      `json:"nome_da_receita"`
	PreparationTime  string      `json:"tempo_de_preparo"`
	Servings         string      `json:"rendimento"`
	Diet             string      `json:"alimentacao"`
	Summary          string      `json:"introducao"`
	Ingredients      []string    `json:"ingredientes"`
	PreparationSteps []string    `json:"modoDePreparo"`
	AuthorID         json.Number `json:"id_usuario"`
	AuthorName       string      `json:"nome_usuario"`
	AuthorRole       string      `json:"tipo_usuario"`
	AuthorPicture    string      `json:"foto_perfil"`
	AuthorRecipes    int         `json:"totalReceitasUsuario"`
	AuthorArticles   int         `json:"quantidadeDeArtigosEscritos"`
	Ratings          Ratings     `json:"avaliacoes"`
}

// NewRecipe is the payload for publishing a recipe. Categories, ingredients
// and steps are JSON-encoded into the multipart form the way the platform
// expects.
type NewRecipe struct {
	UserID           string
	ImagePath        string
	Categories       []string
	Diet             string
	PreparationTime  string
	Servings         string
	Title            string
	Summary          string
	Ingredients      []string
	PreparationSteps []string
}

// Article is a collection item as served by the article listing endpoints.
type Article struct {
	ID                 json.Number `json:"id"`
	Image              string      `json:"image"`
	Title              string      `json:"title"`
	PublicationDate    string      `json:"publicationDate"`
	NutritionistID     json.Number `json:"nutritionistId"`
	NutritionistName   string      `json:"nutritionistName"`
	NutritionistFocus  string      `json:"nutritionistFocus"`
	NutritionistAvatar string      `json:"nutritionistProfilePicture"`
}

// ArticleDetails is the full article record. Text is sanitized HTML.
type ArticleDetails struct {
	ID                 json.Number `json:"id"`
	Image              string      `json:"image"`
	Title              string      `json:"title"`
	Text               string      `json:"text"`
	PublicationDate    string      `json:"publicationDate"`
	NutritionistID     json.Number `json:"nutritionistId"`
	NutritionistName   string      `json:"nutritionistName"`
	NutritionistFocus  string      `json:"nutritionistFocus"`
	NutritionistAvatar string      `json:"nutritionistProfilePicture"`
}

// NewArticle is the payload for publishing an article. Text must already be
// sanitized by the caller.
type NewArticle struct {
	NutritionistID string
	ImagePath      string
	Title          string
	Text           string
}

// Nutritionist is a collection item from the nutritionist listing.
type Nutritionist struct {
	ID                       json.Number `json:"id"`
	Name                     string      `json:"name"`
	Focus                    string      `json:"focus"`
	ProfilePicture           string      `json:"profilePicture"`
	CoverPicture             string      `json:"coverPicture"`
	City                     string      `json:"city"`
	State                    string      `json:"state"`
	NumberOfPublishedRecipes int         `json:"numberOfPublishedRecipes"`
}

// UserDetails is the profile record served by users/details.
type UserDetails struct {
	ID             json.Number `json:"id"`
	Name           string      `json:"name"`
	Type           string      `json:"type"`
	Email          string      `json:"email"`
	About          string      `json:"about"`
	Phone          string      `json:"phone"`
	City           string      `json:"city"`
	State          string      `json:"state"`
	CRN            string      `json:"crn"`
	Education      string      `json:"education"`
	Focus          string      `json:"focus"`
	Website        string      `json:"website"`
	Instagram      string      `json:"instagram"`
	LinkedIn       string      `json:"linkedin"`
	ProfilePicture string      `json:"profilePicture"`
	CoverPicture   string      `json:"coverPicture"`
}

// IsNutritionist reports whether the profile belongs to a nutritionist.
func (u UserDetails) IsNutritionist() bool {
	return u.Type == "nutricionista"
}

// HighlightRecipe is a recipe item on the home page rails.
type HighlightRecipe struct {
	ID    json.Number `json:"id"`
	Image string      `json:"image"`
	Title string      `json:"title"`
}

// ProfileRecipe is a recipe item on a profile's published list.
type ProfileRecipe struct {
	ID      json.Number `json:"id"`
	Image   string      `json:"image"`
	Title   string      `json:"title"`
	Summary string      `json:"summary"`
}

// ProfileArticle is an article item on a nutritionist profile.
type ProfileArticle struct {
	ID              json.Number `json:"id"`
	Image           string      `json:"image"`
	Title           string      `json:"title"`
	PublicationDate string      `json:"publicationDate"`
}

// Registration is the signup payload. CRN, Education and Focus are only
// sent for nutritionist accounts.
type Registration struct {
	Name      string `json:"nome"`
	Email     string `json:"email"`
	Password  string `json:"senha"`
	Type      string `json:"tipo"`
	CRN       string `json:"crn,omitempty"`
	Education string `json:"formacao,omitempty"`
	Focus     string `json:"foco,omitempty"`
}

// MemberUpdate is the editable field set of a member profile.
type MemberUpdate struct {
	Name  string
	Email string
	About string
	Phone string
	City  string
	State string
}

// NutritionistUpdate is the editable field set of a nutritionist profile.
type NutritionistUpdate struct {
	MemberUpdate
	CRN       string
	Education string
	Focus     string
	Website   string
	Instagram string
	LinkedIn  string
}
