package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriveg/nutriveg-cli/cli/helpers"
	"github.com/nutriveg/nutriveg-cli/cli/listing"
	"github.com/nutriveg/nutriveg-cli/cli/session"
	"github.com/nutriveg/nutriveg-cli/pkg/config"
)

func testToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   7,
		"nome": "Ana",
		"tipo": role,
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func testClient(t *testing.T, handler http.Handler) (*Client, *session.Store, string) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	credsPath := filepath.Join(t.TempDir(), "credentials.json")
	store := session.NewStore(credsPath)
	require.NoError(t, store.Load())

	cfg := &config.Config{
		API: config.APIConfig{BaseURL: server.URL + "/", Timeout: 5 * time.Second},
		CLI: config.CLIConfig{DefaultFormat: "json", CredentialsFile: credsPath},
		Runtime: config.RuntimeConfig{
			LogLevel: "info",
		},
	}
	client, err := NewClient(cfg, store)
	require.NoError(t, err)
	return client, store, credsPath
}

func TestNewClient(t *testing.T) {
	t.Run("Should reject missing config", func(t *testing.T) {
		_, err := NewClient(nil, session.NewStore("unused"))
		assert.Error(t, err)
	})

	t.Run("Should reject missing session store", func(t *testing.T) {
		cfg := &config.Config{
			API: config.APIConfig{BaseURL: "http://localhost/", Timeout: time.Second},
		}
		_, err := NewClient(cfg, nil)
		assert.Error(t, err)
	})

	t.Run("Should reject relative base URL", func(t *testing.T) {
		cfg := &config.Config{
			API: config.APIConfig{BaseURL: "/api", Timeout: time.Second},
		}
		_, err := NewClient(cfg, session.NewStore("unused"))
		assert.ErrorContains(t, err, "base URL")
	})

	t.Run("Should reject non-http scheme", func(t *testing.T) {
		cfg := &config.Config{
			API: config.APIConfig{BaseURL: "ftp://example.com/", Timeout: time.Second},
		}
		_, err := NewClient(cfg, session.NewStore("unused"))
		assert.ErrorContains(t, err, "scheme")
	})
}

func TestClient_BearerToken(t *testing.T) {
	t.Run("Should attach the persisted token to every request", func(t *testing.T) {
		var gotAuth string
		client, store, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"recipes":[],"totalRecipes":0}`))
		}))
		token := testToken(t, "membro")
		_, err := store.Login(token)
		require.NoError(t, err)

		_, err = client.Recipes().List(context.Background(), 0, 12)
		require.NoError(t, err)
		assert.Equal(t, "Bearer "+token, gotAuth)
	})

	t.Run("Should send no Authorization header while anonymous", func(t *testing.T) {
		var gotAuth string
		client, _, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"recipes":[],"totalRecipes":0}`))
		}))
		_, err := client.Recipes().List(context.Background(), 0, 12)
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})
}

func TestClient_SessionInterception(t *testing.T) {
	t.Run("Should log out and report an expired session on 401", func(t *testing.T) {
		client, store, credsPath := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		_, err := store.Login(testToken(t, "membro"))
		require.NoError(t, err)

		_, err = client.Recipes().List(context.Background(), 0, 12)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSessionExpired)
		assert.ErrorIs(t, err, helpers.ErrAuth)

		assert.Equal(t, session.StatusAnonymous, store.Status())
		assert.Empty(t, store.Token())
		_, statErr := os.Stat(credsPath)
		assert.ErrorIs(t, statErr, os.ErrNotExist)
	})

	t.Run("Should log out on the nutritionist-only 403 marker", func(t *testing.T) {
		client, store, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"message":"` + permissionDeniedMessage + `"}`))
		}))
		_, err := store.Login(testToken(t, "membro"))
		require.NoError(t, err)

		_, err = client.Articles().Create(context.Background(), NewArticle{
			NutritionistID: "7",
			ImagePath:      writeTempImage(t),
			Title:          "x",
			Text:           "<p>x</p>",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPermissionDenied)
		assert.Equal(t, session.StatusAnonymous, store.Status())
	})

	t.Run("Should keep the session on an ownership 403", func(t *testing.T) {
		client, store, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":"Você não tem permissão para excluir este artigo."}`))
		}))
		_, err := store.Login(testToken(t, "nutricionista"))
		require.NoError(t, err)

		err = client.Articles().Delete(context.Background(), "3", "7")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotOwner)
		assert.Equal(t, session.StatusAuthenticated, store.Status())
	})
}

func TestClient_Retry(t *testing.T) {
	t.Run("Should retry transient server errors", func(t *testing.T) {
		var calls int
		client, _, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls++
			if calls == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"recipes":[],"totalRecipes":0}`))
		}))
		_, err := client.Recipes().List(context.Background(), 0, 12)
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("Should not retry a 401", func(t *testing.T) {
		var calls int
		client, _, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls++
			w.WriteHeader(http.StatusUnauthorized)
		}))
		_, err := client.Recipes().List(context.Background(), 0, 12)
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestRecipeService(t *testing.T) {
	t.Run("Should list recipes with pagination parameters", func(t *testing.T) {
		client, _, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/recipes/list", r.URL.Path)
			assert.Equal(t, "24", r.URL.Query().Get("offset"))
			assert.Equal(t, "12", r.URL.Query().Get("limit"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"recipes":[{"id_receitas":1,"imagem":"a.jpg","nome_da_receita":"Feijoada vegana","introducao":"Um clássico."}],"totalRecipes":25}`))
		}))
		page, err := client.Recipes().List(context.Background(), 24, 12)
		require.NoError(t, err)
		assert.Equal(t, 25, page.TotalCount)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Feijoada vegana", page.Items[0].Title)
		assert.Equal(t, "1", page.Items[0].ID.String())
	})

	t.Run("Should report no results on a search 404", func(t *testing.T) {
		client, _, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/recipes/search/quinoa", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}))
		_, err := client.Recipes().Search(context.Background(), "quinoa", 0, 12)
		assert.ErrorIs(t, err, listing.ErrNoResults)
	})

	t.Run("Should send the sort order", func(t *testing.T) {
		client, _, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "bestRated", r.URL.Query().Get("order"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"recipes":[],"totalSortedRecipes":0}`))
		}))
		_, err := client.Recipes().Sort(context.Background(), "bestRated", 0, 12)
		require.NoError(t, err)
	})

	t.Run("Should encode filter facets as JSON", func(t *testing.T) {
		var gotFilters string
		client, _, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotFilters = r.URL.Query().Get("filters")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"recipes":[],"totalFilteredRecipes":0}`))
		}))
		facets := listing.Facets{"alimentacao": {"vegano"}}
		_, err := client.Recipes().Filter(context.Background(), facets, 0, 12)
		require.NoError(t, err)
		assert.JSONEq(t, `{"alimentacao":["vegano"]}`, gotFilters)
	})

	t.Run("Should report ownership denial hidden in a 2xx delete body", func(t *testing.T) {
		client, _, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/recipes/delete/3/7", r.URL.Path)
			assert.Equal(t, http.MethodDelete, r.Method)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"error":"Você não tem permissão para excluir esta receita"}`))
		}))
		err := client.Recipes().Delete(context.Background(), "3", "7")
		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("Should report a duplicate rating", func(t *testing.T) {
		client, _, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"message":"Usuário já avaliou esta receita"}`))
		}))
		err := client.Recipes().Rate(context.Background(), "3", "7", 5)
		assert.ErrorIs(t, err, ErrAlreadyRated)
	})

	t.Run("Should accept a successful rating", func(t *testing.T) {
		client, _, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"message":"Rating adicionado com sucesso"}`))
		}))
		err := client.Recipes().Rate(context.Background(), "3", "7", 5)
		assert.NoError(t, err)
	})
}

func TestArticleService(t *testing.T) {
	t.Run("Should not support filtering", func(t *testing.T) {
		client, _, _ := testClient(t, http.NotFoundHandler())
		_, err := client.Articles().Filter(context.Background(), listing.Facets{"x": {"y"}}, 0, 12)
		assert.ErrorIs(t, err, listing.ErrFilterUnsupported)
	})

	t.Run("Should unwrap article details", func(t *testing.T) {
		client, _, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/articles/details/9", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"articleDetails":{"id":9,"title":"Proteína vegetal","text":"<p>…</p>"}}`))
		}))
		details, err := client.Articles().Details(context.Background(), "9")
		require.NoError(t, err)
		assert.Equal(t, "Proteína vegetal", details.Title)
	})
}

func TestUserService(t *testing.T) {
	t.Run("Should lowercase the email and return the token on login", func(t *testing.T) {
		token := testToken(t, "membro")
		client, _, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/login", r.URL.Path)
			var body struct {
				Email    string `json:"email"`
				Password string `json:"senha"`
			}
			require.NoError(t, decodeJSONBody(r, &body))
			assert.Equal(t, "ana@example.com", body.Email)
			assert.Equal(t, "s3cret", body.Password)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"token":"` + token + `"}`))
		}))
		got, err := client.Users().Login(context.Background(), "Ana@Example.com", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, token, got)
	})

	t.Run("Should report invalid credentials on a 400", func(t *testing.T) {
		client, _, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		_, err := client.Users().Login(context.Background(), "ana@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Should report an email conflict on registration", func(t *testing.T) {
		client, _, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		err := client.Users().Register(context.Background(), Registration{
			Name: "Ana", Email: "ana@example.com", Password: "s3cret", Type: "membro",
		})
		assert.ErrorIs(t, err, ErrEmailInUse)
	})

	t.Run("Should unwrap the profile record", func(t *testing.T) {
		client, _, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/details/7", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"userData":{"id":7,"name":"Ana","type":"nutricionista","crn":"CRN-3 12345"}}`))
		}))
		details, err := client.Users().Details(context.Background(), "7")
		require.NoError(t, err)
		assert.Equal(t, "Ana", details.Name)
		assert.True(t, details.IsNutritionist())
	})

	t.Run("Should page through published recipes", func(t *testing.T) {
		client, _, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users/7/recipes/published", r.URL.Path)
			assert.Equal(t, "6", r.URL.Query().Get("limit"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"userRecipes":[{"id":1,"title":"Moqueca de banana"}],"totalUserRecipes":13}`))
		}))
		page, err := client.Users().PublishedRecipes(context.Background(), "7", 0, 6)
		require.NoError(t, err)
		assert.Equal(t, 13, page.TotalCount)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Moqueca de banana", page.Items[0].Title)
	})

	t.Run("Should reject an unknown picture kind locally", func(t *testing.T) {
		client, _, _ := testClient(t, http.NotFoundHandler())
		_, err := client.Users().UpdatePicture(context.Background(), "7", "7", "banner", "x.jpg")
		assert.ErrorContains(t, err, "picture kind")
	})
}

func writeTempImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "image.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpegdata"), 0o600))
	return path
}

func decodeJSONBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
