package cmd

import (
	"context"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriveg/nutriveg-cli/cli/api"
	"github.com/nutriveg/nutriveg-cli/cli/listing"
)

func TestCategorizeError(t *testing.T) {
	t.Run("Should pass through nil", func(t *testing.T) {
		assert.Nil(t, categorizeError(nil))
	})

	t.Run("Should map context cancellation", func(t *testing.T) {
		cliErr := categorizeError(context.Canceled)
		require.NotNil(t, cliErr)
		assert.Equal(t, "OPERATION_CANCELED", cliErr.Code)
	})

	t.Run("Should surface the validation message verbatim", func(t *testing.T) {
		err := &listing.ValidationError{Message: listing.MsgEmptySearchTerm}
		cliErr := categorizeError(err)
		require.NotNil(t, cliErr)
		assert.Equal(t, "VALIDATION_ERROR", cliErr.Code)
		assert.Equal(t, "Insira um termo para realizar a pesquisa", cliErr.Message)
	})

	t.Run("Should map wrapped session expiry", func(t *testing.T) {
		err := fmt.Errorf("failed to list recipes: %w", api.ErrSessionExpired)
		cliErr := categorizeError(err)
		require.NotNil(t, cliErr)
		assert.Equal(t, "SESSION_EXPIRED", cliErr.Code)
	})

	t.Run("Should map ownership denial", func(t *testing.T) {
		cliErr := categorizeError(api.ErrNotOwner)
		require.NotNil(t, cliErr)
		assert.Equal(t, "NOT_OWNER", cliErr.Code)
	})

	t.Run("Should map duplicate rating", func(t *testing.T) {
		cliErr := categorizeError(api.ErrAlreadyRated)
		require.NotNil(t, cliErr)
		assert.Equal(t, "ALREADY_RATED", cliErr.Code)
	})

	t.Run("Should map login rejection", func(t *testing.T) {
		cliErr := categorizeError(api.ErrInvalidCredentials)
		require.NotNil(t, cliErr)
		assert.Equal(t, "INVALID_CREDENTIALS", cliErr.Code)
	})

	t.Run("Should leave unknown errors untouched", func(t *testing.T) {
		assert.Nil(t, categorizeError(fmt.Errorf("boom")))
	})
}

func TestValidateRequiredFlags(t *testing.T) {
	newCmd := func() *cobra.Command {
		c := &cobra.Command{Use: "test"}
		c.Flags().String("title", "", "")
		return c
	}

	t.Run("Should reject a missing flag", func(t *testing.T) {
		err := ValidateRequiredFlags(newCmd(), []string{"title"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MISSING_FLAG")
	})

	t.Run("Should reject an empty flag value", func(t *testing.T) {
		c := newCmd()
		require.NoError(t, c.Flags().Set("title", ""))
		// Changed is only true after an explicit Set
		err := ValidateRequiredFlags(c, []string{"title"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "EMPTY_FLAG")
	})

	t.Run("Should accept a provided flag", func(t *testing.T) {
		c := newCmd()
		require.NoError(t, c.Flags().Set("title", "Feijoada"))
		assert.NoError(t, ValidateRequiredFlags(c, []string{"title"}))
	})
}

func TestListModeFromFlags(t *testing.T) {
	newCmd := func() *cobra.Command {
		c := &cobra.Command{Use: "test"}
		AddListFlags(c)
		return c
	}

	t.Run("Should default to plain listing", func(t *testing.T) {
		mode, err := ListModeFromFlags(newCmd(), nil)
		require.NoError(t, err)
		assert.IsType(t, listing.List{}, mode)
	})

	t.Run("Should prefer search over sort", func(t *testing.T) {
		c := newCmd()
		require.NoError(t, c.Flags().Set("search", "quinoa"))
		require.NoError(t, c.Flags().Set("sort", "recent"))
		mode, err := ListModeFromFlags(c, nil)
		require.NoError(t, err)
		search, ok := mode.(listing.Search)
		require.True(t, ok)
		assert.Equal(t, "quinoa", search.Term)
	})

	t.Run("Should build a filter mode from facets", func(t *testing.T) {
		facets := listing.Facets{"alimentacao": {"vegano"}}
		mode, err := ListModeFromFlags(newCmd(), facets)
		require.NoError(t, err)
		filter, ok := mode.(listing.Filter)
		require.True(t, ok)
		assert.Equal(t, facets, filter.Facets)
	})
}
