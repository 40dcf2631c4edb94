package repositories_test

import (
	"testing"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadRepository_CreateAndList(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := repositories.NewUploadRepository()

	up := &models.Upload{Kind: "company-logo", Path: "company-logos/a.png", URL: "/files/a.png", MimeType: "image/png", Size: 10}
	require.NoError(t, repo.Create(db, up))

	assert.NotEmpty(t, up.ID)

	list, err := repo.ListByKind(db, "company-logo", 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "company-logos/a.png", list[0].Path)

	list, err = repo.ListByKind(db, "profile-picture", 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}
