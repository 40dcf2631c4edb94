package services

import (
	"context"
	"testing"

	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/config"
	"portfolio_backend/internal/resource"
	"portfolio_backend/internal/testutil"
	"portfolio_backend/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContainer(t *testing.T) *ServiceContainer {
	t.Helper()
	cfg := &config.Config{}
	return NewServiceContainer(cfg, nil, auth.NewTokenManager(config.JWTConfig{Secret: "test"}), validator.New())
}

func TestPortfolioService_CollectsAllSections(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	c := newContainer(t)

	_, err := c.Skills.Create(ctx, db, resource.Payload{"name": "Go", "category": "backend"})
	require.NoError(t, err)
	_, err = c.SocialLinks.Create(ctx, db, resource.Payload{"name": "GitHub", "icon": "github", "url": "https://github.com/me"})
	require.NoError(t, err)
	_, err = c.PersonalInfoService.Update(ctx, db, resource.Payload{
		"greeting": "Hi", "position": "Engineer", "aboutMe": "I build things",
	})
	require.NoError(t, err)

	view, err := c.PortfolioService.Get(ctx, db)
	require.NoError(t, err)

	assert.Equal(t, "Engineer", view.PersonalInfo["position"])
	assert.Len(t, view.Skills, 1)
	assert.Len(t, view.SocialLinks, 1)
	assert.NotNil(t, view.Projects)
	assert.Empty(t, view.Projects)
	assert.Empty(t, view.Experiences)
	assert.Empty(t, view.Educations)
	assert.Empty(t, view.Certifications)
}

func TestPersonalInfoService_SingleRow(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	c := newContainer(t)

	info, err := c.PersonalInfoService.Get(ctx, db)
	require.NoError(t, err)
	id := info["id"]

	_, err = c.PersonalInfoService.Update(ctx, db, resource.Payload{"greeting": "Hi"})
	appErr := requireAppError(t, err, 400)
	assert.Equal(t, "Missing required fields: position, aboutMe", appErr.Message)

	updated, err := c.PersonalInfoService.Update(ctx, db, resource.Payload{
		"greeting": "Hello", "position": "Engineer", "aboutMe": "About", "profilePicture": "/files/p.png",
	})
	require.NoError(t, err)
	assert.Equal(t, id, updated["id"])
	assert.Equal(t, "/files/p.png", updated["profilePicture"])

	updated, err = c.PersonalInfoService.Update(ctx, db, resource.Payload{
		"greeting": "Hello", "position": "Engineer", "aboutMe": "About",
	})
	require.NoError(t, err)
	assert.Nil(t, updated["profilePicture"])

	var count int64
	require.NoError(t, db.Table("portfolio_config").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
