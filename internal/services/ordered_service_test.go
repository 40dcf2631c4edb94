package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/resource"
	"portfolio_backend/internal/testutil"
	"portfolio_backend/internal/validator"
	"portfolio_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSkillService() OrderedService {
	return NewOrderedService(resource.Skills, repositories.NewOrderedRepository[models.Skill](), validator.New())
}

func newExperienceService() OrderedService {
	return NewOrderedService(resource.Experiences, repositories.NewOrderedRepository[models.Experience](), validator.New())
}

func orderOf(t *testing.T, p resource.Payload) int64 {
	t.Helper()
	n, ok := p["order"].(json.Number)
	require.True(t, ok, "order is %T", p["order"])
	v, err := n.Int64()
	require.NoError(t, err)
	return v
}

func requireAppError(t *testing.T, err error, status int) *apperrors.AppError {
	t.Helper()
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, status, appErr.HTTPCode)
	return appErr
}

func TestOrderedService_CreateAssignsSequentialOrders(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()

	skills := newSkillService()
	for want := int64(0); want < 3; want++ {
		created, err := skills.Create(ctx, db, resource.Payload{"name": "Go", "category": "backend"})
		require.NoError(t, err)
		assert.Equal(t, want, orderOf(t, created))
	}

	experience := newExperienceService()
	for want := int64(1); want <= 3; want++ {
		created, err := experience.Create(ctx, db, resource.Payload{
			"position": "Engineer", "company": "Acme", "startDate": "2020-01",
		})
		require.NoError(t, err)
		assert.Equal(t, want, orderOf(t, created))
	}
}

func TestOrderedService_CreateAfterExistingMax(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	skills := newSkillService()

	_, err := skills.Create(ctx, db, resource.Payload{"name": "Rust", "category": "lang", "order": 3})
	require.NoError(t, err)

	created, err := skills.Create(ctx, db, resource.Payload{"name": "Go", "category": "backend"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), orderOf(t, created))
	assert.Equal(t, "Go", created["name"])
	assert.NotEmpty(t, created["id"])
}

func TestOrderedService_ExplicitZeroOrderIsKept(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	experience := newExperienceService()

	_, err := experience.Create(ctx, db, resource.Payload{
		"position": "Lead", "company": "Acme", "startDate": "2021-01", "order": 5,
	})
	require.NoError(t, err)

	created, err := experience.Create(ctx, db, resource.Payload{
		"position": "Intern", "company": "Acme", "startDate": "2015-06", "order": 0,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), orderOf(t, created))
}

func TestOrderedService_CreateDefaultsAndArrays(t *testing.T) {
	db := testutil.OpenTestDB(t)
	created, err := newExperienceService().Create(context.Background(), db, resource.Payload{
		"position": "Engineer", "company": "Acme", "startDate": "2020-01",
		"skills": []any{"Go", "SQL"},
		"unknownField": "dropped",
		"id": "client-chosen",
	})
	require.NoError(t, err)

	assert.Equal(t, "Full-time", created["employmentType"])
	assert.Equal(t, []any{"Go", "SQL"}, created["skills"])
	assert.Equal(t, []any{}, created["responsibilities"])
	assert.Nil(t, created["endDate"])
	assert.NotContains(t, created, "unknownField")
	assert.NotEqual(t, "client-chosen", created["id"])
}

func TestOrderedService_MissingFieldsAreListedExactly(t *testing.T) {
	db := testutil.OpenTestDB(t)
	certs := NewOrderedService(resource.Certifications, repositories.NewOrderedRepository[models.Certification](), validator.New())

	_, err := certs.Create(context.Background(), db, resource.Payload{
		"name":   "CKA",
		"issuer": "",
		"skills": []any{},
	})
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Equal(t, "Missing required fields: issuer, issueDate, description", appErr.Message)
	assert.Equal(t, map[string]string{
		"issuer":      "This field is required",
		"issueDate":   "This field is required",
		"description": "This field is required",
	}, appErr.Details)

	items, err := certs.List(context.Background(), db)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestOrderedService_MalformedValues(t *testing.T) {
	db := testutil.OpenTestDB(t)
	skills := newSkillService()

	_, err := skills.Create(context.Background(), db, resource.Payload{"name": "Go", "category": "backend", "order": -1})
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Contains(t, appErr.Details, "order")

	_, err = skills.Create(context.Background(), db, resource.Payload{"name": 42, "category": "backend"})
	appErr = requireAppError(t, err, http.StatusBadRequest)
	assert.Contains(t, appErr.Details, "name")
}

func TestOrderedService_UpdateIsFullOverwriteAndKeepsOrder(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	skills := newSkillService()

	created, err := skills.Create(ctx, db, resource.Payload{
		"name": "Go", "category": "backend", "proficiency": "expert", "order": 7,
	})
	require.NoError(t, err)
	id := created["id"].(string)

	updated, err := skills.Update(ctx, db, id, resource.Payload{"name": "Golang", "category": "backend"})
	require.NoError(t, err)
	assert.Equal(t, "Golang", updated["name"])
	assert.Nil(t, updated["proficiency"])
	assert.Equal(t, int64(7), orderOf(t, updated))

	updated, err = skills.Update(ctx, db, id, resource.Payload{"name": "Golang", "category": "backend", "order": 0})
	require.NoError(t, err)
	assert.Equal(t, int64(0), orderOf(t, updated))
}

func TestOrderedService_UpdateValidatesBeforeStore(t *testing.T) {
	db := testutil.OpenTestDB(t)
	_, err := newSkillService().Update(context.Background(), db, "missing", resource.Payload{"name": "Go"})
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Equal(t, "Missing required fields: category", appErr.Message)
}

func TestOrderedService_MissingIDIsNotFound(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	skills := newSkillService()

	_, err := skills.Update(ctx, db, "00000000-0000-0000-0000-000000000000", resource.Payload{"name": "Go", "category": "x"})
	appErr := requireAppError(t, err, http.StatusNotFound)
	assert.Equal(t, "Skill not found", appErr.Message)

	err = skills.Delete(ctx, db, "00000000-0000-0000-0000-000000000000")
	requireAppError(t, err, http.StatusNotFound)
}

func TestOrderedService_DeleteRemovesAndGapsAreSkipped(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	skills := newSkillService()

	var ids []string
	for _, name := range []string{"A", "B", "C"} {
		created, err := skills.Create(ctx, db, resource.Payload{"name": name, "category": "x"})
		require.NoError(t, err)
		ids = append(ids, created["id"].(string))
	}
	require.NoError(t, skills.Delete(ctx, db, ids[1]))

	items, err := skills.List(ctx, db)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "A", items[0]["name"])
	assert.Equal(t, "C", items[1]["name"])
	assert.Equal(t, int64(2), orderOf(t, items[1]))

	created, err := skills.Create(ctx, db, resource.Payload{"name": "D", "category": "x"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), orderOf(t, created))
}

func TestOrderedService_OrderNeverWrapsAtUpperBound(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()
	skills := newSkillService()

	_, err := skills.Create(ctx, db, resource.Payload{"name": "Go", "category": "backend", "order": json.Number("9223372036854775807")})
	appErr := requireAppError(t, err, http.StatusBadRequest)
	assert.Contains(t, appErr.Details, "order")

	top, err := skills.Create(ctx, db, resource.Payload{"name": "Go", "category": "backend", "order": json.Number("2147483647")})
	require.NoError(t, err)
	assert.Equal(t, int64(resource.MaxOrder), orderOf(t, top))

	_, err = skills.Create(ctx, db, resource.Payload{"name": "Rust", "category": "backend"})
	requireAppError(t, err, http.StatusConflict)

	items, err := skills.List(ctx, db)
	require.NoError(t, err)
	require.Len(t, items, 1)
	for _, item := range items {
		assert.GreaterOrEqual(t, orderOf(t, item), int64(0))
	}
}
