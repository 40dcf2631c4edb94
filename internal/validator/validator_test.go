package validator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireFields_ReportsExactlyOmittedFields(t *testing.T) {
	v := New()
	required := []string{"name", "issuer", "issueDate", "description", "skills"}

	full := map[string]interface{}{
		"name":        "CKA",
		"issuer":      "CNCF",
		"issueDate":   "2023-05-01",
		"description": "Kubernetes admin",
		"skills":      []interface{}{"k8s"},
	}
	require.NoError(t, v.RequireFields(full, required))

	cases := []struct {
		name    string
		omit    []string
		missing []string
	}{
		{"one", []string{"issuer"}, []string{"issuer"}},
		{"two keep order", []string{"skills", "name"}, []string{"name", "skills"}},
		{"all", required, required},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := make(map[string]interface{}, len(full))
			for k, val := range full {
				data[k] = val
			}
			for _, k := range tc.omit {
				delete(data, k)
			}

			err := v.RequireFields(data, required)

			var missing *MissingFieldsError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tc.missing, missing.Fields)
		})
	}
}

func TestRequireFields_NullAndEmptyStringAreAbsent(t *testing.T) {
	v := New()

	err := v.RequireFields(map[string]interface{}{"name": nil, "category": ""}, []string{"name", "category"})

	var missing *MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"name", "category"}, missing.Fields)
	assert.Equal(t, "Missing required fields: name, category", err.Error())
}

func TestRequireFields_FalseZeroAndEmptyArrayArePresent(t *testing.T) {
	v := New()
	data := map[string]interface{}{
		"flag":  false,
		"count": json.Number("0"),
		"num":   0.0,
		"tags":  []interface{}{},
	}

	assert.NoError(t, v.RequireFields(data, []string{"flag", "count", "num", "tags"}))
}

func TestValidate_StructUsesJSONNames(t *testing.T) {
	type login struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	err := New().Validate(&login{Email: "not-an-email"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"email", "password"}, vErr.Fields())
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
	assert.Equal(t, "This field is required", vErr.Errors["password"])
}
