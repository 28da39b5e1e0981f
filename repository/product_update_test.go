package repository

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Galang0304/kasir-pos-capstone/apperr"
	"github.com/Galang0304/kasir-pos-capstone/models"
)

func parseProductUpdate(t *testing.T, body string) models.ProductUpdate {
	t.Helper()
	var in models.ProductUpdate
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	return in
}

func TestProductUpdateSetNameOnlyLeavesStockAlone(t *testing.T) {
	in := parseProductUpdate(t, `{"name":"Renamed"}`)

	set, err := productUpdateSet(in)
	require.NoError(t, err)

	assert.Equal(t, "Renamed", set["name"])
	assert.NotContains(t, set, "stock")
	assert.NotContains(t, set, "min_stock")
	assert.NotContains(t, set, "price")
	assert.NotContains(t, set, "sku")
	assert.NotContains(t, set, "category_id")
}

func TestProductUpdateSetExplicitZeroes(t *testing.T) {
	// An explicit zero is a real value, not an omission.
	in := parseProductUpdate(t, `{"price":0,"stock":0}`)

	set, err := productUpdateSet(in)
	require.NoError(t, err)

	assert.Equal(t, 0.0, set["price"])
	assert.Equal(t, 0, set["stock"])
	assert.NotContains(t, set, "min_stock")
}

func TestProductUpdateSetRejectsNegatives(t *testing.T) {
	for _, body := range []string{
		`{"price":-1}`,
		`{"stock":-1}`,
		`{"min_stock":-1}`,
	} {
		_, err := productUpdateSet(parseProductUpdate(t, body))
		assert.True(t, apperr.IsValidation(err), "payload %s", body)
	}
}

func TestProductUpdateSetRejectsEmptyStrings(t *testing.T) {
	for _, body := range []string{
		`{"name":""}`,
		`{"sku":""}`,
	} {
		_, err := productUpdateSet(parseProductUpdate(t, body))
		assert.True(t, apperr.IsValidation(err), "payload %s", body)
	}
}

func TestProductUpdateSetRejectsEmptyPayload(t *testing.T) {
	_, err := productUpdateSet(models.ProductUpdate{})
	assert.True(t, apperr.IsValidation(err))
}
