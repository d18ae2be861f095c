package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetEndpoints(t *testing.T) {
	router, _ := setupTestAPI(t)
	token := registerAndLogin(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/budgets", gin.H{
		"amount": 150,
		"period": "weekly",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)
	created := decodeBody(t, w)
	assert.Equal(t, true, created["success"])
	id := uint(created["id"].(float64))

	w = doJSON(t, router, http.MethodGet, "/api/budgets", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, 150.0, list[0]["amount"])
	assert.Equal(t, "weekly", list[0]["period"])

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/budgets/%d", id), nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/budgets/%d", id), nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["success"])

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/budgets/%d", id), nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not found", decodeBody(t, w)["error"])
}

func TestCreateBudgetMissingFields(t *testing.T) {
	router, _ := setupTestAPI(t)
	token := registerAndLogin(t, router)

	for _, body := range []gin.H{
		{},
		{"amount": 100},
		{"period": "monthly"},
	} {
		w := doJSON(t, router, http.MethodPost, "/api/budgets", body, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Missing required fields", decodeBody(t, w)["error"])
	}
}

func TestCreateBudgetPeriodUnvalidated(t *testing.T) {
	router, _ := setupTestAPI(t)
	token := registerAndLogin(t, router)

	// Any non-empty period string is accepted as-is
	w := doJSON(t, router, http.MethodPost, "/api/budgets", gin.H{
		"amount": 42,
		"period": "fortnightly-ish",
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)
}
