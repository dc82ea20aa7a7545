package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, nil)

	body, _ := json.Marshal(map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "password123",
	})
	w := performRequest(r, "POST", "/api/auth/register", bytes.NewReader(body), "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice", resp.User.Username)
	assert.NotContains(t, w.Body.String(), "password123")

	body, _ = json.Marshal(map[string]string{
		"username": "alice",
		"password": "password123",
	})
	w = performRequest(r, "POST", "/api/auth/login", bytes.NewReader(body), "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	// The issued token is accepted by the auth middleware.
	postBody, _ := json.Marshal(map[string]string{"videoUrl": "http://cdn/v.mp4"})
	w = performRequest(r, "POST", "/api/posts", bytes.NewReader(postBody), resp.Token)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, nil)

	body, _ := json.Marshal(map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "password123",
	})
	w := performRequest(r, "POST", "/api/auth/register", bytes.NewReader(body), "")
	require.Equal(t, http.StatusCreated, w.Code)

	body, _ = json.Marshal(map[string]string{
		"username": "alice",
		"email":    "other@example.com",
		"password": "password123",
	})
	w = performRequest(r, "POST", "/api/auth/register", bytes.NewReader(body), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestRegisterValidation(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, nil)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing username", map[string]string{"email": "a@example.com", "password": "password123"}},
		{"bad email", map[string]string{"username": "alice", "email": "nope", "password": "password123"}},
		{"short password", map[string]string{"username": "alice", "email": "a@example.com", "password": "123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.body)
			w := performRequest(r, "POST", "/api/auth/register", bytes.NewReader(body), "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, nil)

	body, _ := json.Marshal(map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "password123",
	})
	w := performRequest(r, "POST", "/api/auth/register", bytes.NewReader(body), "")
	require.Equal(t, http.StatusCreated, w.Code)

	body, _ = json.Marshal(map[string]string{
		"username": "alice",
		"password": "wrong-password",
	})
	w = performRequest(r, "POST", "/api/auth/login", bytes.NewReader(body), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}
