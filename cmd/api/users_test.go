package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateUserIsIdempotent(t *testing.T) {
	app, repos := newTestApplication(t)
	mux := app.mount()

	body := []byte(`{"email":"a@x.com","name":"Ayesha"}`)

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	rr := executeRequest(req, mux)
	require.Equal(t, http.StatusCreated, rr.Code)

	var first map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &first))
	assert.NotEmpty(t, first["insertedId"])

	// second call with the same email is a no-op
	req = httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	rr = executeRequest(req, mux)
	require.Equal(t, http.StatusOK, rr.Code)

	var second map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &second))
	assert.Contains(t, second, "insertId")
	assert.Nil(t, second["insertId"])

	assert.Len(t, repos.users.users, 1)
}

func TestCreateUserRequiresEmail(t *testing.T) {
	app, _ := newTestApplication(t)
	mux := app.mount()

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader([]byte(`{"name":"no email"}`)))
	rr := executeRequest(req, mux)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetUsersAsAdmin(t *testing.T) {
	app, repos := newTestApplication(t)
	mux := app.mount()

	seedUser(t, repos, "boss@x.com", "admin")
	seedUser(t, repos, "plain@x.com", "default")
	token := testToken(t, app, "boss@x.com")

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := executeRequest(req, mux)

	require.Equal(t, http.StatusOK, rr.Code)

	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
	assert.Len(t, users, 2)
}

func TestGetAdminStatusSelfOnly(t *testing.T) {
	app, repos := newTestApplication(t)
	mux := app.mount()

	seedUser(t, repos, "boss@x.com", "admin")
	token := testToken(t, app, "boss@x.com")

	// asking about someone else is forbidden regardless of role
	req := httptest.NewRequest(http.MethodGet, "/users/admin/other@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := executeRequest(req, mux)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	// asking about yourself reports the flag
	req = httptest.NewRequest(http.MethodGet, "/users/admin/boss@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = executeRequest(req, mux)
	require.Equal(t, http.StatusOK, rr.Code)

	var response map[string]bool
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.True(t, response["admin"])
}

func TestGetAdminStatusForNonAdminSelf(t *testing.T) {
	app, repos := newTestApplication(t)
	mux := app.mount()

	seedUser(t, repos, "plain@x.com", "default")
	token := testToken(t, app, "plain@x.com")

	req := httptest.NewRequest(http.MethodGet, "/users/admin/plain@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := executeRequest(req, mux)
	require.Equal(t, http.StatusOK, rr.Code)

	var response map[string]bool
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.False(t, response["admin"])
}

func TestPromoteUserGrantsAccessWithExistingToken(t *testing.T) {
	app, repos := newTestApplication(t)
	mux := app.mount()

	seedUser(t, repos, "boss@x.com", "admin")
	plain := seedUser(t, repos, "plain@x.com", "default")

	bossToken := testToken(t, app, "boss@x.com")
	// issued while plain is still a non-admin
	plainToken := testToken(t, app, "plain@x.com")

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+plainToken)
	rr := executeRequest(req, mux)
	require.Equal(t, http.StatusForbidden, rr.Code)

	req = httptest.NewRequest(http.MethodPatch, "/users/admin/"+plain.ID.Hex(), nil)
	req.Header.Set("Authorization", "Bearer "+bossToken)
	rr = executeRequest(req, mux)
	require.Equal(t, http.StatusOK, rr.Code)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.EqualValues(t, 1, result["matchedCount"])
	assert.EqualValues(t, 1, result["modifiedCount"])

	// role is re-read per request, so the old token now passes
	req = httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+plainToken)
	rr = executeRequest(req, mux)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestPromoteUnknownUserReturnsNotFound(t *testing.T) {
	app, repos := newTestApplication(t)
	mux := app.mount()

	seedUser(t, repos, "boss@x.com", "admin")
	token := testToken(t, app, "boss@x.com")

	req := httptest.NewRequest(http.MethodPatch, "/users/admin/"+primitive.NewObjectID().Hex(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := executeRequest(req, mux)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestPromoteMalformedIDReturnsBadRequest(t *testing.T) {
	app, repos := newTestApplication(t)
	mux := app.mount()

	seedUser(t, repos, "boss@x.com", "admin")
	token := testToken(t, app, "boss@x.com")

	req := httptest.NewRequest(http.MethodPatch, "/users/admin/not-a-hex-id", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := executeRequest(req, mux)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteUser(t *testing.T) {
	app, repos := newTestApplication(t)
	mux := app.mount()

	seedUser(t, repos, "boss@x.com", "admin")
	plain := seedUser(t, repos, "plain@x.com", "default")
	token := testToken(t, app, "boss@x.com")

	req := httptest.NewRequest(http.MethodDelete, "/users/"+plain.ID.Hex(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := executeRequest(req, mux)
	require.Equal(t, http.StatusOK, rr.Code)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.EqualValues(t, 1, result["deletedCount"])

	// a repeat delete reports not found
	req = httptest.NewRequest(http.MethodDelete, "/users/"+plain.ID.Hex(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = executeRequest(req, mux)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteUserWritesAudit(t *testing.T) {
	app, repos := newTestApplication(t)
	mux := app.mount()

	seedUser(t, repos, "boss@x.com", "admin")
	plain := seedUser(t, repos, "plain@x.com", "default")
	token := testToken(t, app, "boss@x.com")

	req := httptest.NewRequest(http.MethodDelete, "/users/"+plain.ID.Hex(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	executeRequest(req, mux)

	require.Len(t, repos.audits.audits, 1)
	assert.Equal(t, "boss@x.com", repos.audits.audits[0].ChangedBy)
	assert.Equal(t, "plain@x.com", repos.audits.audits[0].Email)
}
