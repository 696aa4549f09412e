package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	doRequest(t, "POST", "/register", "", map[string]interface{}{
		"username": "bob", "password": "secret123", "email": "bob@nsu.edu",
	}, http.StatusCreated)

	// Duplicate username is a conflict.
	doRequest(t, "POST", "/register", "", map[string]interface{}{
		"username": "bob", "password": "secret123", "email": "bob2@nsu.edu",
	}, http.StatusConflict)

	// Wrong password fails without revealing which field was wrong.
	doRequest(t, "POST", "/login", "", map[string]interface{}{
		"username": "bob", "password": "wrong-pass",
	}, http.StatusUnauthorized)

	w := doRequest(t, "POST", "/login", "", map[string]interface{}{
		"username": "bob", "password": "secret123",
	}, http.StatusOK)

	var resp struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "pi", resp.Role)

	var me struct {
		Username string `json:"username"`
	}
	w = doRequest(t, "GET", "/me", resp.Token, nil, http.StatusOK)
	decodeBody(t, w, &me)
	require.Equal(t, "bob", me.Username)
}

func TestRoleGates(t *testing.T) {
	// Unauthenticated requests are rejected outright.
	doRequest(t, "GET", "/me", "", nil, http.StatusUnauthorized)

	// PIs cannot open cycles or assign reviewers.
	doRequest(t, "POST", "/cycles", piToken, map[string]interface{}{
		"name": "x", "year": "2027-28",
		"start_date": "2027-01-01T00:00:00Z", "end_date": "2027-12-31T00:00:00Z",
	}, http.StatusForbidden)
	doRequest(t, "POST", "/assignments", piToken, map[string]interface{}{
		"pid": 1, "uid": 1, "stage": 1, "deadline": "2027-01-01T00:00:00Z",
	}, http.StatusForbidden)

	// Reviewers cannot make decisions.
	doRequest(t, "POST", "/proposals/1/stage1-decision", reviewer1Tok,
		map[string]interface{}{"decision": "ACCEPT"}, http.StatusForbidden)

	// Admin passes every gate.
	doRequest(t, "GET", "/audit", adminToken, nil, http.StatusOK)
}
