// Copyright (c) 2024-2025 Barberdesk Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRequest captures what the server saw for assertions.
type recordedRequest struct {
	Method string
	Path   string
	Auth   string
	Body   []byte
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *[]recordedRequest) {
	t.Helper()

	var seen []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))
		seen = append(seen, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Auth:   r.Header.Get("Authorization"),
			Body:   body,
		})
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	return NewClient(server.URL, nil).WithMaxRetries(1), &seen
}

func TestCreateSession(t *testing.T) {
	client, seen := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"token": "token-123",
			"user": {"id": "user123", "name": "John Doe", "email": "johndoe@example.com"}
		}`))
	})

	creds, err := client.CreateSession(context.Background(), "johndoe@example.com", "123456")
	require.NoError(t, err)

	assert.Equal(t, "token-123", creds.Token)
	assert.Equal(t, "johndoe@example.com", creds.User.Email)

	require.Len(t, *seen, 1)
	req := (*seen)[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/sessions", req.Path)
	assert.Empty(t, req.Auth, "sign-in must not carry a stale credential")

	var body map[string]string
	require.NoError(t, json.Unmarshal(req.Body, &body))
	assert.Equal(t, "johndoe@example.com", body["email"])
	assert.Equal(t, "123456", body["password"])
}

func TestCreateSession_Rejected(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.CreateSession(context.Background(), "johndoe@example.com", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestBearerTokenAppliedToSubsequentRequests(t *testing.T) {
	client, seen := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	client.SetToken("token-123")
	require.NoError(t, client.ForgotPassword(context.Background(), "johndoe@example.com"))

	require.Len(t, *seen, 1)
	assert.Equal(t, "Bearer token-123", (*seen)[0].Auth)

	client.ClearToken()
	require.NoError(t, client.ForgotPassword(context.Background(), "johndoe@example.com"))
	assert.Empty(t, (*seen)[1].Auth)
}

func TestUpdateProfile_OmitsPasswordFieldsWhenEmpty(t *testing.T) {
	client, seen := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "user123", "name": "Jane Doe", "email": "janedoe@example.com"}`))
	})

	user, err := client.UpdateProfile(context.Background(), ProfileUpdate{
		Name:  "Jane Doe",
		Email: "janedoe@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", user.Name)

	require.Len(t, *seen, 1)
	req := (*seen)[0]
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/profile", req.Path)

	// A name/email-only edit must not mention passwords at all.
	body := string(req.Body)
	assert.NotContains(t, body, "old_password")
	assert.NotContains(t, body, "password")
}

func TestUpdateProfile_IncludesPasswordFieldsWhenChanging(t *testing.T) {
	client, seen := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "user123"}`))
	})

	_, err := client.UpdateProfile(context.Background(), ProfileUpdate{
		Name:                 "Jane Doe",
		Email:                "janedoe@example.com",
		OldPassword:          "old-secret",
		Password:             "new-secret",
		PasswordConfirmation: "new-secret",
	})
	require.NoError(t, err)

	var body map[string]string
	require.NoError(t, json.Unmarshal((*seen)[0].Body, &body))
	assert.Equal(t, "old-secret", body["old_password"])
	assert.Equal(t, "new-secret", body["password"])
	assert.Equal(t, "new-secret", body["password_confirmation"])
}

func TestResetPassword_SendsToken(t *testing.T) {
	client, seen := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.ResetPassword(context.Background(), "new-secret", "new-secret", "reset-token-1")
	require.NoError(t, err)

	var body map[string]string
	require.NoError(t, json.Unmarshal((*seen)[0].Body, &body))
	assert.Equal(t, "reset-token-1", body["token"])
	assert.Equal(t, "/password/reset", (*seen)[0].Path)
}

func TestUpdateAvatar_MultipartField(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("avatar")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "avatar.png", header.Filename)
		data, _ := io.ReadAll(file)
		assert.Equal(t, "image-bytes", string(data))

		w.Write([]byte(`{"id": "user123", "avatar_url": "https://cdn.example.com/avatar.png"}`))
	})

	user, err := client.UpdateAvatar(context.Background(), "avatar.png", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/avatar.png", user.AvatarURL)
}

func TestAPIError_Message(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "email already in use"}`))
	})

	err := client.CreateUser(context.Background(), "John", "johndoe@example.com", "123456")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "email already in use", apiErr.Message)
}

func TestServerErrorRetriesThenFails(t *testing.T) {
	attempts := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	})
	client.WithMaxRetries(2)

	err := client.ForgotPassword(context.Background(), "johndoe@example.com")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, 2, attempts)
}
