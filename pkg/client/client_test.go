package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "secret123" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid email or password","code":"UNAUTHORIZED"}`))
			return
		}
		_, _ = w.Write([]byte(`{"token":"tok-1","user":{"id":"u1","email":"a@x.com","type":"INDIVIDUAL"}}`))
	})
	mux.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"logged out"}`))
	})
	mux.HandleFunc("/pet", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "u1", r.URL.Query().Get("responsible_id"))
			_, _ = w.Write([]byte(`[{"id":"p1","name":"Rex","responsible_id":"u1"}]`))
		case http.MethodPost:
			if r.Header.Get("Authorization") != "Bearer tok-1" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"Unauthorized","code":"UNAUTHORIZED"}`))
				return
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"p2","name":"Kiwi","responsible_id":"u1"}`))
		}
	})
	mux.HandleFunc("/responsible", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"message":"account deleted"}`))
	})
	mux.HandleFunc("/pet/p1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"you are not allowed to modify this resource","code":"FORBIDDEN"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_LoginStoresToken(t *testing.T) {
	srv := newStubServer(t)
	store := NewMemoryTokenStore()
	c := New(srv.URL+"/", WithTokenStore(store), WithHTTPClient(srv.Client()))
	ctx := context.Background()

	_, err := c.CreatePet(ctx, Pet{Name: "Kiwi"})
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	user, err := c.Login(ctx, "a@x.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	token, ok := store.Get()
	require.True(t, ok)
	assert.Equal(t, "tok-1", token)

	pet, err := c.CreatePet(ctx, Pet{Name: "Kiwi"})
	require.NoError(t, err)
	assert.Equal(t, "u1", pet.ResponsibleID)

	pets, err := c.ListPets(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, pets, 1)

	require.NoError(t, c.Logout(ctx))
	_, ok = store.Get()
	assert.False(t, ok)
}

func TestClient_APIErrors(t *testing.T) {
	srv := newStubServer(t)
	c := New(srv.URL)
	ctx := context.Background()

	_, err := c.Login(ctx, "a@x.com", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "invalid email or password", apiErr.Message)

	c.tokens.Set("tok-1")
	err = c.DeletePet(ctx, "p1")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "FORBIDDEN", apiErr.Code)
}

func TestClient_DeleteAccountForgetsToken(t *testing.T) {
	srv := newStubServer(t)
	store := NewMemoryTokenStore()
	c := New(srv.URL, WithTokenStore(store))
	ctx := context.Background()

	assert.ErrorIs(t, c.DeleteAccount(ctx), ErrNotAuthenticated)

	store.Set("tok-1")
	require.NoError(t, c.DeleteAccount(ctx))
	_, ok := store.Get()
	assert.False(t, ok)
}
