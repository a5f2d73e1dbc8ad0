package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethos-training/ethos/pkg/client"
)

func writeEnvelope(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": status < 400,
		"data":    data,
	})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   map[string]string{"code": code, "message": message},
	})
}

func TestClient_LoginStoresToken(t *testing.T) {
	var sawAuthHeader string
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "jane.doe@epa.gov", body.Email)
		writeEnvelope(w, http.StatusOK, map[string]interface{}{
			"token":     "issued-token",
			"expiresIn": 86400,
			"user":      map[string]interface{}{"id": 5, "email": body.Email},
		})
	})
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		sawAuthHeader = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, map[string]interface{}{"id": 5, "email": "jane.doe@epa.gov"})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	c := client.New(server.URL)
	resp, err := c.Login(context.Background(), "jane.doe@epa.gov", "Sup3rSecret!")
	require.NoError(t, err)
	assert.Equal(t, "issued-token", resp.Token)
	assert.Equal(t, "issued-token", c.Tokens().Token())

	user, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), user.ID)
	assert.Equal(t, "Bearer issued-token", sawAuthHeader)
}

func TestClient_UnauthorizedClearsToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusUnauthorized, "AUTH_005", "Authentication failed")
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	store := client.NewMemoryTokenStore()
	store.SetToken("stale-token")
	c := client.New(server.URL, client.WithTokenStore(store))

	_, err := c.Me(context.Background())
	require.Error(t, err)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "AUTH_005", apiErr.Code)

	// The 401 invalidated the stored token.
	assert.Empty(t, store.Token())
}

func TestClient_APIErrorFromEnvelope(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/modules/unknown", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "RES_001", "Module not found")
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	c := client.New(server.URL)
	_, err := c.GetModule(context.Background(), "unknown")

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "RES_001", apiErr.Code)
	assert.Equal(t, "Module not found", apiErr.Message)
}

func TestClient_SubmitQuiz(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/modules/m-1/quiz/submit", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body struct {
			Answers []client.QuizAnswer `json:"answers"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Answers, 1)
		writeEnvelope(w, http.StatusOK, map[string]interface{}{
			"score":       7,
			"totalPoints": 10,
			"percentage":  70.0,
			"passed":      true,
		})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	c := client.New(server.URL)
	result, err := c.SubmitQuiz(context.Background(), "m-1", []client.QuizAnswer{
		{QuestionID: "q-1", SelectedOption: 2},
	})
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Equal(t, 7, result.Score)
}
