package api

import (
	"context"
	"crypto/sha256"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yathish26/GrojetDPartner/internal/models"
	"github.com/Yathish26/GrojetDPartner/internal/secure"
	"github.com/Yathish26/GrojetDPartner/internal/session"
)

func newTestSessions(t *testing.T) *session.Store {
	t.Helper()
	key := sha256.Sum256([]byte("api-test-key"))
	secrets, err := secure.NewStoreWithKey(filepath.Join(t.TempDir(), "credentials.yaml"), key[:])
	require.NoError(t, err)
	return session.NewStore(secrets)
}

func newTestClient(t *testing.T, serverURL string) (*Client, *session.Store) {
	t.Helper()
	sessions := newTestSessions(t)
	return NewClient(serverURL, 5*time.Second, sessions), sessions
}

func TestClient_AttachesBearerTokenAndBody(t *testing.T) {

	var gotAuth, gotContentType, gotBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client, sessions := newTestClient(t, server.URL)
	require.True(t, sessions.SetToken("abc"))

	payload := `{"email":"jane@grojet.app","password":"hunter42"}`

	resp, err := client.Request(context.Background(), "/delivery/auth/login", &Options{
		Method: http.MethodPost,
		Body:   payload,
	})
	require.NoError(t, err)

	assert.True(t, resp.OK)
	assert.Equal(t, "Bearer abc", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	// The body goes over the wire byte for byte, never re-serialized
	assert.Equal(t, payload, gotBody)
}

func TestClient_OmitsAuthorizationWithoutToken(t *testing.T) {

	var hadAuthHeader bool

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadAuthHeader = r.Header["Authorization"]
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	_, err := client.Request(context.Background(), "/inventory/all", nil)
	require.NoError(t, err)

	assert.False(t, hadAuthHeader, "no token stored, Authorization must be absent")
}

func TestClient_CallerHeadersWin(t *testing.T) {

	var gotContentType, gotCustom string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotCustom = r.Header.Get("X-Custom")
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	_, err := client.Request(context.Background(), "/inventory/all", &Options{
		Headers: map[string]string{
			"Content-Type": "text/plain",
			"X-Custom":     "yes",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "text/plain", gotContentType)
	assert.Equal(t, "yes", gotCustom)
}

func TestClient_CallerAuthorizationWins(t *testing.T) {

	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client, sessions := newTestClient(t, server.URL)
	require.True(t, sessions.SetToken("stored-token"))

	_, err := client.Request(context.Background(), "/inventory/all", &Options{
		Headers: map[string]string{"Authorization": "Bearer caller-token"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer caller-token", gotAuth)
}

func TestClient_CallerAuthorizationRejectionKeepsSession(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"Bad credentials"}`))
	}))
	defer server.Close()

	client, sessions := newTestClient(t, server.URL)
	require.True(t, sessions.Establish("stored-token", map[string]any{"id": "1"}, models.RoleAgent))

	var callbackCount int
	client.SetOnUnauthorized(func() { callbackCount++ })

	// The server rejected the caller's credentials, not the stored ones
	_, err := client.Request(context.Background(), "/inventory/all", &Options{
		Headers: map[string]string{"Authorization": "Bearer caller-token"},
	})
	require.NoError(t, err)

	assert.True(t, sessions.IsAuthenticated())
	assert.Equal(t, "stored-token", sessions.Token())
	assert.Zero(t, callbackCount)
}

func TestClient_MethodDefaultsToGet(t *testing.T) {

	var gotMethod string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	_, err := client.Request(context.Background(), "/inventory/all", nil)
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, gotMethod)
}

func TestClient_RejectsUnsupportedMethod(t *testing.T) {
	client, _ := newTestClient(t, "http://localhost:1")

	_, err := client.Request(context.Background(), "/inventory/all", &Options{Method: "PATCH"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNetworkUnavailable)
}

func TestClient_NetworkFailure(t *testing.T) {
	// Nothing listens here
	client, _ := newTestClient(t, "http://127.0.0.1:1")

	resp, err := client.Request(context.Background(), "/inventory/all", nil)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrNetworkUnavailable)
}

func TestClient_TimeoutIsNetworkFailure(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	sessions := newTestSessions(t)
	client := NewClient(server.URL, 50*time.Millisecond, sessions)

	_, err := client.Request(context.Background(), "/inventory/all", nil)
	assert.ErrorIs(t, err, ErrNetworkUnavailable)
}

func TestClient_ErrorStatusStillParses(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"Invalid password"}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	resp, err := client.Request(context.Background(), "/delivery/auth/login", &Options{Method: http.MethodPost})
	require.NoError(t, err)

	assert.False(t, resp.OK)
	assert.Equal(t, http.StatusUnauthorized, resp.Status)
	assert.False(t, resp.Success())
	assert.Equal(t, "Invalid password", resp.Message())
}

func TestClient_GarbageErrorBodySubstitutesMessage(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	resp, err := client.Request(context.Background(), "/inventory/all", nil)
	require.NoError(t, err)

	assert.False(t, resp.OK)
	assert.Equal(t, http.StatusBadGateway, resp.Status)
	assert.Equal(t, "Server error occurred", resp.Message())
}

func TestClient_MalformedSuccessBody(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	resp, err := client.Request(context.Background(), "/inventory/all", nil)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.NotErrorIs(t, err, ErrNetworkUnavailable)
}

func TestClient_UnauthorizedClearsSession(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"Token expired"}`))
	}))
	defer server.Close()

	client, sessions := newTestClient(t, server.URL)
	require.True(t, sessions.Establish("stale", map[string]any{"id": "1"}, models.RoleAgent))

	var callbackCount int
	client.SetOnUnauthorized(func() { callbackCount++ })

	resp, err := client.Request(context.Background(), "/delivery/auth/profile", nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.Status)
	assert.False(t, sessions.IsAuthenticated())
	assert.Empty(t, sessions.Token())
	assert.Equal(t, 1, callbackCount)
}

func TestClient_UnauthorizedWithoutTokenLeavesSessionAlone(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"Invalid password"}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	var callbackCount int
	client.SetOnUnauthorized(func() { callbackCount++ })

	// A failed login attempt carries no token; it is not a session expiry
	_, err := client.Request(context.Background(), "/delivery/auth/login", &Options{Method: http.MethodPost})
	require.NoError(t, err)
	assert.Zero(t, callbackCount)
}

func TestClient_LoginFlow(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"token":"abc","agent":{"id":"1","name":"Jane"}}`))
	}))
	defer server.Close()

	client, sessions := newTestClient(t, server.URL)

	resp, err := client.Request(context.Background(), EndpointDeliveryLogin, &Options{
		Method: http.MethodPost,
		Body:   `{"email":"jane@grojet.app","password":"hunter42"}`,
	})
	require.NoError(t, err)
	require.True(t, resp.OK)
	require.True(t, resp.Success())

	token, _ := resp.Body["token"].(string)
	profile, _ := resp.Body["agent"].(map[string]any)
	require.True(t, sessions.Establish(token, profile, models.RoleAgent))

	assert.Equal(t, "abc", sessions.Token())
	require.NotNil(t, sessions.AgentInfo())
	assert.Equal(t, "Jane", sessions.AgentInfo().Name)
	assert.True(t, sessions.IsAuthenticated())
}

func TestClient_StatusToggleFlow(t *testing.T) {

	responses := []string{
		`{"success":true,"isOnline":true}`,
		`{"success":false,"message":"Zone unavailable"}`,
	}
	var call int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(responses[call]))
		call++
	}))
	defer server.Close()

	client, sessions := newTestClient(t, server.URL)
	require.True(t, sessions.Establish("abc", map[string]any{"id": "1"}, models.RoleAgent))

	// First toggle succeeds; the caller's flag follows the response
	online := false
	resp, err := client.Request(context.Background(), EndpointDeliveryStatusToggle, &Options{Method: http.MethodPost})
	require.NoError(t, err)
	if resp.OK && resp.Success() {
		online, _ = resp.Body["isOnline"].(bool)
	}
	assert.True(t, online)

	// Second toggle fails; the caller's flag stays where it was
	resp, err = client.Request(context.Background(), EndpointDeliveryStatusToggle, &Options{Method: http.MethodPost})
	require.NoError(t, err)
	if resp.OK && resp.Success() {
		online, _ = resp.Body["isOnline"].(bool)
	}
	assert.True(t, online)
	assert.Equal(t, "Zone unavailable", resp.Message())
}
