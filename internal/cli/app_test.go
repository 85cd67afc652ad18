package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
	"github.com/talentbridge/recruitment-client/internal/infrastructure/config"
)

func studentToken(t *testing.T) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":    "ana@campus.edu",
		"userId": 7,
		"role":   "STUDENT",
		"exp":    time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return signed
}

func wiredConfig(baseURL string) *config.Config {
	return &config.Config{
		LogLevel: "debug",
		API: config.APIConfig{
			BaseURL:            baseURL,
			Timeout:            5 * time.Second,
			AuthPrefix:         "/api/auth",
			JobsPrefix:         "/joboffers",
			ApplicationsPrefix: "/api/applications",
			StudentsPrefix:     "/students",
			FilesPrefix:        "/api/files",
			AIPrefix:           "/ai",
		},
		Token: config.TokenConfig{Store: config.StoreMemory, Key: "token"},
	}
}

func TestWire_UnauthorizedFromAnyEndpointExpiresSession(t *testing.T) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	token := studentToken(t)

	var (
		mu          sync.Mutex
		authHeaders []string
	)
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": token, "userId": 7, "email": "ana@campus.edu", "role": "STUDENT",
		})
	})
	mux.HandleFunc("/joboffers", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		authHeaders = append(authHeaders, r.Header.Get("Authorization"))
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	var logs bytes.Buffer
	ctx := context.Background()
	app, err := Wire(ctx, wiredConfig(srv.URL), zerolog.New(&logs).Level(zerolog.DebugLevel))
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close(ctx) })

	res := app.Sessions.Login(ctx, "ana@campus.edu", "secret")
	require.True(t, res.Success, res.Message)
	require.Equal(t, domain.StateAuthenticated, app.Sessions.Snapshot().State)

	_, err = app.Students.Jobs(ctx, "", "")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	snap := app.Sessions.Snapshot()
	assert.Equal(t, domain.StateExpired, snap.State)
	assert.False(t, snap.IsAuthenticated)
	assert.Nil(t, snap.Identity)
	assert.Nil(t, app.Sessions.CurrentIdentity())
	assert.Contains(t, logs.String(), `"path":"/login"`)

	// The stored token is gone: the next request is anonymous and a
	// re-check keeps the session expired.
	_, err = app.Students.Jobs(ctx, "", "")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, domain.StateExpired, app.Sessions.Check(ctx).State)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"Bearer " + token, ""}, authHeaders)
}

func TestWire_RejectsUnknownTokenStore(t *testing.T) {
	cfg := wiredConfig("http://localhost:1")
	cfg.Token.Store = "keychain"

	_, err := Wire(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
}
