package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/matchrimoney/internal/apperrors"
	"github.com/sbilibin2017/matchrimoney/internal/config"
	"github.com/sbilibin2017/matchrimoney/internal/handlers"
	"github.com/sbilibin2017/matchrimoney/internal/jwt"
	"github.com/sbilibin2017/matchrimoney/internal/models"
	"github.com/sbilibin2017/matchrimoney/internal/services"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	assert.Equal(t, "Starting service version v1.0.0, commit abcd1234, build 2026-09-26\n", buf.String())
}

func TestNewPictureStorage_Local(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	cfg := &config.Config{
		StorageDriver:    config.StorageLocal,
		StorageLocalDir:  dir,
		StoragePublicURL: "http://localhost:8080/uploads",
	}

	storage, uploadsDir, err := newPictureStorage(context.Background(), cfg)
	require.NoError(t, err)
	assert.NotNil(t, storage)
	assert.Equal(t, dir, uploadsDir)
	assert.DirExists(t, dir)
}

type testRouter struct {
	handler  http.Handler
	db       sqlmock.Sqlmock
	auth     *handlers.MockAuthenticator
	profiles *handlers.MockProfileManager
	matches  *handlers.MockMatchManager
	messages *handlers.MockMessenger
	tokens   *jwt.JWT
	uploads  string
}

func newTestRouter(t *testing.T) *testRouter {
	t.Helper()
	ctrl := gomock.NewController(t)

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	tr := &testRouter{
		db:       mock,
		auth:     handlers.NewMockAuthenticator(ctrl),
		profiles: handlers.NewMockProfileManager(ctrl),
		matches:  handlers.NewMockMatchManager(ctrl),
		messages: handlers.NewMockMessenger(ctrl),
		tokens:   jwt.New(jwt.WithSecretKey("testsecret")),
		uploads:  t.TempDir(),
	}
	tr.handler = newRouter(routerDeps{
		db:          sqlx.NewDb(sqlDB, "sqlmock"),
		tokener:     tr.tokens,
		auth:        tr.auth,
		profiles:    tr.profiles,
		matches:     tr.matches,
		messages:    tr.messages,
		registry:    prometheus.NewRegistry(),
		corsOrigins: []string{"http://localhost:3000"},
		uploadsDir:  tr.uploads,
	})
	return tr
}

func (tr *testRouter) do(t *testing.T, req *http.Request, userID uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()
	if userID != uuid.Nil {
		token, err := tr.tokens.Generate(context.Background(), userID)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	tr.handler.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	tr := newTestRouter(t)
	tr.db.ExpectPing()

	w := tr.do(t, httptest.NewRequest(http.MethodGet, "/health", nil), uuid.Nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.NoError(t, tr.db.ExpectationsWereMet())
}

func TestRouter_PublicAuthRoute(t *testing.T) {
	tr := newTestRouter(t)
	tr.auth.EXPECT().Login(gomock.Any(), "jane@example.com", "secret123").
		Return(&services.AuthResult{Token: "t", User: &models.UserDB{}}, nil)

	body := bytes.NewBufferString(`{"email":"jane@example.com","password":"secret123"}`)
	w := tr.do(t, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body), uuid.Nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	tr := newTestRouter(t)

	for _, target := range []string{"/api/v1/matches", "/api/v1/users/profile", "/api/v1/messages/unread-count"} {
		w := tr.do(t, httptest.NewRequest(http.MethodGet, target, nil), uuid.Nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, target)
		assert.Contains(t, w.Body.String(), "AUTHENTICATION_ERROR", target)
	}
}

func TestRouter_StaticUserRoutesWinOverID(t *testing.T) {
	tr := newTestRouter(t)
	userID := uuid.New()
	tr.profiles.EXPECT().GetProfile(gomock.Any(), userID).Return(&models.UserDB{UserID: userID}, nil)

	w := tr.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/users/profile", nil), userID)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_CreateMatchCommits(t *testing.T) {
	tr := newTestRouter(t)
	userID, receiverID := uuid.New(), uuid.New()

	tr.db.ExpectBegin()
	tr.db.ExpectCommit()
	tr.matches.EXPECT().Create(gomock.Any(), userID, receiverID, "hello").
		Return(&models.MatchView{MatchDB: &models.MatchDB{MatchID: uuid.New(), Status: models.MatchStatusPending}}, nil)

	body := bytes.NewBufferString(fmt.Sprintf(`{"receiver_id":%q,"message":"hello"}`, receiverID))
	w := tr.do(t, httptest.NewRequest(http.MethodPost, "/api/v1/matches", body), userID)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, tr.db.ExpectationsWereMet())
}

func TestRouter_RespondConflictRollsBack(t *testing.T) {
	tr := newTestRouter(t)
	userID, matchID := uuid.New(), uuid.New()

	tr.db.ExpectBegin()
	tr.db.ExpectRollback()
	tr.matches.EXPECT().Respond(gomock.Any(), matchID, userID, "accept").
		Return(nil, apperrors.Conflict("match is no longer pending"))

	body := bytes.NewBufferString(`{"action":"accept"}`)
	w := tr.do(t, httptest.NewRequest(http.MethodPut, "/api/v1/matches/"+matchID.String()+"/action", body), userID)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NoError(t, tr.db.ExpectationsWereMet())
}

func TestRouter_ReadsRunWithoutTx(t *testing.T) {
	tr := newTestRouter(t)
	userID, matchID := uuid.New(), uuid.New()

	tr.messages.EXPECT().MarkConversationRead(gomock.Any(), matchID, userID).Return(int64(0), nil)

	w := tr.do(t, httptest.NewRequest(http.MethodPut, "/api/v1/messages/mark-conversation-read/"+matchID.String(), nil), userID)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, tr.db.ExpectationsWereMet())
}

func TestRouter_MetricsAndCORS(t *testing.T) {
	tr := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/matches", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := tr.do(t, req, uuid.Nil)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	tr.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/matches", nil), uuid.Nil)

	w = tr.do(t, httptest.NewRequest(http.MethodGet, "/metrics", nil), uuid.Nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "matchrimoney_http_requests_total")
	assert.Contains(t, w.Body.String(), `status="401"`)
}

func TestRouter_ServesUploads(t *testing.T) {
	tr := newTestRouter(t)
	require.NoError(t, os.MkdirAll(filepath.Join(tr.uploads, "profile-pictures"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tr.uploads, "profile-pictures", "a.png"), []byte("png"), 0o644))

	w := tr.do(t, httptest.NewRequest(http.MethodGet, "/uploads/profile-pictures/a.png", nil), uuid.Nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png", w.Body.String())
}

// ------------------ Full integration test ------------------
func TestRun_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	// ------------------ Postgres container ------------------
	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	// ------------------ Redis container ------------------
	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	cfg := &config.Config{
		AppHost:           "127.0.0.1",
		AppPort:           "8086",
		LogLevel:          "debug",
		LogEncoding:       "console",
		CORSOrigins:       []string{"http://localhost:3000"},
		FrontendURL:       "http://localhost:3000",
		PGHost:            pgHost,
		PGPort:            pgPort.Int(),
		PGUser:            "user",
		PGPassword:        "password",
		PGDB:              "testdb",
		PGMaxOpenConns:    5,
		PGMaxIdleConns:    2,
		RedisHost:         redisHost,
		RedisPort:         redisPort.Int(),
		RedisPoolSize:     10,
		RedisMinIdleConns: 2,
		JWTSecretKey:      "testsecret",
		JWTExp:            time.Minute,
		StorageDriver:     config.StorageLocal,
		StorageLocalDir:   t.TempDir(),
		StoragePublicURL:  "http://127.0.0.1:8086/uploads",
	}

	// ------------------ Run ------------------
	testCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	healthy := assert.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:8086/health")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 20*time.Second, 200*time.Millisecond)
	assert.True(t, healthy)

	cancel()

	select {
	case <-time.After(15 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		require.NoError(t, err)
	}
}
