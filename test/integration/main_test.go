//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/lib/pq"

	"github.com/GDG-Vishnu/community-platform/config"
	"github.com/GDG-Vishnu/community-platform/db"
	"github.com/GDG-Vishnu/community-platform/middleware"
	"github.com/GDG-Vishnu/community-platform/models"
	"github.com/GDG-Vishnu/community-platform/routes"
	"github.com/GDG-Vishnu/community-platform/testutils"
)

var (
	router     *gin.Engine
	gormDB     *gorm.DB
	adminToken string
)

// memStore keeps uploads in memory so the suite runs without MinIO.
type memStore struct{}

func (memStore) Upload(ctx context.Context, objectKey, contentType string, content io.Reader, size int64) (string, error) {
	_, err := io.Copy(io.Discard, content)
	return "http://test-store/" + objectKey, err
}

func (memStore) Remove(ctx context.Context, objectKey string) error { return nil }

func TestMain(m *testing.M) {
	sqlDB, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	var err error
	gormDB, err = gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: logger.New(
			log.New(io.Discard, "", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		log.Fatal(err)
	}

	_ = os.Setenv("JWT_SECRET", "integration-test-secret")
	config.LoadConfig()
	middleware.Init()

	db.InitWithGormDB(gormDB)
	db.EnsureEnums(gormDB)
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal(err)
	}

	gin.SetMode(gin.TestMode)
	router = gin.New()
	routes.RegisterRoutes(router, memStore{})

	seedAdmin()

	os.Exit(m.Run())
}

func seedAdmin() {
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin-pass"), bcrypt.MinCost)
	if err != nil {
		log.Fatal(err)
	}
	admin := &models.User{
		Username: "admin",
		Password: string(hashed),
		Role:     models.UserRoleAdmin,
	}
	if err := gormDB.Create(admin).Error; err != nil {
		log.Fatal(err)
	}
	adminToken, err = middleware.GenerateToken(admin, time.Hour)
	if err != nil {
		log.Fatal(err)
	}
}

// --- Helper functions ---

func doRequest(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, "expected success envelope, got %s", w.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func memberTokenFor(t *testing.T, username string) string {
	t.Helper()
	w := doRequest(t, http.MethodPost, "/register", "", map[string]interface{}{
		"username": username,
		"password": "memberpass1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(t, http.MethodPost, "/login", "", map[string]interface{}{
		"username": username,
		"password": "memberpass1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	return login.Token
}
