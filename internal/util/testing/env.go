package test_utils

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"teamcamp/internal/app"
	"teamcamp/internal/config"
	"teamcamp/internal/storage"
	"teamcamp/internal/util/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

const TestJWTSecret = "test-jwt-secret"

// OpenTestDB opens a private in-memory database with the full schema applied.
// Each call gets its own database, so tests never see each other's rows.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
	})
	require.NoError(t, err)

	// the shared in-memory database disappears with its last connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, storage.Migrate(db))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// RecordingRemover stands in for the object store and records removal calls.
type RecordingRemover struct {
	mu      sync.Mutex
	Removed []string
	Err     error
}

func (r *RecordingRemover) Remove(_ context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}

	r.Removed = append(r.Removed, path)
	return nil
}

func (r *RecordingRemover) RemovedPaths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.Removed...)
}

// SetupTestApp builds the full application against an in-memory database and
// returns its router plus the recording object store.
func SetupTestApp(t *testing.T) (*gin.Engine, *RecordingRemover) {
	t.Helper()

	db := OpenTestDB(t)
	objects := &RecordingRemover{}

	cfg := &config.Config{
		IsTesting: true,
		EnvMode:   config.EnvModeProduction,
		JWTSecret: TestJWTSecret,
	}

	gin.SetMode(gin.TestMode)
	application := app.New(db, objects, cfg, logger.GetLogger())

	return application.Router(), objects
}

// TestUser is an identity whose token the application will accept. The
// profile row appears on the user's first authenticated request.
type TestUser struct {
	ID    uuid.UUID
	Email string
	Token string
}

func CreateTestUser(t *testing.T) *TestUser {
	t.Helper()

	id := uuid.New()
	email := fmt.Sprintf("user-%s@example.com", id.String()[:8])

	return &TestUser{
		ID:    id,
		Email: email,
		Token: MintToken(t, id, email, "Test User"),
	}
}

// MintToken issues an HS256 token shaped like the hosted identity provider's
// access tokens.
func MintToken(t *testing.T, userID uuid.UUID, email, fullName string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": email,
		"aud":   "authenticated",
		"exp":   time.Now().Add(time.Hour).Unix(),
		"user_metadata": map[string]any{
			"full_name": fullName,
		},
		"app_metadata": map[string]any{
			"provider": "email",
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(TestJWTSecret))
	require.NoError(t, err)

	return token
}
