package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nsu-ctrg/grant-review/internal/api/middleware"
	"github.com/nsu-ctrg/grant-review/internal/api/routes"
	"github.com/nsu-ctrg/grant-review/internal/config"
	"github.com/nsu-ctrg/grant-review/internal/config/db"
	"github.com/nsu-ctrg/grant-review/internal/repository"
	"github.com/nsu-ctrg/grant-review/internal/testutils"

	_ "github.com/lib/pq"
)

var router *gin.Engine

// Tokens for the seeded accounts, filled in by TestMain.
var (
	adminToken   string
	chairToken   string
	piToken      string
	reviewer1Tok string
	reviewer2Tok string
	reviewer1UID uint
	reviewer2UID uint
)

func TestMain(m *testing.M) {
	_ = os.Setenv("JWT_SECRET", "integration-test-secret")
	_ = os.Setenv("SMTP_HOST", "")

	sqlDB, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
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

	config.LoadConfig()
	middleware.Init()
	db.InitWithGormDB(gormDB)
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal(err)
	}

	repos := repository.NewRepositories(gormDB)

	gin.SetMode(gin.TestMode)
	router = gin.New()
	routes.RegisterRoutes(router, repos)

	adminToken = seedAccount("admin", "admin")
	chairToken = seedAccount("chair", "chair")
	piToken = seedAccount("alice", "pi")
	reviewer1Tok = seedAccount("rev1", "reviewer")
	reviewer2Tok = seedAccount("rev2", "reviewer")
	reviewer1UID = lookupUID("rev1")
	reviewer2UID = lookupUID("rev2")

	code := m.Run()
	os.Exit(code)
}

// --- Helper functions ---

// doRequest makes an HTTP request against the test router. A non-zero
// expectStatus is asserted against the response code.
func doRequest(t *testing.T, method, path, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		reqBody, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if expectStatus != 0 {
		require.Equal(t, expectStatus, w.Code,
			fmt.Sprintf("expected %d, got %d, body=%s", expectStatus, w.Code, w.Body.String()))
	}

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// seedAccount registers a user with the given role and returns a login token.
func seedAccount(username, role string) string {
	register := fmt.Sprintf(
		`{"username":%q,"password":"secret123","email":"%s@nsu.edu","role":%q}`,
		username, username, role,
	)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/register", strings.NewReader(register))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		log.Fatalf("failed to register %s: %d %s", username, w.Code, w.Body.String())
	}

	login := fmt.Sprintf(`{"username":%q,"password":"secret123"}`, username)
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/login", strings.NewReader(login))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		log.Fatalf("failed to login %s: %d %s", username, w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		log.Fatal(err)
	}
	return resp.Token
}

func lookupUID(username string) uint {
	var u struct {
		UID uint `json:"uid"`
	}
	if err := db.DB.Table("users").Select("u_id as uid").Where("username = ?", username).Scan(&u).Error; err != nil {
		log.Fatal(err)
	}
	return u.UID
}
