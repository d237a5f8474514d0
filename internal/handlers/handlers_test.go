package handlers

import (
	"fmt"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hirepath/hirepath/internal/auth"
	"github.com/hirepath/hirepath/internal/models"
	"github.com/hirepath/hirepath/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(setupTestDB(t), nil)
}

// perform invokes a single handler with an optional authenticated user and
// :id path param.
func perform(h gin.HandlerFunc, method, target, body, userID, id string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req = req.WithContext(auth.WithUserID(req.Context(), userID))
	}
	c.Request = req
	if id != "" {
		c.Params = gin.Params{{Key: "id", Value: id}}
	}
	h(c)
	return w
}

func seedProfile(t *testing.T, s *store.Store, id, username, email, role string) *models.Profile {
	t.Helper()
	p, err := s.CreateProfile(id, username, email, role)
	if err != nil {
		t.Fatalf("seed profile %s: %v", username, err)
	}
	return p
}

func idStr(id uint) string { return strconv.FormatUint(uint64(id), 10) }

func mustStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected %d got %d body=%s", want, w.Code, w.Body.String())
	}
}
