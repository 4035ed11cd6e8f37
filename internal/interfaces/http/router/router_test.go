package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	dashboardapp "github.com/agency/backend/internal/application/dashboard"
	identityapp "github.com/agency/backend/internal/application/identity"
	leadapp "github.com/agency/backend/internal/application/lead"
	portfolioapp "github.com/agency/backend/internal/application/portfolio"
	"github.com/agency/backend/internal/domain/identity"
	"github.com/agency/backend/internal/infrastructure/auth"
	"github.com/agency/backend/internal/infrastructure/config"
	"github.com/agency/backend/internal/infrastructure/persistence"
	"github.com/agency/backend/internal/infrastructure/persistence/models"
	"github.com/agency/backend/internal/infrastructure/storage"
	"github.com/agency/backend/internal/interfaces/http/handler"
	"github.com/agency/backend/internal/interfaces/http/middleware"
)

const (
	testAdminEmail    = "ops@agency.example"
	testAdminPassword = "correct-horse-battery"
	testCookieName    = "admin-token"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

type testStack struct {
	engine *gin.Engine
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.AdminModel{},
		&models.ContactModel{},
		&models.QuoteModel{},
		&models.ConsultationModel{},
		&models.ProjectModel{},
		&models.OfferingModel{},
	))

	log := zap.NewNop()

	adminRepo := persistence.NewGormAdminRepository(db)
	contactRepo := persistence.NewGormContactRepository(db)
	quoteRepo := persistence.NewGormQuoteRepository(db)
	consultationRepo := persistence.NewGormConsultationRepository(db)
	projectRepo := persistence.NewGormProjectRepository(db)
	offeringRepo := persistence.NewGormOfferingRepository(db)

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:     "router-test-secret-0123456789abcdef",
		Expiration: time.Hour,
		Issuer:     "test-issuer",
	})
	objectStorage := storage.NewStubObjectStorage()

	authService := identityapp.NewAuthService(adminRepo, jwtService, log)
	contactService := leadapp.NewContactService(contactRepo, log)
	quoteService := leadapp.NewQuoteService(quoteRepo, log)
	consultationService := leadapp.NewConsultationService(consultationRepo, log)
	projectService := portfolioapp.NewProjectService(projectRepo, objectStorage, log)
	offeringService := portfolioapp.NewOfferingService(offeringRepo, log)
	mediaService := portfolioapp.NewMediaService(objectStorage, log)
	statsService := dashboardapp.NewStatsService(
		contactRepo, quoteRepo, consultationRepo, projectRepo, offeringRepo, log)

	admin, err := identity.NewAdmin(testAdminEmail, testAdminPassword, "Ops", identity.RoleSuperAdmin)
	require.NoError(t, err)
	require.NoError(t, adminRepo.Save(context.Background(), admin))

	cookieCfg := config.CookieConfig{
		Name:     testCookieName,
		Path:     "/",
		SameSite: "lax",
	}

	engine := gin.New()
	engine.Use(middleware.SessionGate(middleware.DefaultSessionGateConfig(jwtService, testCookieName)))

	r := NewRouter(engine, WithAPIVersion("v1"))
	r.Setup(Handlers{
		Auth:          handler.NewAuthHandler(authService, cookieCfg),
		Contacts:      handler.NewContactHandler(contactService),
		Quotes:        handler.NewQuoteHandler(quoteService),
		Consultations: handler.NewConsultationHandler(consultationService),
		Projects:      handler.NewProjectHandler(projectService, mediaService),
		Offerings:     handler.NewOfferingHandler(offeringService),
		Dashboard:     handler.NewDashboardHandler(statsService),
	})

	return &testStack{engine: engine}
}

func (s *testStack) request(method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testStack) login(t *testing.T) *http.Cookie {
	t.Helper()
	w := s.request("POST", "/api/v1/admin/auth/login", gin.H{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == testCookieName && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("login response did not set the session cookie")
	return nil
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	return envelope.Data
}

func TestLogin(t *testing.T) {
	stack := newTestStack(t)

	t.Run("valid credentials set the session cookie", func(t *testing.T) {
		cookie := stack.login(t)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, "/", cookie.Path)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		wrongPassword := stack.request("POST", "/api/v1/admin/auth/login", gin.H{
			"email":    testAdminEmail,
			"password": "not-the-password",
		}, nil)
		unknownEmail := stack.request("POST", "/api/v1/admin/auth/login", gin.H{
			"email":    "nobody@agency.example",
			"password": "not-the-password",
		}, nil)

		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
		assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	})

	t.Run("missing fields are rejected with the offending field named", func(t *testing.T) {
		w := stack.request("POST", "/api/v1/admin/auth/login", gin.H{"email": testAdminEmail}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "password")
	})
}

func TestSessionLifecycle(t *testing.T) {
	stack := newTestStack(t)
	cookie := stack.login(t)

	t.Run("verify returns the authenticated admin", func(t *testing.T) {
		w := stack.request("GET", "/api/v1/admin/auth/verify", nil, cookie)
		require.Equal(t, http.StatusOK, w.Code)
		data := decodeData(t, w)
		assert.Equal(t, true, data["authenticated"])
		admin := data["admin"].(map[string]any)
		assert.Equal(t, testAdminEmail, admin["email"])
	})

	t.Run("verify without a cookie is rejected", func(t *testing.T) {
		w := stack.request("GET", "/api/v1/admin/auth/verify", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("logout clears the cookie", func(t *testing.T) {
		w := stack.request("POST", "/api/v1/admin/auth/logout", nil, cookie)
		require.Equal(t, http.StatusOK, w.Code)

		var cleared bool
		for _, c := range w.Result().Cookies() {
			if c.Name == testCookieName && c.Value == "" && c.MaxAge < 0 {
				cleared = true
			}
		}
		assert.True(t, cleared, "logout should expire the session cookie")
	})
}

func TestAdminAPIRequiresSession(t *testing.T) {
	stack := newTestStack(t)
	cookie := stack.login(t)

	// create a row to prove the gate stops side effects too
	created := stack.request("POST", "/api/v1/public/contacts", gin.H{
		"name":    "Jordan Rivera",
		"email":   "jordan@example.com",
		"phone":   "+1-555-0101",
		"message": "Interested in a redesign",
	}, nil)
	require.Equal(t, http.StatusCreated, created.Code)
	contactID := decodeData(t, created)["id"].(string)

	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/admin/contacts"},
		{"GET", "/api/v1/admin/quotes"},
		{"GET", "/api/v1/admin/consultations"},
		{"GET", "/api/v1/admin/projects"},
		{"GET", "/api/v1/admin/services"},
		{"GET", "/api/v1/admin/dashboard/stats"},
		{"DELETE", "/api/v1/admin/contacts/" + contactID},
		{"POST", "/api/v1/admin/projects/uploads"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			w := stack.request(p.method, p.path, nil, nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "ERR_UNAUTHORIZED")
		})
	}

	t.Run("guarded delete left the row in place", func(t *testing.T) {
		w := stack.request("GET", "/api/v1/admin/contacts/"+contactID, nil, cookie)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("expired token behaves like no token", func(t *testing.T) {
		expiredService := auth.NewJWTService(config.JWTConfig{
			Secret:     "router-test-secret-0123456789abcdef",
			Expiration: -time.Minute,
			Issuer:     "test-issuer",
		})
		token, err := expiredService.GenerateSessionToken(auth.GenerateTokenInput{
			AdminID: uuid.New(), Email: testAdminEmail, Name: "Ops", Role: "admin",
		})
		require.NoError(t, err)

		w := stack.request("GET", "/api/v1/admin/contacts", nil,
			&http.Cookie{Name: testCookieName, Value: token.Value})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestContactRoundTrip(t *testing.T) {
	stack := newTestStack(t)
	cookie := stack.login(t)

	created := stack.request("POST", "/api/v1/public/contacts", gin.H{
		"name":    "Sam Chen",
		"email":   "sam@example.com",
		"phone":   "+1-555-0102",
		"company": "Chen Consulting",
		"message": "Need a marketing site",
	}, nil)
	require.Equal(t, http.StatusCreated, created.Code)
	data := decodeData(t, created)
	assert.Equal(t, "pending", data["status"])
	id := data["id"].(string)

	fetched := stack.request("GET", "/api/v1/admin/contacts/"+id, nil, cookie)
	require.Equal(t, http.StatusOK, fetched.Code)
	got := decodeData(t, fetched)
	assert.Equal(t, "Sam Chen", got["name"])
	assert.Equal(t, "sam@example.com", got["email"])
	assert.Equal(t, "Chen Consulting", got["company"])
	assert.Equal(t, "Need a marketing site", got["message"])

	t.Run("double delete returns 404 the second time", func(t *testing.T) {
		first := stack.request("DELETE", "/api/v1/admin/contacts/"+id, nil, cookie)
		assert.Equal(t, http.StatusOK, first.Code)

		second := stack.request("DELETE", "/api/v1/admin/contacts/"+id, nil, cookie)
		assert.Equal(t, http.StatusNotFound, second.Code)

		gone := stack.request("GET", "/api/v1/admin/contacts/"+id, nil, cookie)
		assert.Equal(t, http.StatusNotFound, gone.Code)
	})
}

func TestQuoteUpdate(t *testing.T) {
	stack := newTestStack(t)
	cookie := stack.login(t)

	created := stack.request("POST", "/api/v1/public/quotes", gin.H{
		"name":        "Ada Osei",
		"email":       "ada@example.com",
		"phone":       "+1-555-0103",
		"services":    []string{"web-design", "seo"},
		"budget":      "10k-25k",
		"timeline":    "3 months",
		"description": "Full site rebuild with SEO",
	}, nil)
	require.Equal(t, http.StatusCreated, created.Code)
	id := decodeData(t, created)["id"].(string)

	t.Run("unknown id returns 404 naming not found", func(t *testing.T) {
		w := stack.request("PUT", "/api/v1/admin/quotes/"+uuid.NewString(),
			gin.H{"status": "accepted"}, cookie)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "not found")
	})

	t.Run("status update leaves other fields unchanged", func(t *testing.T) {
		w := stack.request("PUT", "/api/v1/admin/quotes/"+id, gin.H{"status": "accepted"}, cookie)
		require.Equal(t, http.StatusOK, w.Code)
		data := decodeData(t, w)
		assert.Equal(t, "accepted", data["status"])
		assert.Equal(t, "Ada Osei", data["name"])
		assert.Equal(t, "10k-25k", data["budget"])
		assert.Equal(t, []any{"web-design", "seo"}, data["services"])
	})

	t.Run("bogus status is rejected", func(t *testing.T) {
		w := stack.request("PUT", "/api/v1/admin/quotes/"+id, gin.H{"status": "archived"}, cookie)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing services on create names the field", func(t *testing.T) {
		w := stack.request("POST", "/api/v1/public/quotes", gin.H{
			"name":        "No Services",
			"email":       "none@example.com",
			"phone":       "+1-555-0104",
			"budget":      "5k",
			"timeline":    "1 month",
			"description": "nothing picked",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "services")
	})
}

func TestConsultationScheduling(t *testing.T) {
	stack := newTestStack(t)
	cookie := stack.login(t)

	created := stack.request("POST", "/api/v1/public/consultations", gin.H{
		"name":           "Lee Park",
		"email":          "lee@example.com",
		"phone":          "+1-555-0105",
		"service":        "seo-audit",
		"message":        "Want a technical SEO review",
		"preferred_date": "next tuesday",
	}, nil)
	require.Equal(t, http.StatusCreated, created.Code)
	id := decodeData(t, created)["id"].(string)

	at := time.Now().Add(72 * time.Hour).UTC().Truncate(time.Second)
	w := stack.request("PUT", "/api/v1/admin/consultations/"+id,
		gin.H{"scheduled_at": at.Format(time.RFC3339)}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "scheduled", data["status"])
	assert.NotNil(t, data["scheduled_at"])
}

func TestContentEndpoints(t *testing.T) {
	stack := newTestStack(t)
	cookie := stack.login(t)

	createProject := func(title string, published bool) string {
		created := stack.request("POST", "/api/v1/admin/projects", gin.H{
			"title":       title,
			"description": "A case study",
			"category":    "web",
			"image": gin.H{
				"url":         "https://storage.example.com/projects/demo.png",
				"storage_key": "projects/demo.png",
			},
			"technologies": []string{"go", "react"},
		}, cookie)
		require.Equal(t, http.StatusCreated, created.Code, created.Body.String())
		id := decodeData(t, created)["id"].(string)

		if published {
			w := stack.request("PUT", "/api/v1/admin/projects/"+id, gin.H{"published": true}, cookie)
			require.Equal(t, http.StatusOK, w.Code)
		}
		return id
	}

	createProject("Published Work", true)
	createProject("Draft Work", false)

	t.Run("public projects list only published work", func(t *testing.T) {
		w := stack.request("GET", "/api/v1/public/projects", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Published Work")
		assert.NotContains(t, w.Body.String(), "Draft Work")
	})

	t.Run("embedded image data is rejected", func(t *testing.T) {
		w := stack.request("POST", "/api/v1/admin/projects", gin.H{
			"title":       "Inline Image",
			"description": "bad",
			"category":    "web",
			"image": gin.H{
				"url":         "data:image/png;base64,iVBORw0KGgo=",
				"storage_key": "projects/y.png",
			},
		}, cookie)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("upload ticket issues a server-generated key", func(t *testing.T) {
		w := stack.request("POST", "/api/v1/admin/projects/uploads", gin.H{
			"file_name":    "hero.png",
			"content_type": "image/png",
		}, cookie)
		require.Equal(t, http.StatusCreated, w.Code)
		data := decodeData(t, w)
		key := data["storage_key"].(string)
		assert.Greater(t, len(key), len("projects/"), "expected a generated key, got %q", key)
		assert.Contains(t, key, "projects/")
		assert.NotEmpty(t, data["upload_url"])
	})

	t.Run("services list only active offerings", func(t *testing.T) {
		created := stack.request("POST", "/api/v1/admin/services", gin.H{
			"title":       "SEO Audit",
			"description": "Technical SEO review",
			"features":    []string{"crawl report", "fix list"},
		}, cookie)
		require.Equal(t, http.StatusCreated, created.Code)

		inactive := stack.request("POST", "/api/v1/admin/services", gin.H{
			"title":       "Retired Offering",
			"description": "No longer sold",
		}, cookie)
		require.Equal(t, http.StatusCreated, inactive.Code)
		inactiveID := decodeData(t, inactive)["id"].(string)
		w := stack.request("PUT", "/api/v1/admin/services/"+inactiveID, gin.H{"active": false}, cookie)
		require.Equal(t, http.StatusOK, w.Code)

		public := stack.request("GET", "/api/v1/public/services", nil, nil)
		require.Equal(t, http.StatusOK, public.Code)
		assert.Contains(t, public.Body.String(), "SEO Audit")
		assert.NotContains(t, public.Body.String(), "Retired Offering")
	})
}

func TestDashboardStats(t *testing.T) {
	stack := newTestStack(t)
	cookie := stack.login(t)

	for i := 0; i < 3; i++ {
		w := stack.request("POST", "/api/v1/public/contacts", gin.H{
			"name":    fmt.Sprintf("Visitor %d", i),
			"email":   fmt.Sprintf("visitor%d@example.com", i),
			"phone":   "+1-555-0200",
			"message": "hello",
		}, nil)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := stack.request("GET", "/api/v1/admin/dashboard/stats", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	contacts := data["contacts"].(map[string]any)
	assert.Equal(t, float64(3), contacts["total"])
	assert.Equal(t, float64(3), contacts["pending"])
}

func TestListPagination(t *testing.T) {
	stack := newTestStack(t)
	cookie := stack.login(t)

	for i := 0; i < 5; i++ {
		w := stack.request("POST", "/api/v1/public/contacts", gin.H{
			"name":    fmt.Sprintf("Lead %d", i),
			"email":   fmt.Sprintf("lead%d@example.com", i),
			"phone":   "+1-555-0300",
			"message": "pagination test",
		}, nil)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := stack.request("GET", "/api/v1/admin/contacts?page=2&page_size=2", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Success bool             `json:"success"`
		Data    []map[string]any `json:"data"`
		Meta    struct {
			Total      int64 `json:"total"`
			Page       int   `json:"page"`
			PageSize   int   `json:"page_size"`
			TotalPages int   `json:"total_pages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Len(t, envelope.Data, 2)
	assert.Equal(t, int64(5), envelope.Meta.Total)
	assert.Equal(t, 2, envelope.Meta.Page)
	assert.Equal(t, 3, envelope.Meta.TotalPages)
}

func TestHealth(t *testing.T) {
	stack := newTestStack(t)
	w := stack.request("GET", "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
