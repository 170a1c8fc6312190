package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ramyasree-2705/multi-tenant-SaaS/internal/notes/middleware"
	"github.com/ramyasree-2705/multi-tenant-SaaS/internal/notes/model"
	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/config"
	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/database"
	"github.com/ramyasree-2705/multi-tenant-SaaS/pkg/jwtutil"
)

func init() {
	jwtutil.Initialize(&config.JWTConfig{SigningKey: "handler-test-key", ExpirationHours: 1})
}

// setupDB points the handlers at a fresh in-memory database.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Tenant{}, &model.Note{}))

	database.SetDB(db)
	t.Cleanup(func() { database.SetDB(nil) })
	return db
}

// newServer builds an echo instance with the same routing as the
// notes-service binary.
func newServer() *echo.Echo {
	e := echo.New()

	e.POST("/auth/login", Login)

	notes := e.Group("/notes")
	notes.Use(middleware.AuthMiddleware)
	notes.GET("", ListNotes)
	notes.POST("", CreateNote)
	notes.GET("/:id", GetNote)
	notes.PUT("/:id", UpdateNote)
	notes.DELETE("/:id", DeleteNote)

	tenants := e.Group("/tenants")
	tenants.Use(middleware.AuthMiddleware)
	tenants.POST("/:slug/upgrade", UpgradeTenant)

	return e
}

func seedTenant(t *testing.T, db *gorm.DB, slug, plan string) model.Tenant {
	t.Helper()
	tenant := model.Tenant{Slug: slug, Name: slug + " Inc", Plan: plan}
	require.NoError(t, db.Create(&tenant).Error)
	return tenant
}

func seedUser(t *testing.T, db *gorm.DB, tenant model.Tenant, email, password, role string) model.User {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	user := model.User{Email: email, PasswordHash: hash, Role: role, TenantID: tenant.ID}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedNote(t *testing.T, db *gorm.DB, tenant model.Tenant, user model.User, title string, createdAt time.Time) model.Note {
	t.Helper()
	note := model.Note{TenantID: tenant.ID, UserID: user.ID, Title: title, CreatedAt: createdAt, UpdatedAt: createdAt}
	require.NoError(t, db.Create(&note).Error)
	return note
}

func tokenFor(t *testing.T, user model.User, tenant model.Tenant) string {
	t.Helper()
	token, err := jwtutil.GenerateToken(user.ID, user.Email, user.Role, tenant.ID, tenant.Slug, tenant.Plan)
	require.NoError(t, err)
	return token
}

// doJSON performs a request against the test server. An empty token
// sends no Authorization header.
func doJSON(e *echo.Echo, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
