package authController

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wrwk/config"
	"wrwk/database"
	"wrwk/middleware"
	"wrwk/models"
	authValidators "wrwk/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newThemeTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	// sqlite serializes writers; a single connection avoids lock errors
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}))

	database.Database = database.DbInstance{Db: db}
	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	app := fiber.New()
	app.Post("/api/auth/update-theme", middleware.JWTMiddleware, authValidators.UpdateTheme(), UpdateTheme)

	return app, db
}

func newThemeTestUser(t *testing.T, db *gorm.DB) (*models.User, string) {
	t.Helper()

	user := &models.User{
		Username:        "maya-mom",
		Email:           "maya-mom@example.com",
		Password:        "irrelevant",
		Role:            "parent",
		ThemePreference: "light",
		IsActive:        true,
	}
	require.NoError(t, db.Create(user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role, user.Email)
	require.NoError(t, err)

	return user, token
}

func TestUpdateThemePersistsPreference(t *testing.T) {
	app, db := newThemeTestApp(t)
	user, token := newThemeTestUser(t, db)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/update-theme", strings.NewReader(`{"theme":"dark"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var saved models.User
	require.NoError(t, db.First(&saved, user.ID).Error)
	require.Equal(t, "dark", saved.ThemePreference)
}

func TestUpdateThemeRejectsUnknownTheme(t *testing.T) {
	app, db := newThemeTestApp(t)
	user, token := newThemeTestUser(t, db)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/update-theme", strings.NewReader(`{"theme":"sepia"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var saved models.User
	require.NoError(t, db.First(&saved, user.ID).Error)
	require.Equal(t, "light", saved.ThemePreference)
}

func TestUpdateThemeRequiresAuth(t *testing.T) {
	app, _ := newThemeTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/update-theme", strings.NewReader(`{"theme":"dark"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
