package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ukmfilm_backend/internals/features/films/dto"
	"ukmfilm_backend/internals/features/films/model"
	helper "ukmfilm_backend/internals/helpers"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&model.FilmModel{}))
	return db
}

// identitas dari header uji, pengganti AuthMiddleware
func fakeAuth(c *fiber.Ctx) error {
	if id := c.Get("X-Test-User"); id != "" {
		c.Locals(helper.LocUserID, id)
	}
	if role := c.Get("X-Test-Role"); role != "" {
		c.Locals(helper.LocUserRole, role)
	}
	return c.Next()
}

func newTestApp(db *gorm.DB) *fiber.App {
	ctl := NewFilmController(db, nil)

	app := fiber.New(fiber.Config{JSONEncoder: sonic.Marshal, JSONDecoder: sonic.Unmarshal})
	app.Get("/public/films", ctl.ListPublic)
	app.Get("/public/films/:slug", ctl.GetBySlug)

	admin := app.Group("/admin/films", fakeAuth)
	admin.Get("/", ctl.List)
	admin.Post("/", ctl.Create)
	admin.Patch("/:id", ctl.Patch)
	admin.Delete("/:id", ctl.Delete)
	admin.Post("/:id/restore", ctl.Restore)
	return app
}

type actor struct {
	id   uuid.UUID
	role string
}

func call(t *testing.T, app *fiber.App, method, path string, who *actor, body any) (int, envelope) {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	if who != nil {
		req.Header.Set("X-Test-User", who.id.String())
		req.Header.Set("X-Test-Role", who.role)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, sonic.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func decodeFilm(t *testing.T, env envelope) dto.FilmResponse {
	t.Helper()
	var f dto.FilmResponse
	require.NoError(t, sonic.Unmarshal(env.Data, &f))
	return f
}

func createFilm(t *testing.T, app *fiber.App, who *actor, title string) dto.FilmResponse {
	t.Helper()
	status, env := call(t, app, http.MethodPost, "/admin/films", who, fiber.Map{
		"film_title":        title,
		"film_year":         2025,
		"film_genres":       []string{"Drama"},
		"film_is_published": true,
	})
	require.Equal(t, fiber.StatusCreated, status, env.Message)
	return decodeFilm(t, env)
}

func publicSlugs(t *testing.T, app *fiber.App) []string {
	t.Helper()
	status, env := call(t, app, http.MethodGet, "/public/films", nil, nil)
	require.Equal(t, fiber.StatusOK, status)
	var list []dto.FilmResponse
	require.NoError(t, sonic.Unmarshal(env.Data, &list))
	out := make([]string, 0, len(list))
	for _, f := range list {
		out = append(out, f.FilmSlug)
	}
	return out
}

func TestCreateFilm_OwnerAndNormalizedGenres(t *testing.T) {
	app := newTestApp(openTestDB(t))
	editor := &actor{uuid.New(), "editor"}

	f := createFilm(t, app, editor, "Senja di Kampus")
	assert.Equal(t, "senja-di-kampus", f.FilmSlug)
	assert.Equal(t, editor.id, f.FilmOwnerID)
	assert.Equal(t, []string{"drama"}, f.FilmGenres)

	status, _ := call(t, app, http.MethodPost, "/admin/films", nil, fiber.Map{"film_title": "Anonim"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestPatchFilm_Ownership(t *testing.T) {
	app := newTestApp(openTestDB(t))
	owner := &actor{uuid.New(), "editor"}
	other := &actor{uuid.New(), "editor"}
	admin := &actor{uuid.New(), "admin"}

	f := createFilm(t, app, owner, "Jejak Sungai")
	path := "/admin/films/" + f.FilmID.String()

	status, _ := call(t, app, http.MethodPatch, path, other, fiber.Map{"film_title": "Dibajak"})
	assert.Equal(t, fiber.StatusForbidden, status)
	status, _ = call(t, app, http.MethodDelete, path, other, nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, env := call(t, app, http.MethodPatch, path, admin, fiber.Map{"film_title": "Jejak Sungai Versi Baru"})
	require.Equal(t, fiber.StatusOK, status, env.Message)
	got := decodeFilm(t, env)
	assert.Equal(t, "jejak-sungai-versi-baru", got.FilmSlug)
	assert.Equal(t, owner.id, got.FilmOwnerID)

	status, env = call(t, app, http.MethodPatch, path, owner, fiber.Map{"film_year": 2024})
	require.Equal(t, fiber.StatusOK, status, env.Message)
	got = decodeFilm(t, env)
	require.NotNil(t, got.FilmYear)
	assert.Equal(t, 2024, *got.FilmYear)
	assert.Equal(t, "jejak-sungai-versi-baru", got.FilmSlug)
}

func TestDeleteAndRestoreFilm(t *testing.T) {
	app := newTestApp(openTestDB(t))
	editor := &actor{uuid.New(), "editor"}
	other := &actor{uuid.New(), "editor"}

	f := createFilm(t, app, editor, "Kota Hujan")
	path := "/admin/films/" + f.FilmID.String()
	assert.Equal(t, []string{"kota-hujan"}, publicSlugs(t, app))

	status, _ := call(t, app, http.MethodDelete, path, editor, nil)
	require.Equal(t, fiber.StatusOK, status)

	assert.Empty(t, publicSlugs(t, app))
	status, _ = call(t, app, http.MethodGet, "/public/films/kota-hujan", nil, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	status, _ = call(t, app, http.MethodPatch, path, editor, fiber.Map{"film_title": "Hantu"})
	assert.Equal(t, fiber.StatusNotFound, status)

	// slug dipakai film lain selama terhapus
	replacement := createFilm(t, app, editor, "Kota Hujan")
	assert.Equal(t, "kota-hujan", replacement.FilmSlug)

	status, _ = call(t, app, http.MethodPost, path+"/restore", other, nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, env := call(t, app, http.MethodPost, path+"/restore", editor, nil)
	require.Equal(t, fiber.StatusOK, status, env.Message)
	restored := decodeFilm(t, env)
	assert.Equal(t, f.FilmID, restored.FilmID)
	assert.Equal(t, "kota-hujan-2", restored.FilmSlug)
	assert.Nil(t, restored.FilmDeletedAt)

	assert.ElementsMatch(t, []string{"kota-hujan", "kota-hujan-2"}, publicSlugs(t, app))
	status, env = call(t, app, http.MethodGet, "/public/films/kota-hujan-2", nil, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, f.FilmID, decodeFilm(t, env).FilmID)
}
