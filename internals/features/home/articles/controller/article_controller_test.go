package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ukmfilm_backend/internals/features/home/articles/model"
	helper "ukmfilm_backend/internals/helpers"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type articleBody struct {
	ArticleID          uuid.UUID  `json:"article_id"`
	ArticleTitle       string     `json:"article_title"`
	ArticleSlug        string     `json:"article_slug"`
	ArticleIsPublished bool       `json:"article_is_published"`
	ArticlePublishedAt *time.Time `json:"article_published_at"`
	ArticleAuthorID    uuid.UUID  `json:"article_author_id"`
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
	require.NoError(t, db.AutoMigrate(&model.ArticleModel{}))
	return db
}

// identitas diambil dari header uji, menggantikan AuthMiddleware
func fakeAuth(c *fiber.Ctx) error {
	if id := c.Get("X-Test-User"); id != "" {
		c.Locals(helper.LocUserID, id)
	}
	if role := c.Get("X-Test-Role"); role != "" {
		c.Locals(helper.LocUserRole, role)
	}
	return c.Next()
}

func newTestApp(db *gorm.DB, now time.Time) *fiber.App {
	ctrl := NewArticleController(db)
	ctrl.now = func() time.Time { return now }

	app := fiber.New(fiber.Config{JSONEncoder: sonic.Marshal, JSONDecoder: sonic.Unmarshal})
	app.Get("/public/articles", ctrl.GetPublishedArticles)
	app.Get("/public/articles/:slug", ctrl.GetArticleBySlug)

	admin := app.Group("/admin/articles", fakeAuth)
	admin.Get("/", ctrl.GetAllArticlesAdmin)
	admin.Post("/", ctrl.CreateArticle)
	admin.Patch("/:id", ctrl.UpdateArticle)
	admin.Delete("/:id", ctrl.DeleteArticle)
	admin.Post("/:id/restore", ctrl.RestoreArticle)
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

func decodeArticle(t *testing.T, env envelope) articleBody {
	t.Helper()
	var a articleBody
	require.NoError(t, sonic.Unmarshal([]byte(env.Data), &a))
	return a
}

func create(t *testing.T, app *fiber.App, who *actor, title string, published bool) articleBody {
	t.Helper()
	status, env := call(t, app, http.MethodPost, "/admin/articles", who, fiber.Map{
		"article_title":        title,
		"article_content":      "Isi artikel " + title,
		"article_is_published": published,
	})
	require.Equal(t, fiber.StatusCreated, status, env.Message)
	return decodeArticle(t, env)
}

var fixedNow = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func TestCreateArticle_SlugSuffixes(t *testing.T) {
	app := newTestApp(openTestDB(t), fixedNow)
	editor := &actor{uuid.New(), "editor"}

	a := create(t, app, editor, "Festival Film Kampus", true)
	b := create(t, app, editor, "Festival Film Kampus", false)
	c := create(t, app, editor, "festival  film kampus!", false)

	assert.Equal(t, "festival-film-kampus", a.ArticleSlug)
	assert.Equal(t, "festival-film-kampus-2", b.ArticleSlug)
	assert.Equal(t, "festival-film-kampus-3", c.ArticleSlug)

	assert.Equal(t, editor.id, a.ArticleAuthorID)
	require.NotNil(t, a.ArticlePublishedAt)
	assert.True(t, a.ArticlePublishedAt.Equal(fixedNow))
	assert.Nil(t, b.ArticlePublishedAt)
}

func TestCreateArticle_ValidationAndAuth(t *testing.T) {
	app := newTestApp(openTestDB(t), fixedNow)

	status, _ := call(t, app, http.MethodPost, "/admin/articles", nil, fiber.Map{
		"article_title": "Tanpa Login", "article_content": "x",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, env := call(t, app, http.MethodPost, "/admin/articles", &actor{uuid.New(), "editor"}, fiber.Map{
		"article_title": "ab",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.False(t, env.Success)
}

func TestUpdateArticle_Ownership(t *testing.T) {
	app := newTestApp(openTestDB(t), fixedNow)
	owner := &actor{uuid.New(), "editor"}
	other := &actor{uuid.New(), "editor"}
	admin := &actor{uuid.New(), "admin"}

	a := create(t, app, owner, "Ulasan Sinema", false)
	path := "/admin/articles/" + a.ArticleID.String()

	status, _ := call(t, app, http.MethodPatch, path, other, fiber.Map{"article_title": "Dibajak"})
	assert.Equal(t, fiber.StatusForbidden, status)

	status, _ = call(t, app, http.MethodDelete, path, other, nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, env := call(t, app, http.MethodPatch, path, owner, fiber.Map{"article_title": "Ulasan Sinema Baru"})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ulasan-sinema-baru", decodeArticle(t, env).ArticleSlug)

	status, env = call(t, app, http.MethodPatch, path, admin, fiber.Map{"article_is_published": true})
	require.Equal(t, fiber.StatusOK, status)
	got := decodeArticle(t, env)
	assert.True(t, got.ArticleIsPublished)
	assert.Equal(t, "ulasan-sinema-baru", got.ArticleSlug)
	assert.Equal(t, owner.id, got.ArticleAuthorID)
}

func TestDeleteAndRestoreArticle(t *testing.T) {
	app := newTestApp(openTestDB(t), fixedNow)
	editor := &actor{uuid.New(), "editor"}

	a := create(t, app, editor, "Behind The Scene", true)
	path := "/admin/articles/" + a.ArticleID.String()

	status, _ := call(t, app, http.MethodGet, "/public/articles/behind-the-scene", nil, nil)
	require.Equal(t, fiber.StatusOK, status)

	status, _ = call(t, app, http.MethodDelete, path, editor, nil)
	require.Equal(t, fiber.StatusOK, status)

	status, _ = call(t, app, http.MethodGet, "/public/articles/behind-the-scene", nil, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	status, _ = call(t, app, http.MethodPatch, path, editor, fiber.Map{"article_title": "Hantu"})
	assert.Equal(t, fiber.StatusNotFound, status)

	// slug dipakai artikel lain selama terhapus
	b := create(t, app, editor, "Behind The Scene", true)
	assert.Equal(t, "behind-the-scene", b.ArticleSlug)

	status, env := call(t, app, http.MethodPost, path+"/restore", editor, nil)
	require.Equal(t, fiber.StatusOK, status)
	restored := decodeArticle(t, env)
	assert.Equal(t, a.ArticleID, restored.ArticleID)
	assert.Equal(t, "behind-the-scene-2", restored.ArticleSlug)

	status, env = call(t, app, http.MethodGet, "/public/articles/behind-the-scene-2", nil, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, a.ArticleID, decodeArticle(t, env).ArticleID)
}

func TestGetPublishedArticles_HidesDrafts(t *testing.T) {
	app := newTestApp(openTestDB(t), fixedNow)
	editor := &actor{uuid.New(), "editor"}

	create(t, app, editor, "Terbit Satu", true)
	create(t, app, editor, "Masih Draft", false)

	status, env := call(t, app, http.MethodGet, "/public/articles", nil, nil)
	require.Equal(t, fiber.StatusOK, status)
	var list []articleBody
	require.NoError(t, sonic.Unmarshal([]byte(env.Data), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "terbit-satu", list[0].ArticleSlug)

	status, _ = call(t, app, http.MethodGet, "/public/articles/masih-draft", nil, nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, env = call(t, app, http.MethodGet, "/admin/articles?mine=true", editor, nil)
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, sonic.Unmarshal([]byte(env.Data), &list))
	assert.Len(t, list, 2)
}
