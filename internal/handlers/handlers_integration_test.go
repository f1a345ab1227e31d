package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"blogapi/internal/handlers"
	"blogapi/internal/models"
	"blogapi/internal/repositories"
	"blogapi/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MockMailer is a mock implementation of handlers.OTPSender
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendOTP(to, otp string) error {
	args := m.Called(to, otp)
	return args.Error(0)
}

// setupApp builds the full Fiber app against an in-memory SQLite database,
// one database per test.
func setupApp(t *testing.T) (*fiber.App, *MockMailer) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Blog{}); err != nil {
		t.Fatalf("failed to auto-migrate database: %v", err)
	}

	userRepo := repositories.NewGORMUserRepository(db)
	blogRepo := repositories.NewGORMBlogRepository(db)

	authService := services.NewAuthService(userRepo)
	blogService := services.NewBlogService(blogRepo)

	uploadDir := t.TempDir()
	mockMailer := new(MockMailer)

	app := fiber.New()
	app.Static("/uploads", uploadDir)

	handlers.NewAuthHandler(authService).RegisterRoutes(app)
	handlers.NewBlogHandler(blogService).RegisterRoutes(app)
	handlers.NewUploadHandler(uploadDir).RegisterRoutes(app)
	handlers.NewOTPHandler(mockMailer).RegisterRoutes(app)

	return app, mockMailer
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func getBlogs(t *testing.T, app *fiber.App) []map[string]interface{} {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/get-blogs", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Success bool                     `json:"success"`
		Blogs   []map[string]interface{} `json:"blogs"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	return out.Blogs
}

// TestMain runs setup and teardown for all tests
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func TestRegisterAndLogin(t *testing.T) {
	app, _ := setupApp(t)

	user := map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "password123",
	}

	status, body := postJSON(t, app, "/register", user)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	// Second registration with the same email fails, still as 200 OK
	status, body = postJSON(t, app, "/register", user)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Email already exists", body["error"])

	// The first user is unaffected: login still matches and echoes the
	// full record, plaintext password included
	status, body = postJSON(t, app, "/login", map[string]string{
		"email":    "test@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	loggedIn, ok := body["user"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "test@example.com", loggedIn["email"])
	assert.Equal(t, "Test User", loggedIn["name"])
	assert.Equal(t, "password123", loggedIn["password"])

	// Wrong password and unknown email answer identically
	_, body = postJSON(t, app, "/login", map[string]string{
		"email":    "test@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid email or password", body["error"])
	assert.Nil(t, body["user"])

	_, body = postJSON(t, app, "/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid email or password", body["error"])
}

func TestBlogLifecycle(t *testing.T) {
	app, _ := setupApp(t)

	_, body := postJSON(t, app, "/save-blog", map[string]string{
		"title":       "First Post",
		"content":     "Hello",
		"image":       "/uploads/first.png",
		"author":      "Owner",
		"authorEmail": "owner@example.com",
	})
	assert.Equal(t, true, body["success"])

	time.Sleep(10 * time.Millisecond)

	_, body = postJSON(t, app, "/save-blog", map[string]string{
		"title":       "Second Post",
		"content":     "World",
		"image":       "/uploads/second.png",
		"author":      "Owner",
		"authorEmail": "owner@example.com",
	})
	assert.Equal(t, true, body["success"])

	// Newest first
	blogs := getBlogs(t, app)
	assert.Len(t, blogs, 2)
	assert.Equal(t, "Second Post", blogs[0]["title"])
	assert.Equal(t, "First Post", blogs[1]["title"])
	assert.Equal(t, float64(0), blogs[0]["views"])

	id, ok := blogs[0]["id"].(string)
	assert.True(t, ok)
	assert.NotEmpty(t, id)

	// Update with a mismatched authorEmail leaves the blog untouched
	_, body = postJSON(t, app, "/update-blog", map[string]string{
		"id":          id,
		"title":       "Hijacked",
		"content":     "nope",
		"image":       "",
		"authorEmail": "intruder@example.com",
	})
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Not authorized or not found", body["error"])
	blogs = getBlogs(t, app)
	assert.Equal(t, "Second Post", blogs[0]["title"])

	// Update with the matching authorEmail rewrites the editable fields
	// and advances updatedAt
	createdAt, err := time.Parse(time.RFC3339Nano, blogs[0]["createdAt"].(string))
	assert.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	_, body = postJSON(t, app, "/update-blog", map[string]string{
		"id":          id,
		"title":       "Second Post, Edited",
		"content":     "World, revised",
		"image":       "/uploads/second-v2.png",
		"authorEmail": "owner@example.com",
	})
	assert.Equal(t, true, body["success"])

	blogs = getBlogs(t, app)
	assert.Equal(t, "Second Post, Edited", blogs[0]["title"])
	assert.Equal(t, "World, revised", blogs[0]["content"])
	assert.Equal(t, "Owner", blogs[0]["author"])
	updatedAt, err := time.Parse(time.RFC3339Nano, blogs[0]["updatedAt"].(string))
	assert.NoError(t, err)
	assert.True(t, updatedAt.After(createdAt))

	// Delete with a mismatched authorEmail leaves the blog retrievable
	_, body = postJSON(t, app, "/delete-blog", map[string]string{
		"id":          id,
		"authorEmail": "intruder@example.com",
	})
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Delete failed", body["error"])
	assert.Len(t, getBlogs(t, app), 2)

	// Delete with the matching authorEmail removes it
	_, body = postJSON(t, app, "/delete-blog", map[string]string{
		"id":          id,
		"authorEmail": "owner@example.com",
	})
	assert.Equal(t, true, body["success"])
	blogs = getBlogs(t, app)
	assert.Len(t, blogs, 1)
	assert.Equal(t, "First Post", blogs[0]["title"])
}

func TestIncrementView(t *testing.T) {
	app, _ := setupApp(t)

	_, body := postJSON(t, app, "/save-blog", map[string]string{
		"title":       "Counted",
		"content":     "Body",
		"author":      "Owner",
		"authorEmail": "owner@example.com",
	})
	assert.Equal(t, true, body["success"])

	blogs := getBlogs(t, app)
	id := blogs[0]["id"].(string)
	updatedAtBefore := blogs[0]["updatedAt"]

	const n = 5
	for i := 0; i < n; i++ {
		_, body = postJSON(t, app, "/increment-view", map[string]string{"id": id})
		assert.Equal(t, true, body["success"])
	}

	blogs = getBlogs(t, app)
	assert.Equal(t, float64(n), blogs[0]["views"])
	// View increments never touch updatedAt
	assert.Equal(t, updatedAtBefore, blogs[0]["updatedAt"])

	// Incrementing an unknown id is a silent no-op, not a failure
	_, body = postJSON(t, app, "/increment-view", map[string]string{"id": "no-such-id"})
	assert.Equal(t, true, body["success"])
}

func TestUploadImage(t *testing.T) {
	app, _ := setupApp(t)

	// No file attached: the one non-200 path in the API
	req := httptest.NewRequest(http.MethodPost, "/upload-image", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var out map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	resp.Body.Close()
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "No file uploaded", out["error"])

	// A real upload round-trips byte-identically through /uploads
	content := []byte("\x89PNG fake image bytes")
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "photo.png")
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req = httptest.NewRequest(http.MethodPost, "/upload-image", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	out = map[string]interface{}{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	resp.Body.Close()
	assert.Equal(t, true, out["success"])
	url, ok := out["url"].(string)
	assert.True(t, ok)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, "_photo.png"))

	req = httptest.NewRequest(http.MethodGet, url, nil)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	served, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.NoError(t, err)
	assert.Equal(t, content, served)
}

func TestSendOTP(t *testing.T) {
	app, mockMailer := setupApp(t)

	// Delivered
	mockMailer.On("SendOTP", "reader@example.com", "123456").Return(nil).Once()
	status, body := postJSON(t, app, "/send-otp", map[string]string{
		"email": "reader@example.com",
		"otp":   "123456",
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	mockMailer.AssertExpectations(t)

	// Provider failure stays inside the envelope
	mockMailer.On("SendOTP", "reader@example.com", "654321").Return(fmt.Errorf("dial tcp: connection refused")).Once()
	status, body = postJSON(t, app, "/send-otp", map[string]string{
		"email": "reader@example.com",
		"otp":   "654321",
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Failed to send OTP", body["error"])
	mockMailer.AssertExpectations(t)
}
