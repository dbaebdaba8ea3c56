package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/elarahealth/elara/internal/db"
	"github.com/elarahealth/elara/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	testSecretKey     = "test-secret-key"
	testDispatchToken = "test-dispatch-token"
)

type recordedMail struct {
	to      string
	subject string
	body    string
}

type recordingMailer struct {
	sent    []recordedMail
	sendErr error
}

func (mailer *recordingMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if mailer.sendErr != nil {
		return mailer.sendErr
	}
	mailer.sent = append(mailer.sent, recordedMail{to: to, subject: subject, body: htmlBody})
	return nil
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *recordingMailer) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "elara-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	repos := db.NewRepositories(database)
	mailer := &recordingMailer{}
	reminders := services.NewReminderService(repos.Reminders, repos.Users, mailer, "https://elara.test")
	checks := services.NewCheckService(repos.Records)

	handler, err := NewHandler(repos, reminders, checks, Config{
		Secret:        testSecretKey,
		DispatchToken: testDispatchToken,
	})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database, mailer
}

func jsonRequest(t *testing.T, method string, path string, payload any, authCookie string) *http.Request {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, body)
	request.Header.Set("Content-Type", "application/json")
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}
	return request
}

func decodeJSONBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func registerTestUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/api/auth/register", fiber.Map{
		"email":        email,
		"password":     "Str0ngPassw0rd",
		"display_name": "Test User",
	}, "")
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("register request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected register status 201, got %d", response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}

	t.Fatal("auth cookie missing in register response")
	return ""
}

func updateProfileSettings(t *testing.T, app *fiber.App, authCookie string, payload fiber.Map) map[string]any {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/api/settings/profile", payload, authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("settings request failed: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected settings status 200, got %d", response.StatusCode)
	}

	var decoded map[string]any
	decodeJSONBody(t, response, &decoded)
	return decoded
}

func runDispatch(t *testing.T, app *fiber.App, token string) (*http.Response, error) {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/api/reminders/dispatch", nil, "")
	if token != "" {
		request.Header.Set(dispatchTokenHeader, token)
	}
	return app.Test(request, -1)
}
