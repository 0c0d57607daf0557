package students

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergington-admin/app/api"
	"mergington-admin/app/api/apitest"
	"mergington-admin/app/config"
	"mergington-admin/app/models"
	"mergington-admin/app/routes/auth"
)

func setup(t *testing.T) (*fiber.App, *apitest.Server) {
	t.Helper()
	backend := apitest.NewServer()
	t.Cleanup(backend.Close)

	config.AppConfig = &config.Config{
		JWTSecret:  "test-secret",
		AdminEmail: "admin@mergington.edu",
		API:        api.New(backend.URL, 5*time.Second),
	}

	engine := html.New("../../templates", ".html")
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
	})
	SetupStudentsRoutes(app)
	return app, backend
}

func authedRequest(t *testing.T, method, path string, form url.Values) *http.Request {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	token, err := auth.GenerateJWT(config.AppConfig.AdminEmail)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "jwt_token", Value: token})
	return req
}

func flashCookie(resp *http.Response) string {
	for _, c := range resp.Cookies() {
		if c.Name == "admin_flash" {
			return c.Value
		}
	}
	return ""
}

func TestStudentsPageRendersTable(t *testing.T) {
	app, backend := setup(t)
	phone := "555-0100"
	backend.Students["ada@x.com"] = models.Student{Name: "Ada", Email: "ada@x.com", Grade: "9", Phone: &phone}
	backend.Students["bob@x.com"] = models.Student{Name: "Bob", Email: "bob@x.com", Grade: "11"}

	resp, err := app.Test(authedRequest(t, http.MethodGet, "/students", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(body)
	assert.Contains(t, page, "9th Grade")
	assert.Contains(t, page, "555-0100")
	assert.Contains(t, page, "N/A", "missing phone renders as N/A")
}

func TestUnauthenticatedPageRedirectsToLogin(t *testing.T) {
	app, _ := setup(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/students", nil))
	require.NoError(t, err)
	assert.Equal(t, 302, resp.StatusCode)
	assert.Equal(t, "/auth/login", resp.Header.Get("Location"))
}

func TestCreateStudentFormFlow(t *testing.T) {
	app, backend := setup(t)

	form := url.Values{
		"name":  {"Ada"},
		"email": {"ada@x.com"},
		"grade": {"9"},
		"phone": {""},
	}
	resp, err := app.Test(authedRequest(t, http.MethodPost, "/students", form))
	require.NoError(t, err)
	assert.Equal(t, 302, resp.StatusCode)
	assert.Equal(t, "/students", resp.Header.Get("Location"))

	require.Contains(t, backend.Students, "ada@x.com")
	assert.Nil(t, backend.Students["ada@x.com"].Phone, "empty optional field is sent as absent")
	assert.True(t, strings.HasPrefix(flashCookie(resp), "success|"))
}

func TestUpdateMissingStudentShowsServerDetail(t *testing.T) {
	app, _ := setup(t)

	form := url.Values{
		"edit":  {"ghost@x.com"},
		"name":  {"Ghost"},
		"email": {"ghost@x.com"},
		"grade": {"12"},
	}
	resp, err := app.Test(authedRequest(t, http.MethodPost, "/students/update", form))
	require.NoError(t, err)
	assert.Equal(t, 302, resp.StatusCode)

	cookie := flashCookie(resp)
	assert.True(t, strings.HasPrefix(cookie, "error|"))
	text, err := url.QueryUnescape(strings.TrimPrefix(cookie, "error|"))
	require.NoError(t, err)
	assert.Equal(t, "Student not found", text)
}

func TestUpdateWithoutSelection(t *testing.T) {
	app, backend := setup(t)
	backend.Students["ada@x.com"] = models.Student{Name: "Ada", Email: "ada@x.com", Grade: "9"}

	form := url.Values{"name": {"Ada"}, "email": {"ada@x.com"}, "grade": {"10"}}
	resp, err := app.Test(authedRequest(t, http.MethodPost, "/students/update", form))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(flashCookie(resp), "error|"))
	assert.Equal(t, "9", backend.Students["ada@x.com"].Grade, "nothing was updated")
}

func TestDeleteStudentRemovesOnlyThatRow(t *testing.T) {
	app, backend := setup(t)
	backend.Students["ada@x.com"] = models.Student{Name: "Ada", Email: "ada@x.com", Grade: "9"}
	backend.Students["bob@x.com"] = models.Student{Name: "Bob", Email: "bob@x.com", Grade: "11"}

	form := url.Values{"email": {"ada@x.com"}}
	resp, err := app.Test(authedRequest(t, http.MethodPost, "/students/delete", form))
	require.NoError(t, err)
	assert.Equal(t, 302, resp.StatusCode)

	assert.NotContains(t, backend.Students, "ada@x.com")
	assert.Contains(t, backend.Students, "bob@x.com")
}

func TestGetStudentsAPI(t *testing.T) {
	app, backend := setup(t)
	backend.Students["ada@x.com"] = models.Student{Name: "Ada", Email: "ada@x.com", Grade: "9"}

	resp, err := app.Test(authedRequest(t, http.MethodGet, "/api/students", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"count":1`)
}

func TestGetStudentsAPIUnauthenticated(t *testing.T) {
	app, _ := setup(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/students", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}
