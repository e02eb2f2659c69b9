package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirehub/internship-portal/internal/jwt"
	"github.com/hirehub/internship-portal/internal/middlewares"
	"github.com/hirehub/internship-portal/internal/models"
	"github.com/hirehub/internship-portal/internal/repositories"
	"github.com/hirehub/internship-portal/internal/services"
	"github.com/hirehub/internship-portal/internal/uploads"
)

// newTestServer wires the full stack against in-memory storage, the same
// shape the binary assembles at startup.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	accountRepo := repositories.NewAccountMemoryRepository()
	listingRepo := repositories.NewListingMemoryRepository()
	applicationRepo := repositories.NewApplicationMemoryRepository()

	tokens := jwt.New("test-secret", time.Hour)
	authSvc := services.NewAuthService(accountRepo, accountRepo, tokens)
	listingSvc := services.NewListingService(listingRepo, listingRepo)
	applicationSvc := services.NewApplicationService(applicationRepo, applicationRepo, listingRepo, accountRepo)
	notificationSvc := services.NewNotificationService()

	fileStore, err := uploads.NewStore(t.TempDir())
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Post("/api/auth/register", NewRegisterHandler(authSvc))
	router.Post("/api/auth/login", NewLoginHandler(authSvc))
	router.Get("/api/internships", NewListInternshipsHandler(listingSvc))
	router.Get("/api/internships/{id}", NewGetInternshipHandler(listingSvc))
	router.Post("/api/notifications/email", NewEmailNotificationHandler(notificationSvc))

	router.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens))
		r.Use(middlewares.RequireRole(models.RoleFaculty))
		r.Post("/api/internships", NewCreateInternshipHandler(listingSvc))
		r.Get("/api/internships/{id}/applications", NewListApplicationsHandler(applicationSvc))
		r.Patch("/api/applications/{id}", NewUpdateApplicationStatusHandler(applicationSvc))
	})

	router.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens))
		r.Use(middlewares.RequireRole(models.RoleStudent))
		r.Post("/api/applications", NewApplyHandler(applicationSvc, fileStore))
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, srv *httptest.Server, method, path, token, body string) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, srv.URL+path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func registerAndLogin(t *testing.T, srv *httptest.Server, name, email, role string) string {
	t.Helper()

	resp, _ := doJSON(t, srv, http.MethodPost, "/api/auth/register", "",
		`{"name":"`+name+`","email":"`+email+`","password":"secret","role":"`+role+`"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, srv, http.MethodPost, "/api/auth/login", "",
		`{"email":"`+email+`","password":"secret"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, role, body["role"])

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func submitApplication(t *testing.T, srv *httptest.Server, token, internshipID string) (*http.Response, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("internshipId", internshipID))
	h := make(map[string][]string)
	h["Content-Disposition"] = []string{`form-data; name="resume"; filename="cv.pdf"`}
	h["Content-Type"] = []string{"application/pdf"}
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 test resume"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/applications", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func TestPortalFlow(t *testing.T) {
	srv := newTestServer(t)

	facultyToken := registerAndLogin(t, srv, "Prof Smith", "prof@example.com", "faculty")
	studentToken := registerAndLogin(t, srv, "Alice", "alice@example.com", "student")

	// duplicate registration is rejected
	resp, body := doJSON(t, srv, http.MethodPost, "/api/auth/register", "",
		`{"name":"Alice","email":"alice@example.com","password":"other","role":"student"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "User with this email already exists", body["error"])

	// faculty posts an internship
	resp, body = doJSON(t, srv, http.MethodPost, "/api/internships", facultyToken, `{
		"title":"Backend Intern","description":"Build APIs","skillsRequired":["Go","SQL"],
		"stipend":"15000","applicationDeadline":"2026-10-01","location":"Remote",
		"companyName":"Acme","duration":"3 months"
	}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, float64(1), body["internshipId"])

	// public list and detail views
	resp, _ = doJSON(t, srv, http.MethodGet, "/api/internships", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, body = doJSON(t, srv, http.MethodGet, "/api/internships/1", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Backend Intern", body["title"])

	// student applies with a PDF resume
	resp, body = submitApplication(t, srv, studentToken, "1")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, float64(1), body["applicationId"])

	// a second application to the same internship conflicts
	resp, body = submitApplication(t, srv, studentToken, "1")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "You have already applied for this internship", body["error"])

	// faculty reviews the applications and sees the applicant
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/internships/1/applications", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+facultyToken)
	listResp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer listResp.Body.Close()
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var summaries []map[string]any
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "Alice", summaries[0]["studentName"])
	assert.Equal(t, "Pending", summaries[0]["status"])

	// faculty accepts
	resp, body = doJSON(t, srv, http.MethodPatch, "/api/applications/1", facultyToken, `{"status":"Accepted"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Application status updated successfully", body["message"])

	// the decision is visible on a fresh read
	req, err = http.NewRequest(http.MethodGet, srv.URL+"/api/internships/1/applications", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+facultyToken)
	listResp, err = srv.Client().Do(req)
	require.NoError(t, err)
	defer listResp.Body.Close()
	summaries = nil
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "Accepted", summaries[0]["status"])
}

func TestPortalFlow_RoleEnforcement(t *testing.T) {
	srv := newTestServer(t)

	facultyToken := registerAndLogin(t, srv, "Prof Smith", "prof@example.com", "faculty")
	studentToken := registerAndLogin(t, srv, "Alice", "alice@example.com", "student")

	// a student may not post internships
	resp, body := doJSON(t, srv, http.MethodPost, "/api/internships", studentToken, `{
		"title":"Backend Intern","description":"Build APIs","skillsRequired":["Go"],
		"stipend":"15000","applicationDeadline":"2026-10-01","location":"Remote",
		"companyName":"Acme","duration":"3 months"
	}`)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Access denied. faculty role required.", body["error"])

	// a faculty account may not apply
	resp, _ = submitApplication(t, srv, facultyToken, "1")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// no token at all
	resp, body = doJSON(t, srv, http.MethodPost, "/api/internships", "", `{}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Access token required", body["error"])
}

func TestPortalFlow_ForeignFacultyCannotSee(t *testing.T) {
	srv := newTestServer(t)

	ownerToken := registerAndLogin(t, srv, "Prof Smith", "prof@example.com", "faculty")
	otherToken := registerAndLogin(t, srv, "Prof Jones", "jones@example.com", "faculty")

	resp, _ := doJSON(t, srv, http.MethodPost, "/api/internships", ownerToken, `{
		"title":"Backend Intern","description":"Build APIs","skillsRequired":["Go"],
		"stipend":"15000","applicationDeadline":"2026-10-01","location":"Remote",
		"companyName":"Acme","duration":"3 months"
	}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// the non-owner gets the same 404 as a missing listing
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/internships/1/applications", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+otherToken)
	listResp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer listResp.Body.Close()
	assert.Equal(t, http.StatusNotFound, listResp.StatusCode)
}
