package handlers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/hirehub/internship-portal/internal/jwt"
	"github.com/hirehub/internship-portal/internal/models"
	"github.com/hirehub/internship-portal/internal/services"
	"github.com/hirehub/internship-portal/internal/uploads"
)

var studentClaims = &jwt.Claims{UserID: 10, Email: "alice@example.com", Role: models.RoleStudent}

// applyForm builds a multipart body with the given internshipId field and
// an optional resume part.
func applyForm(t *testing.T, internshipID string, withResume bool) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if internshipID != "" {
		assert.NoError(t, mw.WriteField("internshipId", internshipID))
	}
	if withResume {
		h := make(map[string][]string)
		h["Content-Disposition"] = []string{`form-data; name="resume"; filename="cv.pdf"`}
		h["Content-Type"] = []string{"application/pdf"}
		part, err := mw.CreatePart(h)
		assert.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4 test"))
		assert.NoError(t, err)
	}
	assert.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestApplyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		internshipID string
		withResume   bool
		claims       *jwt.Claims
		mockSetup    func(svc *MockApplier, files *MockResumeSaver)
		expectedCode int
		expectedBody string
	}{
		{
			name:         "success",
			internshipID: "1",
			withResume:   true,
			claims:       studentClaims,
			mockSetup: func(svc *MockApplier, files *MockResumeSaver) {
				files.EXPECT().SaveResume(gomock.Any(), gomock.Any()).Return("/uploads/resume-1.pdf", nil)
				svc.EXPECT().Apply(gomock.Any(), int64(10), int64(1), "/uploads/resume-1.pdf").Return(int64(7), nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"message":"Application submitted successfully","applicationId":7}`,
		},
		{
			name:         "no claims",
			internshipID: "1",
			withResume:   true,
			mockSetup:    func(svc *MockApplier, files *MockResumeSaver) {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"Access token required"}`,
		},
		{
			name:         "missing internship id",
			internshipID: "",
			withResume:   true,
			claims:       studentClaims,
			mockSetup:    func(svc *MockApplier, files *MockResumeSaver) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Internship ID is required"}`,
		},
		{
			name:         "missing resume",
			internshipID: "1",
			withResume:   false,
			claims:       studentClaims,
			mockSetup:    func(svc *MockApplier, files *MockResumeSaver) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Resume file is required"}`,
		},
		{
			name:         "non-numeric internship id",
			internshipID: "abc",
			withResume:   true,
			claims:       studentClaims,
			mockSetup:    func(svc *MockApplier, files *MockResumeSaver) {},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Internship not found"}`,
		},
		{
			name:         "not a pdf",
			internshipID: "1",
			withResume:   true,
			claims:       studentClaims,
			mockSetup: func(svc *MockApplier, files *MockResumeSaver) {
				files.EXPECT().SaveResume(gomock.Any(), gomock.Any()).Return("", uploads.ErrNotPDF)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Only PDF files are allowed for resume upload."}`,
		},
		{
			name:         "file too large",
			internshipID: "1",
			withResume:   true,
			claims:       studentClaims,
			mockSetup: func(svc *MockApplier, files *MockResumeSaver) {
				files.EXPECT().SaveResume(gomock.Any(), gomock.Any()).Return("", uploads.ErrTooLarge)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"File size too large. Maximum size is 5MB."}`,
		},
		{
			name:         "unknown internship",
			internshipID: "99",
			withResume:   true,
			claims:       studentClaims,
			mockSetup: func(svc *MockApplier, files *MockResumeSaver) {
				files.EXPECT().SaveResume(gomock.Any(), gomock.Any()).Return("/uploads/resume-2.pdf", nil)
				svc.EXPECT().Apply(gomock.Any(), int64(10), int64(99), "/uploads/resume-2.pdf").
					Return(int64(0), services.ErrListingNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Internship not found"}`,
		},
		{
			name:         "duplicate application",
			internshipID: "1",
			withResume:   true,
			claims:       studentClaims,
			mockSetup: func(svc *MockApplier, files *MockResumeSaver) {
				files.EXPECT().SaveResume(gomock.Any(), gomock.Any()).Return("/uploads/resume-3.pdf", nil)
				svc.EXPECT().Apply(gomock.Any(), int64(10), int64(1), "/uploads/resume-3.pdf").
					Return(int64(0), services.ErrAlreadyApplied)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"You have already applied for this internship"}`,
		},
		{
			name:         "internal error",
			internshipID: "1",
			withResume:   true,
			claims:       studentClaims,
			mockSetup: func(svc *MockApplier, files *MockResumeSaver) {
				files.EXPECT().SaveResume(gomock.Any(), gomock.Any()).Return("/uploads/resume-4.pdf", nil)
				svc.EXPECT().Apply(gomock.Any(), int64(10), int64(1), "/uploads/resume-4.pdf").
					Return(int64(0), errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockApplier(ctrl)
			mockFiles := NewMockResumeSaver(ctrl)
			tt.mockSetup(mockSvc, mockFiles)

			body, contentType := applyForm(t, tt.internshipID, tt.withResume)
			req := httptest.NewRequest(http.MethodPost, "/api/applications", body)
			req.Header.Set("Content-Type", contentType)
			if tt.claims != nil {
				req = withClaims(req, tt.claims)
			}

			rr := httptest.NewRecorder()
			NewApplyHandler(mockSvc, mockFiles)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
