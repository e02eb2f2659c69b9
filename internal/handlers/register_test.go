package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/hirehub/internship-portal/internal/models"
	"github.com/hirehub/internship-portal/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: `{"name":"Alice","email":"alice@example.com","password":"secret","role":"student"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "Alice", "alice@example.com", "secret", models.RoleStudent).
					Return(int64(1), nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"message":"User registered successfully","userId":1}`,
		},
		{
			name:         "invalid body",
			body:         `{not json`,
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request body"}`,
		},
		{
			name:         "missing field",
			body:         `{"name":"Alice","email":"alice@example.com","role":"student"}`,
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"All fields are required"}`,
		},
		{
			name:         "unknown role",
			body:         `{"name":"Alice","email":"alice@example.com","password":"secret","role":"admin"}`,
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Role must be either \"student\" or \"faculty\""}`,
		},
		{
			name: "email taken",
			body: `{"name":"Alice","email":"alice@example.com","password":"secret","role":"student"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "Alice", "alice@example.com", "secret", models.RoleStudent).
					Return(int64(0), services.ErrEmailTaken)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"User with this email already exists"}`,
		},
		{
			name: "internal error",
			body: `{"name":"Alice","email":"alice@example.com","password":"secret","role":"student"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), "Alice", "alice@example.com", "secret", models.RoleStudent).
					Return(int64(0), errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			NewRegisterHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
