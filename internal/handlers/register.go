package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hirehub/internship-portal/internal/logger"
	"github.com/hirehub/internship-portal/internal/models"
	"github.com/hirehub/internship-portal/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, password string, role models.Role) (int64, error)
}

// RegisterRequest represents the JSON body for account registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Full name
	// required: true
	Name string `json:"name"`

	// Email address
	// required: true
	Email string `json:"email"`

	// Password
	// required: true
	Password string `json:"password"`

	// Role, student or faculty
	// required: true
	Role models.Role `json:"role"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// ErrorResponse is the uniform error body for every endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewRegisterHandler returns an HTTP handler for account registration.
// @Summary Register a new user
// @Description Creates a student or faculty account. The password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Registration request"
// @Success 201 {object} handlers.RegisterResponse "Account created"
// @Failure 400 {object} handlers.ErrorResponse "Missing field or unknown role"
// @Failure 409 {object} handlers.ErrorResponse "Email already registered"
// @Router /api/auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Name == "" || req.Email == "" || req.Password == "" || req.Role == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "All fields are required"})
			return
		}
		if !req.Role.Valid() {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: `Role must be either "student" or "faculty"`})
			return
		}

		id, err := svc.Register(r.Context(), req.Name, req.Email, req.Password, req.Role)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailTaken):
				writeJSON(w, http.StatusConflict, ErrorResponse{Error: "User with this email already exists"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Message: "User registered successfully",
			UserID:  id,
		})
	}
}

// writeJSON encodes v with the given status code.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
