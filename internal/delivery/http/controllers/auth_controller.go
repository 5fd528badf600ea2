package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	h "eventlisting/internal/delivery/http/helpers"
	"eventlisting/internal/domain"
)

// LoginRequest holds editor credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the bearer token for the editor API. ExpiresIn is in seconds.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"`
}

// AuthController exchanges editor credentials for a token.
type AuthController struct {
	Logger      *slog.Logger
	Service     domain.AuthService
	TokenExpiry time.Duration
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService, tokenExpiry time.Duration) *AuthController {
	return &AuthController{Logger: logger, Service: svc, TokenExpiry: tokenExpiry}
}

// Login godoc
// @Summary Log in as an editor
// @Description Exchanges email and password for a JWT accepted by the /api routes.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Editor credentials"
// @Success 200 {object} helpers.APIResponse{data=controllers.LoginResponse}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	token, err := c.Service.Login(r.Context(), email, req.Password)
	if err != nil {
		h.WriteServiceError(w, r, c.Logger, err)
		return
	}
	c.Logger.InfoContext(r.Context(), "editor logged in", "email", email)
	h.WriteJSONSuccess(w, http.StatusOK, LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int(c.TokenExpiry / time.Second),
	})
}
