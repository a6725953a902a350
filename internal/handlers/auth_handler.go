package handlers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/harramos25/GlamBook/internal/audit"
	"github.com/harramos25/GlamBook/internal/config"
	"github.com/harramos25/GlamBook/internal/domain/booking"
	"github.com/harramos25/GlamBook/internal/dto"
	"github.com/harramos25/GlamBook/internal/httperr"
	"github.com/harramos25/GlamBook/internal/httpresp"
	"github.com/harramos25/GlamBook/internal/models"
)

const tokenTTL = 24 * time.Hour

type UserFinder interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type AuthHandler struct {
	users  UserFinder
	config *config.Config
	audit  *audit.Dispatcher
}

func NewAuthHandler(
	users UserFinder,
	cfg *config.Config,
	audit *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{users: users, config: cfg, audit: audit}
}

// POST /api/auth/login
//
// Only ADMIN users have a password; everyone else is rejected the same way
// as a wrong password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.users.FindUserByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "invalid credentials")
			return
		}
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("login lookup")
		httperr.Internal(c, "internal_error", "internal error")
		return
	}

	if user.Role != models.RoleAdmin || user.PasswordHash == "" {
		httperr.Unauthorized(c, "invalid_credentials", "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "invalid credentials")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "failed to generate token")
		return
	}

	if h.audit != nil {
		h.audit.Dispatch(audit.Event{
			UserID: audit.StrPtr(user.ID),
			Action: audit.ActionAdminLogin,
			Entity: "user",
		})
	}

	httpresp.OK(c, dto.LoginResponse{
		Token: token,
		Name:  user.Name,
		Role:  user.Role,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  now.Add(tokenTTL).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
