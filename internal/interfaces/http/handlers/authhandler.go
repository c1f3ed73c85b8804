package handlers

import (
	"github.com/gin-gonic/gin"

	apperrors "gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/utils"
)

// credentialVerifier checks the static operator credential.
type credentialVerifier interface {
	Verify(username, password string) error
}

// tokenIssuer signs operator session tokens.
type tokenIssuer interface {
	IssueToken(username string) (string, error)
}

type AuthHandler struct {
	credentials credentialVerifier
	tokens      tokenIssuer
	logger      logger.Interface
}

func NewAuthHandler(credentials credentialVerifier, tokens tokenIssuer, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		credentials: credentials,
		tokens:      tokens,
		logger:      logger,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Login checks the operator credential and returns a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, apperrors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	if err := h.credentials.Verify(req.Username, req.Password); err != nil {
		h.logger.Warnw("failed login attempt", "username", req.Username)
		utils.ErrorResponseWithError(c, apperrors.NewUnauthorizedError("invalid credentials"))
		return
	}

	token, err := h.tokens.IssueToken(req.Username)
	if err != nil {
		h.logger.Errorw("failed to issue session token", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewInternalError("failed to issue token"))
		return
	}

	utils.OKResponse(c, LoginResponse{Token: token, Username: req.Username}, "Login successful")
}
