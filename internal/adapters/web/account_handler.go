package web

import (
	"net/http"

	"lotline-auction-service/internal/ports/inbound"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AccountHandler serves the register, login and logout routes
type AccountHandler struct {
	accounts inbound.AccountService
	logger   zerolog.Logger
}

func NewAccountHandler(accounts inbound.AccountService, logger zerolog.Logger) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		logger:   logger.With().Str("component", "account_handler").Logger(),
	}
}

// Register handles POST /register
func (h *AccountHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	session, err := h.accounts.Register(c.Request.Context(), inbound.RegisterRequest{
		Username:     req.Username,
		Email:        req.Email,
		Password:     req.Password,
		Confirmation: req.Confirmation,
		Address:      req.Address,
		PhoneNumber:  req.PhoneNumber,
	})
	if err != nil {
		status, message := mapErrorToHTTP(err)
		respondError(c, status, err, message)
		return
	}

	respond(c, http.StatusCreated, session, "account created successfully")
}

// Login handles POST /login
func (h *AccountHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	session, err := h.accounts.Login(c.Request.Context(), inbound.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		status, message := mapErrorToHTTP(err)
		respondError(c, status, err, message)
		return
	}

	respond(c, http.StatusOK, session, "login successful")
}

// Logout handles POST /logout
func (h *AccountHandler) Logout(c *gin.Context) {
	token := sessionToken(c)

	if err := h.accounts.Logout(c.Request.Context(), token); err != nil {
		status, message := mapErrorToHTTP(err)
		respondError(c, status, err, message)
		return
	}

	respond(c, http.StatusOK, nil, "logged out successfully")
}
