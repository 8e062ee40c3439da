package v1

import (
	"errors"
	"net/http"

	"github.com/crewreg/backend/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")

	auth.POST("/register", h.register)
	auth.POST("/verify", h.verify)
	auth.POST("/resend-code", h.resendCode)
	auth.POST("/login", h.login)
	auth.GET("/me", h.accountIdentityMiddleware, h.me)
}

type registerRequest struct {
	College         string `json:"college" binding:"required,min=2,max=100"`
	Committee       string `json:"committee" binding:"required,min=2,max=100"`
	Email           string `json:"email" binding:"required,email"`
	Contact         string `json:"contact" binding:"required,contact"`
	Password        string `json:"password" binding:"required,min=6,max=64"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

type registerResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

// @Summary Register
// @Tags Auth
// @Description Create a pending account and send a verification code by email
// @ModuleID register
// @Accept  json
// @Produce  json
// @Param input body registerRequest true "account details"
// @Success 200 {object} registerResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	err := h.services.Accounts.Register(c.Request.Context(), service.RegisterAccountInput{
		Email:     req.Email,
		College:   req.College,
		Committee: req.Committee,
		Contact:   req.Contact,
		Password:  req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccountAlreadyRegistered):
			errorResponse(c, http.StatusBadRequest, AccountAlreadyRegisteredCode)
		case errors.Is(err, service.ErrNotificationFailed):
			errorResponse(c, http.StatusInternalServerError, NotificationFailedCode)
		default:
			internalErrorResponse(c, err)
		}
		return
	}

	// email echoed back so the verify form does not require retyping it
	c.JSON(http.StatusOK, registerResponse{
		Message: "Verification code sent",
		Email:   req.Email,
	})
}

type verifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// @Summary Verify
// @Tags Auth
// @Description Confirm email ownership with the one-time code
// @ModuleID verify
// @Accept  json
// @Produce  json
// @Param input body verifyRequest true "email and code"
// @Success 200 {object} messageResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500
// @Router /auth/verify [post]
func (h *Handler) verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	err := h.services.Accounts.Verify(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccountNotFound):
			errorResponse(c, http.StatusBadRequest, AccountNotFoundCode)
		case errors.Is(err, service.ErrAccountAlreadyVerified):
			errorResponse(c, http.StatusBadRequest, AccountAlreadyVerifiedCode)
		case errors.Is(err, service.ErrCodeExpired):
			errorResponse(c, http.StatusBadRequest, CodeExpiredCode)
		case errors.Is(err, service.ErrInvalidCode):
			errorResponse(c, http.StatusBadRequest, InvalidCodeCode)
		default:
			internalErrorResponse(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Registration successful"})
}

type resendCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// @Summary Resend code
// @Tags Auth
// @Description Issue a fresh verification code, invalidating the previous one
// @ModuleID resendCode
// @Accept  json
// @Produce  json
// @Param input body resendCodeRequest true "account email"
// @Success 200 {object} messageResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /auth/resend-code [post]
func (h *Handler) resendCode(c *gin.Context) {
	var req resendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	err := h.services.Accounts.Resend(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccountNotFound):
			errorResponse(c, http.StatusBadRequest, AccountNotFoundCode)
		case errors.Is(err, service.ErrAccountAlreadyVerified):
			errorResponse(c, http.StatusBadRequest, AccountAlreadyVerifiedCode)
		case errors.Is(err, service.ErrNotificationFailed):
			errorResponse(c, http.StatusInternalServerError, NotificationFailedCode)
		default:
			internalErrorResponse(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "Verification code resent"})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// @Summary Login
// @Tags Auth
// @Description Authenticate a verified account and issue a session token
// @ModuleID login
// @Accept  json
// @Produce  json
// @Param input body loginRequest true "credentials"
// @Success 200 {object} loginResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	token, err := h.services.Accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			errorResponse(c, http.StatusBadRequest, InvalidCredentialsCode)
		case errors.Is(err, service.ErrAccountNotVerified):
			errorResponse(c, http.StatusBadRequest, AccountNotVerifiedCode)
		default:
			internalErrorResponse(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		AccessToken: token.AccessToken,
		ExpiresIn:   int64(token.ExpiresIn.Seconds()),
	})
}

// @Summary Me
// @Tags Auth
// @Description Current account profile
// @ModuleID me
// @Accept  json
// @Produce  json
// @Success 200
// @Failure 401
// @Failure 500
// @Security AccountAuth
// @Router /auth/me [get]
func (h *Handler) me(c *gin.Context) {
	id, err := h.getAccountUUID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	account, err := h.services.Accounts.GetProfile(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			errorResponse(c, http.StatusNotFound, AccountNotFoundCode)
			return
		}
		internalErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}
