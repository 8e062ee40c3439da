package v1

import (
	"github.com/crewreg/backend/internal/config"
	"github.com/crewreg/backend/internal/service"
	"github.com/crewreg/backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title Registration API
// @version 1.0
// @description Account registration, email verification and login

// @BasePath /api/v1

// @securityDefinitions.apikey AccountAuth
// @in header
// @name Authorization

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	config       *config.Config
}

func NewHandler(
	services *service.Services,
	tokenManager auth.TokenManager,
	config *config.Config,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		config:       config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1")

	h.initAuthRoutes(v1)
}
