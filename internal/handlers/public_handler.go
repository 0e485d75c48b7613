package handlers

import (
	"net/http"

	"compro_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// PublicHandler - чтение для публичного сайта, без аутентификации
type PublicHandler struct {
	*BaseHandler
	publicService services.PublicService
}

func NewPublicHandler(base *BaseHandler, publicService services.PublicService) *PublicHandler {
	return &PublicHandler{
		BaseHandler:   base,
		publicService: publicService,
	}
}

func (h *PublicHandler) RegisterRoutes(g RouteGroups) {
	g.Public.GET("/home", h.Home)

	public := g.Public.Group("/public")
	{
		public.GET("/portfolios", h.ListPortfolios)
		public.GET("/portfolios/:slug", h.ShowPortfolio)
	}
}

// GET /home
// Home godoc
// @Summary Контент главной страницы
// @Description Активные записи всех разделов и избранные работы портфолио
// @Tags public
// @Produce json
// @Success 200 {object} dto.HomeFeed
// @Router /home [get]
func (h *PublicHandler) Home(c *gin.Context) {
	feed, err := h.publicService.GetHomeFeed(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

// GET /public/portfolios
// ListPortfolios godoc
// @Summary Активные работы портфолио
// @Tags public
// @Produce json
// @Param category query string false "design, photography, video, branding или all"
// @Success 200 {object} map[string][]models.Portfolio
// @Router /public/portfolios [get]
func (h *PublicHandler) ListPortfolios(c *gin.Context) {
	items, err := h.publicService.ListPublicPortfolios(c.Request.Context(), h.GetDB(c), c.Query("category"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// GET /public/portfolios/:slug
// ShowPortfolio godoc
// @Summary Работа портфолио по slug
// @Tags public
// @Produce json
// @Param slug path string true "Slug"
// @Success 200 {object} map[string]models.Portfolio
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /public/portfolios/{slug} [get]
func (h *PublicHandler) ShowPortfolio(c *gin.Context) {
	portfolio, err := h.publicService.GetPublicPortfolioBySlug(c.Request.Context(), h.GetDB(c), c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": portfolio})
}
