package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/H4CK3R01P/CodeEX-sub001/internal/services"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/utils"
)

// DomainHandler serves the static domain catalog. Every identifier
// resolves, unknown ones to the default domain.
type DomainHandler struct {
	BaseHandler
	service services.CatalogService
}

func NewDomainHandler(service services.CatalogService, logger utils.Logger) *DomainHandler {
	return &DomainHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ListDomains
// @Summary List selectable domains
// @Tags domains
// @Produce json
// @Success 200 {array} models.DomainConfig
// @Router /domains [get]
func (h *DomainHandler) ListDomains(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListDomains(c.Request.Context()))
}

func (h *DomainHandler) GetDomain(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Domain(c.Request.Context(), c.Param("id")))
}

func (h *DomainHandler) GetDataset(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Dataset(c.Request.Context(), c.Param("id")))
}

// GetLearnContent returns the generated learn listing for a domain
func (h *DomainHandler) GetLearnContent(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.LearnContent(c.Request.Context(), c.Param("id")))
}
