package handler

import (
	"errors"
	"net/http"

	"erpforms/internal/logger"
	"erpforms/internal/service"
	"erpforms/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LookupHandler struct {
	lookupService service.LookupService
}

func NewLookupHandler(lookupService service.LookupService) *LookupHandler {
	return &LookupHandler{lookupService: lookupService}
}

func (h *LookupHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api")
	{
		api.GET("/lookups/:name", h.Lookup)
		api.GET("/choices", h.Choices)
	}
}

// Lookup returns the options of a selection widget
// @Summary      Lookup
// @Description  Read-only projections for selection widgets, optionally filtered by a case-insensitive substring.
// @Tags         lookups
// @Produce      json
// @Param        name  path      string  true   "suppliers, customers, areas, items, purchase-orders, requisitions, departments or inventory-categories"
// @Param        q     query     string  false  "Search text"
// @Success      200   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /api/lookups/{name} [get]
func (h *LookupHandler) Lookup(c *gin.Context) {
	res, err := h.lookupService.Lookup(c.Request.Context(), c.Param("name"), c.Query("q"))
	if errors.Is(err, service.ErrUnknownLookup) {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}
	if err != nil {
		logger.FromGin(c).Error("lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to load lookup"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// Choices lists every enumerated field and its allowed values
// @Summary      Choice sets
// @Tags         lookups
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.ChoiceSet}
// @Router       /api/choices [get]
func (h *LookupHandler) Choices(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.lookupService.Choices()))
}
