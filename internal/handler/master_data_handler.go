package handler

import (
	"erpforms/internal/middleware"
	"erpforms/internal/model"
	"erpforms/internal/service"

	"github.com/gin-gonic/gin"
)

// MasterDataHandler serves the entry forms of areas, partners, departments, categories and items.
type MasterDataHandler struct {
	areas    service.AreaService
	partners service.PartnerService
	catalog  service.CatalogService
	codes    service.NextCodeService
	auth     *middleware.Authenticator
}

func NewMasterDataHandler(areas service.AreaService, partners service.PartnerService, catalog service.CatalogService,
	codes service.NextCodeService, auth *middleware.Authenticator) *MasterDataHandler {
	return &MasterDataHandler{areas: areas, partners: partners, catalog: catalog, codes: codes, auth: auth}
}

func (h *MasterDataHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api")
	write := h.auth.RequireRole()

	api.POST("/areas", write, h.CreateArea)
	api.GET("/areas/next-code", nextCode(h.codes, model.EntityArea))
	api.POST("/suppliers", write, h.CreateSupplier)
	api.GET("/suppliers/next-code", nextCode(h.codes, model.EntitySupplier))
	api.POST("/customers", write, h.CreateCustomer)
	api.GET("/customers/next-code", nextCode(h.codes, model.EntityCustomer))
	api.POST("/departments", write, h.CreateDepartment)
	api.GET("/departments/next-code", nextCode(h.codes, model.EntityDepartment))
	api.POST("/inventory-categories", write, h.CreateInventoryCategory)
	api.GET("/inventory-categories/next-code", nextCode(h.codes, model.EntityInventoryCategory))
	api.POST("/items", write, h.CreateItem)
	api.GET("/items/next-code", nextCode(h.codes, model.EntityItem))
}

// CreateArea creates an operational area
// @Summary      Create area
// @Description  Area code defaults to the next free code; the display code (AREA-0001) is generated.
// @Tags         master-data
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateAreaRequest  true  "Area payload"
// @Success      201      {object}  response.Response{data=model.Area}
// @Failure      409      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/areas [post]
func (h *MasterDataHandler) CreateArea(c *gin.Context) {
	createRecord(c, h.areas.CreateArea)
}

// CreateSupplier creates a supplier
// @Summary      Create supplier
// @Description  At least one of contact_email and contact_phone is required.
// @Tags         master-data
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateSupplierRequest  true  "Supplier payload"
// @Success      201      {object}  response.Response{data=model.Supplier}
// @Failure      409      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/suppliers [post]
func (h *MasterDataHandler) CreateSupplier(c *gin.Context) {
	createRecord(c, h.partners.CreateSupplier)
}

// CreateCustomer creates a customer
// @Summary      Create customer
// @Tags         master-data
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateCustomerRequest  true  "Customer payload"
// @Success      201      {object}  response.Response{data=model.Customer}
// @Failure      409      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/customers [post]
func (h *MasterDataHandler) CreateCustomer(c *gin.Context) {
	createRecord(c, h.partners.CreateCustomer)
}

// @Summary      Create department
// @Tags         master-data
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateNamedRequest  true  "Department payload"
// @Success      201      {object}  response.Response{data=model.Department}
// @Failure      422      {object}  response.Response
// @Router       /api/departments [post]
func (h *MasterDataHandler) CreateDepartment(c *gin.Context) {
	createRecord(c, h.catalog.CreateDepartment)
}

// @Summary      Create inventory category
// @Tags         master-data
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateNamedRequest  true  "Category payload"
// @Success      201      {object}  response.Response{data=model.InventoryCategory}
// @Failure      422      {object}  response.Response
// @Router       /api/inventory-categories [post]
func (h *MasterDataHandler) CreateInventoryCategory(c *gin.Context) {
	createRecord(c, h.catalog.CreateInventoryCategory)
}

// CreateItem creates an item definition
// @Summary      Create item
// @Description  item_code is generated (ITEM-0001) when left blank.
// @Tags         master-data
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateItemRequest  true  "Item payload"
// @Success      201      {object}  response.Response{data=model.ItemDefinition}
// @Failure      409      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/items [post]
func (h *MasterDataHandler) CreateItem(c *gin.Context) {
	createRecord(c, h.catalog.CreateItem)
}
