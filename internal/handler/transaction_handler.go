package handler

import (
	"erpforms/internal/middleware"
	"erpforms/internal/model"
	"erpforms/internal/service"

	"github.com/gin-gonic/gin"
)

// TransactionHandler serves the procurement and stock document forms.
type TransactionHandler struct {
	purchasing service.PurchasingService
	stock      service.StockService
	codes      service.NextCodeService
	auth       *middleware.Authenticator
}

func NewTransactionHandler(purchasing service.PurchasingService, stock service.StockService,
	codes service.NextCodeService, auth *middleware.Authenticator) *TransactionHandler {
	return &TransactionHandler{purchasing: purchasing, stock: stock, codes: codes, auth: auth}
}

func (h *TransactionHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api")
	write := h.auth.RequireRole()

	api.POST("/requisitions", write, h.CreateRequisition)
	api.GET("/requisitions/next-code", nextCode(h.codes, model.EntityRequisition))
	api.POST("/purchase-orders", write, h.CreatePurchaseOrder)
	api.GET("/purchase-orders/next-code", nextCode(h.codes, model.EntityPurchaseOrder))
	api.POST("/purchases", write, h.CreatePurchase)
	api.GET("/purchases/next-code", nextCode(h.codes, model.EntityPurchase))
	api.POST("/receipts", write, h.CreateReceipt)
	api.GET("/receipts/next-code", nextCode(h.codes, model.EntityReceipt))
	api.POST("/purchase-vouchers", write, h.CreatePurchaseVoucher)
	api.GET("/purchase-vouchers/next-code", nextCode(h.codes, model.EntityPurchaseVoucher))
	api.POST("/lot-transactions", write, h.CreateLotTransaction)
	api.GET("/lot-transactions/next-code", nextCode(h.codes, model.EntityLotTransaction))
	api.POST("/issue-transactions", write, h.CreateIssueTransaction)
	api.GET("/issue-transactions/next-code", nextCode(h.codes, model.EntityIssueTransaction))
}

// @Summary      Create requisition
// @Tags         purchasing
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateRequisitionRequest  true  "Requisition payload"
// @Success      201      {object}  response.Response{data=model.Requisition}
// @Failure      409      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/requisitions [post]
func (h *TransactionHandler) CreateRequisition(c *gin.Context) {
	createRecord(c, h.purchasing.CreateRequisition)
}

// @Summary      Create purchase order
// @Tags         purchasing
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreatePurchaseOrderRequest  true  "Purchase order payload"
// @Success      201      {object}  response.Response{data=model.PurchaseOrder}
// @Failure      409      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/purchase-orders [post]
func (h *TransactionHandler) CreatePurchaseOrder(c *gin.Context) {
	createRecord(c, h.purchasing.CreatePurchaseOrder)
}

// CreatePurchase records a purchase against an active supplier
// @Summary      Create purchase
// @Description  total_amount must be greater than zero and purchase_date may not lie in the future.
// @Tags         purchasing
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreatePurchaseRequest  true  "Purchase payload"
// @Success      201      {object}  response.Response{data=model.Purchase}
// @Failure      422      {object}  response.Response
// @Router       /api/purchases [post]
func (h *TransactionHandler) CreatePurchase(c *gin.Context) {
	createRecord(c, h.purchasing.CreatePurchase)
}

// @Summary      Create goods receipt note
// @Tags         purchasing
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateReceiptRequest  true  "GRN payload"
// @Success      201      {object}  response.Response{data=model.ReceiptTransaction}
// @Failure      409      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/receipts [post]
func (h *TransactionHandler) CreateReceipt(c *gin.Context) {
	createRecord(c, h.purchasing.CreateReceipt)
}

// @Summary      Create purchase voucher
// @Tags         purchasing
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreatePurchaseVoucherRequest  true  "Voucher payload"
// @Success      201      {object}  response.Response{data=model.PurchaseVoucher}
// @Failure      409      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/purchase-vouchers [post]
func (h *TransactionHandler) CreatePurchaseVoucher(c *gin.Context) {
	createRecord(c, h.purchasing.CreatePurchaseVoucher)
}

// CreateLotTransaction opens a processing lot for a customer
// @Summary      Create lot transaction
// @Tags         stock
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateLotTransactionRequest  true  "Lot payload"
// @Success      201      {object}  response.Response{data=model.LotTransaction}
// @Failure      409      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/lot-transactions [post]
func (h *TransactionHandler) CreateLotTransaction(c *gin.Context) {
	createRecord(c, h.stock.CreateLotTransaction)
}

// @Summary      Create issue transaction
// @Tags         stock
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateIssueTransactionRequest  true  "Issue payload"
// @Success      201      {object}  response.Response{data=model.IssueTransaction}
// @Failure      409      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/issue-transactions [post]
func (h *TransactionHandler) CreateIssueTransaction(c *gin.Context) {
	createRecord(c, h.stock.CreateIssueTransaction)
}
