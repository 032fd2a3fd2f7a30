package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"erpforms/internal/config"
	"erpforms/internal/middleware"
	"erpforms/internal/model"
	"erpforms/internal/repository"
	"erpforms/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testSecret = "handler-test-secret-with-32-chars!!"

type apiResponse struct {
	Status         string            `json:"status"`
	StatusCode     int               `json:"status_code"`
	Data           json.RawMessage   `json:"data"`
	Message        string            `json:"message"`
	Error          string            `json:"error"`
	Errors         map[string]string `json:"errors"`
	NonFieldErrors []string          `json:"non_field_errors"`
	Values         map[string]any    `json:"values"`
}

type testAPI struct {
	router *gin.Engine
	db     *gorm.DB
}

func newTestAPI(t *testing.T, authEnabled bool) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(model.AllModels()...))

	records := repository.NewRecords(db)
	audit := repository.NewAuditRepository(db)
	deps := service.Deps{
		TxManager: repository.NewTransactionManager(db),
		Sequences: repository.NewSequenceRepository(db),
		Audit:     audit,
		Now:       func() time.Time { return time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC) },
	}
	auth := middleware.NewAuthenticator(config.AuthConfig{Enabled: authEnabled, JWTSecret: testSecret})
	codes := service.NewNextCodeService(records, 4)

	router := gin.New()
	root := router.Group("")
	NewMasterDataHandler(
		service.NewAreaService(deps, records.Areas),
		service.NewPartnerService(deps, records.Suppliers, records.Customers),
		service.NewCatalogService(deps, records),
		codes, auth,
	).RegisterRoutes(root)
	NewTransactionHandler(service.NewPurchasingService(deps, records), service.NewStockService(deps, records), codes, auth).RegisterRoutes(root)
	NewLookupHandler(service.NewLookupService(repository.NewLookupRepository(db))).RegisterRoutes(root)
	NewAuditHandler(service.NewAuditService(audit), auth).RegisterRoutes(root)

	return &testAPI{router: router, db: db}
}

func (a *testAPI) do(t *testing.T, method, path string, body any, token string) (int, apiResponse) {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var res apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	return w.Code, res
}

func token(t *testing.T, sub, role string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub, "role": role, "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

var supplierPayload = map[string]any{
	"name":           "Acme Textiles",
	"contact_person": "Sara",
	"contact_email":  "Sales@Acme.com",
	"business_type":  "manufacturer",
}

func TestCreateSupplier(t *testing.T) {
	api := newTestAPI(t, false)

	code, res := api.do(t, http.MethodGet, "/api/suppliers/next-code", nil, "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"entity":"supplier","next_id":1,"code":"SUP-0001"}`, string(res.Data))

	code, res = api.do(t, http.MethodPost, "/api/suppliers", supplierPayload, "")
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Supplier Acme Textiles successfully created.", res.Message)

	var supplier model.Supplier
	require.NoError(t, json.Unmarshal(res.Data, &supplier))
	assert.Equal(t, "SUP-0001", supplier.Code)
	assert.Equal(t, "sales@acme.com", supplier.ContactEmail)

	code, res = api.do(t, http.MethodPost, "/api/suppliers", map[string]any{"id": 1, "name": "Copy", "contact_person": "X",
		"contact_phone": "123", "business_type": "other"}, "")
	require.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Supplier with this ID already exists (owned by Acme Textiles).", res.Errors["id"])
	assert.Equal(t, "Copy", res.Values["name"])
}

func TestCreate_ValidationFailureEchoesValues(t *testing.T) {
	api := newTestAPI(t, false)
	_, _ = api.do(t, http.MethodPost, "/api/suppliers", supplierPayload, "")

	code, res := api.do(t, http.MethodPost, "/api/purchases", map[string]any{
		"supplier_id":  1,
		"total_amount": "0",
		"notes":        "first order",
	}, "")
	require.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "error", res.Status)
	assert.Equal(t, "Total amount must be greater than zero.", res.Errors["total_amount"])
	assert.Equal(t, "0", res.Values["total_amount"])
	assert.Equal(t, "first order", res.Values["notes"])

	var n int64
	require.NoError(t, api.db.Model(&model.Purchase{}).Count(&n).Error)
	assert.Zero(t, n)

	code, res = api.do(t, http.MethodPost, "/api/purchases", map[string]any{"supplier_id": 1, "total_amount": "0.01"}, "")
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Purchase 1 successfully created.", res.Message)
}

func TestCreate_MalformedBody(t *testing.T) {
	api := newTestAPI(t, false)
	code, res := api.do(t, http.MethodPost, "/api/areas", `{"name":`, "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, res.Error, "Invalid request payload")
}

func TestCreate_TypeMismatchIsFieldError(t *testing.T) {
	api := newTestAPI(t, false)

	tests := []struct {
		name  string
		path  string
		body  string
		field string
		msg   string
	}{
		{"text for area code", "/api/areas", `{"name":"North","area_code":"abc"}`, "area_code", "Enter a whole number."},
		{"quoted area code", "/api/areas", `{"name":"North","area_code":"12"}`, "area_code", "Enter a whole number."},
		{"text for voucher days", "/api/purchase-vouchers", `{"bill_no":"B-1","days":"x"}`, "days", "Enter a whole number."},
		{"number for name", "/api/departments", `{"name":42}`, "name", "Enter a valid value."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, res := api.do(t, http.MethodPost, tt.path, tt.body, "")
			require.Equal(t, http.StatusUnprocessableEntity, code)
			assert.Equal(t, "Please correct the errors below.", res.Error)
			assert.Equal(t, map[string]string{tt.field: tt.msg}, res.Errors)

			var submitted map[string]any
			require.NoError(t, json.Unmarshal([]byte(tt.body), &submitted))
			assert.Equal(t, submitted, res.Values)
		})
	}

	var n int64
	require.NoError(t, api.db.Model(&model.Area{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCreate_FormErrors(t *testing.T) {
	api := newTestAPI(t, false)
	code, res := api.do(t, http.MethodPost, "/api/customers", map[string]any{
		"name": "Walk-in", "contact_person": "Ali", "customer_type": "individual",
	}, "")
	require.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, []string{"At least one contact method (email or phone) is required."}, res.NonFieldErrors)
}

func TestLookups(t *testing.T) {
	api := newTestAPI(t, false)
	_, _ = api.do(t, http.MethodPost, "/api/suppliers", supplierPayload, "")

	code, res := api.do(t, http.MethodGet, "/api/lookups/suppliers?q=ACME", nil, "")
	require.Equal(t, http.StatusOK, code)
	var suppliers []model.SupplierLookup
	require.NoError(t, json.Unmarshal(res.Data, &suppliers))
	require.Len(t, suppliers, 1)
	assert.Equal(t, "Acme Textiles", suppliers[0].Name)

	code, _ = api.do(t, http.MethodGet, "/api/lookups/invoices", nil, "")
	assert.Equal(t, http.StatusNotFound, code)

	code, res = api.do(t, http.MethodGet, "/api/choices", nil, "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(res.Data), `"currency"`)
}

func TestAuthEnabled(t *testing.T) {
	api := newTestAPI(t, true)

	code, _ := api.do(t, http.MethodPost, "/api/departments", map[string]any{"name": "Dyeing"}, "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = api.do(t, http.MethodPost, "/api/departments", map[string]any{"name": "Dyeing"}, token(t, "clerk-1", "staff"))
	require.Equal(t, http.StatusCreated, code)

	code, _ = api.do(t, http.MethodGet, "/api/audit-logs", nil, token(t, "clerk-1", "staff"))
	assert.Equal(t, http.StatusForbidden, code)

	code, res := api.do(t, http.MethodGet, "/api/audit-logs?page=1&limit=5", nil, token(t, "boss", "manager"))
	require.Equal(t, http.StatusOK, code)
	var page struct {
		Items      []service.AuditLogResponse `json:"items"`
		Total      int64                      `json:"total"`
		Limit      int                        `json:"limit"`
		TotalPages int                        `json:"total_pages"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &page))
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 5, page.Limit)
	assert.Equal(t, 1, page.TotalPages)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "clerk-1", page.Items[0].Actor)
	assert.Equal(t, model.EntityDepartment, page.Items[0].Entity)

	code, _ = api.do(t, http.MethodGet, "/api/departments/next-code", nil, "")
	assert.Equal(t, http.StatusOK, code)
}
