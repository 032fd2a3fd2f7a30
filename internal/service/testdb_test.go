package service

import (
	"sync"
	"testing"
	"time"

	"erpforms/internal/codegen"
	"erpforms/internal/model"
	"erpforms/internal/repository"
	"erpforms/internal/validation"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

type recordingPublisher struct {
	mu     sync.Mutex
	events []Created
}

func (p *recordingPublisher) Publish(event string, data any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := data.(Created); ok && event == "record.created" {
		p.events = append(p.events, c)
	}
}

type countingRecorder struct {
	mu       sync.Mutex
	created  map[string]int
	rejected map[string]int
}

func (r *countingRecorder) RecordCreated(entity string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created[entity]++
}

func (r *countingRecorder) RecordRejected(entity, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected[entity+":"+reason]++
}

type fixture struct {
	db       *gorm.DB
	deps     Deps
	records  repository.Records
	events   *recordingPublisher
	recorder *countingRecorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

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

	f := &fixture{
		db:       db,
		records:  repository.NewRecords(db),
		events:   &recordingPublisher{},
		recorder: &countingRecorder{created: map[string]int{}, rejected: map[string]int{}},
	}
	f.deps = Deps{
		TxManager: repository.NewTransactionManager(db),
		Sequences: repository.NewSequenceRepository(db),
		Audit:     repository.NewAuditRepository(db),
		Events:    f.events,
		Metrics:   f.recorder,
		Padding:   4,
		Now:       func() time.Time { return testNow },
	}
	return f
}

func (f *fixture) count(t *testing.T, m any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(m).Count(&n).Error)
	return n
}

func (f *fixture) seedSupplier(t *testing.T, id int64, name, status string) {
	t.Helper()
	require.NoError(t, f.db.Create(&model.Supplier{
		ID: id, Code: codeFor("SUP", id), Name: name, ContactPerson: "Owner",
		ContactEmail: "owner@example.com", PaymentTerms: model.PaymentTermsNet30,
		Currency: model.CurrencyUSD, Status: status,
	}).Error)
}

func (f *fixture) seedCustomer(t *testing.T, id int64, name string) {
	t.Helper()
	require.NoError(t, f.db.Create(&model.Customer{
		ID: id, Code: codeFor("CUST", id), Name: name, ContactPerson: "Buyer",
		ContactPhone: "0300 1234567", PaymentTerms: model.PaymentTermsNet30,
		Currency: model.CurrencyPKR, Status: model.PartnerStatusActive,
	}).Error)
}

func (f *fixture) seedArea(t *testing.T, id int64, areaCode int, name string) {
	t.Helper()
	require.NoError(t, f.db.Create(&model.Area{
		ID: id, Code: codeFor("AREA", id), AreaCode: areaCode, Name: name, Status: model.AreaStatusActive,
	}).Error)
}

func (f *fixture) seedDepartment(t *testing.T, id int64, name string) {
	t.Helper()
	require.NoError(t, f.db.Create(&model.Department{ID: id, Name: name}).Error)
}

func codeFor(prefix string, id int64) string {
	return codegen.Format(prefix, id, codegen.DefaultPadding)
}

func requireValidation(t *testing.T, err error) *validation.Errors {
	t.Helper()
	var verrs *validation.Errors
	require.ErrorAs(t, err, &verrs)
	return verrs
}

func requireConflict(t *testing.T, err error) *ConflictError {
	t.Helper()
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	return conflict
}

func ptr[T any](v T) *T { return &v }
