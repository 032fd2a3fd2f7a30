package service

import (
	"context"
	"errors"
	"time"

	"erpforms/internal/codegen"
	"erpforms/internal/model"
	"erpforms/internal/repository"
	"erpforms/internal/validation"

	"go.uber.org/zap"
)

// ErrNotFound is returned when a referenced record disappeared while a record was being created.
var ErrNotFound = errors.New("not found")

// ConflictError reports a unique value already taken by another record.
type ConflictError struct {
	Entity  model.Entity `json:"entity"`
	Field   string       `json:"field"`
	Value   any          `json:"value"`
	Owner   string       `json:"owner"`
	Message string       `json:"message"`
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Created describes a newly persisted record. It is published as the payload of record.created.
type Created struct {
	Entity model.Entity `json:"entity"`
	ID     int64        `json:"id"`
	Code   string       `json:"code,omitempty"`
	Name   string       `json:"name"`
}

// EventPublisher fans out notifications after a creation commits.
type EventPublisher interface {
	Publish(event string, data any)
}

// Recorder counts creation outcomes per entity.
type Recorder interface {
	RecordCreated(entity string)
	RecordRejected(entity, reason string)
}

// Deps bundles the collaborators shared by every creation service.
type Deps struct {
	TxManager repository.TransactionManager
	Sequences repository.SequenceRepository
	Audit     repository.AuditRepository
	Events    EventPublisher
	Metrics   Recorder
	Logger    *zap.Logger
	Padding   int
	Now       func() time.Time
}

type noopPublisher struct{}

func (noopPublisher) Publish(string, any) {}

type noopRecorder struct{}

func (noopRecorder) RecordCreated(string)          {}
func (noopRecorder) RecordRejected(string, string) {}

func (d Deps) withDefaults() Deps {
	if d.Events == nil {
		d.Events = noopPublisher{}
	}
	if d.Metrics == nil {
		d.Metrics = noopRecorder{}
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Padding < 1 {
		d.Padding = codegen.DefaultPadding
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

type actorKey struct{}

// WithActor records who submits the request; the value ends up in the audit log.
func WithActor(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, actorKey{}, subject)
}

func actorFrom(ctx context.Context) string {
	s, _ := ctx.Value(actorKey{}).(string)
	return s
}

// nextCode previews the code the next record of repo's entity would get.
func nextCode[T repository.Record](ctx context.Context, repo repository.RecordRepository[T], entity model.Entity, padding int) (NextCodeResponse, error) {
	maxID, err := repo.MaxID(ctx)
	if err != nil {
		return NextCodeResponse{}, err
	}
	res := NextCodeResponse{Entity: entity, NextID: 1}
	if maxID != nil {
		res.NextID = *maxID + 1
	}
	if prefix := entity.Prefix(); prefix != "" {
		res.Code = codegen.NextCode(maxID, prefix, padding)
	}
	return res, nil
}

// NextCodeResponse prefills a blank entry form.
type NextCodeResponse struct {
	Entity model.Entity `json:"entity"`
	NextID int64        `json:"next_id"`
	Code   string       `json:"code,omitempty"`
}

func ref(id *int64) *int64 {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}

const invalidRefMsg = "Select a valid choice. That choice is not one of the available choices."

// lookupRef loads the referenced record, recording a field failure when it does not exist.
// A nil id is skipped.
func lookupRef[T repository.Record](ctx context.Context, v *validation.Validator, repo repository.RecordRepository[T], field string, id *int64) (*T, error) {
	if id == nil {
		return nil, nil
	}
	rec, err := repo.FindByID(ctx, *id)
	if errors.Is(err, repository.ErrNotFound) {
		v.Fail(field, invalidRefMsg)
		return nil, nil
	}
	return rec, err
}

// Result is returned by every successful creation.
type Result[T any] struct {
	Record  *T
	Message string
}
