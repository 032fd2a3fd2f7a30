package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"erpforms/internal/codegen"
	"erpforms/internal/model"
	"erpforms/internal/repository"
	"erpforms/internal/validation"

	"go.uber.org/zap"
)

// unique is a column whose value must not be taken by another record.
type unique struct {
	field   string // request field reported to the caller
	column  string
	value   any // nil or "" when not yet known
	label   string
	message func(owner string) string
}

func (u unique) known() bool {
	switch v := u.value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case int:
		return v != 0
	case *int64:
		return v != nil
	}
	return true
}

func (u unique) lookupValue() any {
	if p, ok := u.value.(*int64); ok {
		return *p
	}
	return u.value
}

// creation describes how one record is checked, numbered and stored.
type creation[T repository.Record] struct {
	entity model.Entity
	label  string
	repo   repository.RecordRepository[T]
	record *T
	v      *validation.Validator

	// check runs inside the transaction before numbering; it verifies references
	// and records failures on v. A returned error aborts the creation.
	check func(txCtx context.Context) error
	// assign stores the sequence number and, for coded entities, the display code.
	assign  func(n int64, code string)
	uniques func() []unique
	ownerOf func(*T) string
	summary func() Created
}

type uniqueViolation struct {
	cause error
}

func (e *uniqueViolation) Error() string { return e.cause.Error() }
func (e *uniqueViolation) Unwrap() error { return e.cause }

// create validates and persists c.record in one transaction, then publishes the result.
func create[T repository.Record](ctx context.Context, d Deps, c creation[T]) (Created, error) {
	log := d.Logger.With(zap.String("entity", string(c.entity)))

	err := d.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if c.check != nil {
			if err := c.check(txCtx); err != nil {
				return err
			}
		}
		if err := c.v.Err(); err != nil {
			return err
		}
		if err := findConflict(txCtx, c); err != nil {
			return err
		}

		n, err := d.Sequences.Next(txCtx, c.entity, c.repo.Table())
		if err != nil {
			return err
		}
		code := ""
		if prefix := c.entity.Prefix(); prefix != "" {
			code = codegen.Format(prefix, n, d.Padding)
		}
		c.assign(n, code)

		if err := c.repo.Create(txCtx, c.record); err != nil {
			switch {
			case repository.IsUniqueViolation(err):
				return &uniqueViolation{cause: err}
			case repository.IsForeignKeyViolation(err):
				return fmt.Errorf("%w: a referenced record no longer exists", ErrNotFound)
			}
			return fmt.Errorf("failed to create %s: %w", c.entity, err)
		}

		created := c.summary()
		details, err := json.Marshal(c.record)
		if err != nil {
			return fmt.Errorf("failed to encode audit details: %w", err)
		}
		entry := model.AuditLog{
			Actor:      actorFrom(ctx),
			Action:     model.ActionCreate,
			Entity:     c.entity,
			EntityID:   created.ID,
			EntityName: created.Name,
			Details:    string(details),
		}
		if err := d.Audit.Log(txCtx, &entry); err != nil {
			return fmt.Errorf("failed to write audit log: %w", err)
		}
		return nil
	})

	var uv *uniqueViolation
	if errors.As(err, &uv) {
		// The transaction is gone, so the owner is resolved on a fresh connection.
		if conflict := findConflict(ctx, c); conflict != nil {
			err = conflict
		} else {
			err = &ConflictError{Entity: c.entity, Message: fmt.Sprintf("%s already exists.", c.label)}
		}
	}

	var verrs *validation.Errors
	var conflict *ConflictError
	switch {
	case err == nil:
		created := c.summary()
		d.Metrics.RecordCreated(string(c.entity))
		d.Events.Publish("record.created", created)
		log.Info("record created", zap.Int64("id", created.ID), zap.String("code", created.Code))
		return created, nil
	case errors.As(err, &verrs):
		d.Metrics.RecordRejected(string(c.entity), "validation")
		log.Debug("validation failed", zap.Error(err))
	case errors.As(err, &conflict):
		d.Metrics.RecordRejected(string(c.entity), "conflict")
		log.Warn("unique value conflict", zap.String("field", conflict.Field), zap.String("owner", conflict.Owner))
	case errors.Is(err, ErrNotFound):
		d.Metrics.RecordRejected(string(c.entity), "not_found")
		log.Warn("referenced record vanished", zap.Error(err))
	default:
		log.Error("record creation failed", zap.Error(err))
	}
	return Created{}, err
}

// findConflict returns a *ConflictError for the first known unique value already taken.
func findConflict[T repository.Record](ctx context.Context, c creation[T]) error {
	if c.uniques == nil {
		return nil
	}
	for _, u := range c.uniques() {
		if !u.known() {
			continue
		}
		owner, err := c.repo.FindOne(ctx, u.column, u.lookupValue())
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		name := c.ownerOf(owner)
		msg := fmt.Sprintf("%s with this %s already exists (owned by %s).", c.label, u.label, name)
		if u.message != nil {
			msg = u.message(name)
		}
		return &ConflictError{Entity: c.entity, Field: u.field, Value: u.lookupValue(), Owner: name, Message: msg}
	}
	return nil
}
