package service

import (
	"context"
	"errors"
	"fmt"

	"erpforms/internal/model"
	"erpforms/internal/repository"
)

// ErrUnknownLookup is returned for a lookup name that does not exist.
var ErrUnknownLookup = errors.New("unknown lookup")

// LookupService serves the selection widgets of the entry forms.
type LookupService interface {
	Lookup(ctx context.Context, name, q string) (any, error)
	Names() []string
	Choices() []model.ChoiceSet
}

type lookupFunc func(ctx context.Context, q string) (any, error)

func wrap[T any](fn func(context.Context, string) ([]T, error)) lookupFunc {
	return func(ctx context.Context, q string) (any, error) {
		return fn(ctx, q)
	}
}

type lookupService struct {
	lookups map[string]lookupFunc
	names   []string
}

func NewLookupService(repo repository.LookupRepository) LookupService {
	s := &lookupService{lookups: map[string]lookupFunc{}}
	s.add("suppliers", wrap(repo.Suppliers))
	s.add("customers", wrap(repo.Customers))
	s.add("areas", wrap(repo.Areas))
	s.add("items", wrap(repo.Items))
	s.add("purchase-orders", wrap(repo.PurchaseOrders))
	s.add("requisitions", wrap(repo.Requisitions))
	s.add("departments", wrap(repo.Departments))
	s.add("inventory-categories", wrap(repo.InventoryCategories))
	return s
}

func (s *lookupService) add(name string, fn lookupFunc) {
	s.lookups[name] = fn
	s.names = append(s.names, name)
}

// Lookup runs the named projection with an optional substring filter q.
func (s *lookupService) Lookup(ctx context.Context, name, q string) (any, error) {
	fn, ok := s.lookups[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLookup, name)
	}
	res, err := fn(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s lookup: %w", name, err)
	}
	return res, nil
}

func (s *lookupService) Names() []string {
	return s.names
}

func (s *lookupService) Choices() []model.ChoiceSet {
	return model.AllChoiceSets()
}
