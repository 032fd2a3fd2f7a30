package service

import (
	"context"
	"fmt"

	"erpforms/internal/model"
	"erpforms/internal/repository"
	"erpforms/internal/validation"

	"github.com/shopspring/decimal"
)

type CreateNamedRequest struct {
	Name string `json:"name"`
}

type CreateItemRequest struct {
	ItemCode      string `json:"item_code"` // generated when blank
	Name          string `json:"name"`
	Specification string `json:"specification"`
	BaseItemID    *int64 `json:"base_item_id"`
	CategoryID    *int64 `json:"category_id"`
	SalesTaxType  string `json:"sales_tax_type"`
	UnitOfMeasure string `json:"unit_of_measure"`
	StandardCost  string `json:"standard_cost" example:"120.50"`
	Important     bool   `json:"important"`
	Active        *bool  `json:"active"` // defaults to true
}

// CatalogService creates departments, inventory categories and item definitions.
type CatalogService interface {
	CreateDepartment(ctx context.Context, req CreateNamedRequest) (Result[model.Department], error)
	CreateInventoryCategory(ctx context.Context, req CreateNamedRequest) (Result[model.InventoryCategory], error)
	CreateItem(ctx context.Context, req CreateItemRequest) (Result[model.ItemDefinition], error)
}

type catalogService struct {
	deps       Deps
	depts      repository.RecordRepository[model.Department]
	categories repository.RecordRepository[model.InventoryCategory]
	items      repository.RecordRepository[model.ItemDefinition]
}

func NewCatalogService(deps Deps, records repository.Records) CatalogService {
	return &catalogService{
		deps:       deps.withDefaults(),
		depts:      records.Departments,
		categories: records.InventoryCategories,
		items:      records.Items,
	}
}

func (s *catalogService) CreateDepartment(ctx context.Context, req CreateNamedRequest) (Result[model.Department], error) {
	v := validation.New(s.deps.Now)
	dept := &model.Department{Name: v.Required("name", req.Name, validation.Text{MaxLen: 150})}

	_, err := create(ctx, s.deps, creation[model.Department]{
		entity:  model.EntityDepartment,
		label:   "Department",
		repo:    s.depts,
		record:  dept,
		v:       v,
		assign:  func(n int64, _ string) { dept.ID = n },
		ownerOf: func(d *model.Department) string { return d.Name },
		summary: func() Created {
			return Created{Entity: model.EntityDepartment, ID: dept.ID, Name: dept.Name}
		},
	})
	if err != nil {
		return Result[model.Department]{}, err
	}
	return Result[model.Department]{Record: dept, Message: fmt.Sprintf("Department %s successfully created.", dept.Name)}, nil
}

func (s *catalogService) CreateInventoryCategory(ctx context.Context, req CreateNamedRequest) (Result[model.InventoryCategory], error) {
	v := validation.New(s.deps.Now)
	cat := &model.InventoryCategory{Name: v.Required("name", req.Name, validation.Text{MaxLen: 150})}

	_, err := create(ctx, s.deps, creation[model.InventoryCategory]{
		entity:  model.EntityInventoryCategory,
		label:   "Inventory category",
		repo:    s.categories,
		record:  cat,
		v:       v,
		assign:  func(n int64, _ string) { cat.ID = n },
		ownerOf: func(c *model.InventoryCategory) string { return c.Name },
		summary: func() Created {
			return Created{Entity: model.EntityInventoryCategory, ID: cat.ID, Name: cat.Name}
		},
	})
	if err != nil {
		return Result[model.InventoryCategory]{}, err
	}
	return Result[model.InventoryCategory]{Record: cat, Message: fmt.Sprintf("Inventory category %s successfully created.", cat.Name)}, nil
}

func (s *catalogService) CreateItem(ctx context.Context, req CreateItemRequest) (Result[model.ItemDefinition], error) {
	v := validation.New(s.deps.Now)
	v.RequiredRef("category_id", req.CategoryID)

	cost := v.Decimal("standard_cost", req.StandardCost)
	v.NonNegative("standard_cost", decimal.NewNullDecimal(cost))

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	item := &model.ItemDefinition{
		ItemCode:      v.Optional("item_code", req.ItemCode, validation.Text{MaxLen: 50}),
		Name:          v.Required("name", req.Name, validation.Text{MaxLen: 250}),
		Specification: v.Nullable("specification", req.Specification, validation.Text{}),
		BaseItemID:    ref(req.BaseItemID),
		SalesTaxType:  v.Required("sales_tax_type", req.SalesTaxType, validation.Choice{Set: model.SalesTaxTypes}),
		UnitOfMeasure: v.Required("unit_of_measure", req.UnitOfMeasure, validation.Text{MaxLen: 20}),
		StandardCost:  cost,
		Important:     req.Important,
		Active:        active,
	}
	if req.CategoryID != nil {
		item.CategoryID = *req.CategoryID
	}

	_, err := create(ctx, s.deps, creation[model.ItemDefinition]{
		entity: model.EntityItem,
		label:  "Item",
		repo:   s.items,
		record: item,
		v:      v,
		check: func(txCtx context.Context) error {
			if _, err := lookupRef(txCtx, v, s.categories, "category_id", req.CategoryID); err != nil {
				return err
			}
			_, err := lookupRef(txCtx, v, s.items, "base_item_id", item.BaseItemID)
			return err
		},
		assign: func(n int64, code string) {
			item.ID = n
			if item.ItemCode == "" {
				item.ItemCode = code
			}
		},
		uniques: func() []unique {
			return []unique{{field: "item_code", column: "item_code", value: item.ItemCode, label: "item code"}}
		},
		ownerOf: func(i *model.ItemDefinition) string { return i.Name },
		summary: func() Created {
			return Created{Entity: model.EntityItem, ID: item.ID, Code: item.ItemCode, Name: item.Name}
		},
	})
	if err != nil {
		return Result[model.ItemDefinition]{}, err
	}
	return Result[model.ItemDefinition]{Record: item, Message: fmt.Sprintf("Item %s successfully created.", item.Name)}, nil
}
