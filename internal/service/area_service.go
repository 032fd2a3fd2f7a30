package service

import (
	"context"
	"fmt"

	"erpforms/internal/model"
	"erpforms/internal/repository"
	"erpforms/internal/validation"
)

const maxAreaCode = 9999

type CreateAreaRequest struct {
	AreaCode    *int   `json:"area_code"` // next free code when omitted
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type AreaService interface {
	CreateArea(ctx context.Context, req CreateAreaRequest) (Result[model.Area], error)
}

type areaService struct {
	deps  Deps
	areas repository.RecordRepository[model.Area]
}

func NewAreaService(deps Deps, areas repository.RecordRepository[model.Area]) AreaService {
	return &areaService{deps: deps.withDefaults(), areas: areas}
}

func (s *areaService) CreateArea(ctx context.Context, req CreateAreaRequest) (Result[model.Area], error) {
	v := validation.New(s.deps.Now)
	area := &model.Area{
		Name:        v.Required("name", req.Name, validation.Text{MaxLen: 100}),
		Description: v.Optional("description", req.Description, validation.Text{}),
		Status:      v.ChoiceOr("status", req.Status, validation.Choice{Set: model.AreaStatuses}, model.AreaStatusActive),
	}
	if req.AreaCode != nil {
		v.IntRange("area_code", *req.AreaCode, 1, maxAreaCode, "Area code must be between 1 and 9999.")
		area.AreaCode = *req.AreaCode
	}

	created, err := create(ctx, s.deps, creation[model.Area]{
		entity: model.EntityArea,
		label:  "Area",
		repo:   s.areas,
		record: area,
		v:      v,
		check: func(txCtx context.Context) error {
			if req.AreaCode != nil {
				return nil
			}
			max, err := s.areas.MaxOf(txCtx, "area_code")
			if err != nil {
				return err
			}
			area.AreaCode = 1
			if max != nil {
				area.AreaCode = int(*max) + 1
			}
			if area.AreaCode > maxAreaCode {
				v.Form("No free area code is left; enter one between 1 and 9999.")
			}
			return nil
		},
		assign: func(n int64, code string) {
			area.ID = n
			area.Code = code
		},
		uniques: func() []unique {
			return []unique{
				{field: "area_code", column: "area_code", value: area.AreaCode, label: "area code",
					message: func(owner string) string { return fmt.Sprintf("The area code was taken for %s", owner) }},
				{field: "code", column: "code", value: area.Code, label: "code"},
			}
		},
		ownerOf: func(a *model.Area) string { return a.Name },
		summary: func() Created {
			return Created{Entity: model.EntityArea, ID: area.ID, Code: area.Code, Name: area.Name}
		},
	})
	if err != nil {
		return Result[model.Area]{}, err
	}
	return Result[model.Area]{Record: area, Message: fmt.Sprintf("Area %s successfully created.", created.Name)}, nil
}
