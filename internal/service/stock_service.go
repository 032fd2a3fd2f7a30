package service

import (
	"context"
	"fmt"

	"erpforms/internal/model"
	"erpforms/internal/repository"
	"erpforms/internal/validation"
)

type CreateLotTransactionRequest struct {
	DocNo         string `json:"doc_no"` // generated when blank
	Date          string `json:"date" example:"2025-01-31"`
	CustomerID    *int64 `json:"customer_id"`
	GrayReceiptNo string `json:"gray_receipt_no"`
	DCNo          string `json:"dc_no"`
	LotNo         string `json:"lot_no"`
	Nature        string `json:"nature"`
	StartDate     string `json:"start_date" example:"2025-01-31"`
	EndDate       string `json:"end_date" example:"2025-02-07"`
	Remarks       string `json:"remarks"`
}

type CreateIssueTransactionRequest struct {
	TransactionNo string `json:"transaction_no"` // generated when blank
	Date          string `json:"date" example:"2025-01-31"`
	Nature        string `json:"nature"`
	AreaID        *int64 `json:"area_id"`
	DepartmentID  *int64 `json:"department_id"`
	CustomerID    *int64 `json:"customer_id"`
	LotNo         string `json:"lot_no"`
	DCNo          string `json:"dc_no"`
	Material      string `json:"material"`
}

// StockService creates processing lots and material issues.
type StockService interface {
	CreateLotTransaction(ctx context.Context, req CreateLotTransactionRequest) (Result[model.LotTransaction], error)
	CreateIssueTransaction(ctx context.Context, req CreateIssueTransactionRequest) (Result[model.IssueTransaction], error)
}

type stockService struct {
	deps    Deps
	records repository.Records
}

func NewStockService(deps Deps, records repository.Records) StockService {
	return &stockService{deps: deps.withDefaults(), records: records}
}

func (s *stockService) CreateLotTransaction(ctx context.Context, req CreateLotTransactionRequest) (Result[model.LotTransaction], error) {
	v := validation.New(s.deps.Now)
	lot := &model.LotTransaction{
		DocNo:         v.Optional("doc_no", req.DocNo, validation.Text{MaxLen: 20}),
		Date:          v.Date("date", req.Date),
		CustomerID:    ref(req.CustomerID),
		GrayReceiptNo: v.Required("gray_receipt_no", req.GrayReceiptNo, validation.Text{MaxLen: 30}),
		DCNo:          v.Required("dc_no", req.DCNo, validation.Text{MaxLen: 30}),
		LotNo:         v.Required("lot_no", req.LotNo, validation.Text{MaxLen: 30}),
		Nature:        v.Required("nature", req.Nature, validation.Choice{Set: model.LotNatures}),
		StartDate:     v.Date("start_date", req.StartDate),
		EndDate:       v.Date("end_date", req.EndDate),
		Remarks:       v.Optional("remarks", req.Remarks, validation.Text{}),
	}
	if !v.Failed("start_date") && !v.Failed("end_date") && lot.EndDate.Before(lot.StartDate) {
		v.Form("End date cannot be before start date.")
	}

	_, err := create(ctx, s.deps, creation[model.LotTransaction]{
		entity: model.EntityLotTransaction,
		label:  "Lot Transaction",
		repo:   s.records.LotTransactions,
		record: lot,
		v:      v,
		check: func(txCtx context.Context) error {
			_, err := lookupRef(txCtx, v, s.records.Customers, "customer_id", lot.CustomerID)
			return err
		},
		assign: func(n int64, code string) {
			lot.ID = n
			if lot.DocNo == "" {
				lot.DocNo = code
			}
		},
		uniques: func() []unique { return []unique{docNumber("doc_no", "document number", lot.DocNo)} },
		ownerOf: lotName,
		summary: func() Created {
			return Created{Entity: model.EntityLotTransaction, ID: lot.ID, Code: lot.DocNo, Name: lotName(lot)}
		},
	})
	if err != nil {
		return Result[model.LotTransaction]{}, err
	}
	return Result[model.LotTransaction]{Record: lot, Message: fmt.Sprintf("Lot Transaction %s successfully created.", lot.DocNo)}, nil
}

func lotName(l *model.LotTransaction) string {
	return fmt.Sprintf("Lot %s - %s (%s)", l.LotNo, l.Nature, l.DocNo)
}

func (s *stockService) CreateIssueTransaction(ctx context.Context, req CreateIssueTransactionRequest) (Result[model.IssueTransaction], error) {
	v := validation.New(s.deps.Now)
	issue := &model.IssueTransaction{
		TransactionNo: v.Optional("transaction_no", req.TransactionNo, validation.Text{MaxLen: 20}),
		Date:          v.Date("date", req.Date),
		Nature:        v.Required("nature", req.Nature, validation.Choice{Set: model.IssueNatures}),
		AreaID:        ref(req.AreaID),
		DepartmentID:  ref(req.DepartmentID),
		CustomerID:    ref(req.CustomerID),
		LotNo:         v.Required("lot_no", req.LotNo, validation.Text{MaxLen: 30}),
		DCNo:          v.Required("dc_no", req.DCNo, validation.Text{MaxLen: 30}),
		Material:      v.Nullable("material", req.Material, validation.Text{MaxLen: 200}),
	}

	_, err := create(ctx, s.deps, creation[model.IssueTransaction]{
		entity: model.EntityIssueTransaction,
		label:  "Issue Transaction",
		repo:   s.records.IssueTransactions,
		record: issue,
		v:      v,
		check: func(txCtx context.Context) error {
			if _, err := lookupRef(txCtx, v, s.records.Areas, "area_id", issue.AreaID); err != nil {
				return err
			}
			if _, err := lookupRef(txCtx, v, s.records.Departments, "department_id", issue.DepartmentID); err != nil {
				return err
			}
			_, err := lookupRef(txCtx, v, s.records.Customers, "customer_id", issue.CustomerID)
			return err
		},
		assign: func(n int64, code string) {
			issue.ID = n
			if issue.TransactionNo == "" {
				issue.TransactionNo = code
			}
		},
		uniques: func() []unique {
			return []unique{docNumber("transaction_no", "transaction number", issue.TransactionNo)}
		},
		ownerOf: issueName,
		summary: func() Created {
			return Created{Entity: model.EntityIssueTransaction, ID: issue.ID, Code: issue.TransactionNo, Name: issueName(issue)}
		},
	})
	if err != nil {
		return Result[model.IssueTransaction]{}, err
	}
	return Result[model.IssueTransaction]{Record: issue, Message: fmt.Sprintf("Issue Transaction %s successfully created.", issue.TransactionNo)}, nil
}

func issueName(i *model.IssueTransaction) string {
	return fmt.Sprintf("Issue %s - %s", i.TransactionNo, i.Nature)
}
