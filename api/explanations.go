package api

import (
	"context"
	"fmt"

	"github.com/ledgerline/freeagent/cache"
)

// BankTransactionExplanation links a bank transaction to an accounting
// category, invoice or bill.
type BankTransactionExplanation struct {
	URL             string `json:"url,omitempty"`
	BankTransaction string `json:"bank_transaction,omitempty"`
	BankAccount     string `json:"bank_account,omitempty"`
	Category        string `json:"category,omitempty"`
	DatedOn         string `json:"dated_on,omitempty"`
	Description     string `json:"description,omitempty"`
	GrossValue      string `json:"gross_value,omitempty"`
	SalesTaxRate    string `json:"sales_tax_rate,omitempty"`
	SalesTaxValue   string `json:"sales_tax_value,omitempty"`
	Project         string `json:"project,omitempty"`
	PaidInvoice     string `json:"paid_invoice,omitempty"`
	PaidBill        string `json:"paid_bill,omitempty"`
	UpdatedAt       string `json:"updated_at,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
}

type BankTransactionExplanationFilter struct {
	BankAccount string `url:"bank_account,omitempty"`
	FromDate    string `url:"from_date,omitempty"`
	ToDate      string `url:"to_date,omitempty"`
}

type BankTransactionExplanationsService struct {
	service
}

func (s *BankTransactionExplanationsService) Get(ctx context.Context, id int64) (*BankTransactionExplanation, error) {
	return cache.GetOrFetch(ctx, s.cache, s.keys.Entity(formatID(id)), s.ttl, func(ctx context.Context) (*BankTransactionExplanation, error) {
		var out struct {
			BankTransactionExplanation *BankTransactionExplanation `json:"bank_transaction_explanation"`
		}
		if err := s.client.Get(ctx, fmt.Sprintf("bank_transaction_explanations/%d", id), nil, &out); err != nil {
			return nil, err
		}
		return out.BankTransactionExplanation, nil
	})
}

func (s *BankTransactionExplanationsService) List(ctx context.Context, filter *BankTransactionExplanationFilter) ([]*BankTransactionExplanation, error) {
	key, err := s.keys.List(filter)
	if err != nil {
		return nil, err
	}
	return cache.GetOrFetch(ctx, s.cache, key, s.ttl, func(ctx context.Context) ([]*BankTransactionExplanation, error) {
		var out struct {
			BankTransactionExplanations []*BankTransactionExplanation `json:"bank_transaction_explanations"`
		}
		if err := s.client.Get(ctx, "bank_transaction_explanations", filter, &out); err != nil {
			return nil, err
		}
		return out.BankTransactionExplanations, nil
	})
}

func (s *BankTransactionExplanationsService) Create(ctx context.Context, e *BankTransactionExplanation) (*BankTransactionExplanation, error) {
	return cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (*BankTransactionExplanation, error) {
		var out struct {
			BankTransactionExplanation *BankTransactionExplanation `json:"bank_transaction_explanation"`
		}
		body := map[string]*BankTransactionExplanation{"bank_transaction_explanation": e}
		if err := s.client.Post(ctx, "bank_transaction_explanations", body, &out); err != nil {
			return nil, err
		}
		return out.BankTransactionExplanation, nil
	}, s.keys.CreateInvalidation()...)
}

func (s *BankTransactionExplanationsService) Update(ctx context.Context, id int64, e *BankTransactionExplanation) (*BankTransactionExplanation, error) {
	return cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (*BankTransactionExplanation, error) {
		var out struct {
			BankTransactionExplanation *BankTransactionExplanation `json:"bank_transaction_explanation"`
		}
		body := map[string]*BankTransactionExplanation{"bank_transaction_explanation": e}
		if err := s.client.Put(ctx, fmt.Sprintf("bank_transaction_explanations/%d", id), body, &out); err != nil {
			return nil, err
		}
		return out.BankTransactionExplanation, nil
	}, s.keys.Invalidation(formatID(id))...)
}

func (s *BankTransactionExplanationsService) Delete(ctx context.Context, id int64) error {
	_, err := cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.client.Delete(ctx, fmt.Sprintf("bank_transaction_explanations/%d", id))
	}, s.keys.Invalidation(formatID(id))...)
	return err
}
