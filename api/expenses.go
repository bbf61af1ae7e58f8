package api

import (
	"context"
	"fmt"

	"github.com/ledgerline/freeagent/cache"
)

type Expense struct {
	URL              string `json:"url,omitempty"`
	User             string `json:"user,omitempty"`
	Project          string `json:"project,omitempty"`
	Category         string `json:"category,omitempty"`
	DatedOn          string `json:"dated_on,omitempty"`
	GrossValue       string `json:"gross_value,omitempty"`
	NativeGrossValue string `json:"native_gross_value,omitempty"`
	SalesTaxRate     string `json:"sales_tax_rate,omitempty"`
	Currency         string `json:"currency,omitempty"`
	Description      string `json:"description,omitempty"`
	Mileage          string `json:"mileage,omitempty"`
	RebillType       string `json:"rebill_type,omitempty"`
	RebillFactor     string `json:"rebill_factor,omitempty"`
	Receipt          string `json:"receipt_reference,omitempty"`
	UpdatedAt        string `json:"updated_at,omitempty"`
	CreatedAt        string `json:"created_at,omitempty"`
}

type ExpenseFilter struct {
	FromDate     string `url:"from_date,omitempty"`
	ToDate       string `url:"to_date,omitempty"`
	UpdatedSince string `url:"updated_since,omitempty"`
	View         string `url:"view,omitempty"`
	User         string `url:"user,omitempty"`
	Project      string `url:"project,omitempty"`
}

type ExpensesService struct {
	service
}

func (s *ExpensesService) Get(ctx context.Context, id int64) (*Expense, error) {
	return cache.GetOrFetch(ctx, s.cache, s.keys.Entity(formatID(id)), s.ttl, func(ctx context.Context) (*Expense, error) {
		var out struct {
			Expense *Expense `json:"expense"`
		}
		if err := s.client.Get(ctx, fmt.Sprintf("expenses/%d", id), nil, &out); err != nil {
			return nil, err
		}
		return out.Expense, nil
	})
}

func (s *ExpensesService) List(ctx context.Context, filter *ExpenseFilter) ([]*Expense, error) {
	key, err := s.keys.List(filter)
	if err != nil {
		return nil, err
	}
	return cache.GetOrFetch(ctx, s.cache, key, s.ttl, func(ctx context.Context) ([]*Expense, error) {
		var out struct {
			Expenses []*Expense `json:"expenses"`
		}
		if err := s.client.Get(ctx, "expenses", filter, &out); err != nil {
			return nil, err
		}
		return out.Expenses, nil
	})
}

func (s *ExpensesService) Create(ctx context.Context, e *Expense) (*Expense, error) {
	return cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (*Expense, error) {
		var out struct {
			Expense *Expense `json:"expense"`
		}
		body := map[string]*Expense{"expense": e}
		if err := s.client.Post(ctx, "expenses", body, &out); err != nil {
			return nil, err
		}
		return out.Expense, nil
	}, s.keys.CreateInvalidation()...)
}

func (s *ExpensesService) Update(ctx context.Context, id int64, e *Expense) (*Expense, error) {
	return cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (*Expense, error) {
		var out struct {
			Expense *Expense `json:"expense"`
		}
		body := map[string]*Expense{"expense": e}
		if err := s.client.Put(ctx, fmt.Sprintf("expenses/%d", id), body, &out); err != nil {
			return nil, err
		}
		return out.Expense, nil
	}, s.keys.Invalidation(formatID(id))...)
}

func (s *ExpensesService) Delete(ctx context.Context, id int64) error {
	_, err := cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.client.Delete(ctx, fmt.Sprintf("expenses/%d", id))
	}, s.keys.Invalidation(formatID(id))...)
	return err
}
