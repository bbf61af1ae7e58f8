package api

import (
	"context"
	"fmt"

	"github.com/ledgerline/freeagent/cache"
)

type BankAccount struct {
	URL            string `json:"url,omitempty"`
	Type           string `json:"type,omitempty"`
	Name           string `json:"name,omitempty"`
	BankName       string `json:"bank_name,omitempty"`
	AccountNumber  string `json:"account_number,omitempty"`
	SortCode       string `json:"sort_code,omitempty"`
	Iban           string `json:"iban,omitempty"`
	BicCode        string `json:"bic_code,omitempty"`
	Currency       string `json:"currency,omitempty"`
	OpeningBalance string `json:"opening_balance,omitempty"`
	CurrentBalance string `json:"current_balance,omitempty"`
	IsPersonal     bool   `json:"is_personal,omitempty"`
	IsPrimary      bool   `json:"is_primary,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
}

type BankAccountFilter struct {
	// View is one of "all", "standard_bank_accounts",
	// "credit_card_accounts", "paypal_accounts".
	View string `url:"view,omitempty"`
}

type BankAccountsService struct {
	service
}

func (s *BankAccountsService) Get(ctx context.Context, id int64) (*BankAccount, error) {
	return cache.GetOrFetch(ctx, s.cache, s.keys.Entity(formatID(id)), s.ttl, func(ctx context.Context) (*BankAccount, error) {
		var out struct {
			BankAccount *BankAccount `json:"bank_account"`
		}
		if err := s.client.Get(ctx, fmt.Sprintf("bank_accounts/%d", id), nil, &out); err != nil {
			return nil, err
		}
		return out.BankAccount, nil
	})
}

func (s *BankAccountsService) List(ctx context.Context, filter *BankAccountFilter) ([]*BankAccount, error) {
	key, err := s.keys.List(filter)
	if err != nil {
		return nil, err
	}
	return cache.GetOrFetch(ctx, s.cache, key, s.ttl, func(ctx context.Context) ([]*BankAccount, error) {
		var out struct {
			BankAccounts []*BankAccount `json:"bank_accounts"`
		}
		if err := s.client.Get(ctx, "bank_accounts", filter, &out); err != nil {
			return nil, err
		}
		return out.BankAccounts, nil
	})
}

func (s *BankAccountsService) Create(ctx context.Context, a *BankAccount) (*BankAccount, error) {
	return cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (*BankAccount, error) {
		var out struct {
			BankAccount *BankAccount `json:"bank_account"`
		}
		body := map[string]*BankAccount{"bank_account": a}
		if err := s.client.Post(ctx, "bank_accounts", body, &out); err != nil {
			return nil, err
		}
		return out.BankAccount, nil
	}, s.keys.CreateInvalidation()...)
}

func (s *BankAccountsService) Update(ctx context.Context, id int64, a *BankAccount) (*BankAccount, error) {
	return cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (*BankAccount, error) {
		var out struct {
			BankAccount *BankAccount `json:"bank_account"`
		}
		body := map[string]*BankAccount{"bank_account": a}
		if err := s.client.Put(ctx, fmt.Sprintf("bank_accounts/%d", id), body, &out); err != nil {
			return nil, err
		}
		return out.BankAccount, nil
	}, s.keys.Invalidation(formatID(id))...)
}

func (s *BankAccountsService) Delete(ctx context.Context, id int64) error {
	_, err := cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.client.Delete(ctx, fmt.Sprintf("bank_accounts/%d", id))
	}, s.keys.Invalidation(formatID(id))...)
	return err
}
