package api

import (
	"context"
	"fmt"

	"github.com/ledgerline/freeagent/cache"
)

// BankTransaction is a statement line on a bank account. Transactions are
// created by statement upload or bank feed, never directly; explaining them
// happens through BankTransactionExplanations.
type BankTransaction struct {
	URL               string `json:"url,omitempty"`
	BankAccount       string `json:"bank_account,omitempty"`
	Amount            string `json:"amount,omitempty"`
	DatedOn           string `json:"dated_on,omitempty"`
	Description       string `json:"description,omitempty"`
	FullDescription   string `json:"full_description,omitempty"`
	UnexplainedAmount string `json:"unexplained_amount,omitempty"`
	IsManual          bool   `json:"is_manual,omitempty"`
	Unexplained       bool   `json:"unexplained,omitempty"`
	MarkedForReview   bool   `json:"marked_for_review,omitempty"`
	TransactionID     string `json:"transaction_id,omitempty"`
	UploadedAt        string `json:"uploaded_at,omitempty"`
	UpdatedAt         string `json:"updated_at,omitempty"`
	CreatedAt         string `json:"created_at,omitempty"`
}

type BankTransactionFilter struct {
	// BankAccount is required by the API for list calls.
	BankAccount  string `url:"bank_account,omitempty"`
	FromDate     string `url:"from_date,omitempty"`
	ToDate       string `url:"to_date,omitempty"`
	UpdatedSince string `url:"updated_since,omitempty"`
	// View is "all", "unexplained", "explained", "manual", "imported" or
	// "marked_for_review".
	View string `url:"view,omitempty"`
}

// StatementLine is one row of an uploaded bank statement.
type StatementLine struct {
	DatedOn     string `json:"dated_on"`
	Amount      string `json:"amount"`
	Description string `json:"description,omitempty"`
	FitchID     string `json:"fitch_id,omitempty"`
}

type BankTransactionsService struct {
	service
}

func (s *BankTransactionsService) Get(ctx context.Context, id int64) (*BankTransaction, error) {
	return cache.GetOrFetch(ctx, s.cache, s.keys.Entity(formatID(id)), s.ttl, func(ctx context.Context) (*BankTransaction, error) {
		var out struct {
			BankTransaction *BankTransaction `json:"bank_transaction"`
		}
		if err := s.client.Get(ctx, fmt.Sprintf("bank_transactions/%d", id), nil, &out); err != nil {
			return nil, err
		}
		return out.BankTransaction, nil
	})
}

func (s *BankTransactionsService) List(ctx context.Context, filter *BankTransactionFilter) ([]*BankTransaction, error) {
	key, err := s.keys.List(filter)
	if err != nil {
		return nil, err
	}
	return cache.GetOrFetch(ctx, s.cache, key, s.ttl, func(ctx context.Context) ([]*BankTransaction, error) {
		var out struct {
			BankTransactions []*BankTransaction `json:"bank_transactions"`
		}
		if err := s.client.Get(ctx, "bank_transactions", filter, &out); err != nil {
			return nil, err
		}
		return out.BankTransactions, nil
	})
}

// UploadStatement creates transactions on the given bank account from
// statement lines. New members may appear in any cached list, so every list
// key is dropped; there is no entity key to drop.
func (s *BankTransactionsService) UploadStatement(ctx context.Context, bankAccountID int64, lines []StatementLine) error {
	_, err := cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (struct{}, error) {
		body := map[string][]StatementLine{"statement": lines}
		return struct{}{}, s.client.Post(ctx, fmt.Sprintf("bank_transactions/statement?bank_account=%d", bankAccountID), body, nil)
	}, s.keys.CreateInvalidation()...)
	return err
}

func (s *BankTransactionsService) Delete(ctx context.Context, id int64) error {
	_, err := cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.client.Delete(ctx, fmt.Sprintf("bank_transactions/%d", id))
	}, s.keys.Invalidation(formatID(id))...)
	return err
}
