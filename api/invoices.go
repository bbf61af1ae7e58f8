package api

import (
	"context"
	"fmt"

	"github.com/ledgerline/freeagent/cache"
)

// Invoice is a sales invoice. Monetary values are decimal strings and dates
// are YYYY-MM-DD, as returned by the API.
type Invoice struct {
	URL                string        `json:"url,omitempty"`
	Reference          string        `json:"reference,omitempty"`
	Contact            string        `json:"contact,omitempty"`
	Project            string        `json:"project,omitempty"`
	DatedOn            string        `json:"dated_on,omitempty"`
	DueOn              string        `json:"due_on,omitempty"`
	PaymentTermsInDays int           `json:"payment_terms_in_days,omitempty"`
	Currency           string        `json:"currency,omitempty"`
	ExchangeRate       string        `json:"exchange_rate,omitempty"`
	NetValue           string        `json:"net_value,omitempty"`
	SalesTaxValue      string        `json:"sales_tax_value,omitempty"`
	TotalValue         string        `json:"total_value,omitempty"`
	DueValue           string        `json:"due_value,omitempty"`
	PaidValue          string        `json:"paid_value,omitempty"`
	Status             string        `json:"status,omitempty"`
	Comments           string        `json:"comments,omitempty"`
	EcStatus           string        `json:"ec_status,omitempty"`
	InvoiceItems       []InvoiceItem `json:"invoice_items,omitempty"`
	UpdatedAt          string        `json:"updated_at,omitempty"`
	CreatedAt          string        `json:"created_at,omitempty"`
}

type InvoiceItem struct {
	URL          string `json:"url,omitempty"`
	Position     int    `json:"position,omitempty"`
	ItemType     string `json:"item_type,omitempty"`
	Quantity     string `json:"quantity,omitempty"`
	Price        string `json:"price,omitempty"`
	Description  string `json:"description,omitempty"`
	SalesTaxRate string `json:"sales_tax_rate,omitempty"`
	Category     string `json:"category,omitempty"`
	Project      string `json:"project,omitempty"`
}

type InvoiceFilter struct {
	// View selects a server-side subset, e.g. "all", "open", "overdue",
	// "draft", "recent_open_or_overdue".
	View         string `url:"view,omitempty"`
	Contact      string `url:"contact,omitempty"`
	Project      string `url:"project,omitempty"`
	UpdatedSince string `url:"updated_since,omitempty"`
	Sort         string `url:"sort,omitempty"`
}

type InvoicesService struct {
	service
}

func (s *InvoicesService) Get(ctx context.Context, id int64) (*Invoice, error) {
	return cache.GetOrFetch(ctx, s.cache, s.keys.Entity(formatID(id)), s.ttl, func(ctx context.Context) (*Invoice, error) {
		var out struct {
			Invoice *Invoice `json:"invoice"`
		}
		if err := s.client.Get(ctx, fmt.Sprintf("invoices/%d", id), nil, &out); err != nil {
			return nil, err
		}
		return out.Invoice, nil
	})
}

func (s *InvoicesService) List(ctx context.Context, filter *InvoiceFilter) ([]*Invoice, error) {
	key, err := s.keys.List(filter)
	if err != nil {
		return nil, err
	}
	return cache.GetOrFetch(ctx, s.cache, key, s.ttl, func(ctx context.Context) ([]*Invoice, error) {
		var out struct {
			Invoices []*Invoice `json:"invoices"`
		}
		if err := s.client.Get(ctx, "invoices", filter, &out); err != nil {
			return nil, err
		}
		return out.Invoices, nil
	})
}

func (s *InvoicesService) Create(ctx context.Context, inv *Invoice) (*Invoice, error) {
	return cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (*Invoice, error) {
		var out struct {
			Invoice *Invoice `json:"invoice"`
		}
		body := map[string]*Invoice{"invoice": inv}
		if err := s.client.Post(ctx, "invoices", body, &out); err != nil {
			return nil, err
		}
		return out.Invoice, nil
	}, s.keys.CreateInvalidation()...)
}

func (s *InvoicesService) Update(ctx context.Context, id int64, inv *Invoice) (*Invoice, error) {
	return cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (*Invoice, error) {
		var out struct {
			Invoice *Invoice `json:"invoice"`
		}
		body := map[string]*Invoice{"invoice": inv}
		if err := s.client.Put(ctx, fmt.Sprintf("invoices/%d", id), body, &out); err != nil {
			return nil, err
		}
		return out.Invoice, nil
	}, s.keys.Invalidation(formatID(id))...)
}

func (s *InvoicesService) Delete(ctx context.Context, id int64) error {
	_, err := cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.client.Delete(ctx, fmt.Sprintf("invoices/%d", id))
	}, s.keys.Invalidation(formatID(id))...)
	return err
}

// MarkAsSent transitions a draft invoice to sent.
func (s *InvoicesService) MarkAsSent(ctx context.Context, id int64) error {
	return s.transition(ctx, id, "mark_as_sent")
}

// MarkAsDraft transitions an invoice back to draft.
func (s *InvoicesService) MarkAsDraft(ctx context.Context, id int64) error {
	return s.transition(ctx, id, "mark_as_draft")
}

func (s *InvoicesService) transition(ctx context.Context, id int64, name string) error {
	_, err := cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.client.Put(ctx, fmt.Sprintf("invoices/%d/transitions/%s", id, name), nil, nil)
	}, s.keys.Invalidation(formatID(id))...)
	return err
}
