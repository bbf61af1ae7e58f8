package api

import (
	"context"
	"fmt"

	"github.com/ledgerline/freeagent/cache"
)

type Contact struct {
	URL                   string `json:"url,omitempty"`
	FirstName             string `json:"first_name,omitempty"`
	LastName              string `json:"last_name,omitempty"`
	OrganisationName      string `json:"organisation_name,omitempty"`
	Email                 string `json:"email,omitempty"`
	PhoneNumber           string `json:"phone_number,omitempty"`
	Address1              string `json:"address1,omitempty"`
	Address2              string `json:"address2,omitempty"`
	Town                  string `json:"town,omitempty"`
	Region                string `json:"region,omitempty"`
	Postcode              string `json:"postcode,omitempty"`
	Country               string `json:"country,omitempty"`
	ContactNameOnInvoices bool   `json:"contact_name_on_invoices,omitempty"`
	ChargeSalesTax        string `json:"charge_sales_tax,omitempty"`
	Locale                string `json:"locale,omitempty"`
	AccountBalance        string `json:"account_balance,omitempty"`
	Status                string `json:"status,omitempty"`
	UpdatedAt             string `json:"updated_at,omitempty"`
	CreatedAt             string `json:"created_at,omitempty"`
}

type ContactFilter struct {
	// View is one of "all", "active", "clients", "suppliers",
	// "active_projects", "completed_projects", "open_clients".
	View string `url:"view,omitempty"`
	Sort string `url:"sort,omitempty"`
}

type ContactsService struct {
	service
}

func (s *ContactsService) Get(ctx context.Context, id int64) (*Contact, error) {
	return cache.GetOrFetch(ctx, s.cache, s.keys.Entity(formatID(id)), s.ttl, func(ctx context.Context) (*Contact, error) {
		var out struct {
			Contact *Contact `json:"contact"`
		}
		if err := s.client.Get(ctx, fmt.Sprintf("contacts/%d", id), nil, &out); err != nil {
			return nil, err
		}
		return out.Contact, nil
	})
}

func (s *ContactsService) List(ctx context.Context, filter *ContactFilter) ([]*Contact, error) {
	key, err := s.keys.List(filter)
	if err != nil {
		return nil, err
	}
	return cache.GetOrFetch(ctx, s.cache, key, s.ttl, func(ctx context.Context) ([]*Contact, error) {
		var out struct {
			Contacts []*Contact `json:"contacts"`
		}
		if err := s.client.Get(ctx, "contacts", filter, &out); err != nil {
			return nil, err
		}
		return out.Contacts, nil
	})
}

func (s *ContactsService) Create(ctx context.Context, c *Contact) (*Contact, error) {
	return cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (*Contact, error) {
		var out struct {
			Contact *Contact `json:"contact"`
		}
		body := map[string]*Contact{"contact": c}
		if err := s.client.Post(ctx, "contacts", body, &out); err != nil {
			return nil, err
		}
		return out.Contact, nil
	}, s.keys.CreateInvalidation()...)
}

func (s *ContactsService) Update(ctx context.Context, id int64, c *Contact) (*Contact, error) {
	return cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (*Contact, error) {
		var out struct {
			Contact *Contact `json:"contact"`
		}
		body := map[string]*Contact{"contact": c}
		if err := s.client.Put(ctx, fmt.Sprintf("contacts/%d", id), body, &out); err != nil {
			return nil, err
		}
		return out.Contact, nil
	}, s.keys.Invalidation(formatID(id))...)
}

func (s *ContactsService) Delete(ctx context.Context, id int64) error {
	_, err := cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.client.Delete(ctx, fmt.Sprintf("contacts/%d", id))
	}, s.keys.Invalidation(formatID(id))...)
	return err
}
