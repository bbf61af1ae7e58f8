package api

import (
	"context"
	"fmt"

	"github.com/ledgerline/freeagent/cache"
)

type Project struct {
	URL                        string `json:"url,omitempty"`
	Name                       string `json:"name,omitempty"`
	Contact                    string `json:"contact,omitempty"`
	Currency                   string `json:"currency,omitempty"`
	Status                     string `json:"status,omitempty"`
	BudgetUnits                string `json:"budget_units,omitempty"`
	Budget                     int    `json:"budget,omitempty"`
	NormalBillingRate          string `json:"normal_billing_rate,omitempty"`
	HoursPerDay                string `json:"hours_per_day,omitempty"`
	BillingPeriod              string `json:"billing_period,omitempty"`
	UsesProjectInvoiceSequence bool   `json:"uses_project_invoice_sequence,omitempty"`
	StartsOn                   string `json:"starts_on,omitempty"`
	EndsOn                     string `json:"ends_on,omitempty"`
	UpdatedAt                  string `json:"updated_at,omitempty"`
	CreatedAt                  string `json:"created_at,omitempty"`
}

type ProjectFilter struct {
	// View is one of "all", "active", "completed", "cancelled", "hidden".
	View    string `url:"view,omitempty"`
	Contact string `url:"contact,omitempty"`
	Sort    string `url:"sort,omitempty"`
}

type ProjectsService struct {
	service
}

func (s *ProjectsService) Get(ctx context.Context, id int64) (*Project, error) {
	return cache.GetOrFetch(ctx, s.cache, s.keys.Entity(formatID(id)), s.ttl, func(ctx context.Context) (*Project, error) {
		var out struct {
			Project *Project `json:"project"`
		}
		if err := s.client.Get(ctx, fmt.Sprintf("projects/%d", id), nil, &out); err != nil {
			return nil, err
		}
		return out.Project, nil
	})
}

func (s *ProjectsService) List(ctx context.Context, filter *ProjectFilter) ([]*Project, error) {
	key, err := s.keys.List(filter)
	if err != nil {
		return nil, err
	}
	return cache.GetOrFetch(ctx, s.cache, key, s.ttl, func(ctx context.Context) ([]*Project, error) {
		var out struct {
			Projects []*Project `json:"projects"`
		}
		if err := s.client.Get(ctx, "projects", filter, &out); err != nil {
			return nil, err
		}
		return out.Projects, nil
	})
}

func (s *ProjectsService) Create(ctx context.Context, p *Project) (*Project, error) {
	return cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (*Project, error) {
		var out struct {
			Project *Project `json:"project"`
		}
		body := map[string]*Project{"project": p}
		if err := s.client.Post(ctx, "projects", body, &out); err != nil {
			return nil, err
		}
		return out.Project, nil
	}, s.keys.CreateInvalidation()...)
}

func (s *ProjectsService) Update(ctx context.Context, id int64, p *Project) (*Project, error) {
	return cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (*Project, error) {
		var out struct {
			Project *Project `json:"project"`
		}
		body := map[string]*Project{"project": p}
		if err := s.client.Put(ctx, fmt.Sprintf("projects/%d", id), body, &out); err != nil {
			return nil, err
		}
		return out.Project, nil
	}, s.keys.Invalidation(formatID(id))...)
}

func (s *ProjectsService) Delete(ctx context.Context, id int64) error {
	_, err := cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.client.Delete(ctx, fmt.Sprintf("projects/%d", id))
	}, s.keys.Invalidation(formatID(id))...)
	return err
}
