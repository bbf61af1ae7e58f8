package api

import (
	"context"

	"github.com/ledgerline/freeagent/cache"
)

type Company struct {
	URL                        string `json:"url,omitempty"`
	Name                       string `json:"name,omitempty"`
	Subdomain                  string `json:"subdomain,omitempty"`
	Type                       string `json:"type,omitempty"`
	Currency                   string `json:"currency,omitempty"`
	MileageUnits               string `json:"mileage_units,omitempty"`
	CompanyStartDate           string `json:"company_start_date,omitempty"`
	FreeagentStartDate         string `json:"freeagent_start_date,omitempty"`
	FirstAccountingYearEnd     string `json:"first_accounting_year_end,omitempty"`
	CompanyRegistrationNumber  string `json:"company_registration_number,omitempty"`
	SalesTaxRegistrationStatus string `json:"sales_tax_registration_status,omitempty"`
	SalesTaxRegistrationNumber string `json:"sales_tax_registration_number,omitempty"`
}

// CompanyService exposes the authenticated company, a singleton resource.
type CompanyService struct {
	service
}

func (s *CompanyService) Get(ctx context.Context) (*Company, error) {
	return cache.GetOrFetch(ctx, s.cache, s.keys.Entity("current"), s.ttl, func(ctx context.Context) (*Company, error) {
		var out struct {
			Company *Company `json:"company"`
		}
		if err := s.client.Get(ctx, "company", nil, &out); err != nil {
			return nil, err
		}
		return out.Company, nil
	})
}
