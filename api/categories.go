package api

import (
	"context"

	"github.com/ledgerline/freeagent/cache"
)

type Category struct {
	URL              string `json:"url,omitempty"`
	Description      string `json:"description,omitempty"`
	NominalCode      string `json:"nominal_code,omitempty"`
	AllowableForTax  bool   `json:"allowable_for_tax,omitempty"`
	TaxReportingName string `json:"tax_reporting_name,omitempty"`
	AutoSalesTaxRate string `json:"auto_sales_tax_rate,omitempty"`
}

// CategoryList groups accounting categories the way the API returns them.
type CategoryList struct {
	AdminExpensesCategories []*Category `json:"admin_expenses_categories,omitempty"`
	CostOfSalesCategories   []*Category `json:"cost_of_sales_categories,omitempty"`
	IncomeCategories        []*Category `json:"income_categories,omitempty"`
	GeneralCategories       []*Category `json:"general_categories,omitempty"`
}

// CategoriesService is read-only; categories only change with the company's
// chart of accounts.
type CategoriesService struct {
	service
}

// Get looks up one category by nominal code.
func (s *CategoriesService) Get(ctx context.Context, nominalCode string) (*Category, error) {
	return cache.GetOrFetch(ctx, s.cache, s.keys.Entity(nominalCode), s.ttl, func(ctx context.Context) (*Category, error) {
		var out struct {
			Category *Category `json:"category"`
		}
		if err := s.client.Get(ctx, "categories/"+nominalCode, nil, &out); err != nil {
			return nil, err
		}
		return out.Category, nil
	})
}

func (s *CategoriesService) List(ctx context.Context) (*CategoryList, error) {
	key, err := s.keys.List(nil)
	if err != nil {
		return nil, err
	}
	return cache.GetOrFetch(ctx, s.cache, key, s.ttl, func(ctx context.Context) (*CategoryList, error) {
		var out CategoryList
		if err := s.client.Get(ctx, "categories", nil, &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
}
