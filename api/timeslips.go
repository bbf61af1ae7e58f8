package api

import (
	"context"
	"fmt"

	"github.com/ledgerline/freeagent/cache"
)

type Timeslip struct {
	URL             string `json:"url,omitempty"`
	User            string `json:"user,omitempty"`
	Project         string `json:"project,omitempty"`
	Task            string `json:"task,omitempty"`
	DatedOn         string `json:"dated_on,omitempty"`
	Hours           string `json:"hours,omitempty"`
	Comment         string `json:"comment,omitempty"`
	BilledOnInvoice string `json:"billed_on_invoice,omitempty"`
	UpdatedAt       string `json:"updated_at,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
}

type TimeslipFilter struct {
	FromDate     string `url:"from_date,omitempty"`
	ToDate       string `url:"to_date,omitempty"`
	UpdatedSince string `url:"updated_since,omitempty"`
	// View is "all", "unbilled" or "running".
	View    string `url:"view,omitempty"`
	User    string `url:"user,omitempty"`
	Project string `url:"project,omitempty"`
	Task    string `url:"task,omitempty"`
}

type TimeslipsService struct {
	service
}

func (s *TimeslipsService) Get(ctx context.Context, id int64) (*Timeslip, error) {
	return cache.GetOrFetch(ctx, s.cache, s.keys.Entity(formatID(id)), s.ttl, func(ctx context.Context) (*Timeslip, error) {
		var out struct {
			Timeslip *Timeslip `json:"timeslip"`
		}
		if err := s.client.Get(ctx, fmt.Sprintf("timeslips/%d", id), nil, &out); err != nil {
			return nil, err
		}
		return out.Timeslip, nil
	})
}

func (s *TimeslipsService) List(ctx context.Context, filter *TimeslipFilter) ([]*Timeslip, error) {
	key, err := s.keys.List(filter)
	if err != nil {
		return nil, err
	}
	return cache.GetOrFetch(ctx, s.cache, key, s.ttl, func(ctx context.Context) ([]*Timeslip, error) {
		var out struct {
			Timeslips []*Timeslip `json:"timeslips"`
		}
		if err := s.client.Get(ctx, "timeslips", filter, &out); err != nil {
			return nil, err
		}
		return out.Timeslips, nil
	})
}

func (s *TimeslipsService) Create(ctx context.Context, t *Timeslip) (*Timeslip, error) {
	return cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (*Timeslip, error) {
		var out struct {
			Timeslip *Timeslip `json:"timeslip"`
		}
		body := map[string]*Timeslip{"timeslip": t}
		if err := s.client.Post(ctx, "timeslips", body, &out); err != nil {
			return nil, err
		}
		return out.Timeslip, nil
	}, s.keys.CreateInvalidation()...)
}

func (s *TimeslipsService) Update(ctx context.Context, id int64, t *Timeslip) (*Timeslip, error) {
	return cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (*Timeslip, error) {
		var out struct {
			Timeslip *Timeslip `json:"timeslip"`
		}
		body := map[string]*Timeslip{"timeslip": t}
		if err := s.client.Put(ctx, fmt.Sprintf("timeslips/%d", id), body, &out); err != nil {
			return nil, err
		}
		return out.Timeslip, nil
	}, s.keys.Invalidation(formatID(id))...)
}

func (s *TimeslipsService) Delete(ctx context.Context, id int64) error {
	_, err := cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.client.Delete(ctx, fmt.Sprintf("timeslips/%d", id))
	}, s.keys.Invalidation(formatID(id))...)
	return err
}
