package api

import (
	"context"
	"fmt"

	"github.com/ledgerline/freeagent/cache"
)

type Task struct {
	URL           string `json:"url,omitempty"`
	Project       string `json:"project,omitempty"`
	Name          string `json:"name,omitempty"`
	IsBillable    bool   `json:"is_billable,omitempty"`
	BillingRate   string `json:"billing_rate,omitempty"`
	BillingPeriod string `json:"billing_period,omitempty"`
	Status        string `json:"status,omitempty"`
	UpdatedAt     string `json:"updated_at,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
}

type TaskFilter struct {
	// View is "all", "active", "completed" or "hidden".
	View    string `url:"view,omitempty"`
	Project string `url:"project,omitempty"`
}

type TasksService struct {
	service
}

func (s *TasksService) Get(ctx context.Context, id int64) (*Task, error) {
	return cache.GetOrFetch(ctx, s.cache, s.keys.Entity(formatID(id)), s.ttl, func(ctx context.Context) (*Task, error) {
		var out struct {
			Task *Task `json:"task"`
		}
		if err := s.client.Get(ctx, fmt.Sprintf("tasks/%d", id), nil, &out); err != nil {
			return nil, err
		}
		return out.Task, nil
	})
}

func (s *TasksService) List(ctx context.Context, filter *TaskFilter) ([]*Task, error) {
	key, err := s.keys.List(filter)
	if err != nil {
		return nil, err
	}
	return cache.GetOrFetch(ctx, s.cache, key, s.ttl, func(ctx context.Context) ([]*Task, error) {
		var out struct {
			Tasks []*Task `json:"tasks"`
		}
		if err := s.client.Get(ctx, "tasks", filter, &out); err != nil {
			return nil, err
		}
		return out.Tasks, nil
	})
}

// Create adds a task under the given project.
func (s *TasksService) Create(ctx context.Context, projectID int64, t *Task) (*Task, error) {
	return cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (*Task, error) {
		var out struct {
			Task *Task `json:"task"`
		}
		body := map[string]*Task{"task": t}
		if err := s.client.Post(ctx, fmt.Sprintf("tasks?project=%d", projectID), body, &out); err != nil {
			return nil, err
		}
		return out.Task, nil
	}, s.keys.CreateInvalidation()...)
}

func (s *TasksService) Update(ctx context.Context, id int64, t *Task) (*Task, error) {
	return cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (*Task, error) {
		var out struct {
			Task *Task `json:"task"`
		}
		body := map[string]*Task{"task": t}
		if err := s.client.Put(ctx, fmt.Sprintf("tasks/%d", id), body, &out); err != nil {
			return nil, err
		}
		return out.Task, nil
	}, s.keys.Invalidation(formatID(id))...)
}

func (s *TasksService) Delete(ctx context.Context, id int64) error {
	_, err := cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.client.Delete(ctx, fmt.Sprintf("tasks/%d", id))
	}, s.keys.Invalidation(formatID(id))...)
	return err
}
