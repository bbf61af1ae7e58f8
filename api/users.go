package api

import (
	"context"
	"fmt"

	"github.com/ledgerline/freeagent/cache"
)

type User struct {
	URL             string `json:"url,omitempty"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	Email           string `json:"email,omitempty"`
	Role            string `json:"role,omitempty"`
	PermissionLevel int    `json:"permission_level,omitempty"`
	OpeningMileage  string `json:"opening_mileage,omitempty"`
	UpdatedAt       string `json:"updated_at,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
}

type UserFilter struct {
	// View is "all", "active" or "hidden".
	View string `url:"view,omitempty"`
}

type UsersService struct {
	service
}

func (s *UsersService) Get(ctx context.Context, id int64) (*User, error) {
	return cache.GetOrFetch(ctx, s.cache, s.keys.Entity(formatID(id)), s.ttl, func(ctx context.Context) (*User, error) {
		var out struct {
			User *User `json:"user"`
		}
		if err := s.client.Get(ctx, fmt.Sprintf("users/%d", id), nil, &out); err != nil {
			return nil, err
		}
		return out.User, nil
	})
}

// Me returns the user the access token belongs to.
func (s *UsersService) Me(ctx context.Context) (*User, error) {
	return cache.GetOrFetch(ctx, s.cache, s.keys.Entity("me"), s.ttl, func(ctx context.Context) (*User, error) {
		var out struct {
			User *User `json:"user"`
		}
		if err := s.client.Get(ctx, "users/me", nil, &out); err != nil {
			return nil, err
		}
		return out.User, nil
	})
}

func (s *UsersService) List(ctx context.Context, filter *UserFilter) ([]*User, error) {
	key, err := s.keys.List(filter)
	if err != nil {
		return nil, err
	}
	return cache.GetOrFetch(ctx, s.cache, key, s.ttl, func(ctx context.Context) ([]*User, error) {
		var out struct {
			Users []*User `json:"users"`
		}
		if err := s.client.Get(ctx, "users", filter, &out); err != nil {
			return nil, err
		}
		return out.Users, nil
	})
}

func (s *UsersService) Create(ctx context.Context, u *User) (*User, error) {
	return cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (*User, error) {
		var out struct {
			User *User `json:"user"`
		}
		body := map[string]*User{"user": u}
		if err := s.client.Post(ctx, "users", body, &out); err != nil {
			return nil, err
		}
		return out.User, nil
	}, s.keys.CreateInvalidation()...)
}

func (s *UsersService) Update(ctx context.Context, id int64, u *User) (*User, error) {
	return cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (*User, error) {
		var out struct {
			User *User `json:"user"`
		}
		body := map[string]*User{"user": u}
		if err := s.client.Put(ctx, fmt.Sprintf("users/%d", id), body, &out); err != nil {
			return nil, err
		}
		return out.User, nil
	}, s.keys.Invalidation(formatID(id))...)
}

func (s *UsersService) Delete(ctx context.Context, id int64) error {
	_, err := cache.MutateAndInvalidate(ctx, s.cache, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.client.Delete(ctx, fmt.Sprintf("users/%d", id))
	}, s.keys.Invalidation(formatID(id))...)
	return err
}
