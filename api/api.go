// Package api exposes one service per FreeAgent resource. Every service
// shares one HTTP client and one cache store: reads go through the
// cache-aside accessor, mutations write through and invalidate the affected
// keys.
package api

import (
	"strconv"
	"time"

	"github.com/ledgerline/freeagent/cache"
	"github.com/ledgerline/freeagent/client"
)

// DefaultTTL is how long fetched resources stay fresh unless overridden.
const DefaultTTL = 5 * time.Minute

type FreeAgent struct {
	BankAccounts     *BankAccountsService
	BankTransactions *BankTransactionsService
	Explanations     *BankTransactionExplanationsService
	Categories       *CategoriesService
	Company          *CompanyService
	Contacts         *ContactsService
	Expenses         *ExpensesService
	Invoices         *InvoicesService
	Projects         *ProjectsService
	Tasks            *TasksService
	Timeslips        *TimeslipsService
	Users            *UsersService
}

type Options struct {
	// Store holds cached resources. Defaults to an unbounded in-process
	// store; pass a cache.RedisStore to share the cache across processes.
	Store cache.Store
	// TTL overrides DefaultTTL for every service.
	TTL time.Duration
}

func New(c *client.Client, opts *Options) *FreeAgent {
	if opts == nil {
		opts = &Options{}
	}
	store := opts.Store
	if store == nil {
		store = cache.NewMemStore(0)
	}
	ttl := opts.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &FreeAgent{
		BankAccounts:     &BankAccountsService{newService(c, store, "bank_accounts", ttl)},
		BankTransactions: &BankTransactionsService{newService(c, store, "bank_transactions", ttl)},
		Explanations:     &BankTransactionExplanationsService{newService(c, store, "bank_transaction_explanations", ttl)},
		Categories:       &CategoriesService{newService(c, store, "categories", ttl)},
		Company:          &CompanyService{newService(c, store, "company", ttl)},
		Contacts:         &ContactsService{newService(c, store, "contacts", ttl)},
		Expenses:         &ExpensesService{newService(c, store, "expenses", ttl)},
		Invoices:         &InvoicesService{newService(c, store, "invoices", ttl)},
		Projects:         &ProjectsService{newService(c, store, "projects", ttl)},
		Tasks:            &TasksService{newService(c, store, "tasks", ttl)},
		Timeslips:        &TimeslipsService{newService(c, store, "timeslips", ttl)},
		Users:            &UsersService{newService(c, store, "users", ttl)},
	}
}

// service is the plumbing every resource service embeds.
type service struct {
	client *client.Client
	cache  *cache.Accessor
	keys   *cache.Keys
	ttl    time.Duration
}

func newService(c *client.Client, store cache.Store, resource string, ttl time.Duration) service {
	return service{
		client: c,
		cache:  cache.NewAccessor(store, resource),
		keys:   cache.NewKeys(resource),
		ttl:    ttl,
	}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
