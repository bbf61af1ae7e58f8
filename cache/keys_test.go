package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type timeslipFilter struct {
	FromDate string `url:"from_date,omitempty"`
	ToDate   string `url:"to_date,omitempty"`
	View     string `url:"view,omitempty"`
}

func TestEntityKey(t *testing.T) {
	assert := assert.New(t)
	k := NewKeys("timeslips")
	assert.Equal("timeslips_42", k.Entity("42"))
}

func TestListKeyDeterminism(t *testing.T) {
	assert := assert.New(t)
	k := NewKeys("timeslips")

	k1, err := k.List(&timeslipFilter{FromDate: "2024-01-01", ToDate: "2024-01-31"})
	assert.NoError(err)
	k2, err := k.List(&timeslipFilter{FromDate: "2024-01-01", ToDate: "2024-01-31"})
	assert.NoError(err)
	assert.Equal(k1, k2, "equal filters must yield byte-identical keys")

	k3, err := k.List(&timeslipFilter{FromDate: "2024-02-01", ToDate: "2024-02-29"})
	assert.NoError(err)
	assert.NotEqual(k1, k3, "different filters must yield different keys")
}

func TestListKeyNoFilter(t *testing.T) {
	assert := assert.New(t)
	k := NewKeys("timeslips")

	k1, err := k.List(nil)
	assert.NoError(err)
	assert.Equal("timeslips_all", k1)

	// a filter with only zero-valued fields is the unfiltered list
	k2, err := k.List(&timeslipFilter{})
	assert.NoError(err)
	assert.Equal(k1, k2)
	assert.Equal(k1, k.All())
}

func TestInvalidationCoversIssuedListKeys(t *testing.T) {
	assert := assert.New(t)
	k := NewKeys("timeslips")

	all := k.All()
	filtered, err := k.List(&timeslipFilter{View: "unbilled"})
	assert.NoError(err)

	inv := k.Invalidation("42")
	assert.Contains(inv, "timeslips_42")
	assert.Contains(inv, all)
	assert.Contains(inv, filtered)

	create := k.CreateInvalidation()
	assert.NotContains(create, "timeslips_42")
	assert.Contains(create, all)
	assert.Contains(create, filtered)
}

func TestInvalidationBeforeAnyList(t *testing.T) {
	assert := assert.New(t)
	k := NewKeys("timeslips")

	// nothing issued yet, so nothing can be populated
	assert.Equal([]string{"timeslips_42"}, k.Invalidation("42"))
	assert.Empty(k.CreateInvalidation())
}
