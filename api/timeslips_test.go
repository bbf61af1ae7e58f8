package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeslipDateRangeFiltersAreDistinctSlots(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	var gets int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&gets, 1)
		w.Write([]byte(`{"timeslips":[{"hours":"8.0"}]}`))
	}))
	defer srv.Close()
	fa := newTestFreeAgent(srv)

	jan := &TimeslipFilter{FromDate: "2024-01-01", ToDate: "2024-01-31"}
	feb := &TimeslipFilter{FromDate: "2024-02-01", ToDate: "2024-02-29"}

	_, err := fa.Timeslips.List(ctx, jan)
	assert.NoError(err)
	_, err = fa.Timeslips.List(ctx, &TimeslipFilter{FromDate: "2024-01-01", ToDate: "2024-01-31"})
	assert.NoError(err)
	assert.EqualValues(1, atomic.LoadInt32(&gets), "equal date ranges must share a slot")

	_, err = fa.Timeslips.List(ctx, feb)
	assert.NoError(err)
	assert.EqualValues(2, atomic.LoadInt32(&gets))
}

func TestTimeslipDeleteInvalidatesEveryIssuedList(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	var gets int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "GET":
			atomic.AddInt32(&gets, 1)
			w.Write([]byte(`{"timeslips":[{"hours":"8.0"}]}`))
		case "DELETE":
			w.Write([]byte(`{}`))
		}
	}))
	defer srv.Close()
	fa := newTestFreeAgent(srv)

	// populate the unfiltered list and a filtered variant
	_, err := fa.Timeslips.List(ctx, nil)
	assert.NoError(err)
	_, err = fa.Timeslips.List(ctx, &TimeslipFilter{View: "unbilled"})
	assert.NoError(err)
	assert.EqualValues(2, atomic.LoadInt32(&gets))

	assert.NoError(fa.Timeslips.Delete(ctx, 42))

	// both variants must refetch
	_, err = fa.Timeslips.List(ctx, nil)
	assert.NoError(err)
	_, err = fa.Timeslips.List(ctx, &TimeslipFilter{View: "unbilled"})
	assert.NoError(err)
	assert.EqualValues(4, atomic.LoadInt32(&gets))
}

func TestTimeslipEmptyListIsCached(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	var gets int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&gets, 1)
		w.Write([]byte(`{"timeslips":[]}`))
	}))
	defer srv.Close()
	fa := newTestFreeAgent(srv)

	out, err := fa.Timeslips.List(ctx, nil)
	assert.NoError(err)
	assert.Empty(out)
	_, err = fa.Timeslips.List(ctx, nil)
	assert.NoError(err)
	assert.EqualValues(1, atomic.LoadInt32(&gets), "an empty result is still a cacheable success")
}
