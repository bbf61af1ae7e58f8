package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "freeagent_cache_hits",
	Help: "Resource reads served from cache",
}, []string{"resource"})

var cacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "freeagent_cache_misses",
	Help: "Resource reads that required a fetch",
}, []string{"resource"})

var cacheInvalidations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "freeagent_cache_invalidations",
	Help: "Cache keys removed after successful mutations",
}, []string{"resource"})
