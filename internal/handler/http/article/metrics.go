package article

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	articlesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "articles_created_total",
			Help: "Total number of articles created via the API",
		},
	)

	searchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_searches_total",
			Help: "Total number of quick search requests",
		},
		[]string{"outcome"},
	)
)

// recordSearch records a quick search request.
// outcome is "hit", "miss", or "short_query".
func recordSearch(outcome string) {
	searchesTotal.WithLabelValues(outcome).Inc()
}
