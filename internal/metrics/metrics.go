package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Content pipeline metrics
	ContentFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "readlater_content_fetches_total",
			Help: "Content fetches by the tier that produced the result",
		},
		[]string{"source"},
	)

	ContentFetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "readlater_content_fetch_errors_total",
			Help: "Failed content fetches by error kind",
		},
		[]string{"kind"},
	)

	// Reconciliation metrics
	ReconcileEntries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "readlater_reconcile_entries_total",
			Help: "Inbox entries consumed by reconciliation, by outcome",
		},
		[]string{"outcome"},
	)

	// Duplicate sweep metrics
	DuplicatesMerged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "readlater_duplicates_merged_total",
			Help: "Duplicate article records folded into their keeper",
		},
	)

	ArticlesSaved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "readlater_articles_saved_total",
			Help: "Article saves by whether a new record was created",
		},
		[]string{"result"},
	)
)
