package visual

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var classifyAPIDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "badwords_classify_api_duration_sec",
	Help: "Duration of image classification API calls",
})

var classifyAPICount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "badwords_classify_api_count",
	Help: "Number of image classification API calls, by HTTP status code",
}, []string{"status"})

var preScreenSkipCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "badwords_prescreen_skips",
	Help: "Number of classifications skipped after an sfw prescreen verdict",
})
