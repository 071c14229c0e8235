package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var eventProcessDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "badwords_event_duration_sec",
	Help: "Total duration of moderation event processing",
}, []string{"type"})

var eventProcessCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "badwords_event_processed",
	Help: "Number of events processed",
}, []string{"type"})

var eventErrorCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "badwords_event_errors",
	Help: "Number of events which failed processing",
}, []string{"type"})

var actionNewLabelCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "badwords_new_action_labels",
	Help: "Number of new labels persisted",
}, []string{"val"})

var actionNewFlagCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "badwords_new_action_flags",
	Help: "Number of new flags persisted",
}, []string{"val"})

var actionNewReportCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "badwords_new_action_reports",
	Help: "Number of new reports filed",
})

var actionNewTakedownCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "badwords_new_action_takedowns",
	Help: "Number of new takedowns",
})
