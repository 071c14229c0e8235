package engine

import "sync"

var (
	ReportReasonSpam      = "spam"
	ReportReasonViolation = "violation"
	ReportReasonSexual    = "sexual"
	ReportReasonRude      = "rude"
	ReportReasonOther     = "other"
)

var (
	// number of reports the engine can file per day, for all subjects and
	// reasons combined (circuit breaker)
	QuotaReportDay = 50
	// number of takedowns the engine can action per day, for all subjects
	// combined (circuit breaker)
	QuotaTakedownDay = 10
)

type CounterRef struct {
	Name string
	Val  string
}

type CounterDistinctRef struct {
	Name   string
	Bucket string
	Val    string
}

type Report struct {
	Reason  string
	Comment string
}

// Mutable container for all the possible side-effects from rule execution.
//
// Collected during rule execution, deduplicated and persisted in bulk at
// the end of event processing. Mutators are safe to call from concurrent
// rules; fields are only read once all rules complete.
type Effects struct {
	mu sync.Mutex

	// counters which should be incremented as part of processing this event
	CounterIncrements []CounterRef
	// same, but for "distinct value" style counters
	CounterDistinctIncrements []CounterDistinctRef
	// label values which should be applied to the content
	Labels []string
	// moderation flags (similar to labels, but private) for the content's author
	Flags []string
	// reports which should be filed against the author
	Reports []Report
	// if true, a rule determined the content should be removed outright
	Takedown bool
}

// Enqueues the named counter to be incremented at the end of all rule
// processing. Will automatically increment for all time periods.
func (e *Effects) Increment(name, val string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.CounterIncrements = append(e.CounterIncrements, CounterRef{Name: name, Val: val})
}

// Enqueues the named "distinct value" counter to be incremented at the end
// of all rule processing.
func (e *Effects) IncrementDistinct(name, bucket, val string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.CounterDistinctIncrements = append(e.CounterDistinctIncrements, CounterDistinctRef{Name: name, Bucket: bucket, Val: val})
}

func (e *Effects) AddLabel(val string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Labels = append(e.Labels, val)
}

func (e *Effects) AddFlag(val string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Flags = append(e.Flags, val)
}

func (e *Effects) Report(reason, comment string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if comment == "" {
		comment = "(no comment)"
	}
	comment = "badwords: " + comment
	e.Reports = append(e.Reports, Report{Reason: reason, Comment: comment})
}

func (e *Effects) TakedownContent() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Takedown = true
}
