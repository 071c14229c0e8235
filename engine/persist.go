package engine

import (
	"context"
	"fmt"

	"github.com/moderation-tools/badwords/countstore"
	"github.com/moderation-tools/badwords/util"
)

func (eng *Engine) persistCounters(ctx context.Context, eff *Effects) error {
	for _, ref := range eff.CounterIncrements {
		if err := eng.Counters.Increment(ctx, ref.Name, ref.Val); err != nil {
			return err
		}
	}
	for _, ref := range eff.CounterDistinctIncrements {
		if err := eng.Counters.IncrementDistinct(ctx, ref.Name, ref.Bucket, ref.Val); err != nil {
			return err
		}
	}
	return nil
}

// Persists moderation actions: new labels, flags, reports, and takedowns.
//
// Note that this method expects to run *before* counters are persisted (it
// accesses and updates some counts).
func (eng *Engine) persistEffects(c *BaseContext, author Author, contentID string) error {
	ctx := c.Ctx
	eff := c.effects

	newLabels := util.DedupeStrings(eff.Labels)

	// don't re-apply flags the author already carries
	existingFlags, err := eng.Flags.Get(ctx, author.ID)
	if err != nil {
		return fmt.Errorf("reading existing flags: %w", err)
	}
	newFlags := dedupeFlagActions(eff.Flags, existingFlags)

	// don't report the same author multiple times on the same day for the same reason
	partialReports, err := eng.dedupeReportActions(ctx, author.ID, eff.Reports)
	if err != nil {
		return err
	}
	newReports, err := eng.circuitBreakReports(ctx, partialReports)
	if err != nil {
		return err
	}
	newTakedown, err := eng.circuitBreakTakedown(ctx, eff.Takedown)
	if err != nil {
		return err
	}

	anyModActions := newTakedown || len(newLabels) > 0 || len(newFlags) > 0 || len(newReports) > 0
	if anyModActions && eng.SlackWebhookURL != "" {
		msg := slackBody("⚠️ Moderation Action ⚠️\n", author, contentID, newLabels, newFlags, newReports, newTakedown)
		if err := eng.SendSlackMsg(ctx, msg); err != nil {
			eng.Logger.Error("sending slack webhook", "err", err)
		}
	}

	if len(newFlags) > 0 {
		if err := eng.Flags.Add(ctx, author.ID, newFlags); err != nil {
			return fmt.Errorf("persisting flags: %w", err)
		}
		for _, val := range newFlags {
			actionNewFlagCount.WithLabelValues(val).Inc()
		}
	}
	for _, val := range newLabels {
		actionNewLabelCount.WithLabelValues(val).Inc()
	}
	for range newReports {
		actionNewReportCount.Inc()
	}
	if newTakedown {
		eng.Logger.Warn("content-takedown", "author", author.ID, "content", contentID)
		actionNewTakedownCount.Inc()
	}

	if eng.Decisions != nil && anyModActions {
		reportReasons := make([]string, len(newReports))
		for i, r := range newReports {
			reportReasons[i] = r.Reason
		}
		if err := eng.Decisions.Record(ctx, author.ID, newLabels, newFlags, reportReasons, newTakedown); err != nil {
			return fmt.Errorf("recording decision: %w", err)
		}
	}
	return nil
}

func dedupeFlagActions(flags, existing []string) []string {
	newFlags := []string{}
	for _, val := range util.DedupeStrings(flags) {
		exists := false
		for _, e := range existing {
			if val == e {
				exists = true
				break
			}
		}
		if !exists {
			newFlags = append(newFlags, val)
		}
	}
	return newFlags
}

func (eng *Engine) dedupeReportActions(ctx context.Context, authorID string, reports []Report) ([]Report, error) {
	newReports := []Report{}
	for _, r := range reports {
		counterName := "report-" + r.Reason
		existing, err := eng.GetCount(ctx, counterName, authorID, countstore.PeriodDay)
		if err != nil {
			return nil, fmt.Errorf("checking report de-dupe counts: %w", err)
		}
		if existing > 0 {
			eng.Logger.Debug("skipping duplicate report", "existing", existing, "reason", r.Reason)
		} else {
			if err := eng.Counters.Increment(ctx, counterName, authorID); err != nil {
				return nil, err
			}
			newReports = append(newReports, r)
		}
	}
	return newReports, nil
}

func (eng *Engine) circuitBreakReports(ctx context.Context, reports []Report) ([]Report, error) {
	if len(reports) == 0 {
		return []Report{}, nil
	}
	c, err := eng.GetCount(ctx, "engine-quota", "report", countstore.PeriodDay)
	if err != nil {
		return nil, fmt.Errorf("checking report action quota: %w", err)
	}
	if c >= QuotaReportDay {
		eng.Logger.Warn("CIRCUIT BREAKER: reports")
		return []Report{}, nil
	}
	if err := eng.Counters.Increment(ctx, "engine-quota", "report"); err != nil {
		return nil, err
	}
	return reports, nil
}

func (eng *Engine) circuitBreakTakedown(ctx context.Context, takedown bool) (bool, error) {
	if !takedown {
		return false, nil
	}
	c, err := eng.GetCount(ctx, "engine-quota", "takedown", countstore.PeriodDay)
	if err != nil {
		return false, fmt.Errorf("checking takedown action quota: %w", err)
	}
	if c >= QuotaTakedownDay {
		eng.Logger.Warn("CIRCUIT BREAKER: takedowns")
		return false, nil
	}
	if err := eng.Counters.Increment(ctx, "engine-quota", "takedown"); err != nil {
		return false, err
	}
	return true, nil
}
