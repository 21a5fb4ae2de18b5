package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/adpulse/backend/internal/envdata"
	"github.com/adpulse/backend/internal/notify"
	"github.com/adpulse/backend/internal/ports"
	"github.com/adpulse/backend/internal/script"
	"github.com/adpulse/backend/internal/voice"
)

const defaultDelay = 5 * time.Second

// Service drives the condition-matching-to-audio pipeline. One run at a
// time: mu serializes overlapping triggers (scheduler vs manual), so two
// drains can never double-process the same pending record.
type Service struct {
	mu sync.Mutex

	matcher     Matcher
	lifecycle   Lifecycle
	ads         ports.AdvertisingRepo
	advertisers ports.AdvertiserRepo
	rules       ports.RuleRepo
	audios      ports.AudioRepo
	writer      script.Writer
	synth       Synthesizer
	notifier    notify.Notificator

	delay time.Duration
	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time
}

func NewService(
	matcher Matcher,
	lifecycle Lifecycle,
	ads ports.AdvertisingRepo,
	advertisers ports.AdvertiserRepo,
	rules ports.RuleRepo,
	audios ports.AudioRepo,
	writer script.Writer,
	synth Synthesizer,
	notifier notify.Notificator,
	delay time.Duration,
) *Service {
	if delay <= 0 {
		delay = defaultDelay
	}
	return &Service{
		matcher:     matcher,
		lifecycle:   lifecycle,
		ads:         ads,
		advertisers: advertisers,
		rules:       rules,
		audios:      audios,
		writer:      writer,
		synth:       synth,
		notifier:    notifier,
		delay:       delay,
		sleep:       sleepCtx,
		now:         time.Now,
	}
}

// RunForNewSnapshot matches the snapshot against active rules and drains
// everything pending. Zero matches is a normal no-op.
func (s *Service) RunForNewSnapshot(ctx context.Context, snap envdata.Snapshot) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.newResult()

	matches, err := s.matcher.ProcessSnapshot(ctx, snap)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("process snapshot: %v", err))
		return res
	}
	if len(matches) == 0 {
		log.Printf("[pipeline] run=%s no rules matched", res.RunID)
		return res
	}

	// drain reads pending back from storage, so records stranded by an
	// earlier crash ride along with the ones just created
	s.drain(ctx, &res)
	return res
}

// DrainPending processes every pending record. Safe to call at any time:
// with nothing pending it returns zero counters and touches nothing.
func (s *Service) DrainPending(ctx context.Context) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.newResult()
	s.drain(ctx, &res)
	return res
}

// RetryFailed resets every failed record to pending, then drains. Retries
// are manual and uncapped.
func (s *Service) RetryFailed(ctx context.Context) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.newResult()

	failed, err := s.ads.ListByStatus(ctx, ports.AdStatusFailed)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("fetch failed records: %v", err))
		return res
	}
	if len(failed) == 0 {
		return res
	}

	for _, rec := range failed {
		if err := s.lifecycle.ResetToPending(ctx, rec.ID); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("record %d: reset to pending: %v", rec.ID, err))
		}
	}

	s.drain(ctx, &res)
	return res
}

// Stats reports record counts per status.
func (s *Service) Stats(ctx context.Context) Stats {
	counts, err := s.ads.CountByStatus(ctx)
	if err != nil {
		return Stats{Error: err.Error()}
	}

	st := Stats{
		Pending:   counts[ports.AdStatusPending],
		Completed: counts[ports.AdStatusDone],
		Failed:    counts[ports.AdStatusFailed],
	}
	st.Total = st.Pending + st.Completed + st.Failed
	return st
}

func (s *Service) newResult() Result {
	return Result{RunID: uuid.NewString(), Errors: []string{}}
}

// drain is the sequential batch loop. Callers must hold mu.
func (s *Service) drain(ctx context.Context, res *Result) {
	pending, err := s.ads.ListByStatus(ctx, ports.AdStatusPending)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("fetch pending records: %v", err))
		return
	}
	if len(pending) == 0 {
		return
	}

	log.Printf("[pipeline] run=%s draining %d pending records", res.RunID, len(pending))

	for i, rec := range pending {
		// inter-record delay: the TTS provider caps request rate
		if i > 0 {
			if err := s.sleep(ctx, s.delay); err != nil {
				res.Errors = append(res.Errors, fmt.Sprintf("run cancelled: %v", err))
				return
			}
		}
		s.processRecord(ctx, res, rec)
	}

	log.Printf("[pipeline] run=%s done: %d ok, %d failed",
		res.RunID, res.SuccessfulGenerations, res.FailedGenerations)
}

func (s *Service) processRecord(ctx context.Context, res *Result, rec ports.AdvertisingRecord) {
	res.ProcessedRecords++

	adv, err := s.advertisers.GetByID(ctx, rec.AdvertiserID)
	if err != nil {
		s.failRecord(ctx, res, rec.ID, 0, fmt.Errorf("advertiser %d: %w", rec.AdvertiserID, err))
		return
	}

	sr, err := s.writer.GenerateScript(ctx, script.Request{
		AdvertiserName: adv.DisplayName,
		BusinessType:   adv.BusinessType,
		RuleID:         rec.RuleID,
		CurrentTime:    s.now().Format(envdata.TimeLayout),
	})
	if err != nil {
		// no audio row exists yet for a script failure
		s.failRecord(ctx, res, rec.ID, 0, fmt.Errorf("generate script: %w", err))
		return
	}

	audioID, err := s.audios.Create(ctx, &ports.Audio{
		Text:      sr.Script,
		VoiceType: sr.VoiceStyle,
		Status:    ports.AudioStatusPending,
		Variables: map[string]any{
			"rule_id":       rec.RuleID,
			"advertiser_id": rec.AdvertiserID,
			"business_type": adv.BusinessType,
			"timestamp":     s.now().Format(time.RFC3339),
		},
	})
	if err != nil {
		s.failRecord(ctx, res, rec.ID, 0, fmt.Errorf("create audio: %w", err))
		return
	}

	settings := voice.Default()
	if rule, rerr := s.rules.GetByRuleID(ctx, rec.RuleID); rerr != nil {
		log.Printf("[pipeline] rule %s lookup failed, using default voice profile: %v", rec.RuleID, rerr)
	} else {
		var conds map[string]any
		_ = json.Unmarshal(rule.Conditions, &conds)
		settings = voice.SelectSettings(rule.RuleType, conds, s.now())
	}

	synth, err := s.synth.Synthesize(ctx, sr.Script, sr.VoiceStyle, settings, adv.Name)
	if err != nil {
		s.failRecord(ctx, res, rec.ID, audioID, err)
		return
	}

	if err := s.audios.MarkCompleted(ctx, audioID, synth.AudioPath, synth.Duration); err != nil {
		log.Printf("[pipeline] mark audio completed id=%d: %v", audioID, err)
	}
	if err := s.lifecycle.UpdateStatus(ctx, rec.ID, ports.AdStatusDone, &synth.AudioPath); err != nil {
		// the audio row exists, keep it in lockstep with the failed record
		s.failRecord(ctx, res, rec.ID, audioID, fmt.Errorf("mark done: %w", err))
		return
	}

	res.SuccessfulGenerations++
}

// failRecord marks the record (and its audio row, when one exists) failed,
// books the failure and keeps the batch going.
func (s *Service) failRecord(ctx context.Context, res *Result, recordID, audioID int64, err error) {
	res.FailedGenerations++
	res.Errors = append(res.Errors, fmt.Sprintf("record %d: %v", recordID, err))

	if audioID != 0 {
		if aerr := s.audios.MarkFailed(ctx, audioID); aerr != nil {
			log.Printf("[pipeline] mark audio failed id=%d: %v", audioID, aerr)
		}
	}
	if uerr := s.lifecycle.UpdateStatus(ctx, recordID, ports.AdStatusFailed, nil); uerr != nil {
		log.Printf("[pipeline] mark record failed id=%d: %v", recordID, uerr)
	}
	if s.notifier != nil {
		_ = s.notifier.Notify(ctx, err, fmt.Sprintf("advertising record %d", recordID))
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
