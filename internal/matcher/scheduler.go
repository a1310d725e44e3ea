package matcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/automatcher/internal/filtering"
	"github.com/spigell/automatcher/internal/logger"
	"github.com/spigell/automatcher/internal/tinder"
	"github.com/spigell/automatcher/internal/utils"
)

const (
	DefaultInitialLikes = 1
	DefaultBackoff      = time.Hour
	DefaultCooldown     = 12 * time.Hour

	maxBioLogLength = 80

	phasePriming    = "priming"
	phaseTeaserScan = "teaser_scan"
	phaseFallback   = "fallback_spend"
	phaseCooldown   = "cooldown"
)

type Config struct {
	Location tinder.Geolocation
	// InitialLikes is the budget assumed before the first like response arrives.
	InitialLikes int
	// Rearm resets an empty budget to one like at the start of every cycle,
	// so that the first like response of the cycle reports the real count.
	Rearm    bool
	Backoff  time.Duration
	Cooldown time.Duration
}

// Scheduler runs the matching loop: priming, teaser scan, fallback spend and
// cooldown, until the context is cancelled or a feed call fails.
type Scheduler struct {
	feed   Feed
	source *Source
	cfg    Config
	logger *zap.Logger

	wait func(ctx context.Context, d time.Duration) error
}

func NewScheduler(feed Feed, cfg Config, log *zap.Logger) *Scheduler {
	if cfg.InitialLikes <= 0 {
		cfg.InitialLikes = DefaultInitialLikes
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = DefaultBackoff
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = DefaultCooldown
	}

	return &Scheduler{
		feed:   feed,
		source: NewSource(feed),
		cfg:    cfg,
		logger: logger.WithFields(log),
		wait:   utils.WaitFor,
	}
}

// Run blocks until ctx is cancelled or an unrecoverable error happens.
// On cancellation it returns ctx.Err().
func (s *Scheduler) Run(ctx context.Context) error {
	budget := NewBudget(s.cfg.InitialLikes)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.Cycle(ctx, budget); err != nil {
			return err
		}

		s.logger.Debug("bot loop ended, pausing",
			zap.String(logger.FieldPhase, phaseCooldown),
			zap.Duration("pause", s.cfg.Cooldown),
			zap.Int(logger.FieldLikesRemaining, budget.Remaining()),
		)

		if err := s.wait(ctx, s.cfg.Cooldown); err != nil {
			return err
		}
	}
}

// Cycle runs a single pass of priming, teaser scan and fallback spend against the budget.
func (s *Scheduler) Cycle(ctx context.Context, budget *Budget) error {
	if s.cfg.Rearm && budget.Exhausted() {
		budget.Set(1)
		s.logger.Debug("re-armed empty like budget", zap.Int(logger.FieldLikesRemaining, budget.Remaining()))
	}

	teasers, err := s.prime(ctx)
	if err != nil {
		return err
	}

	if err := s.teaserScan(ctx, budget, teasers); err != nil {
		return err
	}

	return s.fallbackSpend(ctx, budget)
}

func (s *Scheduler) prime(ctx context.Context) (TeaserSet, error) {
	log := s.logger.With(zap.String(logger.FieldPhase, phasePriming))

	if err := s.feed.Ping(ctx, s.cfg.Location); err != nil {
		return nil, err
	}
	log.Debug("updated location", zap.Float64("lat", s.cfg.Location.Lat), zap.Float64("lon", s.cfg.Location.Lon))

	count, err := TeaserCount(ctx, s.feed)
	if err != nil {
		return nil, err
	}
	log.Debug("people liked you", zap.Int("count", count))

	teasers, err := BuildTeaserSet(ctx, s.feed)
	if err != nil {
		return nil, err
	}
	log.Debug("built teaser set", zap.Int("photos", teasers.Len()))

	return teasers, nil
}

func (s *Scheduler) teaserScan(ctx context.Context, budget *Budget, teasers TeaserSet) error {
	log := s.logger.With(zap.String(logger.FieldPhase, phaseTeaserScan))

	// Without teasers no page can match. Scanning would only fetch one page and
	// throw it away, so the fallback phase gets that page instead.
	if teasers.Len() == 0 {
		log.Debug("nobody teased, skipping teaser scan")
		return nil
	}

	var total filtering.Step
	found := true
	for pass := 1; found && !budget.Exhausted(); pass++ {
		found = false

		stream := NewTeasedStream(s.nextPage, filtering.NewTeased(teasers))
		for !budget.Exhausted() {
			rec, err := stream.Next(ctx)
			if err != nil {
				return err
			}
			if rec == nil {
				break
			}

			found = true

			result, err := budget.Spend(ctx, s.feed, rec.UserInfo.ID)
			if err != nil {
				return err
			}

			fields := logger.LikeFields(rec.UserInfo.ID, rec.UserInfo.Name, budget.Remaining())
			if result.Match == nil {
				log.Error("teased recommendation was not a match", fields...)
				continue
			}

			log.Info("you matched", fields...)
			log.Debug("matched profile bio",
				append(logger.CandidateFields(rec.UserInfo.ID, ""),
					zap.String("bio", utils.TruncateForLog(rec.UserInfo.Bio, maxBioLogLength)))...,
			)
		}

		pages, step := stream.Stats()
		total.Merge(step)
		log.Debug("teaser scan pass finished",
			zap.Int("pass", pass),
			zap.Int("pages", pages),
			zap.Int("scanned", step.Initial),
			zap.Int("teased", step.Left),
		)
	}

	log.Debug("no more teased recommendations found",
		zap.Int("scanned", total.Initial),
		zap.Int("teased", total.Left),
		zap.Int(logger.FieldLikesRemaining, budget.Remaining()),
	)

	return nil
}

func (s *Scheduler) fallbackSpend(ctx context.Context, budget *Budget) error {
	log := s.logger.With(zap.String(logger.FieldPhase, phaseFallback))

	for !budget.Exhausted() {
		log.Debug("spending likes to increase profile visibility", zap.Int(logger.FieldLikesRemaining, budget.Remaining()))

		recs, err := s.nextPage(ctx)
		if err != nil {
			return err
		}

		if len(recs) == 0 {
			log.Debug("empty recommendations page, retrying later", zap.Duration("backoff", s.cfg.Backoff))
			if err := s.wait(ctx, s.cfg.Backoff); err != nil {
				return fmt.Errorf("waiting for recommendations: %w", err)
			}
			continue
		}

		for _, rec := range recs {
			if budget.Exhausted() {
				break
			}

			if _, err := budget.Spend(ctx, s.feed, rec.UserInfo.ID); err != nil {
				return err
			}

			log.Info("you liked", logger.LikeFields(rec.UserInfo.ID, rec.UserInfo.Name, budget.Remaining())...)
		}
	}

	return nil
}

// nextPage fetches a page, waiting out feed exhaustion for as long as it takes.
func (s *Scheduler) nextPage(ctx context.Context) ([]*tinder.Recommendation, error) {
	for {
		recs, err := s.source.Fetch(ctx)
		if err == nil {
			return recs, nil
		}

		if !errors.Is(err, ErrExhausted) {
			return nil, err
		}

		s.logger.Debug("no more recommendations, retrying later", zap.Duration("backoff", s.cfg.Backoff))

		if err := s.wait(ctx, s.cfg.Backoff); err != nil {
			return nil, fmt.Errorf("waiting for recommendations: %w", err)
		}
	}
}
