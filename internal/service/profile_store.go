package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/lacnutry/internal/config"
	"github.com/MKhiriev/lacnutry/internal/logger"
	"github.com/MKhiriev/lacnutry/internal/store"
	"github.com/MKhiriev/lacnutry/internal/utils"
	"github.com/MKhiriev/lacnutry/internal/workers"
	"github.com/MKhiriev/lacnutry/models"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
)

// Storage keys. The prefix is shared with installs created by earlier app
// versions, so existing data is picked up as is.
const (
	keyPrefix        = "@lacnutry_"
	keyProfile       = keyPrefix + "profile"
	keyFavorites     = keyPrefix + "favorites"
	keyHistory       = keyPrefix + "history"
	keyFirstAccess   = keyPrefix + "first_access"
	keyQuizCompleted = keyPrefix + "quiz_completed"
	keySubscription  = keyPrefix + "subscription"
	keyStats         = keyPrefix + "stats"
)

const (
	flagFalse = "false"
	flagTrue  = "true"
)

type profileStore struct {
	storage store.KeyValueStorage
	queue   *workers.Queue
	clock   clockwork.Clock
	loc     *time.Location
	ids     utils.IDGenerator

	loadOnce sync.Once
	ready    chan struct{}

	mu        sync.RWMutex
	loading   bool
	profile   models.UserProfile
	favorites []string
	history   *utils.BoundedLog[models.ScanRecord]
	stats     models.StatsData
	flags     models.Flags

	logger *logger.Logger
}

// NewProfileStore creates a store holding defaults until Load is called.
// Writes go through queue, which must be running for them to land; the
// caller owns both queue and storage.
func NewProfileStore(storage store.KeyValueStorage, queue *workers.Queue, cfg config.App, clock clockwork.Clock, log *logger.Logger) (ProfileStore, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("profile store timezone: %w", err)
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &profileStore{
		storage:   storage,
		queue:     queue,
		clock:     clock,
		loc:       loc,
		ids:       utils.NewUUIDGenerator(),
		ready:     make(chan struct{}),
		loading:   true,
		profile:   models.DefaultProfile(),
		favorites: []string{},
		history:   utils.NewBoundedLog[models.ScanRecord](cfg.HistoryCapacity),
		stats:     models.NewStats(clock.Now().In(loc)),
		flags:     models.DefaultFlags(),
		logger:    log,
	}, nil
}

// ── loading ──────────────────────────────────────────────────────────────────

func (s *profileStore) Load(ctx context.Context) {
	s.loadOnce.Do(func() {
		defer close(s.ready)
		s.load(ctx)
	})
}

func (s *profileStore) Ready() <-chan struct{} {
	return s.ready
}

func (s *profileStore) load(ctx context.Context) {
	var (
		profile        *models.UserProfile
		favorites      *[]string
		history        *[]models.ScanRecord
		stats          *models.StatsData
		quiz, premium  string
		hasFirstAccess bool
	)

	// The reads are independent: a plain Group never cancels the others.
	var g errgroup.Group
	g.Go(func() error { profile = readJSON[models.UserProfile](ctx, s, keyProfile); return nil })
	g.Go(func() error { favorites = readJSON[[]string](ctx, s, keyFavorites); return nil })
	g.Go(func() error { history = readJSON[[]models.ScanRecord](ctx, s, keyHistory); return nil })
	g.Go(func() error { stats = readJSON[models.StatsData](ctx, s, keyStats); return nil })
	g.Go(func() error { _, hasFirstAccess = s.readRaw(ctx, keyFirstAccess); return nil })
	g.Go(func() error { quiz, _ = s.readRaw(ctx, keyQuizCompleted); return nil })
	g.Go(func() error { premium, _ = s.readRaw(ctx, keySubscription); return nil })
	_ = g.Wait()

	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if profile != nil {
		s.profile = profile.Clone()
	}
	if favorites != nil {
		s.favorites = dedupe(*favorites)
	}
	if history != nil {
		s.history = utils.NewBoundedLogFrom(s.history.Cap(), *history)
	}
	s.flags = models.Flags{
		IsFirstAccess:    !hasFirstAccess,
		HasCompletedQuiz: quiz == flagTrue,
		HasSubscription:  premium == flagTrue,
	}
	s.stats = nextStats(stats, now, s.loc)
	s.persistJSON(keyStats, s.stats)
	s.loading = false

	s.logger.Info().
		Str("func", "*profileStore.load").
		Int("favorites", len(s.favorites)).
		Int("history", s.history.Len()).
		Int("streak_days", s.stats.StreakDays).
		Stringer("today", models.DayOf(now, s.loc)).
		Bool("first_access", s.flags.IsFirstAccess).
		Msg("profile state loaded")
}

// nextStats applies the daily streak rule to the persisted stats. Days are cut
// in loc; "yesterday" is the day of now minus 24 hours.
func nextStats(prev *models.StatsData, now time.Time, loc *time.Location) models.StatsData {
	if prev == nil {
		return models.NewStats(now)
	}

	today := models.DayOf(now, loc)
	yesterday := models.DayOf(now.Add(-24*time.Hour), loc)
	lastAccess := models.DayOf(prev.LastAccessDate, loc)

	next := *prev
	switch {
	case lastAccess.Equal(yesterday):
		next.StreakDays = prev.StreakDays + 1
	case !lastAccess.Equal(today):
		next.StreakDays = 1
	}
	next.LastAccessDate = now
	return next
}

// readJSON returns nil when key is absent, unreadable or not valid JSON for T.
func readJSON[T any](ctx context.Context, s *profileStore, key string) *T {
	raw, found := s.readRaw(ctx, key)
	if !found {
		return nil
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.logger.Warn().Err(err).Str("func", "readJSON").Str("key", key).Msg("corrupt value, using default")
		return nil
	}
	return &v
}

func (s *profileStore) readRaw(ctx context.Context, key string) (string, bool) {
	raw, found, err := s.storage.Get(ctx, key)
	if err != nil {
		s.logger.Err(err).Str("func", "*profileStore.readRaw").Str("key", key).Msg("read failed, using default")
		return "", false
	}
	return raw, found
}

// ── reads ────────────────────────────────────────────────────────────────────

func (s *profileStore) Snapshot() models.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.State{
		Profile:   s.profile,
		Favorites: s.favorites,
		History:   s.history.Items(),
		Stats:     s.stats,
		IsLoading: s.loading,
		Flags:     s.flags,
	}.Clone()
}

func (s *profileStore) Profile() models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.Clone()
}

func (s *profileStore) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.favorites)
}

func (s *profileStore) History() []models.ScanRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.Items()
}

func (s *profileStore) Stats() models.StatsData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

func (s *profileStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *profileStore) IsFirstAccess() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flags.IsFirstAccess
}

func (s *profileStore) HasCompletedQuiz() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flags.HasCompletedQuiz
}

func (s *profileStore) HasSubscription() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flags.HasSubscription
}

func (s *profileStore) IsFavorite(recipeID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.favorites, recipeID)
}

// ── mutations ────────────────────────────────────────────────────────────────
//
// Every mutation updates memory and queues its writes under the same lock,
// so writes of one key reach the queue in mutation order. Each write holds
// the full value of its key, which lets the queue keep only the latest
// pending one.

func (s *profileStore) UpdateProfile(profile models.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setProfile(profile)
}

func (s *profileStore) setProfile(profile models.UserProfile) {
	s.profile = profile.Clone()
	s.persistJSON(keyProfile, s.profile)
}

func (s *profileStore) ToggleFavorite(recipeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	favorite := true
	if i := slices.Index(s.favorites, recipeID); i >= 0 {
		s.favorites = slices.Delete(s.favorites, i, i+1)
		favorite = false
	} else {
		s.favorites = append(s.favorites, recipeID)
	}

	s.persistJSON(keyFavorites, s.favorites)
	return favorite
}

func (s *profileStore) AddToHistory(record models.ScanRecord) models.ScanRecord {
	now := s.now()
	if record.ID == "" {
		record.ID = s.ids.Generate()
	}
	if record.Date == "" {
		record.Date = now.Format(time.RFC3339)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.history.Push(record)
	s.stats.TotalScans++
	s.stats.LastAccessDate = now

	s.persistJSON(keyHistory, s.history.Items())
	s.persistJSON(keyStats, s.stats)
	return record
}

func (s *profileStore) ClearHistory(ctx context.Context) error {
	s.mu.Lock()
	s.history.Reset()
	done := s.trackJSON(keyHistory, []models.ScanRecord{})
	s.mu.Unlock()

	return s.awaitWrites(ctx, "*profileStore.ClearHistory", done)
}

func (s *profileStore) CompleteQuiz(ctx context.Context, name, email string) error {
	s.mu.Lock()
	s.flags.IsFirstAccess = false
	s.flags.HasCompletedQuiz = true
	firstAccessDone := s.trackRaw(keyFirstAccess, flagFalse)
	quizDone := s.trackRaw(keyQuizCompleted, flagTrue)
	s.setProfile(s.profile.WithIdentity(name, email))
	s.mu.Unlock()

	return s.awaitWrites(ctx, "*profileStore.CompleteQuiz", firstAccessDone, quizDone)
}

func (s *profileStore) CompleteSubscription(ctx context.Context) error {
	s.mu.Lock()
	s.flags.HasSubscription = true
	done := s.trackRaw(keySubscription, flagTrue)
	s.mu.Unlock()

	return s.awaitWrites(ctx, "*profileStore.CompleteSubscription", done)
}

func (s *profileStore) Close(ctx context.Context) error {
	return s.queue.Drain(ctx)
}

// ── persistence ──────────────────────────────────────────────────────────────

func (s *profileStore) persistJSON(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Err(err).Str("func", "*profileStore.persistJSON").Str("key", key).Msg("encode failed, write skipped")
		return
	}
	s.queue.Enqueue(key, s.write(key, string(raw)))
}

// trackJSON and trackRaw queue a write the caller waits for. They return nil
// when the write was not queued; the failure is logged.
func (s *profileStore) trackJSON(key string, value any) <-chan error {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Err(err).Str("func", "*profileStore.trackJSON").Str("key", key).Msg("encode failed, write skipped")
		return nil
	}
	return s.trackRaw(key, string(raw))
}

func (s *profileStore) trackRaw(key, value string) <-chan error {
	done, err := s.queue.EnqueueTracked(key, s.write(key, value))
	if err != nil {
		s.logger.Err(err).Str("func", "*profileStore.trackRaw").Str("key", key).Msg("write not queued, change kept in memory")
		return nil
	}
	return done
}

func (s *profileStore) write(key, value string) workers.TaskFunc {
	return func(ctx context.Context) error {
		if err := s.storage.Set(ctx, key, value); err != nil {
			return fmt.Errorf("persist %s: %w", key, err)
		}
		return nil
	}
}

func (s *profileStore) now() time.Time {
	return s.clock.Now().In(s.loc)
}

// awaitWrites waits for every queued write. Write failures stay local: they
// are logged and the in-memory state is kept. Only ctx ending is returned.
func (s *profileStore) awaitWrites(ctx context.Context, caller string, done ...<-chan error) error {
	for _, ch := range done {
		if ch == nil {
			continue
		}
		select {
		case err := <-ch:
			if err != nil {
				s.logger.Err(err).Str("func", caller).Msg("write failed, change kept in memory")
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
