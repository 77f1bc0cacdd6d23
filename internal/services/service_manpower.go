package services

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"next-target-mock/dto"
	"next-target-mock/internal/metrics"
	"next-target-mock/internal/models"
	repo "next-target-mock/internal/repository"
)

var (
	ErrMissingPersonalID = errors.New("personal id is missing")
	ErrPersonNotFound    = errors.New("no person found with this personal id")
)

// ValidationError is a rejected write. Message is the store's own text.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Err }

func newValidationError(err error) *ValidationError {
	return &ValidationError{Message: err.Error(), Err: err}
}

// ManpowerService implements the manpower API on top of a ManpowerStore.
type ManpowerService struct {
	store   repo.ManpowerStore
	log     *zap.Logger
	metrics *metrics.Metrics

	now     func() time.Time
	newRand func() *rand.Rand
}

type Option func(*ManpowerService)

// WithClock replaces time.Now for timestamps on created records.
func WithClock(now func() time.Time) Option {
	return func(s *ManpowerService) { s.now = now }
}

// WithRand replaces the random source factory used by bulk seeding. It is
// called once per SeedBulk call.
func WithRand(newRand func() *rand.Rand) Option {
	return func(s *ManpowerService) { s.newRand = newRand }
}

func NewManpowerService(store repo.ManpowerStore, log *zap.Logger, m *metrics.Metrics, opts ...Option) *ManpowerService {
	s := &ManpowerService{
		store:   store,
		log:     log,
		metrics: m,
		now:     func() time.Time { return time.Now().UTC() },
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetFront returns the stored document for personalID as-is.
func (s *ManpowerService) GetFront(ctx context.Context, personalID string) (models.Document, error) {
	personalID = strings.TrimSpace(personalID)
	if personalID == "" {
		return nil, ErrMissingPersonalID
	}
	s.log.Debug("getFront lookup", zap.String("personalId", personalID))

	doc, err := s.store.FindRawByPersonalID(ctx, personalID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrPersonNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// GetByID returns the reduced legacy shape of a person.
func (s *ManpowerService) GetByID(ctx context.Context, personalID string) (*dto.LegacyPersonDTO, error) {
	personalID = strings.TrimSpace(personalID)
	if personalID == "" {
		return nil, ErrPersonNotFound
	}
	s.log.Debug("legacy lookup", zap.String("personalId", personalID))

	p, err := s.store.FindByPersonalID(ctx, personalID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrPersonNotFound
	}
	if err != nil {
		return nil, err
	}
	out := dto.NewLegacyPersonDTO(p)
	return &out, nil
}

// Create inserts one person. Every failure, the duplicate personalId
// included, comes back as a *ValidationError.
func (s *ManpowerService) Create(ctx context.Context, req dto.CreatePersonRequest) (*models.Person, error) {
	p := req.ToPerson()
	p.ApplyDefaults(s.now())
	if err := p.Validate(); err != nil {
		return nil, newValidationError(err)
	}
	if err := s.store.Insert(ctx, &p); err != nil {
		return nil, newValidationError(err)
	}
	return &p, nil
}

func (s *ManpowerService) List(ctx context.Context) ([]models.Person, error) {
	return s.store.FindAllSortedByLastName(ctx)
}

// SeedFixed replaces the whole collection with the curated demo set.
func (s *ManpowerService) SeedFixed(ctx context.Context) (int, error) {
	deleted, err := s.store.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	s.metrics.RecordsDeleted.Add(float64(deleted))

	n, err := s.store.InsertMany(ctx, FixedSeedPeople(s.now()))
	s.metrics.RecordsSeeded.WithLabelValues("fixed").Add(float64(n))
	if err != nil {
		return 0, err
	}
	s.log.Info("fixed seed done", zap.Int64("deleted", deleted), zap.Int("inserted", n))
	return n, nil
}

func (s *ManpowerService) DeleteAll(ctx context.Context) (int64, error) {
	deleted, err := s.store.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	s.metrics.RecordsDeleted.Add(float64(deleted))
	s.log.Info("deleted all records", zap.Int64("deleted", deleted))
	return deleted, nil
}

// SeedMessage is the human readable result of a seed run.
func SeedMessage(n int) string {
	return "added " + humanize.Comma(int64(n)) + " records"
}

// DeleteMessage is the human readable result of a delete-all run.
func DeleteMessage(n int64) string {
	return "deleted " + humanize.Comma(n) + " records"
}
