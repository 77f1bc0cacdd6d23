package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"go.uber.org/zap"

	"next-target-mock/internal/models"
	repo "next-target-mock/internal/repository"
)

// Bulk records take 7-digit personal ids. The curated set uses 9-digit ids
// and 466xx numbers, so neither range can meet the other.
const (
	BulkWindowLow  = 1_000_000
	BulkWindowHigh = 9_999_999
	bulkNumberBase = 50_000
	bulkWindowSize = BulkWindowHigh - BulkWindowLow + 1

	DefaultBulkCount     = 5000
	DefaultBulkBatchSize = 1000
)

const (
	serviceRegular = "סדיר"
	serviceCareer  = "קבע"
)

var (
	bulkFirstNames = []string{
		"אבי", "בני", "גדי", "דן", "הראל", "וורד", "זיו", "חן", "טל", "יניב",
		"כפיר", "ליאור", "משה", "נועם", "עמית", "פנחס", "קובי", "רוני", "שחר", "תומר",
	}
	bulkLastNames = []string{
		"כהן", "לוי", "מזרחי", "פרץ", "ביטון", "אברהם", "פרידמן", "עמר", "חדד", "גבאי",
		"וקנין", "שבתאי", "אלבז", "חן", "מור", "גולן", "סבג", "ברק", "אטיאס", "שרון",
	}
	bulkBattalions  = []string{"גדעון", "רשף", "צפע", "שקד", "עזוז", "בזק", "קרקאל", "נחשון"}
	bulkCompanies   = []string{"אלפא", "מסייעת", "חוד", "מבצעית", "מפקדה", "א׳", "ב׳", "ג׳"}
	bulkProfessions = []string{"לוחם", "חובש", "נהג", "קשר", "טכנאי", "מפקד", "מש״ק תש"}
)

// SeedBulk adds count synthetic records in sequential batches of batchSize.
// Existing data is kept. Ids are the lowest free ones in the bulk window, so
// records created by hand inside the window are skipped, never overwritten.
// A failing batch stops the run; earlier batches stay.
func (s *ManpowerService) SeedBulk(ctx context.Context, count, batchSize int) (int, error) {
	if count <= 0 || batchSize <= 0 {
		return 0, &ValidationError{Message: "count and batchSize must be positive integers"}
	}

	taken, err := s.store.CountPersonalIDsInWindow(ctx,
		strconv.Itoa(BulkWindowLow), strconv.Itoa(BulkWindowHigh))
	if err != nil {
		return 0, err
	}
	if free := bulkWindowSize - int(taken); count > free {
		return 0, &ValidationError{
			Message: fmt.Sprintf("bulk id window exhausted: %d ids left, %d requested", free, count),
		}
	}

	r := s.newRand()
	now := s.now()
	ids := &bulkIDs{store: s.store, next: BulkWindowLow}
	s.log.Info("starting bulk seed",
		zap.Int("count", count),
		zap.Int("batchSize", batchSize),
		zap.Int64("takenInWindow", taken))

	created := 0
	for created < count {
		size := min(batchSize, count-created)
		free, err := ids.take(ctx, size)
		if err != nil {
			s.log.Error("bulk seed id allocation failed", zap.Int("committed", created), zap.Error(err))
			return created, err
		}
		batch := make([]models.Person, 0, size)
		for _, id := range free {
			batch = append(batch, bulkPerson(r, id-BulkWindowLow, now))
		}

		n, err := s.store.InsertMany(ctx, batch)
		s.metrics.RecordsSeeded.WithLabelValues("bulk").Add(float64(n))
		created += n
		if err != nil {
			s.log.Error("bulk seed batch failed", zap.Int("committed", created), zap.Error(err))
			return created, err
		}
		s.log.Info("inserted records", zap.Int("total", created))
	}
	return created, nil
}

// bulkIDs hands out free window ids in ascending order. Each take scans only
// the range it is about to fill, so the store returns at most n ids per query.
type bulkIDs struct {
	store repo.ManpowerStore
	next  int
}

func (b *bulkIDs) take(ctx context.Context, n int) ([]int, error) {
	out := make([]int, 0, n)
	for len(out) < n {
		if b.next > BulkWindowHigh {
			return out, &ValidationError{Message: "bulk id window exhausted"}
		}
		hi := min(b.next+n-len(out)-1, BulkWindowHigh)
		stored, err := b.store.PersonalIDsInWindow(ctx, strconv.Itoa(b.next), strconv.Itoa(hi))
		if err != nil {
			return out, err
		}
		used := make(map[int]bool, len(stored))
		for _, id := range stored {
			if v, err := strconv.Atoi(id); err == nil {
				used[v] = true
			}
		}
		for id := b.next; id <= hi; id++ {
			if !used[id] {
				out = append(out, id)
			}
		}
		b.next = hi + 1
	}
	return out, nil
}

func bulkPerson(r *rand.Rand, offset int, now time.Time) models.Person {
	first := pick(r, bulkFirstNames)
	last := pick(r, bulkLastNames)

	serviceType := serviceCareer
	if r.Float64() > 0.2 {
		serviceType = serviceRegular
	}

	return models.Person{
		PersonalID:  strconv.Itoa(BulkWindowLow + offset),
		FirstName:   first,
		LastName:    last,
		Battalion:   pick(r, bulkBattalions),
		Company:     pick(r, bulkCompanies),
		Platoon:     strconv.Itoa(r.IntN(4) + 1),
		ServiceType: serviceType,
		Active:      true,
		FullName:    first + " " + last,
		Professions: []string{pick(r, bulkProfessions)},
		Team:        "צוות " + strconv.Itoa(r.IntN(100)+1),
		TeamNumbers: []int{},
		Number:      strconv.Itoa(bulkNumberBase + offset),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func pick(r *rand.Rand, pool []string) string {
	return pool[r.IntN(len(pool))]
}
