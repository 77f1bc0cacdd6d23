package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"next-target-mock/internal/models"
)

func newTestStore(t *testing.T) *MemoryManpowerStore {
	t.Helper()
	s, err := NewMemoryManpowerStore("next-target.manpowers")
	require.NoError(t, err)
	return s
}

func person(pid, first, last string) models.Person {
	p := models.Person{PersonalID: pid, FirstName: first, LastName: last, Active: true}
	p.ApplyDefaults(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))
	return p
}

func TestMemoryStoreInsertAndFind(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	p := person("999", "A", "B")
	p.TeamNumbers = []int{7}
	require.NoError(t, s.Insert(ctx, &p))
	assert.False(t, p.ID.IsZero())

	got, err := s.FindByPersonalID(ctx, "999")
	require.NoError(t, err)
	if diff := cmp.Diff(p, *got); diff != "" {
		t.Fatalf("stored record differs (-want +got):\n%s", diff)
	}

	got.TeamNumbers[0] = 8
	again, err := s.FindByPersonalID(ctx, "999")
	require.NoError(t, err)
	assert.Equal(t, []int{7}, again.TeamNumbers)

	doc, err := s.FindRawByPersonalID(ctx, "999")
	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.Equal(t, "_id", doc[0].Key)
	assert.Equal(t, p.ID, doc[0].Value)
	last := doc[len(doc)-1]
	assert.Equal(t, "__v", last.Key)
	assert.EqualValues(t, 0, last.Value)

	_, err = s.FindByPersonalID(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.FindRawByPersonalID(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDuplicateKey(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first := person("999", "A", "B")
	require.NoError(t, s.Insert(ctx, &first))

	dup := person("999", "C", "D")
	err := s.Insert(ctx, &dup)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Contains(t, err.Error(), "E11000 duplicate key error collection: next-target.manpowers")
	assert.Contains(t, err.Error(), `"999"`)
}

func TestMemoryStoreInsertManyStopsAtFirstFailure(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	existing := person("2", "X", "Y")
	require.NoError(t, s.Insert(ctx, &existing))

	batch := []models.Person{person("1", "A", "A"), person("2", "B", "B"), person("3", "C", "C")}
	n, err := s.InsertMany(ctx, batch)
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Equal(t, 1, n)

	_, err = s.FindByPersonalID(ctx, "1")
	assert.NoError(t, err)
	_, err = s.FindByPersonalID(ctx, "3")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreSortAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	n, err := s.InsertMany(ctx, []models.Person{
		person("1", "A", "Levi"),
		person("2", "B", "Cohen"),
		person("3", "C", "Mizrahi"),
		person("4", "D", "Amar"),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	people, err := s.FindAllSortedByLastName(ctx)
	require.NoError(t, err)
	var last []string
	for _, p := range people {
		last = append(last, p.LastName)
	}
	assert.Equal(t, []string{"Amar", "Cohen", "Levi", "Mizrahi"}, last)

	deleted, err := s.DeleteAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, deleted)

	people, err = s.FindAllSortedByLastName(ctx)
	require.NoError(t, err)
	assert.Empty(t, people)
	assert.NotNil(t, people)
}

func TestMemoryStoreSortBreaksTiesByInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, p := range []models.Person{
		person("b", "first", "Same"),
		person("a", "second", "Same"),
		person("c", "third", "Abed"),
	} {
		require.NoError(t, s.Insert(ctx, &p))
	}

	people, err := s.FindAllSortedByLastName(ctx)
	require.NoError(t, err)
	var order []string
	for _, p := range people {
		order = append(order, p.PersonalID)
	}
	assert.Equal(t, []string{"c", "b", "a"}, order)
}

func TestMemoryStorePersonalIDsInWindow(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	n, err := s.CountPersonalIDsInWindow(ctx, "1000000", "9999999")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = s.InsertMany(ctx, []models.Person{
		person("1000017", "A", "A"),
		person("1000004", "A", "A"),
		person("9999999", "A", "A"),
		person("334455667", "A", "A"),
		person("10000000", "A", "A"),
		person("999", "A", "A"),
		person("1000abc", "A", "A"),
	})
	require.NoError(t, err)

	n, err = s.CountPersonalIDsInWindow(ctx, "1000000", "9999999")
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	ids, err := s.PersonalIDsInWindow(ctx, "1000000", "9999999")
	require.NoError(t, err)
	assert.Equal(t, []string{"1000004", "1000017", "9999999"}, ids)

	ids, err = s.PersonalIDsInWindow(ctx, "1000005", "1000020")
	require.NoError(t, err)
	assert.Equal(t, []string{"1000017"}, ids)

	ids, err = s.PersonalIDsInWindow(ctx, "2000000", "2000010")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestClonePersonCopiesPointers(t *testing.T) {
	reason := "released"
	when := time.Now()
	p := person("1", "A", "B")
	p.DeactivationReason = &reason
	p.DeactivatedDate = &when

	c := clonePerson(&p)
	*c.DeactivationReason = "changed"
	assert.Equal(t, "released", reason)
	assert.NotSame(t, p.DeactivatedDate, c.DeactivatedDate)
	assert.True(t, p.DeactivatedDate.Equal(*c.DeactivatedDate))
}
