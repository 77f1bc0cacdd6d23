package repository

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/go-memdb"
	"go.mongodb.org/mongo-driver/v2/bson"

	"next-target-mock/internal/models"
)

const (
	manpowerTable = "manpowers"

	indexID       = "id"
	indexLastName = "lastName"
)

func manpowerSchema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			manpowerTable: {
				Name: manpowerTable,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "PersonalID"},
					},
					indexLastName: {
						Name:         indexLastName,
						AllowMissing: true,
						Indexer:      &memdb.StringFieldIndex{Field: "LastName"},
					},
				},
			},
		},
	}
}

// MemoryManpowerStore keeps manpower records in a go-memdb table. The
// personalId index is unique, the same constraint the Mongo collection has.
type MemoryManpowerStore struct {
	db   *memdb.MemDB
	name string
}

// NewMemoryManpowerStore creates an empty store. name shows up in duplicate
// key messages the way a Mongo namespace does.
func NewMemoryManpowerStore(name string) (*MemoryManpowerStore, error) {
	db, err := memdb.NewMemDB(manpowerSchema())
	if err != nil {
		return nil, err
	}
	return &MemoryManpowerStore{db: db, name: name}, nil
}

func (s *MemoryManpowerStore) get(personalID string) (*models.Person, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(manpowerTable, indexID, personalID)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, ErrNotFound
	}
	return clonePerson(raw.(*models.Person)), nil
}

func (s *MemoryManpowerStore) FindRawByPersonalID(_ context.Context, personalID string) (models.Document, error) {
	p, err := s.get(personalID)
	if err != nil {
		return nil, err
	}
	return models.ToDocument(p)
}

func (s *MemoryManpowerStore) FindByPersonalID(_ context.Context, personalID string) (*models.Person, error) {
	return s.get(personalID)
}

func (s *MemoryManpowerStore) Insert(_ context.Context, p *models.Person) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	if err := s.insert(txn, p); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

// InsertMany mirrors an ordered Mongo bulk insert: records up to the first
// failure are committed, the rest are not attempted.
func (s *MemoryManpowerStore) InsertMany(_ context.Context, people []models.Person) (int, error) {
	txn := s.db.Txn(true)
	defer txn.Abort()

	for i := range people {
		if err := s.insert(txn, &people[i]); err != nil {
			txn.Commit()
			return i, err
		}
	}
	txn.Commit()
	return len(people), nil
}

func (s *MemoryManpowerStore) insert(txn *memdb.Txn, p *models.Person) error {
	existing, err := txn.First(manpowerTable, indexID, p.PersonalID)
	if err != nil {
		return err
	}
	if existing != nil {
		msg := fmt.Sprintf(
			"E11000 duplicate key error collection: %s index: personalId_1 dup key: { personalId: %q }",
			s.name, p.PersonalID)
		return &DuplicateKeyError{Message: msg}
	}
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	return txn.Insert(manpowerTable, clonePerson(p))
}

func (s *MemoryManpowerStore) FindAllSortedByLastName(_ context.Context) ([]models.Person, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(manpowerTable, indexLastName)
	if err != nil {
		return nil, err
	}
	people := []models.Person{}
	for raw := it.Next(); raw != nil; raw = it.Next() {
		people = append(people, *clonePerson(raw.(*models.Person)))
	}
	// the index orders equal last names by personalId; Mongo uses _id.
	slices.SortStableFunc(people, func(a, b models.Person) int {
		if c := strings.Compare(a.LastName, b.LastName); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})
	return people, nil
}

func (s *MemoryManpowerStore) DeleteAll(_ context.Context) (int64, error) {
	txn := s.db.Txn(true)
	defer txn.Abort()

	n, err := txn.DeleteAll(manpowerTable, indexID)
	if err != nil {
		return 0, err
	}
	txn.Commit()
	return int64(n), nil
}

func (s *MemoryManpowerStore) CountPersonalIDsInWindow(_ context.Context, low, high string) (int64, error) {
	var n int64
	err := s.walkWindow(low, high, func(string) { n++ })
	return n, err
}

func (s *MemoryManpowerStore) PersonalIDsInWindow(_ context.Context, low, high string) ([]string, error) {
	ids := []string{}
	err := s.walkWindow(low, high, func(id string) { ids = append(ids, id) })
	return ids, err
}

// walkWindow calls fn for every fixed-width numeric personalId in [low, high],
// in ascending order.
func (s *MemoryManpowerStore) walkWindow(low, high string, fn func(id string)) error {
	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.LowerBound(manpowerTable, indexID, low)
	if err != nil {
		return err
	}
	for raw := it.Next(); raw != nil; raw = it.Next() {
		id := raw.(*models.Person).PersonalID
		if id > high {
			break
		}
		if len(id) == len(low) && isDigits(id) {
			fn(id)
		}
	}
	return nil
}

func clonePerson(p *models.Person) *models.Person {
	c := *p
	if p.Professions != nil {
		c.Professions = append([]string{}, p.Professions...)
	}
	if p.TeamNumbers != nil {
		c.TeamNumbers = append([]int{}, p.TeamNumbers...)
	}
	if p.DeactivatedDate != nil {
		t := *p.DeactivatedDate
		c.DeactivatedDate = &t
	}
	if p.DeactivationReason != nil {
		r := *p.DeactivationReason
		c.DeactivationReason = &r
	}
	if p.MedicalReviewDate != nil {
		t := *p.MedicalReviewDate
		c.MedicalReviewDate = &t
	}
	return &c
}
