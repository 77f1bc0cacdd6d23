package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestCommittedBeforeFailure(t *testing.T) {
	dup := mongo.BulkWriteException{
		WriteErrors: []mongo.BulkWriteError{
			{WriteError: mongo.WriteError{Index: 3, Code: 11000, Message: "E11000 duplicate key error"}},
		},
	}
	assert.Equal(t, 3, committedBeforeFailure(dup))
	assert.True(t, errors.Is(translateWriteError(dup), ErrDuplicateKey))

	first := mongo.BulkWriteException{
		WriteErrors: []mongo.BulkWriteError{{WriteError: mongo.WriteError{Index: 0, Code: 11000}}},
	}
	assert.Equal(t, 0, committedBeforeFailure(first))

	assert.Equal(t, 0, committedBeforeFailure(mongo.BulkWriteException{}))
	assert.Equal(t, 0, committedBeforeFailure(errors.New("connection reset by peer")))
}

func TestWindowFilter(t *testing.T) {
	f := windowFilter("1000000", "9999999")
	cond, ok := f["personalId"].(bson.M)
	if !ok {
		t.Fatalf("unexpected filter shape %#v", f)
	}
	assert.Equal(t, "1000000", cond["$gte"])
	assert.Equal(t, "9999999", cond["$lte"])
	assert.Equal(t, "^[0-9]{7}$", cond["$regex"])
}
