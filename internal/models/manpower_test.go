package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestPersonApplyDefaults(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	p := Person{PersonalID: "999", FirstName: "A", LastName: "B"}
	p.ApplyDefaults(now)

	assert.NotNil(t, p.Professions)
	assert.Empty(t, p.Professions)
	assert.NotNil(t, p.TeamNumbers)
	assert.Equal(t, now, p.CreatedAt)
	assert.Equal(t, now, p.UpdatedAt)
	assert.Nil(t, p.DeactivatedDate)
	assert.Equal(t, "", p.FullName)

	supplied := now.Add(-time.Hour)
	q := Person{CreatedAt: supplied}
	q.ApplyDefaults(now)
	assert.Equal(t, supplied, q.CreatedAt)
	assert.Equal(t, now, q.UpdatedAt)
}

func TestPersonValidate(t *testing.T) {
	ok := Person{PersonalID: "1", FirstName: "A", LastName: "B"}
	require.NoError(t, ok.Validate())

	bad := Person{FirstName: "A"}
	err := bad.Validate()
	require.Error(t, err)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"personalId", "lastName"}, schemaErr.Paths)
	assert.Equal(t,
		"person validation failed: personalId: Path `personalId` is required., lastName: Path `lastName` is required.",
		err.Error())
}

func TestPersonValidateAcceptsBlankStrings(t *testing.T) {
	p := Person{PersonalID: " ", FirstName: "\t", LastName: "  "}
	assert.NoError(t, p.Validate())
}

func TestDocumentKeepsStoredFieldOrder(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	p := Person{
		ID:          bson.NewObjectID(),
		PersonalID:  "334455667",
		FirstName:   "אריאל",
		LastName:    "חדד",
		Active:      true,
		TeamNumbers: []int{101, 102},
	}
	p.ApplyDefaults(created)

	doc, err := ToDocument(&p)
	require.NoError(t, err)

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	s := string(out)

	assert.True(t, strings.HasPrefix(s, `{"_id":"`+p.ID.Hex()+`","personalId":"334455667"`), s)
	assert.True(t, strings.HasSuffix(s, `"__v":0}`), s)
	assert.Contains(t, s, `"createdAt":"2025-03-01T10:00:00.000Z"`)
	assert.Contains(t, s, `"teamNumbers":[101,102]`)
	assert.Contains(t, s, `"professions":[]`)
	assert.Contains(t, s, `"deactivatedDate":null`)
	assert.Less(t, strings.Index(s, `"lastName"`), strings.Index(s, `"battalion"`))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "אריאל", decoded["firstName"])
	assert.Equal(t, true, decoded["active"])
}
