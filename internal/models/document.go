package models

import (
	"bytes"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// isoMillis matches the timestamp layout front-end callers already parse.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Document is a record exactly as the store returned it, including _id and
// __v. It marshals to a JSON object that keeps the stored field order.
type Document bson.D

func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, bson.D(d)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeValue(buf *bytes.Buffer, v any) error {
	switch x := v.(type) {
	case bson.D:
		buf.WriteByte('{')
		for i, e := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(e.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeValue(buf, e.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case bson.A:
		return writeArray(buf, x)
	case []any:
		return writeArray(buf, x)
	case bson.ObjectID:
		return writeJSON(buf, x.Hex())
	case bson.DateTime:
		return writeJSON(buf, x.Time().UTC().Format(isoMillis))
	case time.Time:
		return writeJSON(buf, x.UTC().Format(isoMillis))
	default:
		return writeJSON(buf, v)
	}
}

func writeArray(buf *bytes.Buffer, items []any) error {
	buf.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeValue(buf, item); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

func writeJSON(buf *bytes.Buffer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// ToDocument renders p the way the store lays it out on disk.
func ToDocument(p *Person) (Document, error) {
	raw, err := bson.Marshal(p)
	if err != nil {
		return nil, err
	}
	var d bson.D
	if err := bson.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return Document(d), nil
}
