// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package database

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"github.com/tomtom215/pickrec/internal/catalog"
)

// ErrUnsupportedType is returned when a catalog field holds a BSON type that
// has no text form.
var ErrUnsupportedType = errors.New("unsupported BSON type")

// recordFromRaw converts a projected restaurant document into a catalog
// record. Absent or null fields decode to their zero value.
//
// restaurantId keeps its JSON kind: strings and ObjectIDs become string IDs,
// finite integers, doubles and decimals become number IDs. Text fields accept
// strings and numbers.
func recordFromRaw(doc bson.Raw) (catalog.Record, error) {
	var rec catalog.Record
	var err error

	if rec.ID, err = idField(doc, "restaurantId"); err != nil {
		return catalog.Record{}, err
	}
	if rec.Name, err = textField(doc, "name"); err != nil {
		return catalog.Record{}, err
	}
	if rec.Category, err = textField(doc, "category"); err != nil {
		return catalog.Record{}, err
	}
	if rec.PriceLevel, err = textField(doc, "priceLevel"); err != nil {
		return catalog.Record{}, err
	}

	return rec, nil
}

// lookup returns the field value, or ok=false when it is absent or null.
func lookup(doc bson.Raw, key string) (bson.RawValue, bool) {
	v, err := doc.LookupErr(key)
	if err != nil || v.Type == bsontype.Null || v.Type == bsontype.Undefined {
		return bson.RawValue{}, false
	}
	return v, true
}

func idField(doc bson.Raw, key string) (catalog.ID, error) {
	v, ok := lookup(doc, key)
	if !ok {
		return catalog.ID{}, nil
	}

	switch v.Type {
	case bsontype.String:
		return catalog.StringID(v.StringValue()), nil
	case bsontype.ObjectID:
		return catalog.StringID(v.ObjectID().Hex()), nil
	case bsontype.Int32:
		return catalog.NumberID(strconv.FormatInt(int64(v.Int32()), 10)), nil
	case bsontype.Int64:
		return catalog.NumberID(strconv.FormatInt(v.Int64(), 10)), nil
	case bsontype.Double:
		f := v.Double()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return catalog.ID{}, fmt.Errorf("%s: non-finite number", key)
		}
		return catalog.NumberID(strconv.FormatFloat(f, 'f', -1, 64)), nil
	case bsontype.Decimal128:
		d := v.Decimal128()
		if d.IsNaN() || d.IsInf() != 0 {
			return catalog.ID{}, fmt.Errorf("%s: non-finite number", key)
		}
		return catalog.NumberID(d.String()), nil
	default:
		return catalog.ID{}, fmt.Errorf("%s: %w %s", key, ErrUnsupportedType, v.Type)
	}
}

func textField(doc bson.Raw, key string) (string, error) {
	v, ok := lookup(doc, key)
	if !ok {
		return "", nil
	}

	switch v.Type {
	case bsontype.String:
		return v.StringValue(), nil
	case bsontype.Int32:
		return strconv.FormatInt(int64(v.Int32()), 10), nil
	case bsontype.Int64:
		return strconv.FormatInt(v.Int64(), 10), nil
	case bsontype.Double:
		return strconv.FormatFloat(v.Double(), 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("%s: %w %s", key, ErrUnsupportedType, v.Type)
	}
}
