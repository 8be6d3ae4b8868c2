// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package props holds camera characteristics as reported by a camera device.
//
// A Properties value maps dotted metadata keys such as
// "android.info.supportedHardwareLevel" to loosely typed values: integers,
// integer lists, booleans and nested objects. All accessors are optional
// lookups: a missing key and a value of an unexpected shape both report
// ok == false, so callers can treat "not advertised" uniformly. Booleans
// read as the integers 1 and 0, since camera HALs report 0/1 flags such as
// android.flash.info.available as either.
package props

import (
	"encoding/json"
	"math"
)

// Properties is a read-only camera characteristics mapping.
type Properties map[string]interface{}

// Lookup returns the raw value stored under key.
func (p Properties) Lookup(key string) (interface{}, bool) {
	v, ok := p[key]
	return v, ok
}

// Has reports whether key is present.
func (p Properties) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Int returns the integer stored under key.
func (p Properties) Int(key string) (int64, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}
	return toInt(v)
}

// Ints returns the integer list stored under key. Any non-integer element
// makes the whole value unusable.
func (p Properties) Ints(key string) ([]int64, bool) {
	v, ok := p[key]
	if !ok {
		return nil, false
	}
	switch vs := v.(type) {
	case []int64:
		return vs, true
	case []int:
		out := make([]int64, len(vs))
		for i, n := range vs {
			out[i] = int64(n)
		}
		return out, true
	case []interface{}:
		out := make([]int64, 0, len(vs))
		for _, e := range vs {
			n, ok := toInt(e)
			if !ok {
				return nil, false
			}
			out = append(out, n)
		}
		return out, true
	}
	return nil, false
}

// Map returns the nested object stored under key.
func (p Properties) Map(key string) (Properties, bool) {
	switch m := p[key].(type) {
	case Properties:
		return m, true
	case map[string]interface{}:
		return Properties(m), true
	}
	return nil, false
}

// List returns the list stored under key.
func (p Properties) List(key string) ([]interface{}, bool) {
	l, ok := p[key].([]interface{})
	return l, ok
}

// HasInt reports whether key holds an integer equal to want.
func (p Properties) HasInt(key string, want int64) bool {
	n, ok := p.Int(key)
	return ok && n == want
}

// ContainsInt reports whether key holds an integer list containing want.
func (p Properties) ContainsInt(key string, want int64) bool {
	ns, ok := p.Ints(key)
	if !ok {
		return false
	}
	for _, n := range ns {
		if n == want {
			return true
		}
	}
	return false
}

func toInt(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	}
	return 0, false
}
