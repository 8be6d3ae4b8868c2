// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package props

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"go.chromium.org/itscaps/errors"
)

// Decode reads a JSON object of camera characteristics from r.
// Numbers are kept exact so that enum codes compare as integers.
func Decode(r io.Reader) (Properties, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var p Properties
	if err := dec.Decode(&p); err != nil {
		return nil, errors.Wrap(err, "failed to decode properties JSON")
	}
	if p == nil {
		return nil, errors.New("properties JSON is not an object")
	}
	return normalize(p).(Properties), nil
}

// DecodeYAML parses a YAML mapping of camera characteristics.
// Keys must be strings; nested mappings become Properties.
func DecodeYAML(b []byte) (Properties, error) {
	var raw map[interface{}]interface{}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to decode properties YAML")
	}
	v, err := fromYAML(raw)
	if err != nil {
		return nil, err
	}
	return v.(Properties), nil
}

// Load reads properties from path. Files ending in .yaml or .yml are parsed as
// YAML, anything else as JSON.
func Load(path string) (Properties, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	var p Properties
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		p, err = DecodeYAML(b)
	default:
		p, err = Decode(bytes.NewReader(b))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}
	return p, nil
}

// normalize turns decoded JSON objects into Properties, recursively.
func normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		p := make(Properties, len(t))
		for k, e := range t {
			p[k] = normalize(e)
		}
		return p
	case Properties:
		for k, e := range t {
			t[k] = normalize(e)
		}
		return t
	case []interface{}:
		for i, e := range t {
			t[i] = normalize(e)
		}
		return t
	}
	return v
}

func fromYAML(v interface{}) (interface{}, error) {
	switch t := v.(type) {
	case map[interface{}]interface{}:
		p := make(Properties, len(t))
		for k, e := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, errors.Errorf("non-string key %v", k)
			}
			c, err := fromYAML(e)
			if err != nil {
				return nil, errors.Wrapf(err, "bad value for %s", ks)
			}
			p[ks] = c
		}
		return p, nil
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			c, err := fromYAML(e)
			if err != nil {
				return nil, errors.Wrapf(err, "bad element %d", i)
			}
			out[i] = c
		}
		return out, nil
	}
	return v, nil
}
