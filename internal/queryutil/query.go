// Package queryutil builds queries extracting values from nested objects.
package queryutil

import (
	"strconv"
	"strings"
	"sync"

	query "github.com/zoncoen/query-go"
	yamlextractor "github.com/zoncoen/query-go/extractor/yaml"

	"github.com/scenarigo/verify/errors"
)

var (
	m    sync.RWMutex
	opts = []query.Option{}
)

// New returns an empty query with the default options.
func New(opts ...query.Option) *query.Query {
	return query.New(append(Options(), opts...)...)
}

// Options returns the default options. Struct fields are matched by their yaml
// or json tag and yaml.MapSlice values are traversed like maps.
func Options() []query.Option {
	m.RLock()
	defer m.RUnlock()
	return append(
		[]query.Option{
			query.ExtractByStructTag("yaml", "json"),
			query.CustomExtractFunc(yamlextractor.MapSliceExtractFunc()),
		},
		opts...,
	)
}

// AppendOptions adds options to every query built by New.
func AppendOptions(customOpts ...query.Option) {
	m.Lock()
	defer m.Unlock()
	opts = append(opts, customOpts...)
}

// Build parses a path like "ring.bearer[0].name" into a query.
func Build(path string, opts ...query.Option) (*query.Query, error) {
	q := New(opts...)
	if path == "" {
		return nil, errors.New("empty path")
	}
	for _, part := range strings.Split(path, ".") {
		key, rest, _ := strings.Cut(part, "[")
		if key == "" && rest == "" {
			return nil, errors.Errorf("invalid path %q", path)
		}
		if key != "" {
			q = q.Key(key)
		}
		for rest != "" {
			idx, next, ok := strings.Cut(rest, "]")
			if !ok {
				return nil, errors.Errorf("invalid path %q: missing ]", path)
			}
			i, err := strconv.Atoi(idx)
			if err != nil {
				return nil, errors.Errorf("invalid path %q: index %q is not an integer", path, idx)
			}
			q = q.Index(i)
			if next == "" {
				break
			}
			if !strings.HasPrefix(next, "[") {
				return nil, errors.Errorf("invalid path %q", path)
			}
			rest = next[1:]
		}
	}
	return q, nil
}

// Extract returns the value at path in v.
func Extract(v any, path string, opts ...query.Option) (any, error) {
	q, err := Build(path, opts...)
	if err != nil {
		return nil, err
	}
	got, err := q.Extract(v)
	if err != nil {
		return nil, errors.ErrorPathf(path, "failed to extract: %s", err)
	}
	return got, nil
}
