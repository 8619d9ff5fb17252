package config

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"go.uber.org/zap"

	"github.com/aescanero/seattlewaste-opts/internal/validate"
)

const resourcesKey = "Resources"

var utf8BOM = []byte("\xef\xbb\xbf")

// BindOption configures a Bind call.
type BindOption func(*binder)

type binder struct {
	logger      *zap.Logger
	rules       []validate.Rule
	environment map[string]string
}

// WithLogger sets the logger used while binding.
func WithLogger(logger *zap.Logger) BindOption {
	return func(b *binder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithRules replaces the default entry rules.
func WithRules(rules ...validate.Rule) BindOption {
	return func(b *binder) {
		b.rules = append([]validate.Rule(nil), rules...)
	}
}

// WithEnvironment reads the environment overlay from vars instead of the
// process environment.
func WithEnvironment(vars map[string]string) BindOption {
	return func(b *binder) {
		b.environment = vars
	}
}

func newBinder(opts []BindOption) *binder {
	b := &binder{
		logger: zap.NewNop(),
		rules:  validate.DefaultRules(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// LoadFile reads a JSON or YAML document from path and binds its SeattleWaste
// section.
func LoadFile(path string, opts ...BindOption) (*Opts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	o, err := BindBytes(data, opts...)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// BindBytes parses a JSON or YAML document and binds its SeattleWaste
// section. An empty or null document is an empty configuration source. A
// leading UTF-8 byte order mark is ignored.
func BindBytes(data []byte, opts ...BindOption) (*Opts, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var raw any
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, sectionError("", fmt.Errorf("parse document: %w", err))
		}
	}
	if raw == nil {
		return Bind(nil, opts...)
	}

	doc, ok := asObject(raw)
	if !ok {
		return nil, sectionError("", fmt.Errorf("%w: document is %T, want object", ErrInvalidType, raw))
	}
	return Bind(doc, opts...)
}

// Bind populates an options record from a decoded configuration document.
// A missing section yields an empty record. Malformed entries fail the whole
// bind with a *BindingError.
func Bind(doc map[string]any, opts ...BindOption) (*Opts, error) {
	b := newBinder(opts)

	validator, err := validate.New(b.rules...)
	if err != nil {
		return nil, sectionError("", fmt.Errorf("invalid rules: %w", err))
	}

	resources, err := decodeSection(doc)
	if err != nil {
		return nil, err
	}
	source := "document"

	overlay, err := b.environmentOverlay()
	if err != nil {
		return nil, err
	}
	if overlay != nil {
		resources = overlay
		source = "environment"
	}

	ctx := context.Background()
	for i, m := range resources {
		fields := map[string]any{
			"slug":    m.Slug,
			"address": m.Address,
		}
		if err := validator.Check(ctx, i, fields); err != nil {
			field := ""
			var ruleErr *validate.RuleError
			if errors.As(err, &ruleErr) {
				field = ruleErr.Rule.Field
			}
			return nil, entryError(i, m.Slug, field, err)
		}
	}

	b.logger.Debug("section bound",
		zap.String("section", Section),
		zap.String("source", source),
		zap.Int("resources", len(resources)),
	)

	return NewOpts(resources...), nil
}

func decodeSection(doc map[string]any) ([]SlugMapping, error) {
	raw, ok, err := lookupKey(doc, Section)
	if err != nil {
		return nil, sectionError("", err)
	}
	if !ok || raw == nil {
		return nil, nil
	}

	section, ok := asObject(raw)
	if !ok {
		return nil, sectionError("", fmt.Errorf("%w: section is %T, want object", ErrInvalidType, raw))
	}

	rawList, ok, err := lookupKey(section, resourcesKey)
	if err != nil {
		return nil, sectionError(resourcesKey, err)
	}
	if !ok || rawList == nil {
		return nil, nil
	}

	list, ok := rawList.([]any)
	if !ok {
		return nil, sectionError(resourcesKey, fmt.Errorf("%w: %T, want list", ErrInvalidType, rawList))
	}

	resources := make([]SlugMapping, 0, len(list))
	for i, item := range list {
		entry, ok := asObject(item)
		if !ok {
			return nil, entryError(i, "", "", fmt.Errorf("%w: entry is %T, want object", ErrInvalidType, item))
		}

		slug, err := stringField(entry, "slug")
		if err != nil {
			return nil, entryError(i, "", "slug", err)
		}
		address, err := stringField(entry, "address")
		if err != nil {
			return nil, entryError(i, slug, "address", err)
		}

		resources = append(resources, SlugMapping{Slug: slug, Address: address})
	}

	return resources, nil
}

func stringField(entry map[string]any, name string) (string, error) {
	raw, ok, err := lookupKey(entry, name)
	if err != nil {
		return "", err
	}
	if !ok || raw == nil {
		return "", ErrMissingField
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %T, want string", ErrInvalidType, raw)
	}
	return s, nil
}

// lookupKey matches keys case-insensitively, preferring an exact match.
// Several keys that differ only in case and none matching exactly is an
// ErrAmbiguousKey.
func lookupKey(m map[string]any, key string) (any, bool, error) {
	if m == nil {
		return nil, false, nil
	}
	if v, ok := m[key]; ok {
		return v, true, nil
	}

	var matches []string
	for k := range m {
		if strings.EqualFold(k, key) {
			matches = append(matches, k)
		}
	}

	switch len(matches) {
	case 0:
		return nil, false, nil
	case 1:
		return m[matches[0]], true, nil
	default:
		sort.Strings(matches)
		return nil, false, fmt.Errorf("%w: %q matches %q", ErrAmbiguousKey, key, matches)
	}
}

func asObject(v any) (map[string]any, bool) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, true
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, val := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = val
		}
		return out, true
	default:
		return nil, false
	}
}

type sectionDocument struct {
	Resources []SlugMapping `json:"Resources"`
}

// Marshal renders o in the shape Bind consumes.
func Marshal(o *Opts) ([]byte, error) {
	doc := map[string]sectionDocument{
		Section: {Resources: o.Resources()},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal section: %w", err)
	}
	return data, nil
}
