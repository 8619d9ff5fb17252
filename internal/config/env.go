package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v10"
)

// ResourcesEnvVar overrides the document's Resources list with
// comma-separated address:slug pairs, the format the service has always read
// its mappings from.
const ResourcesEnvVar = "SEATTLEWASTE__RESOURCES"

type mappingList []SlugMapping

type environmentSection struct {
	Resources mappingList `env:"SEATTLEWASTE__RESOURCES"`
}

// environmentOverlay returns nil when the variable is unset or empty.
func (b *binder) environmentOverlay() ([]SlugMapping, error) {
	var section environmentSection

	opts := env.Options{
		Environment: b.environment,
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(mappingList{}): parseMappingList,
		},
	}
	if err := env.ParseWithOptions(&section, opts); err != nil {
		return nil, sectionError(ResourcesEnvVar, fmt.Errorf("%w: %v", ErrInvalidType, err))
	}

	if len(section.Resources) == 0 {
		return nil, nil
	}
	return section.Resources, nil
}

// parseMappingList splits "address:slug,address:slug". The last colon
// separates address from slug so addresses may contain colons.
func parseMappingList(value string) (interface{}, error) {
	var out mappingList
	for _, pair := range strings.Split(value, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		sep := strings.LastIndex(pair, ":")
		if sep < 0 {
			return nil, fmt.Errorf("pair %q is not address:slug", pair)
		}

		out = append(out, SlugMapping{
			Slug:    strings.TrimSpace(pair[sep+1:]),
			Address: strings.TrimSpace(pair[:sep]),
		})
	}
	return out, nil
}
