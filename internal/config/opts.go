package config

// Section is the configuration section the options record binds to.
const Section = "SeattleWaste"

// SlugMapping ties a short stable identifier to the street address whose
// collection calendar it stands for.
type SlugMapping struct {
	Slug    string `json:"slug" yaml:"slug"`
	Address string `json:"address" yaml:"address"`
}

// Opts is the bound SeattleWaste section. It is immutable once built; use
// NewOpts or one of the Bind functions to produce a fully populated value.
type Opts struct {
	resources []SlugMapping
}

// NewOpts builds an options record holding a copy of resources in the given
// order.
func NewOpts(resources ...SlugMapping) *Opts {
	r := make([]SlugMapping, len(resources))
	copy(r, resources)
	return &Opts{resources: r}
}

// Empty returns the record used when the section is not configured.
func Empty() *Opts {
	return NewOpts()
}

// Section returns the section key the record was bound from.
func (o *Opts) Section() string {
	return Section
}

// Resources returns the slug mappings in declaration order. The result is
// never nil and may be modified by the caller.
func (o *Opts) Resources() []SlugMapping {
	if o == nil {
		return []SlugMapping{}
	}
	out := make([]SlugMapping, len(o.resources))
	copy(out, o.resources)
	return out
}

// Len returns the number of configured mappings.
func (o *Opts) Len() int {
	if o == nil {
		return 0
	}
	return len(o.resources)
}

// Slugs returns the configured slugs in declaration order.
func (o *Opts) Slugs() []string {
	slugs := make([]string, 0, o.Len())
	if o == nil {
		return slugs
	}
	for _, m := range o.resources {
		slugs = append(slugs, m.Slug)
	}
	return slugs
}

// Lookup returns the first mapping whose slug equals slug. Slugs are not
// required to be unique; later duplicates are shadowed.
func (o *Opts) Lookup(slug string) (SlugMapping, bool) {
	if o == nil {
		return SlugMapping{}, false
	}
	for _, m := range o.resources {
		if m.Slug == slug {
			return m, true
		}
	}
	return SlugMapping{}, false
}
