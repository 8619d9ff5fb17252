package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEmpty(t *testing.T) {
	o := Empty()

	got := o.Resources()
	if got == nil {
		t.Fatal("Resources() = nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("len(Resources()) = %d, want 0", len(got))
	}
	if o.Len() != 0 {
		t.Errorf("Len() = %d, want 0", o.Len())
	}
}

func TestNilOpts(t *testing.T) {
	var o *Opts

	if got := o.Resources(); got == nil || len(got) != 0 {
		t.Errorf("Resources() on nil = %#v, want empty slice", got)
	}
	if _, ok := o.Lookup("recycling"); ok {
		t.Error("Lookup() on nil found a mapping")
	}
	if got := o.Slugs(); got == nil || len(got) != 0 {
		t.Errorf("Slugs() on nil = %#v, want empty slice", got)
	}
}

func TestSectionIsStable(t *testing.T) {
	a := NewOpts()
	b := NewOpts(SlugMapping{Slug: "home", Address: "1 Main St"})

	if a.Section() != Section || b.Section() != Section {
		t.Errorf("Section() = %q, %q, want %q", a.Section(), b.Section(), Section)
	}
	if Section != "SeattleWaste" {
		t.Errorf("Section = %q, want SeattleWaste", Section)
	}
}

func TestNewOpts_CopiesInput(t *testing.T) {
	in := []SlugMapping{
		{Slug: "recycling", Address: "2133 N 61ST ST"},
		{Slug: "compost", Address: "2133 N 61ST ST"},
	}
	o := NewOpts(in...)

	in[0].Slug = "changed"
	out := o.Resources()
	out[1].Slug = "changed"

	want := []SlugMapping{
		{Slug: "recycling", Address: "2133 N 61ST ST"},
		{Slug: "compost", Address: "2133 N 61ST ST"},
	}
	if diff := cmp.Diff(want, o.Resources()); diff != "" {
		t.Errorf("Resources() mismatch (-want +got):\n%s", diff)
	}
}

func TestLookup(t *testing.T) {
	o := NewOpts(
		SlugMapping{Slug: "home", Address: "1 Main St"},
		SlugMapping{Slug: "cabin", Address: "9 Lake Rd"},
		SlugMapping{Slug: "home", Address: "2 Second Ave"},
	)

	tests := []struct {
		slug   string
		want   string
		wantOK bool
	}{
		{slug: "home", want: "1 Main St", wantOK: true},
		{slug: "cabin", want: "9 Lake Rd", wantOK: true},
		{slug: "HOME", wantOK: false},
		{slug: "office", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			m, ok := o.Lookup(tt.slug)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.slug, ok, tt.wantOK)
			}
			if m.Address != tt.want {
				t.Errorf("Lookup(%q).Address = %q, want %q", tt.slug, m.Address, tt.want)
			}
		})
	}

	if diff := cmp.Diff([]string{"home", "cabin", "home"}, o.Slugs()); diff != "" {
		t.Errorf("Slugs() mismatch (-want +got):\n%s", diff)
	}
}
