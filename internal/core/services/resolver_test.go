package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdsolution/vitrine/internal/core/domain"
)

func TestResolve_OutputIsComplete(t *testing.T) {
	catalog := pricingCatalog()
	selected := []domain.ServiceRecord{
		{},
		{Name: text("Custom")},
		{Price: text("R$ 1"), Features: domain.Features{""}},
		{Subtitle: text("   "), Description: domain.NoText()},
		{ID: text("x"), IsActive: domain.FlagFalse},
	}

	out := Resolve(selected, catalog, false)

	require.Len(t, out, len(selected))
	for i := range out {
		assert.Empty(t, out[i].Missing(), "descriptor %d", i)
	}
}

func TestResolve_PerFieldDefaulting(t *testing.T) {
	catalog := pricingCatalog()
	selected := []domain.ServiceRecord{
		{Price: text("R$ 999")},
	}

	out := Resolve(selected, catalog, false)

	want := catalog[0].Clone()
	want.Price = "R$ 999"
	if diff := cmp.Diff(want, out[0]); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_RemoteValuesWin(t *testing.T) {
	catalog := pricingCatalog()
	selected := []domain.ServiceRecord{{
		ID:            text("r1"),
		Name:          text("Remoto"),
		Subtitle:      text("sub"),
		Description:   text("desc"),
		Price:         text("R$ 10"),
		ExtraInfo:     text("extra"),
		CTAText:       text("cta"),
		BadgeText:     text("badge"),
		Features:      domain.Features{"one"},
		IsActive:      domain.FlagTrue,
		IsHighlighted: domain.FlagTrue,
	}}

	out := Resolve(selected, catalog, false)

	want := domain.Descriptor{
		ID:          "r1",
		Name:        "Remoto",
		Subtitle:    "sub",
		Description: "desc",
		Price:       "R$ 10",
		ExtraInfo:   "extra",
		CTAText:     "cta",
		BadgeText:   "badge",
		Features:    []string{"one"},
		Active:      true,
		Highlighted: true,
	}
	if diff := cmp.Diff(want, out[0]); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_FeatureSentinelUsesDefault(t *testing.T) {
	catalog := pricingCatalog()

	tests := []struct {
		name     string
		features domain.Features
	}{
		{"absent", nil},
		{"empty list", domain.Features{}},
		{"single empty string", domain.Features{""}},
		{"blank entries", domain.Features{" ", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Resolve([]domain.ServiceRecord{{Features: tt.features}}, catalog, false)
			assert.Equal(t, catalog[0].Features, out[0].Features)
		})
	}
}

func TestResolve_FeaturesNeverMixed(t *testing.T) {
	catalog := pricingCatalog()

	out := Resolve([]domain.ServiceRecord{{Features: domain.Features{"only remote"}}}, catalog, false)

	assert.Equal(t, []string{"only remote"}, out[0].Features)
}

func TestResolve_HighlightTriState(t *testing.T) {
	catalog := pricingCatalog()
	catalog[0].Highlighted = true

	tests := []struct {
		name string
		flag domain.Flag
		want bool
	}{
		{"unset takes default", domain.FlagUnset, true},
		{"explicit false overrides default", domain.FlagFalse, false},
		{"explicit true", domain.FlagTrue, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Resolve([]domain.ServiceRecord{{IsHighlighted: tt.flag}}, catalog, false)
			assert.Equal(t, tt.want, out[0].Highlighted)
		})
	}
}

func TestResolve_PositionalWraparound(t *testing.T) {
	catalog := pricingCatalog()
	selected := make([]domain.ServiceRecord, 5)

	out := Resolve(selected, catalog, false)

	require.Len(t, out, 5)
	wantIDs := []string{"1", "2", "3", "1", "2"}
	for i, want := range wantIDs {
		assert.Equal(t, want, out[i].ID, "descriptor %d", i)
	}
}

func TestResolve_NameMatch(t *testing.T) {
	catalog := pricingCatalog()

	tests := []struct {
		name        string
		recordName  string
		matchByName bool
		wantID      string
	}{
		{"substring of catalog name", "premium", true, "3"},
		{"case and whitespace ignored", "  PROFISSIONAL ", true, "2"},
		{"no match falls back to position", "Inexistente", true, "1"},
		{"blank name falls back to position", "", true, "1"},
		{"disabled uses position", "premium", false, "1"},
		{"single letter binds to containing entry", "f", true, "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selected := []domain.ServiceRecord{{Name: text(tt.recordName)}}
			out := Resolve(selected, catalog, tt.matchByName)
			assert.Equal(t, tt.wantID, out[0].ID)
		})
	}
}

func TestResolve_NameMatchTakesFirstContainingEntry(t *testing.T) {
	selected := []domain.ServiceRecord{
		{Name: text("premium")},
		{Name: text("a")},
	}

	out := Resolve(selected, pricingCatalog(), true)

	require.Len(t, out, 2)
	assert.Equal(t, "3", out[0].ID)
	assert.Equal(t, "1", out[1].ID, "\"a\" is contained in every name, so the first entry wins over position")
}

func TestResolve_NameMatchKeepsRemoteName(t *testing.T) {
	catalog := pricingCatalog()

	out := Resolve([]domain.ServiceRecord{{Name: text("Premium")}}, catalog, true)

	assert.Equal(t, "Premium", out[0].Name)
	assert.Equal(t, catalog[2].Price, out[0].Price)
}

func TestResolve_Idempotent(t *testing.T) {
	catalog := pricingCatalog()
	selected := []domain.ServiceRecord{
		{Name: text("premium"), Price: text("R$ 5")},
		{Features: domain.Features{"a", "b"}},
	}

	first := Resolve(selected, catalog, true)
	second := Resolve(selected, catalog, true)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Resolve() not idempotent (-first +second):\n%s", diff)
	}
}

func TestResolve_DoesNotAliasCatalog(t *testing.T) {
	catalog := pricingCatalog()

	out := Resolve([]domain.ServiceRecord{{}}, catalog, false)
	out[0].Features[0] = "changed"

	assert.Equal(t, "Plano Essencial f1", catalog[0].Features[0])
}

func TestResolve_EmptySelection(t *testing.T) {
	out := Resolve(nil, pricingCatalog(), true)
	assert.Empty(t, out)
}
