package domain

import "strings"

// Descriptor is a fully populated offering ready for display.
// Fallback catalog entries and resolved offerings share this shape.
type Descriptor struct {
	ID          string   `json:"id" toml:"id" yaml:"id"`
	Name        string   `json:"name" toml:"name" yaml:"name"`
	Subtitle    string   `json:"subtitle" toml:"subtitle" yaml:"subtitle"`
	Description string   `json:"description" toml:"description" yaml:"description"`
	Price       string   `json:"price" toml:"price" yaml:"price"`
	ExtraInfo   string   `json:"extra_info" toml:"extra_info" yaml:"extra_info"`
	CTAText     string   `json:"cta_text" toml:"cta_text" yaml:"cta_text"`
	BadgeText   string   `json:"badge_text" toml:"badge_text" yaml:"badge_text"`
	Features    []string `json:"features" toml:"features" yaml:"features"`
	Active      bool     `json:"is_active" toml:"is_active" yaml:"is_active"`
	Highlighted bool     `json:"is_highlighted" toml:"is_highlighted" yaml:"is_highlighted"`
}

// Missing returns the names of empty fields, or nil if the descriptor is complete.
func (d *Descriptor) Missing() []string {
	var missing []string
	check := func(name, v string) {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	check("id", d.ID)
	check("name", d.Name)
	check("subtitle", d.Subtitle)
	check("description", d.Description)
	check("price", d.Price)
	check("extra_info", d.ExtraInfo)
	check("cta_text", d.CTAText)
	check("badge_text", d.BadgeText)

	if len(d.Features) == 0 {
		missing = append(missing, "features")
	}
	for _, f := range d.Features {
		if strings.TrimSpace(f) == "" {
			missing = append(missing, "features")
			break
		}
	}
	return missing
}

// Complete returns true if every field is populated.
func (d *Descriptor) Complete() bool {
	return len(d.Missing()) == 0
}

// Clone returns a deep copy.
func (d Descriptor) Clone() Descriptor {
	out := d
	out.Features = make([]string, len(d.Features))
	copy(out.Features, d.Features)
	return out
}

// CloneDescriptors deep-copies a descriptor list.
func CloneDescriptors(in []Descriptor) []Descriptor {
	out := make([]Descriptor, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
