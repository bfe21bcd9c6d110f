package recordjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/mdsolution/vitrine/internal/core/domain"
	"github.com/mdsolution/vitrine/internal/logger"
)

// ErrNotArray is returned when the payload is not a JSON array.
var ErrNotArray = errors.New("recordjson: payload is not a JSON array")

// Wire field names.
const (
	fieldID            = "id"
	fieldName          = "name"
	fieldSubtitle      = "subtitle"
	fieldDescription   = "description"
	fieldPrice         = "price"
	fieldExtraInfo     = "extra_info"
	fieldCTAText       = "cta_text"
	fieldBadgeText     = "badge_text"
	fieldFeatures      = "features"
	fieldCategory      = "category"
	fieldPage          = "page"
	fieldIsActive      = "is_active"
	fieldIsHighlighted = "is_highlighted"
	fieldDisplayOrder  = "display_order"
)

// Decode parses a JSON array of service records.
// Elements that are not objects are skipped.
func Decode(data []byte) ([]domain.ServiceRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, fmt.Errorf("recordjson: %w", err)
	}

	records := make([]domain.ServiceRecord, 0, len(elems))
	for i, raw := range elems {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
			logger.Debug("recordjson: skipping element %d: not an object", i)
			continue
		}
		records = append(records, decodeRecord(fields))
	}
	return records, nil
}

// DecodeReader reads and decodes a JSON array of service records.
func DecodeReader(r io.Reader) ([]domain.ServiceRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("recordjson: read: %w", err)
	}
	return Decode(data)
}

func decodeRecord(fields map[string]json.RawMessage) domain.ServiceRecord {
	return domain.ServiceRecord{
		ID:            decodeText(fields[fieldID]),
		Name:          decodeText(fields[fieldName]),
		Subtitle:      decodeText(fields[fieldSubtitle]),
		Description:   decodeText(fields[fieldDescription]),
		Price:         decodeText(fields[fieldPrice]),
		ExtraInfo:     decodeText(fields[fieldExtraInfo]),
		CTAText:       decodeText(fields[fieldCTAText]),
		BadgeText:     decodeText(fields[fieldBadgeText]),
		Features:      decodeFeatures(fields[fieldFeatures]),
		Category:      domain.Category(strings.TrimSpace(decodeText(fields[fieldCategory]).String())),
		Page:          decodeText(fields[fieldPage]),
		IsActive:      decodeFlag(fields[fieldIsActive]),
		IsHighlighted: decodeFlag(fields[fieldIsHighlighted]),
		DisplayOrder:  decodeNumber(fields[fieldDisplayOrder]),
	}
}

// decodeText accepts strings and numbers. Numbers keep their literal form
// so that a numeric price or id survives.
func decodeText(raw json.RawMessage) domain.Text {
	if isNull(raw) {
		return domain.NoText()
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return domain.SomeText(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return domain.SomeText(n.String())
	}
	return domain.NoText()
}

// decodeFeatures accepts an array and keeps its string entries.
func decodeFeatures(raw json.RawMessage) domain.Features {
	if isNull(raw) {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			lines = append(lines, s)
		}
	}
	return domain.NormalizeFeatures(lines)
}

func decodeFlag(raw json.RawMessage) domain.Flag {
	if isNull(raw) {
		return domain.FlagUnset
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return domain.FlagUnset
	}
	return domain.FlagOf(b)
}

// decodeNumber accepts numbers and numeric strings; anything else,
// including NaN and infinities, is 0.
func decodeNumber(raw json.RawMessage) float64 {
	if isNull(raw) {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
	}
	return 0
}

// isNull reports a missing field or an explicit JSON null.
func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Wire is the encoded form of a service record. Absent values are omitted.
type Wire struct {
	ID            *string  `json:"id,omitempty"`
	Name          *string  `json:"name,omitempty"`
	Subtitle      *string  `json:"subtitle,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Price         *string  `json:"price,omitempty"`
	ExtraInfo     *string  `json:"extra_info,omitempty"`
	CTAText       *string  `json:"cta_text,omitempty"`
	BadgeText     *string  `json:"badge_text,omitempty"`
	Features      []string `json:"features,omitempty"`
	Category      string   `json:"category"`
	Page          *string  `json:"page,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
	IsHighlighted *bool    `json:"is_highlighted,omitempty"`
	DisplayOrder  float64  `json:"display_order"`
}

// FromDomain converts a record to its wire form.
func FromDomain(r *domain.ServiceRecord) Wire {
	return Wire{
		ID:            r.ID.Ptr(),
		Name:          r.Name.Ptr(),
		Subtitle:      r.Subtitle.Ptr(),
		Description:   r.Description.Ptr(),
		Price:         r.Price.Ptr(),
		ExtraInfo:     r.ExtraInfo.Ptr(),
		CTAText:       r.CTAText.Ptr(),
		BadgeText:     r.BadgeText.Ptr(),
		Features:      domain.NormalizeFeatures(r.Features),
		Category:      r.Category.String(),
		Page:          r.Page.Ptr(),
		IsActive:      r.IsActive.Ptr(),
		IsHighlighted: r.IsHighlighted.Ptr(),
		DisplayOrder:  r.DisplayOrder,
	}
}

// Encode writes records as an indented JSON array.
func Encode(records []domain.ServiceRecord) ([]byte, error) {
	wire := make([]Wire, len(records))
	for i := range records {
		wire[i] = FromDomain(&records[i])
	}
	data, err := json.MarshalIndent(wire, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("recordjson: encode: %w", err)
	}
	return data, nil
}
