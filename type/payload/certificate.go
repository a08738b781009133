package payload

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultSampleName = "Sample Name"
	DefaultFontSize   = 72
	DefaultTextX      = 300
	DefaultTextY      = 400
)

var DefaultColor = json.RawMessage(`[0,0,0]`)

// FlexInt accepts a JSON number or a numeric string. Fractions are
// truncated toward zero.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("invalid integer %s", string(data))
	}
	*f = FlexInt(int(value))
	return nil
}

// CertificateTextPayload carries the text placement shared by sample and
// batch generation.
type CertificateTextPayload struct {
	Name     string          `json:"name"`
	FontSize *FlexInt        `json:"fontSize" validate:"omitempty,gt=0,max=1000"`
	Color    json.RawMessage `json:"color"`
	TextX    *FlexInt        `json:"textX"`
	TextY    *FlexInt        `json:"textY"`
}

// ApplyDefaults fills every absent field with its default.
func (p *CertificateTextPayload) ApplyDefaults() {
	if strings.TrimSpace(p.Name) == "" {
		p.Name = DefaultSampleName
	}
	if p.FontSize == nil {
		p.FontSize = flexInt(DefaultFontSize)
	}
	if len(p.Color) == 0 || string(p.Color) == "null" {
		p.Color = DefaultColor
	}
	if p.TextX == nil {
		p.TextX = flexInt(DefaultTextX)
	}
	if p.TextY == nil {
		p.TextY = flexInt(DefaultTextY)
	}
}

type GenerateCertificatesPayload struct {
	CertificateTextPayload
	Attend   *bool `json:"attend"`
	Selected *bool `json:"selected"`
}

type GenerateCertificatesResult struct {
	Results   any `json:"results"`
	Generated int `json:"generated"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
	Notified  int `json:"notified"`
}

func flexInt(v int) *FlexInt {
	f := FlexInt(v)
	return &f
}
