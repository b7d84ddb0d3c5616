package theme

import (
	"strings"

	"github.com/georgemunganga/storefront-admin/internal/platform/apperr"
)

// minColorLength is the shortest accepted value, "#" plus three hex digits.
const minColorLength = 4

// ColorsRequest is the body of theme POST and PATCH requests. Every field is required.
type ColorsRequest struct {
	PrimaryColor    string `json:"primaryColor"`
	YoloColor       string `json:"yoloColor"`
	BorderColor     string `json:"borderColor"`
	InputColor      string `json:"inputColor"`
	RingColor       string `json:"ringColor"`
	BackgroundColor string `json:"backgroundColor"`
	ForegroundColor string `json:"foregroundColor"`
}

// DefaultColors is the palette new stores start with.
func DefaultColors() ColorsRequest {
	return ColorsRequest{
		PrimaryColor:    DefaultColor,
		YoloColor:       DefaultColor,
		BorderColor:     DefaultColor,
		InputColor:      DefaultColor,
		RingColor:       DefaultColor,
		BackgroundColor: DefaultColor,
		ForegroundColor: DefaultColor,
	}
}

func (c *ColorsRequest) fields() []struct {
	name  string
	value *string
} {
	return []struct {
		name  string
		value *string
	}{
		{"primaryColor", &c.PrimaryColor},
		{"yoloColor", &c.YoloColor},
		{"borderColor", &c.BorderColor},
		{"inputColor", &c.InputColor},
		{"ringColor", &c.RingColor},
		{"backgroundColor", &c.BackgroundColor},
		{"foregroundColor", &c.ForegroundColor},
	}
}

// Validate normalizes every color to carry a leading "#" and reports the
// first field that is missing or too short.
func (c *ColorsRequest) Validate() error {
	for _, f := range c.fields() {
		v := strings.TrimSpace(*f.value)
		if v == "" {
			return apperr.Required(f.name)
		}
		*f.value = NormalizeHex(v)
		if len(*f.value) < minColorLength {
			return apperr.Validationf("%s must be a hex color like #FFF", f.name)
		}
	}
	return nil
}

// NormalizeHex prefixes v with "#" when it lacks one.
func NormalizeHex(v string) string {
	if strings.HasPrefix(v, "#") {
		return v
	}
	return "#" + v
}
