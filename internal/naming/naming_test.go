package naming

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func TestBuild_ColorSuffixWithExtension(t *testing.T) {
	name := Build(Parts{
		Base:          "Living_Room",
		Suffix:        "Sage Green",
		WithExtension: true,
		MimeType:      "image/png",
	}, testNow)

	assert.Equal(t, "Living_Room_Sage Green.png", name)
}

func TestBuild_AllPartsFixedOrder(t *testing.T) {
	name := Build(Parts{
		Base:          "Bedroom",
		WithTimestamp: true,
		Suffix:        "Oak Veneer",
		WithExtension: true,
		MimeType:      "image/jpeg",
	}, testNow)

	assert.Equal(t, "20250314_092653_Bedroom_Oak Veneer.jpg", name)
}

func TestBuild_BaseOnly(t *testing.T) {
	name := Build(Parts{Base: "Kitchen"}, testNow)
	assert.Equal(t, "Kitchen", name)
}

func TestBuild_TrimsBase(t *testing.T) {
	name := Build(Parts{Base: "  Hallway  "}, testNow)
	assert.Equal(t, "Hallway", name)
}

func TestBuild_Deterministic(t *testing.T) {
	p := Parts{
		Base:          "Study",
		WithTimestamp: true,
		Suffix:        "Navy",
		WithExtension: true,
		MimeType:      "image/webp",
	}

	assert.Equal(t, Build(p, testNow), Build(p, testNow))
}

func TestBuild_UnknownMimeTypeFallsBackToSubtype(t *testing.T) {
	name := Build(Parts{
		Base:          "Patio",
		WithExtension: true,
		MimeType:      "image/avif",
	}, testNow)

	assert.Equal(t, "Patio.avif", name)
}

func TestValidateBaseName(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		wantErr bool
	}{
		{"valid", "Living_Room", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"exactly max length", strings.Repeat("a", MaxBaseNameLen), false},
		{"over max length", strings.Repeat("a", MaxBaseNameLen+1), true},
		{"multibyte at max length", strings.Repeat("間", MaxBaseNameLen), false},
		{"multibyte over max length", strings.Repeat("間", MaxBaseNameLen+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBaseName(tt.base)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
