package entity

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"magazine-catalog/internal/utils/text"
)

func TestValidateAuthorName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"regular name", "Jane Doe", false},
		{"single character", "J", false},
		{"whitespace only", " ", false},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAuthorName(tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, "name", vErr.Field)
		})
	}
}

func TestValidateMagazineName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"typical", "Tech Monthly", false},
		{"two characters", "AB", false},
		{"sixteen characters", strings.Repeat("m", 16), false},
		{"multibyte within limit", "日本語マガジン", false},
		{"one character", "A", true},
		{"seventeen characters", strings.Repeat("m", 17), true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMagazineName(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidationFailed)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCategory(t *testing.T) {
	assert.NoError(t, ValidateCategory("Technology"))

	err := ValidateCategory("")
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "category", vErr.Field)
}

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"typical", "The Future of AI", false},
		{"five characters", "Hello", false},
		{"fifty characters", strings.Repeat("t", 50), false},
		{"four characters", "Four", true},
		{"too short", "AI", true},
		{"fifty-one characters", strings.Repeat("t", 51), true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidationFailed)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

/* ───────── property checks ───────── */

func TestValidateAuthorName_Property(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		name := rapid.String().Draw(r, "name")
		err := ValidateAuthorName(name)
		if (err == nil) != (name != "") {
			r.Fatalf("ValidateAuthorName(%q) = %v", name, err)
		}
	})
}

func TestValidateMagazineName_Property(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		name := rapid.StringN(0, 24, -1).Draw(r, "name")
		n := text.CountRunes(name)
		valid := n >= MinMagazineNameLength && n <= MaxMagazineNameLength
		if err := ValidateMagazineName(name); (err == nil) != valid {
			r.Fatalf("ValidateMagazineName(%q) with %d runes = %v", name, n, err)
		}
	})
}

func TestValidateTitle_Property(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		title := rapid.StringN(0, 64, -1).Draw(r, "title")
		n := text.CountRunes(title)
		valid := n >= MinTitleLength && n <= MaxTitleLength
		if err := ValidateTitle(title); (err == nil) != valid {
			r.Fatalf("ValidateTitle(%q) with %d runes = %v", title, n, err)
		}
	})
}
