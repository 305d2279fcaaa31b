package entity

import (
	"fmt"

	"magazine-catalog/internal/utils/text"
)

// Length limits, counted in runes.
const (
	MinMagazineNameLength = 2
	MaxMagazineNameLength = 16
	MinTitleLength        = 5
	MaxTitleLength        = 50
)

// ValidateAuthorName checks that an author name is non-empty.
func ValidateAuthorName(name string) error {
	if name == "" {
		return &ValidationError{Field: "name", Message: "name must be a non-empty string"}
	}
	return nil
}

// ValidateMagazineName checks that a magazine name is between
// MinMagazineNameLength and MaxMagazineNameLength characters.
func ValidateMagazineName(name string) error {
	if !text.LengthBetween(name, MinMagazineNameLength, MaxMagazineNameLength) {
		return &ValidationError{
			Field: "name",
			Message: fmt.Sprintf("name must be between %d and %d characters",
				MinMagazineNameLength, MaxMagazineNameLength),
		}
	}
	return nil
}

// ValidateCategory checks that a magazine category is non-empty.
func ValidateCategory(category string) error {
	if category == "" {
		return &ValidationError{Field: "category", Message: "category must be a non-empty string"}
	}
	return nil
}

// ValidateTitle checks that an article title is between
// MinTitleLength and MaxTitleLength characters.
func ValidateTitle(title string) error {
	if !text.LengthBetween(title, MinTitleLength, MaxTitleLength) {
		return &ValidationError{
			Field: "title",
			Message: fmt.Sprintf("title must be between %d and %d characters",
				MinTitleLength, MaxTitleLength),
		}
	}
	return nil
}
