// Package entity defines the catalog's domain entities and validation logic.
// It contains Author, Magazine and Article, the Registry that owns them,
// their validation rules and the domain-specific errors.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Article binds one Author and one Magazine under a title.
// Articles are created through a Registry and never change afterwards.
type Article struct {
	id        uuid.UUID
	author    *Author
	magazine  *Magazine
	title     string
	createdAt time.Time
}

// ID returns the article's identifier.
func (a *Article) ID() uuid.UUID { return a.id }

// Title returns the article's title.
func (a *Article) Title() string { return a.title }

// Author returns the article's author.
func (a *Article) Author() *Author { return a.author }

// Magazine returns the magazine the article was published in.
func (a *Article) Magazine() *Magazine { return a.magazine }

// CreatedAt returns when the article was registered.
func (a *Article) CreatedAt() time.Time { return a.createdAt }
