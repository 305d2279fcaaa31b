package entity

import "github.com/google/uuid"

// Author is a named contributor. The name is fixed at construction; there is no setter.
type Author struct {
	id         uuid.UUID
	name       string
	registry   *Registry
	generation uint64
	articles   []*Article
}

// ID returns the author's identifier.
func (a *Author) ID() uuid.UUID { return a.id }

// Name returns the author's name.
func (a *Author) Name() string { return a.name }

// Articles returns the articles written by the author in creation order.
func (a *Author) Articles() []*Article {
	defer a.registry.rlock()()
	return append([]*Article(nil), a.articles...)
}

// Magazines returns the distinct magazines the author has written for,
// in the order of the author's first article in each.
func (a *Author) Magazines() []*Magazine {
	defer a.registry.rlock()()
	return a.magazinesLocked()
}

func (a *Author) magazinesLocked() []*Magazine {
	seen := make(map[*Magazine]struct{}, len(a.articles))
	var out []*Magazine
	for _, art := range a.articles {
		if _, ok := seen[art.magazine]; ok {
			continue
		}
		seen[art.magazine] = struct{}{}
		out = append(out, art.magazine)
	}
	return out
}

// AddArticle creates and registers an Article by this author in magazine.
// An Author not built by a Registry yields a ReferenceError.
func (a *Author) AddArticle(magazine *Magazine, title string) (*Article, error) {
	if a == nil || a.registry == nil {
		return nil, &ReferenceError{Field: "author", Message: "author is not registered in this catalog"}
	}
	return a.registry.NewArticle(a, magazine, title)
}

// TopicAreas returns the distinct categories of the magazines the author has
// written for. It returns nil when the author has no articles.
func (a *Author) TopicAreas() []string {
	defer a.registry.rlock()()

	mags := a.magazinesLocked()
	if len(mags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(mags))
	areas := make([]string, 0, len(mags))
	for _, m := range mags {
		if _, ok := seen[m.category]; ok {
			continue
		}
		seen[m.category] = struct{}{}
		areas = append(areas, m.category)
	}
	return areas
}
