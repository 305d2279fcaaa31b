package entity

import "github.com/google/uuid"

// ContributingAuthorThreshold is the article count an author must exceed in a
// magazine to be listed by ContributingAuthors.
const ContributingAuthorThreshold = 2

// Magazine is a named, categorized publication.
// Unlike Author names and Article titles, name and category may change after
// construction, but only through the validating setters.
type Magazine struct {
	id         uuid.UUID
	name       string
	category   string
	registry   *Registry
	generation uint64
	articles   []*Article
}

// ID returns the magazine's identifier.
func (m *Magazine) ID() uuid.UUID { return m.id }

// Name returns the magazine's current name.
func (m *Magazine) Name() string {
	defer m.registry.rlock()()
	return m.name
}

// Category returns the magazine's current category.
func (m *Magazine) Category() string {
	defer m.registry.rlock()()
	return m.category
}

// SetName validates and replaces the magazine's name.
func (m *Magazine) SetName(name string) error {
	if err := ValidateMagazineName(name); err != nil {
		return err
	}
	defer m.registry.lock()()
	m.name = name
	return nil
}

// SetCategory validates and replaces the magazine's category.
func (m *Magazine) SetCategory(category string) error {
	if err := ValidateCategory(category); err != nil {
		return err
	}
	defer m.registry.lock()()
	m.category = category
	return nil
}

// Articles returns the articles published in the magazine in creation order.
func (m *Magazine) Articles() []*Article {
	defer m.registry.rlock()()
	return append([]*Article(nil), m.articles...)
}

// Contributors returns the distinct authors published in the magazine,
// in order of their first article here.
func (m *Magazine) Contributors() []*Author {
	defer m.registry.rlock()()

	seen := make(map[*Author]struct{}, len(m.articles))
	var out []*Author
	for _, art := range m.articles {
		if _, ok := seen[art.author]; ok {
			continue
		}
		seen[art.author] = struct{}{}
		out = append(out, art.author)
	}
	return out
}

// ArticleTitles returns the titles of the magazine's articles in creation
// order, or nil when it has none.
func (m *Magazine) ArticleTitles() []string {
	defer m.registry.rlock()()

	if len(m.articles) == 0 {
		return nil
	}
	titles := make([]string, 0, len(m.articles))
	for _, art := range m.articles {
		titles = append(titles, art.title)
	}
	return titles
}

// ContributingAuthors returns the authors with more than
// ContributingAuthorThreshold articles in the magazine, in order of their
// first article here. It returns nil when no author qualifies.
func (m *Magazine) ContributingAuthors() []*Author {
	defer m.registry.rlock()()

	counts := make(map[*Author]int, len(m.articles))
	var order []*Author
	for _, art := range m.articles {
		if counts[art.author] == 0 {
			order = append(order, art.author)
		}
		counts[art.author]++
	}

	var out []*Author
	for _, a := range order {
		if counts[a] > ContributingAuthorThreshold {
			out = append(out, a)
		}
	}
	return out
}

// ArticleCount returns the number of articles published in the magazine.
func (m *Magazine) ArticleCount() int {
	defer m.registry.rlock()()
	return len(m.articles)
}
