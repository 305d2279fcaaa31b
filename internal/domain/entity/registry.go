package entity

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry owns every Author, Magazine and Article constructed through it.
//
// Collections are append-only; the only way to clear them is Reset. All
// collection mutations, including the per-entity article lists, happen under
// mu so that an Article is either visible in all three places or in none.
type Registry struct {
	mu         sync.RWMutex
	generation uint64
	authors    []*Author
	magazines  []*Magazine
	articles   []*Article
	now        func() time.Time
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{now: time.Now}
}

// NewAuthor validates name and registers a new Author.
func (r *Registry) NewAuthor(name string) (*Author, error) {
	if err := ValidateAuthorName(name); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	a := &Author{
		id:         uuid.New(),
		name:       name,
		registry:   r,
		generation: r.generation,
	}
	r.authors = append(r.authors, a)
	return a, nil
}

// NewMagazine validates name and category and registers a new Magazine.
func (r *Registry) NewMagazine(name, category string) (*Magazine, error) {
	if err := ValidateMagazineName(name); err != nil {
		return nil, err
	}
	if err := ValidateCategory(category); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	m := &Magazine{
		id:         uuid.New(),
		name:       name,
		category:   category,
		registry:   r,
		generation: r.generation,
	}
	r.magazines = append(r.magazines, m)
	return m, nil
}

// NewArticle creates an Article binding author and magazine and registers it
// in the Registry, the author's collection and the magazine's collection.
//
// Reference checks run before the title check. Nothing is registered unless
// every check passes.
func (r *Registry) NewArticle(author *Author, magazine *Magazine, title string) (*Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkAuthorLocked(author); err != nil {
		return nil, err
	}
	if err := r.checkMagazineLocked(magazine); err != nil {
		return nil, err
	}
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}

	art := &Article{
		id:        uuid.New(),
		author:    author,
		magazine:  magazine,
		title:     title,
		createdAt: r.now(),
	}
	r.articles = append(r.articles, art)
	author.articles = append(author.articles, art)
	magazine.articles = append(magazine.articles, art)
	return art, nil
}

// CheckMagazine returns a ReferenceError unless m was constructed by r and
// has not been detached by Reset.
func (r *Registry) CheckMagazine(m *Magazine) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.checkMagazineLocked(m)
}

func (r *Registry) checkAuthorLocked(a *Author) error {
	if a == nil {
		return &ReferenceError{Field: "author", Message: "author must be an Author"}
	}
	if !r.ownsLocked(a.registry, a.generation) {
		return &ReferenceError{Field: "author", Message: "author is not registered in this catalog"}
	}
	return nil
}

func (r *Registry) checkMagazineLocked(m *Magazine) error {
	if m == nil {
		return &ReferenceError{Field: "magazine", Message: "magazine must be a Magazine"}
	}
	if !r.ownsLocked(m.registry, m.generation) {
		return &ReferenceError{Field: "magazine", Message: "magazine is not registered in this catalog"}
	}
	return nil
}

func (r *Registry) ownsLocked(owner *Registry, generation uint64) bool {
	return owner == r && generation == r.generation
}

// rlock read-locks r and returns the matching unlock. Entities built outside
// a Registry have no lock to take.
func (r *Registry) rlock() func() {
	if r == nil {
		return func() {}
	}
	r.mu.RLock()
	return r.mu.RUnlock
}

func (r *Registry) lock() func() {
	if r == nil {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

// Authors returns every registered Author in construction order.
func (r *Registry) Authors() []*Author {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Author(nil), r.authors...)
}

// Magazines returns every registered Magazine in construction order.
func (r *Registry) Magazines() []*Magazine {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Magazine(nil), r.magazines...)
}

// Articles returns every registered Article in creation order.
func (r *Registry) Articles() []*Article {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Article(nil), r.articles...)
}

// TopPublisher returns the Magazine with the most articles.
// Ties go to the magazine constructed first. Returns nil when no article exists.
func (r *Registry) TopPublisher() *Magazine {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var top *Magazine
	best := 0
	for _, m := range r.magazines {
		if n := len(m.articles); n > best {
			top, best = m, n
		}
	}
	return top
}

// Reset clears all collections and detaches every entity created so far.
// Detached Authors and Magazines can no longer take part in new Articles.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.authors {
		a.articles = nil
	}
	for _, m := range r.magazines {
		m.articles = nil
	}
	r.authors = nil
	r.magazines = nil
	r.articles = nil
	r.generation++
}
