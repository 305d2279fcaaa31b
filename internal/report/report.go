// Package report summarizes a catalog Registry for people to read.
// The same Summary renders as a plain-text walkthrough or as YAML.
package report

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"magazine-catalog/internal/domain/entity"
)

// Summary is a point-in-time view of a Registry.
type Summary struct {
	Authors      []AuthorSummary   `yaml:"authors"`
	Magazines    []MagazineSummary `yaml:"magazines"`
	TopPublisher string            `yaml:"top_publisher,omitempty"`
}

// AuthorSummary describes one author's output.
type AuthorSummary struct {
	Name       string           `yaml:"name"`
	Articles   []ArticleSummary `yaml:"articles"`
	Magazines  []string         `yaml:"magazines"`
	TopicAreas []string         `yaml:"topic_areas"`
}

// ArticleSummary pairs an article title with the magazine that published it.
type ArticleSummary struct {
	Title    string `yaml:"title"`
	Magazine string `yaml:"magazine"`
}

// MagazineSummary describes one magazine's contents.
type MagazineSummary struct {
	Name                string   `yaml:"name"`
	Category            string   `yaml:"category"`
	ArticleTitles       []string `yaml:"article_titles"`
	Contributors        []string `yaml:"contributors"`
	ContributingAuthors []string `yaml:"contributing_authors"`
}

// Build collects a Summary from reg.
func Build(reg *entity.Registry) Summary {
	var s Summary

	for _, a := range reg.Authors() {
		as := AuthorSummary{
			Name:       a.Name(),
			TopicAreas: a.TopicAreas(),
		}
		for _, art := range a.Articles() {
			as.Articles = append(as.Articles, ArticleSummary{
				Title:    art.Title(),
				Magazine: art.Magazine().Name(),
			})
		}
		for _, m := range a.Magazines() {
			as.Magazines = append(as.Magazines, m.Name())
		}
		s.Authors = append(s.Authors, as)
	}

	for _, m := range reg.Magazines() {
		s.Magazines = append(s.Magazines, MagazineSummary{
			Name:                m.Name(),
			Category:            m.Category(),
			ArticleTitles:       m.ArticleTitles(),
			Contributors:        authorNames(m.Contributors()),
			ContributingAuthors: authorNames(m.ContributingAuthors()),
		})
	}

	if top := reg.TopPublisher(); top != nil {
		s.TopPublisher = top.Name()
	}
	return s
}

func authorNames(authors []*entity.Author) []string {
	if len(authors) == 0 {
		return nil
	}
	out := make([]string, 0, len(authors))
	for _, a := range authors {
		out = append(out, a.Name())
	}
	return out
}

// WriteYAML renders s as a YAML document.
func WriteYAML(w io.Writer, s Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	return enc.Close()
}

// WriteText renders s as a plain-text walkthrough.
func WriteText(w io.Writer, s Summary) error {
	var b strings.Builder

	for _, a := range s.Authors {
		fmt.Fprintf(&b, "Articles by %s:\n", a.Name)
		for _, art := range a.Articles {
			fmt.Fprintf(&b, "- %s in %s\n", art.Title, art.Magazine)
		}
		fmt.Fprintf(&b, "\nMagazines contributed to by %s:\n", a.Name)
		for _, m := range a.Magazines {
			fmt.Fprintf(&b, "- %s\n", m)
		}
		fmt.Fprintf(&b, "\nTopic areas for %s: %s\n\n", a.Name, listOrNone(a.TopicAreas))
	}

	for _, m := range s.Magazines {
		fmt.Fprintf(&b, "Authors who have written for %s (%s):\n", m.Name, m.Category)
		for _, c := range m.Contributors {
			fmt.Fprintf(&b, "- %s\n", c)
		}
		fmt.Fprintf(&b, "\nArticles in %s:\n", m.Name)
		for _, title := range m.ArticleTitles {
			fmt.Fprintf(&b, "- %s\n", title)
		}
		fmt.Fprintf(&b, "\nContributing authors to %s (more than %d articles):\n",
			m.Name, entity.ContributingAuthorThreshold)
		if len(m.ContributingAuthors) == 0 {
			fmt.Fprintf(&b, "No contributing authors with more than %d articles.\n",
				entity.ContributingAuthorThreshold)
		}
		for _, c := range m.ContributingAuthors {
			fmt.Fprintf(&b, "- %s\n", c)
		}
		b.WriteString("\n")
	}

	if s.TopPublisher == "" {
		b.WriteString("No top publisher, no articles available.\n")
	} else {
		fmt.Fprintf(&b, "Top publisher (most articles): %s\n", s.TopPublisher)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
