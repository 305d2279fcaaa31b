package report

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"magazine-catalog/internal/domain/entity"
)

func seedRegistry(t *testing.T) *entity.Registry {
	t.Helper()
	reg := entity.NewRegistry()

	jane, err := reg.NewAuthor("Jane Doe")
	require.NoError(t, err)
	john, err := reg.NewAuthor("John Smith")
	require.NoError(t, err)
	tech, err := reg.NewMagazine("Tech Monthly", "Technology")
	require.NoError(t, err)
	sci, err := reg.NewMagazine("Science Today", "Science")
	require.NoError(t, err)
	_, err = reg.NewMagazine("Art Weekly", "Art")
	require.NoError(t, err)

	for _, p := range []struct {
		author   *entity.Author
		magazine *entity.Magazine
		title    string
	}{
		{jane, tech, "The Future of AI"},
		{jane, sci, "Exploring Quantum Physics"},
		{john, tech, "Blockchain in Finance"},
		{jane, tech, "Robots at Work"},
		{jane, tech, "Edge Computing Today"},
	} {
		_, err := p.author.AddArticle(p.magazine, p.title)
		require.NoError(t, err)
	}
	return reg
}

func TestBuild(t *testing.T) {
	got := Build(seedRegistry(t))

	want := Summary{
		Authors: []AuthorSummary{
			{
				Name: "Jane Doe",
				Articles: []ArticleSummary{
					{Title: "The Future of AI", Magazine: "Tech Monthly"},
					{Title: "Exploring Quantum Physics", Magazine: "Science Today"},
					{Title: "Robots at Work", Magazine: "Tech Monthly"},
					{Title: "Edge Computing Today", Magazine: "Tech Monthly"},
				},
				Magazines:  []string{"Tech Monthly", "Science Today"},
				TopicAreas: []string{"Technology", "Science"},
			},
			{
				Name:       "John Smith",
				Articles:   []ArticleSummary{{Title: "Blockchain in Finance", Magazine: "Tech Monthly"}},
				Magazines:  []string{"Tech Monthly"},
				TopicAreas: []string{"Technology"},
			},
		},
		Magazines: []MagazineSummary{
			{
				Name:     "Tech Monthly",
				Category: "Technology",
				ArticleTitles: []string{
					"The Future of AI",
					"Blockchain in Finance",
					"Robots at Work",
					"Edge Computing Today",
				},
				Contributors:        []string{"Jane Doe", "John Smith"},
				ContributingAuthors: []string{"Jane Doe"},
			},
			{
				Name:          "Science Today",
				Category:      "Science",
				ArticleTitles: []string{"Exploring Quantum Physics"},
				Contributors:  []string{"Jane Doe"},
			},
			{Name: "Art Weekly", Category: "Art"},
		},
		TopPublisher: "Tech Monthly",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_EmptyRegistry(t *testing.T) {
	got := Build(entity.NewRegistry())
	if diff := cmp.Diff(Summary{}, got); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	s := Build(seedRegistry(t))

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, s))
	assert.Contains(t, buf.String(), "top_publisher: Tech Monthly")

	var decoded Summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	if diff := cmp.Diff(s, decoded, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("YAML round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, Build(seedRegistry(t))))
	out := buf.String()

	assert.Contains(t, out, "Articles by Jane Doe:\n- The Future of AI in Tech Monthly\n")
	assert.Contains(t, out, "Topic areas for Jane Doe: Technology, Science\n")
	assert.Contains(t, out, "Contributing authors to Tech Monthly (more than 2 articles):\n- Jane Doe\n")
	assert.Contains(t, out, "Contributing authors to Art Weekly (more than 2 articles):\nNo contributing authors with more than 2 articles.\n")
	assert.Contains(t, out, "Top publisher (most articles): Tech Monthly\n")
}

func TestWriteText_NoArticles(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, Summary{}))
	assert.Equal(t, "No top publisher, no articles available.\n", buf.String())
}
