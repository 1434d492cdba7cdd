package wordcount

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "мама мыла раму. Мама, папа! hello рама мыла МАМА"

func TestCountCyrillicWords(t *testing.T) {
	c, err := NewCounter(AlphabetCyrillic)
	require.NoError(t, err)
	require.NoError(t, c.Count(strings.NewReader(sample)))

	assert.Equal(t, 3, c.Get("мама"))
	assert.Equal(t, 2, c.Get("мыла"))
	assert.Equal(t, 0, c.Get("hello"), "latin words are separators in cyrillic mode")
	assert.Equal(t, 5, c.Distinct())
	assert.Equal(t, 8, c.Total())
}

func TestCountLettersAlphabet(t *testing.T) {
	c, err := NewCounter(AlphabetLetters)
	require.NoError(t, err)
	require.NoError(t, c.Count(strings.NewReader("Hello, hello WORLD; мир")))

	assert.Equal(t, 2, c.Get("hello"))
	assert.Equal(t, 1, c.Get("world"))
	assert.Equal(t, 1, c.Get("мир"))
}

func TestTrailingWordIsCounted(t *testing.T) {
	c, err := NewCounter(AlphabetCyrillic)
	require.NoError(t, err)
	require.NoError(t, c.Count(strings.NewReader("война и мир")))
	assert.Equal(t, 1, c.Get("мир"))
}

func TestUnknownAlphabet(t *testing.T) {
	_, err := NewCounter("greek")
	require.Error(t, err)
}

func TestRankingTieBreaksByEncounterOrder(t *testing.T) {
	c, err := NewCounter(AlphabetLetters)
	require.NoError(t, err)
	require.NoError(t, c.Count(strings.NewReader("b a c a d b a")))

	assert.Equal(t, []WordCount{{"a", 3}, {"b", 2}, {"c", 1}}, c.Top(3))
	assert.Equal(t, []WordCount{{"c", 1}, {"d", 1}, {"b", 2}}, c.Bottom(3))
	assert.Len(t, c.Top(100), 4)
	assert.Empty(t, c.Top(0))
}

func TestMergeKeepsOrderAndCounts(t *testing.T) {
	a, _ := NewCounter(AlphabetLetters)
	b, _ := NewCounter(AlphabetLetters)
	require.NoError(t, a.Count(strings.NewReader("x y")))
	require.NoError(t, b.Count(strings.NewReader("z y y")))

	a.Merge(b)
	assert.Equal(t, 3, a.Get("y"))
	assert.Equal(t, []WordCount{{"x", 1}, {"z", 1}, {"y", 3}}, a.Bottom(3))
	assert.Equal(t, 5, a.Total())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestCountReturnsReadError(t *testing.T) {
	c, _ := NewCounter(AlphabetCyrillic)
	err := c.Count(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestReportGolden(t *testing.T) {
	c, err := NewCounter(AlphabetCyrillic)
	require.NoError(t, err)
	require.NoError(t, c.Count(strings.NewReader(sample)))

	var buf bytes.Buffer
	_, err = c.Report(3).WriteTo(&buf)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "report_small", buf.Bytes())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCountFilesMergesInArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a.txt", "один два")
	second := writeFile(t, dir, "b.txt", "три два")

	c, err := CountFiles(context.Background(), AlphabetCyrillic, first, second)
	require.NoError(t, err)
	assert.Equal(t, []WordCount{{"один", 1}, {"три", 1}, {"два", 2}}, c.Bottom(3))
}

func TestCountFilesFailsFast(t *testing.T) {
	dir := t.TempDir()
	ok := writeFile(t, dir, "ok.txt", "слово")
	missing := filepath.Join(dir, "missing.txt")

	c, err := CountFiles(context.Background(), AlphabetCyrillic, ok, missing)
	require.Error(t, err)
	assert.Nil(t, c, "no partial counts on I/O failure")
	assert.Contains(t, err.Error(), "wordcount: read "+missing)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestCountFilesRequiresInput(t *testing.T) {
	_, err := CountFiles(context.Background(), AlphabetCyrillic)
	require.Error(t, err)
}
