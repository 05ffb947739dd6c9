package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luachhq/luach-api/internal/hebcal"
	"github.com/luachhq/luach-api/internal/models"
)

func newTestSearch(t *testing.T) *SearchService {
	t.Helper()
	catalog := newTestCatalog(t, hebcal.NewStaticSource(), "2025-09-15")
	return NewSearchService(catalog, nil, nil)
}

func TestSearchByAlias(t *testing.T) {
	svc := newTestSearch(t)
	results, err := svc.Search(context.Background(), models.LocaleDiaspora, "hanukkah")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Chanukah", results[0].Title)
}

func TestSearchHebrew(t *testing.T) {
	svc := newTestSearch(t)
	results, err := svc.Search(context.Background(), models.LocaleDiaspora, "חנוכה")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Chanukah", results[0].Title)
}

func TestSearchEmptyQueryReturnsEmptySlice(t *testing.T) {
	svc := newTestSearch(t)
	results, err := svc.Search(context.Background(), models.LocaleDiaspora, "")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchRespectsLocale(t *testing.T) {
	svc := newTestSearch(t)

	diaspora, err := svc.Search(context.Background(), models.LocaleDiaspora, "simchat torah")
	require.NoError(t, err)
	assert.True(t, hasHoliday(diaspora, "Simchat Torah"))

	israel, err := svc.Search(context.Background(), models.LocaleIsrael, "simchat torah")
	require.NoError(t, err)
	assert.False(t, hasHoliday(israel, "Simchat Torah"))
	assert.True(t, hasHoliday(israel, "Shmini Atzeret / Simchat Torah"))
}
