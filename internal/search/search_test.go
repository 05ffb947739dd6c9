package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luachhq/luach-api/internal/models"
)

func holiday(title, hebrew string, category models.Category, daysUntil int) models.Holiday {
	return models.Holiday{
		Title:     title,
		Hebrew:    hebrew,
		Category:  category,
		DaysUntil: daysUntil,
	}
}

func sampleCatalog() []models.Holiday {
	return []models.Holiday{
		holiday("Rosh Hashana", "רֹאשׁ הַשָּׁנָה", models.CategoryMajor, 10),
		holiday("Yom Kippur", "יוֹם כִּפּוּר", models.CategoryMajor, 19),
		holiday("Chanukah", "חֲנוּכָּה", models.CategoryMajor, 90),
		holiday("Tu BiShvat", "ט\"וּ בִּשְׁבָט", models.CategoryMinor, 140),
		holiday("Tisha B'Av", "תִּשְׁעָה בְּאָב", models.CategoryFast, 320),
		holiday("Thanksgiving", "", models.CategoryUSFederal, 80),
		holiday("Independence Day", "", models.CategoryUSFederal, 300),
	}
}

func titles(holidays []models.Holiday) []string {
	out := make([]string, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, h.Title)
	}
	return out
}

func TestExpandTermsAliasClosure(t *testing.T) {
	terms := ExpandTerms("hanuka")
	assert.Contains(t, terms, "hanuka")
	assert.Contains(t, terms, "chanukah")
	assert.Contains(t, terms, "hanukkah")
}

func TestExpandTermsEmptyQuery(t *testing.T) {
	assert.Empty(t, ExpandTerms(""))
	assert.Empty(t, ExpandTerms("   "))
	assert.Empty(t, ExpandTerms("?!"))
}

func TestExpandTermsCompactedMatch(t *testing.T) {
	// "tubishvat" has no spaces, yet still pulls the "tu bishvat" group.
	terms := ExpandTerms("tubishvat")
	assert.Contains(t, terms, "tu bishvat")
}

func TestFilterByTransliteratedAlias(t *testing.T) {
	results := Filter(sampleCatalog(), "hanukkah")
	require.Len(t, results, 1)
	assert.Equal(t, "Chanukah", results[0].Title)
}

func TestFilterByColloquialAlias(t *testing.T) {
	results := Filter(sampleCatalog(), "turkey day")
	require.Len(t, results, 1)
	assert.Equal(t, "Thanksgiving", results[0].Title)
}

func TestFilterHebrewWithNiqqudDifference(t *testing.T) {
	// The stored Hebrew is fully pointed; the bare query matches via the
	// vav/yod skeleton.
	results := Filter(sampleCatalog(), "חנכה")
	require.Len(t, results, 1)
	assert.Equal(t, "Chanukah", results[0].Title)
}

func TestFilterHebrewShortFragmentNoSkeletonMatch(t *testing.T) {
	// The query "כו" skeletonizes down to a single letter, which sits below
	// the skeleton threshold, and it is not a direct substring of any stored
	// Hebrew name.
	assert.Empty(t, Filter(sampleCatalog(), "כו"))
}

func TestFilterEmptyQueryMatchesNothing(t *testing.T) {
	assert.Empty(t, Filter(sampleCatalog(), ""))
	assert.Empty(t, Filter(sampleCatalog(), "   "))
}

func TestFilterRanksByWeightThenProximity(t *testing.T) {
	catalog := []models.Holiday{
		holiday("Tu B'Av", "", models.CategoryMinor, 5),
		holiday("Tisha B'Av", "", models.CategoryFast, 200),
		holiday("Yom Kippur", "", models.CategoryMajor, 300),
	}
	// "av" is a substring of the first two; Yom Kippur does not match.
	results := Filter(catalog, "av")
	require.Len(t, results, 2)
	assert.Equal(t, []string{"Tisha B'Av", "Tu B'Av"}, titles(results))
}

func TestFilterCapsResults(t *testing.T) {
	catalog := make([]models.Holiday, 0, MaxResults+5)
	for i := 0; i < MaxResults+5; i++ {
		catalog = append(catalog, holiday(fmt.Sprintf("Shabbat Program %d", i), "", models.CategoryMinor, i))
	}
	results := Filter(catalog, "shabbat")
	require.Len(t, results, MaxResults)
	// Nearest entries survive the cap.
	assert.Equal(t, "Shabbat Program 0", results[0].Title)
	assert.Equal(t, fmt.Sprintf("Shabbat Program %d", MaxResults-1), results[MaxResults-1].Title)
}

func TestFilterNoMatch(t *testing.T) {
	assert.Empty(t, Filter(sampleCatalog(), "diwali"))
}
