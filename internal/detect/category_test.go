package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/subsaver-dev/subsaver/internal/model"
)

func TestCategorize(t *testing.T) {
	assert.Equal(t, model.CategoryStreaming, Categorize("NETFLIX.COM"))
	assert.Equal(t, model.CategoryMusic, Categorize("Spotify USA"))
	assert.Equal(t, model.CategoryCloud, Categorize("DROPBOX*PLUS"))
	assert.Equal(t, model.CategorySoftware, Categorize("ADOBE CREATIVE CLOUD"))
	assert.Equal(t, model.CategoryGaming, Categorize("PLAYSTATION NETWORK"))
	assert.Equal(t, model.CategoryFitness, Categorize("24H GYM MEMBERSHIP"))
	assert.Equal(t, model.CategoryNews, Categorize("NYT DIGITAL"))
	assert.Equal(t, model.CategoryOther, Categorize("DOMAIN REGISTRATION"))
}

func TestCategorize_FirstRuleWins(t *testing.T) {
	// Matches both streaming (hulu) and music (spotify); streaming is
	// declared first.
	assert.Equal(t, model.CategoryStreaming, Categorize("HULU SPOTIFY BUNDLE"))

	// "box" is a cloud keyword and cloud is declared before gaming, so the
	// xbox rule never sees this description.
	assert.Equal(t, model.CategoryCloud, Categorize("XBOX GAME PASS"))
}

func TestCategorize_Deterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, model.CategoryStreaming, Categorize("PARAMOUNT+ MONTHLY"))
	}
}

func TestCategories_Order(t *testing.T) {
	cats := Categories()
	assert.Equal(t, []model.Category{
		model.CategoryStreaming,
		model.CategoryMusic,
		model.CategoryCloud,
		model.CategorySoftware,
		model.CategoryGaming,
		model.CategoryFitness,
		model.CategoryNews,
		model.CategoryOther,
	}, cats)
}

func TestKeywordMatches(t *testing.T) {
	txns := []model.Transaction{
		txn(2023, 1, 1, "NETFLIX.COM", "15.49"),
		txn(2023, 1, 2, "GROCERY STORE", "54.20"),
		txn(2023, 1, 3, "Gym Membership", "30.00"),
	}

	got := KeywordMatches(txns)
	assert.Len(t, got, 2)
	assert.Equal(t, "NETFLIX.COM", got[0].Description)
	assert.Equal(t, "Gym Membership", got[1].Description)
}

func TestKeywordMatches_Empty(t *testing.T) {
	assert.Empty(t, KeywordMatches(nil))
	assert.Empty(t, KeywordMatches([]model.Transaction{
		txn(2023, 1, 2, "GROCERY STORE", "54.20"),
	}))
}
