package detect

import (
	"strings"

	"github.com/subsaver-dev/subsaver/internal/model"
)

// categoryRule maps a category to the description keywords that select it.
type categoryRule struct {
	category model.Category
	keywords []string
}

// categoryRules are evaluated in declaration order; the first keyword match
// wins, so ambiguous descriptions resolve deterministically.
var categoryRules = []categoryRule{
	{model.CategoryStreaming, []string{"netflix", "hulu", "disney+", "hbo", "paramount+", "peacock", "youtube premium"}},
	{model.CategoryMusic, []string{"spotify", "apple music", "tidal", "pandora", "deezer"}},
	{model.CategoryCloud, []string{"dropbox", "google one", "icloud", "onedrive", "box"}},
	{model.CategorySoftware, []string{"adobe", "microsoft", "autodesk", "notion", "canva pro"}},
	{model.CategoryGaming, []string{"xbox", "playstation", "nintendo", "steam", "epic games"}},
	{model.CategoryFitness, []string{"gym", "peloton", "fitness", "strava", "beachbody"}},
	{model.CategoryNews, []string{"nyt", "wsj", "washington post", "economist", "new yorker"}},
}

// Categorize returns the category for a subscription description, or
// CategoryOther if no rule matches.
func Categorize(description string) model.Category {
	desc := strings.ToLower(description)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(desc, kw) {
				return rule.category
			}
		}
	}
	return model.CategoryOther
}

// Categories returns every known category in rule order, ending with other.
func Categories() []model.Category {
	cats := make([]model.Category, 0, len(categoryRules)+1)
	for _, rule := range categoryRules {
		cats = append(cats, rule.category)
	}
	return append(cats, model.CategoryOther)
}
