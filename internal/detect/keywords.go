package detect

import (
	"strings"

	"github.com/subsaver-dev/subsaver/internal/model"
)

// subscriptionKeywords flags charges that look like subscriptions by name
// alone, before any recurrence evidence exists.
var subscriptionKeywords = []string{
	"subscription", "member", "monthly", "annual", "recurring",
	"netflix", "spotify", "hulu", "disney+", "amazon prime",
	"apple", "google", "microsoft", "adobe", "dropbox", "icloud",
	"hbo", "youtube", "paramount", "peacock", "crunchyroll",
	"gym", "fitness", "audible", "patreon", "onlyfans",
	"vpn", "domain", "hosting", "website", "cloud",
}

// KeywordMatches returns the transactions whose description contains a
// subscription-indicating keyword. Pure filter; input order is preserved.
func KeywordMatches(txns []model.Transaction) []model.Transaction {
	var matches []model.Transaction
	for _, txn := range txns {
		desc := strings.ToLower(txn.Description)
		for _, kw := range subscriptionKeywords {
			if strings.Contains(desc, kw) {
				matches = append(matches, txn)
				break
			}
		}
	}
	return matches
}
