package legislature

import (
	"fmt"
	"regexp"
	"strings"

	"firewatch-backend/lib/scrapers/ncleg"
)

// titleHeuristic catches firefighter-related bills whose pages carry
// no keyword index. Matches the terms the dashboard has historically
// missed when relying on keywords alone.
var titleHeuristic = regexp.MustCompile(`(?i)FIRE(FIGHT| FIGHTER|MEN)|EMS|RESCUE|9-?1-?1|PENSION`)

// Classifier decides whether a bill is firefighter-related: first by
// exact keyword match against the configured set, then by the title
// heuristic as a fallback.
type Classifier struct {
	keywords map[string]string
}

func NewClassifier(keywords []string) *Classifier {
	set := make(map[string]string, len(keywords))
	for _, kw := range keywords {
		set[strings.ToUpper(strings.TrimSpace(kw))] = strings.TrimSpace(kw)
	}
	return &Classifier{keywords: set}
}

// Classify never errors: a bill without keywords simply falls through
// to the title heuristic.
func (c *Classifier) Classify(bill ncleg.Bill) Classification {
	for _, kw := range bill.Keywords {
		if orig, ok := c.keywords[strings.ToUpper(strings.TrimSpace(kw))]; ok {
			return Classification{
				Related: true,
				Reason:  fmt.Sprintf("matched keyword: %s", orig),
			}
		}
	}
	if match := titleHeuristic.FindString(bill.Title); match != "" {
		return Classification{
			Related: true,
			Reason:  fmt.Sprintf("title heuristic: %s", strings.ToUpper(match)),
		}
	}
	return Classification{}
}
