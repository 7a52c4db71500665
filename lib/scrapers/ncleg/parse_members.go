package ncleg

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"firewatch-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

var (
	memberIdRegex  = regexp.MustCompile(`/Members/Biography/[HS]/(\d+)`)
	partyRegex     = regexp.MustCompile(`\((R|D|Unaffiliated|Independent)\)`)
	districtRegex  = regexp.MustCompile(`District\s+(\d+)`)
	phoneLineRegex = regexp.MustCompile(`Phone:\s*([0-9()\-. ]+)`)
	assistantRegex = regexp.MustCompile(`Assistant:\s*(.+)`)
)

// ParseMemberList extracts one Member per card on the member list
// page. Members are identified by their biography link, cards without
// one are ignored, duplicate ids are collapsed.
func ParseMemberList(r io.Reader, chamber string) ([]Member, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	anchors := doc.Find(fmt.Sprintf(`a[href*="/Members/Biography/%s/"]`, chamber))
	if anchors.Length() == 0 {
		return nil, &ParseError{Page: PageMemberList, Missing: "member biography links"}
	}

	var members []Member
	seen := map[string]bool{}
	anchors.Each(func(_ int, a *goquery.Selection) {
		href := a.AttrOr("href", "")
		idMatch := memberIdRegex.FindStringSubmatch(href)
		if idMatch == nil {
			return
		}
		id := idMatch[1]
		if seen[id] {
			return
		}
		name := htmlutil.CleanText(a.Text())
		if name == "" {
			return
		}
		seen[id] = true

		card := memberCard(a)
		block := strings.Join(htmlutil.TextLines(card), "\n")

		member := Member{ID: id, Name: name, ProfileURL: href}
		if m := partyRegex.FindStringSubmatch(block); m != nil {
			member.Party = m[1]
		}
		if m := districtRegex.FindStringSubmatch(block); m != nil {
			member.District = m[1]
		}
		for _, county := range htmlutil.GetAnchors(card.Find(`a[href*="/Counties/"]`)) {
			member.Counties = append(member.Counties, county.Name)
		}
		if m := phoneLineRegex.FindStringSubmatch(block); m != nil {
			member.Phone = strings.TrimSpace(m[1])
		}
		if m := assistantRegex.FindStringSubmatch(block); m != nil {
			member.Assistant = strings.TrimSpace(m[1])
		}

		members = append(members, member)
	})

	return members, nil
}

// memberCard walks up from a biography anchor to the container holding
// the member's district and contact lines. The card markup has shuffled
// before, so climb until the text looks complete instead of hardcoding
// a depth.
func memberCard(a *goquery.Selection) *goquery.Selection {
	card := a.Parent()
	for i := 0; i < 4; i++ {
		if card.Length() == 0 {
			return a.Parent()
		}
		if districtRegex.MatchString(card.Text()) {
			return card
		}
		parent := card.Parent()
		if parent.Length() == 0 || goquery.NodeName(parent) == "body" {
			break
		}
		card = parent
	}
	return card
}
