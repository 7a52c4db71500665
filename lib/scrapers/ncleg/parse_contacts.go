package ncleg

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"firewatch-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

var contactPhoneRegex = regexp.MustCompile(`\(?\d{3}\)?[-\s]\d{3}[-.]?\d{4}`)

// ParseContactInfo extracts one ContactRow per table row that carries a
// mailto link. Rows are keyed by the biography link when present, the
// published name otherwise.
func ParseContactInfo(r io.Reader, chamber string) ([]ContactRow, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	rows := doc.Find("tr")
	if rows.Length() == 0 {
		return nil, &ParseError{Page: PageContactInfo, Missing: "contact table rows"}
	}

	var contacts []ContactRow
	rows.Each(func(_ int, tr *goquery.Selection) {
		emailAnchor := tr.Find(`a[href^="mailto:"]`).First()
		if emailAnchor.Length() == 0 {
			return
		}
		email := htmlutil.CleanText(emailAnchor.Text())
		if email == "" {
			email = strings.TrimPrefix(emailAnchor.AttrOr("href", ""), "mailto:")
		}

		row := ContactRow{Email: email}

		bio := tr.Find(fmt.Sprintf(`a[href*="/Members/Biography/%s/"]`, chamber)).First()
		if bio.Length() > 0 {
			if m := memberIdRegex.FindStringSubmatch(bio.AttrOr("href", "")); m != nil {
				row.MemberID = m[1]
			}
			row.Name = stripTitle(htmlutil.CleanText(bio.Text()))
		}
		if row.Name == "" {
			if td := tr.Find("td").First(); td.Length() > 0 {
				row.Name = stripTitle(htmlutil.CleanText(td.Text()))
			}
		}

		tr.Find("td").EachWithBreak(func(_ int, td *goquery.Selection) bool {
			if m := contactPhoneRegex.FindString(td.Text()); m != "" {
				row.Phone = m
				return false
			}
			return true
		})
		if m := assistantRegex.FindStringSubmatch(htmlutil.CleanText(tr.Text())); m != nil {
			row.Assistant = strings.TrimSpace(m[1])
		}

		contacts = append(contacts, row)
	})

	return contacts, nil
}

func stripTitle(name string) string {
	for _, prefix := range []string{"Rep. ", "Sen. ", "Representative ", "Senator "} {
		name = strings.TrimPrefix(name, prefix)
	}
	return strings.TrimSpace(name)
}
