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
	keywordsLineRegex = regexp.MustCompile(`^Keywords:\s*(.*)`)
	billHeaderRegex   = regexp.MustCompile(`^(?:House|Senate)\s+(?:Bill|Resolution|Joint\s+Resolution)\s+\d+`)
)

// ParseBill extracts the short title and the Keywords attribute from a
// bill lookup page. A page without a recognizable bill header is a
// parse error, a bill without a Keywords line is not: the attribute is
// legitimately absent on some resolutions, the classifier degrades to
// its title heuristic for those.
func ParseBill(r io.Reader, billID string) (Bill, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Bill{}, fmt.Errorf("parsing html: %w", err)
	}

	bill := Bill{ID: billID}
	lines := htmlutil.TextLines(doc.Find("body"))

	headerIdx := -1
	for i, line := range lines {
		if billHeaderRegex.MatchString(line) {
			headerIdx = i
			break
		}
	}

	titleTag := htmlutil.CleanText(doc.Find("title").First().Text())
	if headerIdx == -1 && titleTag == "" {
		return Bill{}, &ParseError{Page: PageBill, Missing: "bill header"}
	}

	// the short title is the first line after the header
	if headerIdx >= 0 && headerIdx+1 < len(lines) {
		bill.Title = lines[headerIdx+1]
	}
	if bill.Title == "" {
		bill.Title = titleTag
	}

	for _, line := range lines {
		m := keywordsLineRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		for _, part := range strings.Split(m[1], ";") {
			kw := strings.ToUpper(strings.TrimSpace(part))
			if kw != "" {
				bill.Keywords = append(bill.Keywords, kw)
			}
		}
		break
	}

	return bill, nil
}
