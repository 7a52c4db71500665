package ncleg

import (
	"fmt"
	"io"
	"regexp"

	"firewatch-backend/lib/htmlutil"
	"firewatch-backend/lib/timezone"

	"github.com/PuerkitoBio/goquery"
)

var billLookupRegex = regexp.MustCompile(`/BillLookup/\d{4}(?:E\d+)?/([HS]\d+)`)

// ParseVoteHistory extracts one VoteRow per row of a member's vote
// history table. Rows whose document link does not resolve to a bill
// lookup page (committee reports, amendments) are skipped. The column
// layout is
//
//	RCS# | Doc. | Subject/Motion | Date | Vote | Aye | No | ... | Result
//
// and the last column is always the result, so extra columns in the
// middle don't break the mapping.
func ParseVoteHistory(r io.Reader, memberID string) ([]VoteRow, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	if doc.Find("table").Length() == 0 {
		return nil, &ParseError{Page: PageVoteHistory, Missing: "vote table"}
	}

	var votes []VoteRow
	doc.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		tds := tr.Find("td")
		if tds.Length() < 6 {
			return
		}

		var billID, billURL string
		tr.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			href := a.AttrOr("href", "")
			if m := billLookupRegex.FindStringSubmatch(href); m != nil {
				billID = m[1]
				billURL = href
				return false
			}
			return true
		})
		if billID == "" {
			return
		}

		cols := make([]string, 0, tds.Length())
		tds.Each(func(_ int, td *goquery.Selection) {
			cols = append(cols, htmlutil.CleanText(td.Text()))
		})

		row := VoteRow{
			MemberID: memberID,
			RCS:      cols[0],
			BillID:   billID,
			BillURL:  billURL,
			Result:   cols[len(cols)-1],
		}
		if len(cols) > 2 {
			row.Motion = cols[2]
		}
		if len(cols) > 3 {
			row.RawDate = cols[3]
			if t, err := timezone.ParseVoteTime(cols[3]); err == nil {
				row.Date = t
			} else {
				// a layout the site changed under us, kept on the row
				// so the caller can report it instead of silently
				// treating the vote as undated
				row.DateErr = err
			}
		}
		if len(cols) > 4 {
			row.Cast = cols[4]
		}

		votes = append(votes, row)
	})

	return votes, nil
}
