package ncleg

import "fmt"

// Page names used in parse errors so the build report can say which
// page type broke when the site markup changes.
const (
	PageMemberList  = "member list"
	PageContactInfo = "contact info"
	PageVoteHistory = "vote history"
	PageBill        = "bill lookup"
)

// FetchError is a network failure, timeout or non-success status for a
// single page. The caller decides whether to retry or degrade, nothing
// is retried silently here.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %s", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Status)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError means an expected structural anchor is absent from a
// page, which almost always means the site layout changed. It is
// deliberately distinct from a legitimately empty result.
type ParseError struct {
	Page    string
	Missing string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s page: expected %s not found", e.Page, e.Missing)
}
