package ncleg

import "time"

// Member is one row of the chamber's member list page. Contact fields
// only carry what the member list itself shows, the contact info page
// is a separate record joined later.
type Member struct {
	ID         string
	Name       string
	Party      string
	District   string
	Counties   []string
	Phone      string
	Assistant  string
	ProfileURL string
}

// ContactRow is one row of the contact info page. MemberID may be
// empty when the row carries no biography link.
type ContactRow struct {
	MemberID  string
	Name      string
	Phone     string
	Email     string
	Assistant string
}

// VoteRow is one row of a member's vote history table, verbatim. Cast
// and Result are kept as published, interpreting them is the service
// layer's job. DateErr is set when the Date column did not match any
// known layout, Date is zero in that case.
type VoteRow struct {
	MemberID string
	RCS      string
	BillID   string
	BillURL  string
	Motion   string
	Date     time.Time
	RawDate  string
	DateErr  error
	Cast     string
	Result   string
}

// Bill is the subset of a bill lookup page the classifier needs.
type Bill struct {
	ID       string
	Title    string
	Keywords []string
}
