package legislature

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"firewatch-backend/lib/scrapers/ncleg"
)

// fakeSource serves a small fixed chamber and counts every fetch.
type fakeSource struct {
	memberListCalls  atomic.Int64
	contactInfoCalls atomic.Int64
	memberVoteCalls  atomic.Int64
	billCalls        atomic.Int64

	failMemberList atomic.Bool
	failBills      atomic.Bool

	// when set, MemberList blocks until the channel closes
	gate chan struct{}
}

func (f *fakeSource) MemberList(ctx context.Context) ([]ncleg.Member, error) {
	f.memberListCalls.Add(1)
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.failMemberList.Load() {
		return nil, &ncleg.FetchError{URL: "/Members/MemberList/H", Status: 503}
	}
	return []ncleg.Member{
		{ID: "767", Name: "Erin Paré", Party: "R", District: "37"},
		{ID: "796", Name: "Maria Cervania", Party: "D", District: "41"},
	}, nil
}

func (f *fakeSource) ContactInfo(ctx context.Context) ([]ncleg.ContactRow, error) {
	f.contactInfoCalls.Add(1)
	return []ncleg.ContactRow{
		{MemberID: "767", Name: "Erin Paré", Email: "Erin.Pare@ncleg.gov"},
		{Name: "Maria Cervania", Email: "Maria.Cervania@ncleg.gov"},
	}, nil
}

func (f *fakeSource) MemberVotes(ctx context.Context, memberID string) ([]ncleg.VoteRow, error) {
	f.memberVoteCalls.Add(1)
	when := time.Date(2025, 6, 26, 14, 45, 0, 0, time.UTC)
	switch memberID {
	case "767":
		return []ncleg.VoteRow{
			{MemberID: "767", RCS: "412", BillID: "H24", Motion: "Second Reading", Date: when, Cast: "AYE", Result: "PASS"},
			{MemberID: "767", RCS: "401", BillID: "S429", Motion: "For Adoption", Date: when.AddDate(0, 0, 1), Cast: "NO", Result: "PASS"},
		}, nil
	case "796":
		return []ncleg.VoteRow{
			{MemberID: "796", RCS: "412", BillID: "H24", Motion: "Second Reading", Date: when, Cast: "EXC. ABSENCE", Result: "PASS"},
		}, nil
	default:
		return nil, fmt.Errorf("unknown member %s", memberID)
	}
}

func (f *fakeSource) Bill(ctx context.Context, billID string) (ncleg.Bill, error) {
	f.billCalls.Add(1)
	if f.failBills.Load() {
		return ncleg.Bill{}, &ncleg.FetchError{URL: "/BillLookup/2025/" + billID, Status: 500}
	}
	switch billID {
	case "H24":
		return ncleg.Bill{
			ID:       "H24",
			Title:    "Firefighter Cancer Benefits Act",
			Keywords: []string{"FIREFIGHTERS & FIREFIGHTING", "WORKERS' COMPENSATION"},
		}, nil
	case "S429":
		return ncleg.Bill{ID: "S429", Title: "Rescue Squad Workers Benefits", Keywords: []string{"COUNTIES"}}, nil
	default:
		return ncleg.Bill{}, fmt.Errorf("unknown bill %s", billID)
	}
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Session = "2025"
	return cfg
}
