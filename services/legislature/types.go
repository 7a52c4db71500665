package legislature

import (
	"strings"
	"time"
)

type Party string

const (
	PartyRepublican   Party = "R"
	PartyDemocrat     Party = "D"
	PartyUnaffiliated Party = "U"
)

// ParseParty maps the party marker published on the member list to the
// three-way code used everywhere else. Unaffiliated and Independent
// both collapse to U.
func ParseParty(raw string) Party {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "R":
		return PartyRepublican
	case "D":
		return PartyDemocrat
	default:
		return PartyUnaffiliated
	}
}

// Icon returns the display icon the dashboard renders next to the
// party code.
func (p Party) Icon() string {
	switch p {
	case PartyRepublican:
		return "🐘 R"
	case PartyDemocrat:
		return "🫏 D"
	default:
		return string(p)
	}
}

type VoteCast string

const (
	CastAye   VoteCast = "AYE"
	CastNo    VoteCast = "NO"
	CastOther VoteCast = "OTHER"
)

// ParseCast interprets the Vote column of a vote history row. The site
// abbreviates Aye to "AY" on some older pages.
func ParseCast(raw string) VoteCast {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "AYE", "AY":
		return CastAye
	case "NO":
		return CastNo
	default:
		return CastOther
	}
}

type VoteResult string

const (
	ResultPass  VoteResult = "PASS"
	ResultFail  VoteResult = "FAIL"
	ResultOther VoteResult = "OTHER"
)

// ParseResult interprets the Result column, which carries variants
// like "PASS", "PASSED" or "FAILED".
func ParseResult(raw string) VoteResult {
	upper := strings.ToUpper(raw)
	switch {
	case strings.Contains(upper, "PASS"):
		return ResultPass
	case strings.Contains(upper, "FAIL"):
		return ResultFail
	default:
		return ResultOther
	}
}

type RollCallCell string

const (
	CellAye       RollCallCell = "AYE"
	CellNo        RollCallCell = "NO"
	CellNotVoting RollCallCell = "NOT_VOTING"
)

// Member is a chamber member with contact info merged in from the
// contact page. Immutable once built, lives for one snapshot.
type Member struct {
	ID         string
	Name       string
	Party      Party
	District   string
	Counties   []string
	Phone      string
	Assistant  string
	Email      string
	ProfileURL string
}

// Bill is a bill page plus its classification under the configured
// keyword set.
type Bill struct {
	ID             string
	Title          string
	Keywords       []string
	Classification Classification
}

// Classification is the outcome of the firefighter-related decision
// for one bill, with the reason kept for display.
type Classification struct {
	Related bool
	Reason  string
}

// VoteRecord is one row of a member's vote history with the cast and
// result interpreted. The raw columns are kept verbatim. RCS is the
// roll-call sequence number, which orders votes taken on the same day.
type VoteRecord struct {
	MemberID  string
	BillID    string
	RCS       string
	Date      time.Time
	Motion    string
	Cast      VoteCast
	Result    VoteResult
	RawCast   string
	RawResult string
}

// Tally partitions one member's votes on firefighter-related bills.
// Support + Oppose + NotCounted always equals the member's total vote
// records on those bills.
type Tally struct {
	MemberID   string
	Support    int
	Oppose     int
	NotCounted int
}

// RollCallMatrix maps (bill, member) to a cell, restricted to
// firefighter-related bills with at least one counted vote. BillIDs
// and MemberIDs are sorted so output is deterministic.
type RollCallMatrix struct {
	BillIDs   []string
	MemberIDs []string
	Cells     map[string]map[string]RollCallCell
}

// Cell returns the matrix entry for (billID, memberID), defaulting to
// not-voting.
func (m RollCallMatrix) Cell(billID, memberID string) RollCallCell {
	row, ok := m.Cells[billID]
	if !ok {
		return CellNotVoting
	}
	cell, ok := row[memberID]
	if !ok {
		return CellNotVoting
	}
	return cell
}

type AnomalyKind string

const (
	AnomalyContactRow     AnomalyKind = "contact_row"
	AnomalyVoteHistory    AnomalyKind = "vote_history"
	AnomalyBillFetch      AnomalyKind = "bill_fetch"
	AnomalyClassification AnomalyKind = "classification"
	AnomalyVoteRecord     AnomalyKind = "vote_record"
)

// BuildAnomaly is a per-item failure that did not abort the build
// pass: the item is excluded from the snapshot and the anomaly is
// surfaced so consumers never mistake a partial snapshot for a
// complete one.
type BuildAnomaly struct {
	Kind   AnomalyKind
	Ref    string
	Detail string
}

// BuildReport accounts for everything that went wrong during a build
// pass.
type BuildReport struct {
	StartedAt  time.Time
	FinishedAt time.Time
	Anomalies  []BuildAnomaly
}

func (r BuildReport) Skipped() int {
	return len(r.Anomalies)
}

// Snapshot is one complete, internally consistent build of all derived
// data. It is replaced wholesale on refresh, never mutated.
type Snapshot struct {
	Members  []Member
	Bills    map[string]Bill
	Votes    []VoteRecord
	Tallies  map[string]Tally
	RollCall RollCallMatrix
	Report   BuildReport
	BuiltAt  time.Time
}
