package legislature

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func testBills() map[string]Bill {
	return map[string]Bill{
		"H24": {
			ID:             "H24",
			Title:          "Firefighter Cancer Benefits Act",
			Classification: Classification{Related: true, Reason: "matched keyword: CANCER"},
		},
		"S429": {
			ID:             "S429",
			Title:          "Rescue Squad Workers Benefits",
			Classification: Classification{Related: true, Reason: "title heuristic: RESCUE"},
		},
		"H99": {
			ID:    "H99",
			Title: "Various Local Provisions",
		},
	}
}

func testMembers() []Member {
	return []Member{
		{ID: "767", Name: "Erin Paré", Party: PartyRepublican},
		{ID: "796", Name: "Maria Cervania", Party: PartyDemocrat},
	}
}

func day(d int) time.Time {
	return time.Date(2025, 6, d, 12, 0, 0, 0, time.UTC)
}

func TestAggregateTallies(t *testing.T) {
	votes := []VoteRecord{
		{MemberID: "767", BillID: "H24", Date: day(1), Motion: "Second Reading", Cast: CastAye, Result: ResultPass},
		{MemberID: "767", BillID: "H24", Date: day(2), Motion: "Third Reading", Cast: CastNo, Result: ResultPass},
		// failed motion, counted nowhere but still partitioned
		{MemberID: "767", BillID: "S429", Date: day(3), Motion: "Second Reading", Cast: CastAye, Result: ResultFail},
		// procedural motion
		{MemberID: "796", BillID: "H24", Date: day(1), Motion: "Motion to Table", Cast: CastAye, Result: ResultPass},
		// absence
		{MemberID: "796", BillID: "S429", Date: day(3), Motion: "For Adoption", Cast: CastOther, Result: ResultPass},
		// unrelated bill, ignored entirely
		{MemberID: "796", BillID: "H99", Date: day(4), Motion: "Second Reading", Cast: CastAye, Result: ResultPass},
	}

	tallies, _, anomalies := Aggregate(testMembers(), testBills(), votes, DefaultCountableMotions)
	require.Empty(t, anomalies)

	require.Equal(t, Tally{MemberID: "767", Support: 1, Oppose: 1, NotCounted: 1}, tallies["767"])
	require.Equal(t, Tally{MemberID: "796", NotCounted: 2}, tallies["796"])
}

func TestAggregatePartitionInvariant(t *testing.T) {
	votes := []VoteRecord{
		{MemberID: "767", BillID: "H24", Date: day(1), Motion: "Second Reading", Cast: CastAye, Result: ResultPass},
		{MemberID: "767", BillID: "H24", Date: day(2), Motion: "Third Reading", Cast: CastNo, Result: ResultPass},
		{MemberID: "767", BillID: "S429", Date: day(3), Motion: "Concur", Cast: CastOther, Result: ResultPass},
		{MemberID: "767", BillID: "S429", Date: day(4), Motion: "Amendment 1", Cast: CastAye, Result: ResultOther},
	}

	tallies, _, _ := Aggregate(testMembers(), testBills(), votes, DefaultCountableMotions)

	tally := tallies["767"]
	require.Equal(t, len(votes), tally.Support+tally.Oppose+tally.NotCounted)
}

func TestAggregateMatrix(t *testing.T) {
	votes := []VoteRecord{
		{MemberID: "767", BillID: "H24", Date: day(1), Motion: "Second Reading", Cast: CastAye, Result: ResultPass},
		{MemberID: "796", BillID: "H24", Date: day(1), Motion: "Second Reading", Cast: CastNo, Result: ResultPass},
		// S429 has no counted vote, so no matrix row
		{MemberID: "767", BillID: "S429", Date: day(3), Motion: "For Adoption", Cast: CastOther, Result: ResultPass},
	}

	_, matrix, _ := Aggregate(testMembers(), testBills(), votes, DefaultCountableMotions)

	require.Equal(t, []string{"H24"}, matrix.BillIDs)
	require.Equal(t, []string{"767", "796"}, matrix.MemberIDs)
	require.Equal(t, CellAye, matrix.Cell("H24", "767"))
	require.Equal(t, CellNo, matrix.Cell("H24", "796"))
	require.Equal(t, CellNotVoting, matrix.Cell("S429", "767"))
	require.Equal(t, CellNotVoting, matrix.Cell("H24", "999"))
}

func TestAggregateLatestVoteWinsCell(t *testing.T) {
	votes := []VoteRecord{
		{MemberID: "767", BillID: "H24", Date: day(1), Motion: "Second Reading", Cast: CastAye, Result: ResultPass},
		{MemberID: "767", BillID: "H24", Date: day(2), Motion: "Third Reading", Cast: CastNo, Result: ResultPass},
	}

	tallies, matrix, _ := Aggregate(testMembers(), testBills(), votes, DefaultCountableMotions)

	// both votes count in the tally, only the later one shows in the cell
	require.Equal(t, Tally{MemberID: "767", Support: 1, Oppose: 1}, tallies["767"])
	require.Equal(t, CellNo, matrix.Cell("H24", "767"))
}

func TestAggregateSameDayVotesResolveByRollCallSequence(t *testing.T) {
	// date-only vote pages collapse everything to midnight, so two
	// readings on one day tie on the date and only RCS orders them
	when := time.Date(2025, 6, 26, 0, 0, 0, 0, time.UTC)
	second := VoteRecord{MemberID: "767", BillID: "H24", RCS: "412", Date: when, Motion: "Second Reading", Cast: CastAye, Result: ResultPass}
	third := VoteRecord{MemberID: "767", BillID: "H24", RCS: "418", Date: when, Motion: "Third Reading", Cast: CastNo, Result: ResultPass}

	for _, votes := range [][]VoteRecord{{second, third}, {third, second}} {
		_, matrix, _ := Aggregate(testMembers(), testBills(), votes, DefaultCountableMotions)
		require.Equal(t, CellNo, matrix.Cell("H24", "767"))
	}
}

func TestAggregateDanglingReferencesBecomeAnomalies(t *testing.T) {
	votes := []VoteRecord{
		{MemberID: "767", BillID: "H777", Date: day(1), Motion: "Second Reading", Cast: CastAye, Result: ResultPass},
		{MemberID: "999", BillID: "H24", Date: day(1), Motion: "Second Reading", Cast: CastAye, Result: ResultPass},
	}

	tallies, _, anomalies := Aggregate(testMembers(), testBills(), votes, DefaultCountableMotions)

	require.Len(t, anomalies, 2)
	require.Equal(t, "H777", anomalies[0].Ref)
	require.Equal(t, "999", anomalies[1].Ref)
	require.Equal(t, Tally{MemberID: "767"}, tallies["767"])
}

func TestAggregateDeterministic(t *testing.T) {
	votes := []VoteRecord{
		{MemberID: "796", BillID: "S429", Date: day(2), Motion: "For Adoption", Cast: CastNo, Result: ResultPass},
		{MemberID: "767", BillID: "H24", Date: day(1), Motion: "Second Reading", Cast: CastAye, Result: ResultPass},
	}

	_, first, _ := Aggregate(testMembers(), testBills(), votes, DefaultCountableMotions)
	_, second, _ := Aggregate(testMembers(), testBills(), votes, DefaultCountableMotions)

	require.Empty(t, cmp.Diff(first, second))
	require.Equal(t, []string{"H24", "S429"}, first.BillIDs)
}

func TestAggregateMotionMatchingIsNormalized(t *testing.T) {
	votes := []VoteRecord{
		{MemberID: "767", BillID: "H24", Date: day(1), Motion: "SECOND  READING", Cast: CastAye, Result: ResultPass},
	}

	tallies, _, _ := Aggregate(testMembers(), testBills(), votes, DefaultCountableMotions)
	require.Equal(t, 1, tallies["767"].Support)
}
