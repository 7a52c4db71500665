package legislature

import (
	"sort"
	"strconv"

	"firewatch-backend/lib/textutil"
)

// rcsSequence interprets a roll-call sequence number for ordering.
// Non-numeric values sort first.
func rcsSequence(rcs string) int {
	n, err := strconv.Atoi(rcs)
	if err != nil {
		return -1
	}
	return n
}

// Aggregate derives member tallies and the roll-call matrix from the
// merged members, classified bills and parsed vote records.
//
// A vote counts toward a tally only when its motion is in the
// countable set, its result is a pass and the cast is an explicit aye
// or no. Everything else on a firefighter-related bill lands in
// NotCounted so the partition over those records stays exact.
func Aggregate(members []Member, bills map[string]Bill, votes []VoteRecord, countableMotions []string) (map[string]Tally, RollCallMatrix, []BuildAnomaly) {
	countable := make(map[string]struct{}, len(countableMotions))
	for _, m := range countableMotions {
		countable[textutil.NormalizeMotion(m)] = struct{}{}
	}

	memberIDs := make([]string, 0, len(members))
	for _, m := range members {
		memberIDs = append(memberIDs, m.ID)
	}
	sort.Strings(memberIDs)

	tallies := make(map[string]Tally, len(members))
	for _, m := range members {
		tallies[m.ID] = Tally{MemberID: m.ID}
	}

	// cells maps billID -> memberID -> latest counted vote, ordering
	// resolved per cell by date, then RCS for same-day votes, before
	// being folded into the matrix
	type datedCell struct {
		cell RollCallCell
		date int64
		seq  int
	}
	cells := make(map[string]map[string]datedCell)
	var anomalies []BuildAnomaly

	for _, v := range votes {
		bill, ok := bills[v.BillID]
		if !ok {
			anomalies = append(anomalies, BuildAnomaly{
				Kind:   AnomalyVoteRecord,
				Ref:    v.BillID,
				Detail: "vote references a bill missing from the snapshot",
			})
			continue
		}
		if !bill.Classification.Related {
			continue
		}

		tally, ok := tallies[v.MemberID]
		if !ok {
			anomalies = append(anomalies, BuildAnomaly{
				Kind:   AnomalyVoteRecord,
				Ref:    v.MemberID,
				Detail: "vote references an unknown member",
			})
			continue
		}

		_, motionCountable := countable[textutil.NormalizeMotion(v.Motion)]
		counted := motionCountable && v.Result == ResultPass && (v.Cast == CastAye || v.Cast == CastNo)
		if !counted {
			tally.NotCounted++
			tallies[v.MemberID] = tally
			continue
		}

		cell := CellNo
		if v.Cast == CastAye {
			tally.Support++
			cell = CellAye
		} else {
			tally.Oppose++
		}
		tallies[v.MemberID] = tally

		row, ok := cells[v.BillID]
		if !ok {
			row = make(map[string]datedCell)
			cells[v.BillID] = row
		}
		// a member can have several counted votes on one bill, the
		// latest one wins the matrix cell. Date-only pages make
		// same-day collisions common, so RCS settles those.
		seq := rcsSequence(v.RCS)
		if prev, ok := row[v.MemberID]; !ok ||
			v.Date.Unix() > prev.date ||
			(v.Date.Unix() == prev.date && seq >= prev.seq) {
			row[v.MemberID] = datedCell{cell: cell, date: v.Date.Unix(), seq: seq}
		}
	}

	matrix := RollCallMatrix{
		MemberIDs: memberIDs,
		Cells:     make(map[string]map[string]RollCallCell, len(cells)),
	}
	for billID, row := range cells {
		matrix.BillIDs = append(matrix.BillIDs, billID)
		out := make(map[string]RollCallCell, len(row))
		for memberID, dc := range row {
			out[memberID] = dc.cell
		}
		matrix.Cells[billID] = out
	}
	sort.Strings(matrix.BillIDs)

	return tallies, matrix, anomalies
}
