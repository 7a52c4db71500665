package legislature

import (
	"github.com/antzucaro/matchr"

	"firewatch-backend/lib/scrapers/ncleg"
	"firewatch-backend/lib/textutil"
)

// contactNameThreshold is the minimum Jaro-Winkler similarity for the
// name fallback join. Chosen high enough that distinct members of the
// same chamber never collide.
const contactNameThreshold = 0.93

// mergeContacts joins contact rows onto members, by member id when the
// contact page links the biography, and by fuzzy name match otherwise.
// Rows that match no member become anomalies instead of guesses.
func mergeContacts(members []ncleg.Member, contacts []ncleg.ContactRow) ([]Member, []BuildAnomaly) {
	byID := make(map[string]int, len(members))
	byName := make(map[string]int, len(members))
	merged := make([]Member, len(members))
	for i, m := range members {
		merged[i] = Member{
			ID:         m.ID,
			Name:       m.Name,
			Party:      ParseParty(m.Party),
			District:   m.District,
			Counties:   m.Counties,
			Phone:      m.Phone,
			Assistant:  m.Assistant,
			ProfileURL: m.ProfileURL,
		}
		byID[m.ID] = i
		byName[textutil.NormalizeName(m.Name)] = i
	}

	var anomalies []BuildAnomaly
	for _, row := range contacts {
		idx, ok := matchContact(row, byID, byName, members)
		if !ok {
			anomalies = append(anomalies, BuildAnomaly{
				Kind:   AnomalyContactRow,
				Ref:    row.Name,
				Detail: "contact row matches no member",
			})
			continue
		}
		merged[idx].Email = row.Email
		if merged[idx].Phone == "" {
			merged[idx].Phone = row.Phone
		}
		if merged[idx].Assistant == "" {
			merged[idx].Assistant = row.Assistant
		}
	}
	return merged, anomalies
}

func matchContact(row ncleg.ContactRow, byID, byName map[string]int, members []ncleg.Member) (int, bool) {
	if row.MemberID != "" {
		if idx, ok := byID[row.MemberID]; ok {
			return idx, true
		}
		return 0, false
	}

	normalized := textutil.NormalizeName(row.Name)
	if idx, ok := byName[normalized]; ok {
		return idx, true
	}

	// Accent and middle-initial differences between the two pages are
	// common, exact normalization is not enough.
	bestIdx, bestScore := -1, 0.0
	for i, m := range members {
		score := matchr.JaroWinkler(normalized, textutil.NormalizeName(m.Name), true)
		if score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	if bestScore >= contactNameThreshold {
		return bestIdx, true
	}
	return 0, false
}
