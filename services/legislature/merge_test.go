package legislature

import (
	"testing"

	"github.com/stretchr/testify/require"

	"firewatch-backend/lib/scrapers/ncleg"
)

func TestMergeContactsByID(t *testing.T) {
	members := []ncleg.Member{
		{ID: "767", Name: "Erin Paré", Party: "R"},
	}
	contacts := []ncleg.ContactRow{
		{MemberID: "767", Name: "Erin Paré", Email: "Erin.Pare@ncleg.gov", Phone: "(919) 733-2962"},
	}

	merged, anomalies := mergeContacts(members, contacts)
	require.Empty(t, anomalies)
	require.Equal(t, "Erin.Pare@ncleg.gov", merged[0].Email)
	require.Equal(t, "(919) 733-2962", merged[0].Phone)
}

func TestMergeContactsFuzzyName(t *testing.T) {
	// the contact page drops the accent and has no biography link
	members := []ncleg.Member{
		{ID: "796", Name: "Maria Cervania", Party: "D"},
		{ID: "812", Name: "Walter Pless", Party: "Unaffiliated"},
	}
	contacts := []ncleg.ContactRow{
		{Name: "Rep. María Cervania", Email: "Maria.Cervania@ncleg.gov"},
	}

	merged, anomalies := mergeContacts(members, contacts)
	require.Empty(t, anomalies)
	require.Equal(t, "Maria.Cervania@ncleg.gov", merged[0].Email)
	require.Empty(t, merged[1].Email)
}

func TestMergeContactsUnmatchedRowBecomesAnomaly(t *testing.T) {
	members := []ncleg.Member{
		{ID: "767", Name: "Erin Paré", Party: "R"},
	}
	contacts := []ncleg.ContactRow{
		{Name: "Chris Humphrey", Email: "Chris.Humphrey@ncleg.gov"},
	}

	merged, anomalies := mergeContacts(members, contacts)
	require.Empty(t, merged[0].Email)
	require.Len(t, anomalies, 1)
	require.Equal(t, AnomalyContactRow, anomalies[0].Kind)
	require.Equal(t, "Chris Humphrey", anomalies[0].Ref)
}

func TestMergeContactsKeepsMemberListPhone(t *testing.T) {
	members := []ncleg.Member{
		{ID: "767", Name: "Erin Paré", Phone: "919-733-2962"},
	}
	contacts := []ncleg.ContactRow{
		{MemberID: "767", Name: "Erin Paré", Phone: "(919) 555-0000", Email: "e@ncleg.gov"},
	}

	merged, _ := mergeContacts(members, contacts)
	require.Equal(t, "919-733-2962", merged[0].Phone)
}
