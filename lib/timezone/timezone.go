package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/New_York")
	if err != nil {
		panic(err)
	}
}

// the general assembly publishes everything in eastern time, pin the
// process clock there so date math lines up with what the site shows
// no matter where the server runs
func Now() time.Time {
	return time.Now().In(Location)
}

var voteTimeLayouts = []string{
	"1/2/2006 3:04:05 PM",
	"1/2/2006 3:04 PM",
	"1/2/2006",
}

// ParseVoteTime parses a timestamp as rendered in the vote history
// table, e.g. "6/26/2025 2:45 PM".
func ParseVoteTime(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range voteTimeLayouts {
		t, err := time.ParseInLocation(layout, raw, Location)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
