package legislature

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"firewatch-backend/lib/scrapers/ncleg"
	"firewatch-backend/lib/timezone"
)

var tracer = otel.Tracer("services/legislature")

// PageSource is the part of the scrape client the builder consumes.
// *ncleg.Client satisfies it.
type PageSource interface {
	MemberList(ctx context.Context) ([]ncleg.Member, error)
	ContactInfo(ctx context.Context) ([]ncleg.ContactRow, error)
	MemberVotes(ctx context.Context, memberID string) ([]ncleg.VoteRow, error)
	Bill(ctx context.Context, billID string) (ncleg.Bill, error)
}

// Builder assembles one snapshot per call. Bill pages change far less
// often than vote pages, so parsed bills are held in a TTL cache that
// survives across builds.
type Builder struct {
	source     PageSource
	classifier *Classifier
	config     Config
	billCache  *expirable.LRU[string, ncleg.Bill]
}

func NewBuilder(source PageSource, config Config) *Builder {
	return &Builder{
		source:     source,
		classifier: NewClassifier(config.Keywords),
		config:     config,
		billCache:  expirable.NewLRU[string, ncleg.Bill](2048, nil, config.BillTTL()),
	}
}

// Build fetches everything and derives a complete snapshot. The two
// chamber-wide pages are required and abort the build on failure. A
// failing vote history or bill page only excludes that item, recorded
// as an anomaly.
func (b *Builder) Build(ctx context.Context) (*Snapshot, error) {
	ctx, span := tracer.Start(ctx, "Build")
	defer span.End()

	report := BuildReport{StartedAt: timezone.Now()}

	rawMembers, err := b.source.MemberList(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "member list unavailable")
		return nil, fmt.Errorf("fetching member list: %w", err)
	}
	contacts, err := b.source.ContactInfo(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "contact info unavailable")
		return nil, fmt.Errorf("fetching contact info: %w", err)
	}

	members, anomalies := mergeContacts(rawMembers, contacts)
	report.Anomalies = append(report.Anomalies, anomalies...)

	votes, voteAnomalies := b.fetchVotes(ctx, members)
	report.Anomalies = append(report.Anomalies, voteAnomalies...)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bills, billAnomalies := b.fetchBills(ctx, votes)
	report.Anomalies = append(report.Anomalies, billAnomalies...)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// votes on bills that could not be fetched are already accounted
	// for by their bill anomaly
	kept := votes[:0]
	for _, v := range votes {
		if _, ok := bills[v.BillID]; ok {
			kept = append(kept, v)
		}
	}
	votes = kept

	tallies, matrix, aggAnomalies := Aggregate(members, bills, votes, b.config.CountableMotions)
	report.Anomalies = append(report.Anomalies, aggAnomalies...)
	report.FinishedAt = timezone.Now()

	span.SetAttributes(
		attribute.Int("members", len(members)),
		attribute.Int("bills", len(bills)),
		attribute.Int("votes", len(votes)),
		attribute.Int("anomalies", len(report.Anomalies)),
	)
	slog.Info("built legislature snapshot",
		"members", len(members),
		"bills", len(bills),
		"votes", len(votes),
		"anomalies", len(report.Anomalies))

	return &Snapshot{
		Members:  members,
		Bills:    bills,
		Votes:    votes,
		Tallies:  tallies,
		RollCall: matrix,
		Report:   report,
		BuiltAt:  report.FinishedAt,
	}, nil
}

func (b *Builder) fetchVotes(ctx context.Context, members []Member) ([]VoteRecord, []BuildAnomaly) {
	var (
		mu        sync.Mutex
		votes     []VoteRecord
		anomalies []BuildAnomaly
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(b.config.MaxConcurrentFetches)
	for _, member := range members {
		member := member
		group.Go(func() error {
			rows, err := b.source.MemberVotes(groupCtx, member.ID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				anomalies = append(anomalies, BuildAnomaly{
					Kind:   AnomalyVoteHistory,
					Ref:    member.ID,
					Detail: err.Error(),
				})
				return nil
			}
			for _, row := range rows {
				if row.DateErr != nil {
					anomalies = append(anomalies, BuildAnomaly{
						Kind:   AnomalyVoteRecord,
						Ref:    fmt.Sprintf("%s/%s", row.MemberID, row.RCS),
						Detail: fmt.Sprintf("unparseable vote date %q: %v", row.RawDate, row.DateErr),
					})
				}
				votes = append(votes, VoteRecord{
					MemberID:  row.MemberID,
					BillID:    row.BillID,
					RCS:       row.RCS,
					Date:      row.Date,
					Motion:    row.Motion,
					Cast:      ParseCast(row.Cast),
					Result:    ParseResult(row.Result),
					RawCast:   row.Cast,
					RawResult: row.Result,
				})
			}
			return nil
		})
	}
	group.Wait()

	sort.SliceStable(anomalies, func(i, j int) bool { return anomalies[i].Ref < anomalies[j].Ref })
	// RCS breaks ties between votes taken on the same day so the order
	// never depends on fetch interleaving
	sort.SliceStable(votes, func(i, j int) bool {
		if votes[i].MemberID != votes[j].MemberID {
			return votes[i].MemberID < votes[j].MemberID
		}
		if !votes[i].Date.Equal(votes[j].Date) {
			return votes[i].Date.Before(votes[j].Date)
		}
		if votes[i].BillID != votes[j].BillID {
			return votes[i].BillID < votes[j].BillID
		}
		return rcsSequence(votes[i].RCS) < rcsSequence(votes[j].RCS)
	})
	return votes, anomalies
}

func (b *Builder) fetchBills(ctx context.Context, votes []VoteRecord) (map[string]Bill, []BuildAnomaly) {
	ids := make(map[string]struct{})
	for _, v := range votes {
		ids[v.BillID] = struct{}{}
	}

	var (
		mu        sync.Mutex
		bills     = make(map[string]Bill, len(ids))
		anomalies []BuildAnomaly
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(b.config.MaxConcurrentFetches)
	for id := range ids {
		id := id
		group.Go(func() error {
			raw, ok := b.billCache.Get(id)
			if !ok {
				var err error
				raw, err = b.source.Bill(groupCtx, id)
				if err != nil {
					mu.Lock()
					anomalies = append(anomalies, BuildAnomaly{
						Kind:   AnomalyBillFetch,
						Ref:    id,
						Detail: err.Error(),
					})
					mu.Unlock()
					return nil
				}
				b.billCache.Add(id, raw)
			}

			bill := Bill{
				ID:             raw.ID,
				Title:          raw.Title,
				Keywords:       raw.Keywords,
				Classification: b.classifier.Classify(raw),
			}
			mu.Lock()
			bills[bill.ID] = bill
			// a missing keywords attribute degrades to the title
			// heuristic, recorded so the report distinguishes it
			// from a real not-related classification
			if len(raw.Keywords) == 0 {
				anomalies = append(anomalies, BuildAnomaly{
					Kind:   AnomalyClassification,
					Ref:    raw.ID,
					Detail: "bill page has no keywords attribute, classified by title only",
				})
			}
			mu.Unlock()
			return nil
		})
	}
	group.Wait()

	sort.Slice(anomalies, func(i, j int) bool { return anomalies[i].Ref < anomalies[j].Ref })
	return bills, anomalies
}
