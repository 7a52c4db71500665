package legislature

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"firewatch-backend/services/legislature/db"
)

var (
	ErrUnknownMember = errors.New("unknown member")
	ErrUnknownBill   = errors.New("unknown bill")
)

// Service is the read side of the dashboard. Every query serves from
// the snapshot cache, so at most one scrape pass is in flight no
// matter how many callers arrive.
type Service struct {
	cache *SnapshotCache
	db    *sql.DB
	qry   *db.Queries

	mu       sync.Mutex
	recorded *Snapshot
}

func NewService(source PageSource, config Config, database *sql.DB) (*Service, error) {
	config = config.WithDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Service{
		cache: NewSnapshotCache(NewBuilder(source, config), config.CacheTTL()),
		db:    database,
		qry:   db.New(database),
	}, nil
}

// GetSnapshot returns the current snapshot, scraping first when the
// cache has expired or force is set. A StaleSnapshotError still
// carries a usable snapshot.
func (s *Service) GetSnapshot(ctx context.Context, force bool) (*Snapshot, error) {
	ctx, span := tracer.Start(ctx, "GetSnapshot")
	defer span.End()
	span.SetAttributes(attribute.Bool("force", force))

	snapshot, err := s.cache.Get(ctx, force)
	if err != nil && snapshot == nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "snapshot unavailable")
		return nil, err
	}
	if err != nil {
		span.RecordError(err)
	}

	s.recordBuild(ctx, snapshot)
	return snapshot, err
}

// recordBuild persists a build row the first time each snapshot is
// seen. History writes never fail a read.
func (s *Service) recordBuild(ctx context.Context, snapshot *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snapshot == nil || snapshot == s.recorded {
		return
	}

	related := 0
	for _, bill := range snapshot.Bills {
		if bill.Classification.Related {
			related++
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		slog.Warn("failed to record build", "error", err)
		return
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	buildID, err := txqry.CreateBuild(ctx, db.CreateBuildParams{
		StartedAt:    snapshot.Report.StartedAt.Unix(),
		FinishedAt:   snapshot.Report.FinishedAt.Unix(),
		Members:      int64(len(snapshot.Members)),
		Bills:        int64(len(snapshot.Bills)),
		RelatedBills: int64(related),
		Votes:        int64(len(snapshot.Votes)),
		Anomalies:    int64(len(snapshot.Report.Anomalies)),
	})
	if err != nil {
		slog.Warn("failed to record build", "error", err)
		return
	}
	for _, anomaly := range snapshot.Report.Anomalies {
		err := txqry.CreateBuildAnomaly(ctx, db.CreateBuildAnomalyParams{
			BuildID: buildID,
			Kind:    string(anomaly.Kind),
			Ref:     anomaly.Ref,
			Detail:  anomaly.Detail,
		})
		if err != nil {
			slog.Warn("failed to record build anomaly", "error", err)
			return
		}
	}
	if err := tx.Commit(); err != nil {
		slog.Warn("failed to record build", "error", err)
		return
	}
	s.recorded = snapshot
}

// GetMemberTally returns one member and their tally.
func (s *Service) GetMemberTally(ctx context.Context, memberID string) (Member, Tally, error) {
	ctx, span := tracer.Start(ctx, "GetMemberTally")
	defer span.End()
	span.SetAttributes(attribute.String("member_id", memberID))

	snapshot, err := s.GetSnapshot(ctx, false)
	if snapshot == nil {
		return Member{}, Tally{}, err
	}
	for _, m := range snapshot.Members {
		if m.ID == memberID {
			return m, snapshot.Tallies[memberID], nil
		}
	}
	return Member{}, Tally{}, fmt.Errorf("%w: %s", ErrUnknownMember, memberID)
}

// GetRollCall returns the roll-call matrix over all firefighter
// related bills with at least one counted vote.
func (s *Service) GetRollCall(ctx context.Context) (RollCallMatrix, error) {
	ctx, span := tracer.Start(ctx, "GetRollCall")
	defer span.End()

	snapshot, err := s.GetSnapshot(ctx, false)
	if snapshot == nil {
		return RollCallMatrix{}, err
	}
	return snapshot.RollCall, nil
}

// GetBillClassification returns one bill with its classification.
func (s *Service) GetBillClassification(ctx context.Context, billID string) (Bill, error) {
	ctx, span := tracer.Start(ctx, "GetBillClassification")
	defer span.End()
	span.SetAttributes(attribute.String("bill_id", billID))

	snapshot, err := s.GetSnapshot(ctx, false)
	if snapshot == nil {
		return Bill{}, err
	}
	bill, ok := snapshot.Bills[billID]
	if !ok {
		return Bill{}, fmt.Errorf("%w: %s", ErrUnknownBill, billID)
	}
	return bill, nil
}

// BuildHistory returns the most recent recorded builds, newest first.
func (s *Service) BuildHistory(ctx context.Context, limit int64) ([]db.Build, error) {
	ctx, span := tracer.Start(ctx, "BuildHistory")
	defer span.End()

	builds, err := s.qry.GetRecentBuilds(ctx, limit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return builds, nil
}

// BuildAnomalies returns the anomalies recorded for one build.
func (s *Service) BuildAnomalies(ctx context.Context, buildID int64) ([]db.BuildAnomaly, error) {
	ctx, span := tracer.Start(ctx, "BuildAnomalies")
	defer span.End()
	span.SetAttributes(attribute.Int64("build_id", buildID))

	anomalies, err := s.qry.GetBuildAnomalies(ctx, buildID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return anomalies, nil
}

// CacheState reports the snapshot cache state without triggering a
// build.
func (s *Service) CacheState() CacheState {
	return s.cache.State()
}

// Invalidate expires the cached snapshot.
func (s *Service) Invalidate() {
	s.cache.Invalidate()
}
