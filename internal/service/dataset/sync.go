package dataset

import (
	"context"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/opsgain/portops/internal/domain"
	"github.com/opsgain/portops/internal/pkg/logger"
	"github.com/opsgain/portops/internal/pkg/store"
	"github.com/opsgain/portops/internal/service/sharelink"
)

const (
	defaultPeriodDays = 30

	accessLogTimeout = 5 * time.Second
	accessLogRetries = 10
	accessLogBackoff = 10 * time.Millisecond
)

// Synchronizer resolves which dataset a session sees: a shared-link
// selection when the request carries one, the default period otherwise.
type Synchronizer struct {
	generator *Generator
	repo      *Repository // nil in mock-data mode
	codec     *sharelink.Codec
	store     store.Store // nil when no database is configured
	now       func() time.Time
}

func NewSynchronizer(generator *Generator, repo *Repository, codec *sharelink.Codec, st store.Store) *Synchronizer {
	return &Synchronizer{
		generator: generator,
		repo:      repo,
		codec:     codec,
		store:     st,
		now:       time.Now,
	}
}

// LoadPeriodData resolves the period from request query parameters and
// loads its dataset. Shared-link loads use the fixed recent-anchor so all
// viewers of one link see identical data.
func (s *Synchronizer) LoadPeriodData(ctx context.Context, values url.Values, remoteAddr string) (*domain.PeriodDataset, error) {
	if decoded, ok := s.codec.Decode(values); ok {
		s.logAccess(ctx, decoded, remoteAddr)
		return s.load(ctx, decoded.Selection, false)
	}

	end := domain.Day(s.now())
	start := end.AddDate(0, 0, -defaultPeriodDays)

	return s.load(ctx, domain.NewPeriodSelection("", start, end), true)
}

func (s *Synchronizer) load(ctx context.Context, selection domain.PeriodSelection, useWallClock bool) (*domain.PeriodDataset, error) {
	if selection.Start.After(selection.End) {
		start := selection.End.AddDate(0, 0, -defaultPeriodDays)
		selection = domain.NewPeriodSelection(selection.Label, start, selection.End)
	}

	if s.repo != nil {
		ds, err := s.repo.Load(ctx, selection.Start, selection.End)
		if err != nil {
			return nil, err
		}
		ds.Selection = selection
		return ds, nil
	}

	ds := s.generator.Generate(selection.Start, selection.End, useWallClock)
	ds.Selection = selection
	return ds, nil
}

// logAccess appends one access-log row per resolved shared link. It is a
// fire-and-forget notification: failures are logged and never affect the
// load.
func (s *Synchronizer) logAccess(ctx context.Context, decoded *sharelink.Decoded, remoteAddr string) {
	logger.Infof(ctx, "LINK_ACCESS id-%s addr-%s period-%s", decoded.LinkID, remoteAddr, decoded.Selection.Label)

	if s.store == nil {
		return
	}

	record := &domain.AccessRecord{
		Timestamp:   s.now(),
		LinkID:      decoded.LinkID,
		RemoteAddr:  remoteAddr,
		PeriodLabel: decoded.Selection.Label,
	}

	go func() {
		insertCtx, cancel := context.WithTimeout(context.Background(), accessLogTimeout)
		defer cancel()

		err := backoff.Retry(
			func() error {
				return s.store.InsertAccess(insertCtx, record)
			},
			backoff.WithContext(
				backoff.WithMaxRetries(backoff.NewConstantBackOff(accessLogBackoff), accessLogRetries),
				insertCtx,
			),
		)
		if err != nil {
			logger.Errorf(insertCtx, "access log insert, link_id-%s: %s", record.LinkID, err.Error())
		}
	}()
}
