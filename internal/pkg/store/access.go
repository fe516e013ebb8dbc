package store

import (
	"context"
	"fmt"

	"github.com/opsgain/portops/internal/domain"
	"github.com/opsgain/portops/internal/pkg/store/xpgx"
)

var accessColumns = []string{"id", "ts", "link_id", "remote_addr", "period_label"}

func (s *store) InsertAccess(ctx context.Context, record *domain.AccessRecord) error {
	query := builder().Insert(tableAccessLog).
		Columns(accessColumns[1:]...).
		Values(record.Timestamp, record.LinkID, record.RemoteAddr, record.PeriodLabel)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return fmt.Errorf("insert access: %w", wrapErr(err))
	}

	return nil
}

func (s *store) ListAccesses(ctx context.Context, limit uint64) ([]*domain.AccessRecord, error) {
	query := builder().Select(accessColumns...).
		From(tableAccessLog).
		OrderBy("ts desc").
		Limit(limit)

	selected, err := xpgx.Selectx[domain.AccessRecord](ctx, s.pool, query)
	if err != nil {
		return nil, fmt.Errorf("list accesses: %w", wrapErr(err))
	}

	return selected, nil
}
