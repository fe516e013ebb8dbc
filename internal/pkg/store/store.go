package store

import (
	"context"

	"github.com/opsgain/portops/internal/domain"
	"github.com/opsgain/portops/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	InsertAccess(ctx context.Context, record *domain.AccessRecord) error
	ListAccesses(ctx context.Context, limit uint64) ([]*domain.AccessRecord, error)
}

type store struct {
	pool *Pool
}

func NewStore(pool *Pool) Store {
	return &store{pool}
}
