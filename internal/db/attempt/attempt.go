package attempt

import (
	"context"
	"letsconnect/internal/core/domain/attempt"
	e "letsconnect/internal/core/domain/errors"

	"github.com/jackc/pgx/v4/pgxpool"
)

type PgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) *PgxRepository {
	if pool == nil {
		panic(e.NewNilArgumentError("pool"))
	}
	return &PgxRepository{pool: pool}
}

func (r *PgxRepository) Create(ctx context.Context, a attempt.Attempt) error {
	_, err := r.pool.Exec(
		ctx,
		`INSERT INTO attempt (id, action, identifier_kind, outcome, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID.String(),
		string(a.Action),
		string(a.IdentifierKind),
		string(a.Outcome),
		a.Reason,
		a.CreatedAt,
	)
	return err
}
