package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgCheckViolation = "23514"

// PendingCreditRepo implements ports.PendingCreditStore on a NUMERIC(78,0) column.
// Amounts cross the driver boundary as decimal text.
type PendingCreditRepo struct {
	pool Pool
}

// NewPendingCreditRepo creates a new PendingCreditRepo.
func NewPendingCreditRepo(pool Pool) *PendingCreditRepo {
	return &PendingCreditRepo{pool: pool}
}

func recipientKey(addr common.Address) string {
	return strings.ToLower(addr.Hex())
}

// Get returns the pending credit of a recipient, zero when none.
func (r *PendingCreditRepo) Get(ctx context.Context, recipient common.Address) (*uint256.Int, error) {
	var amount string
	err := r.pool.QueryRow(ctx,
		`SELECT amount::text FROM pending_credits WHERE recipient = $1`, recipientKey(recipient),
	).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Zero(), nil
		}
		return nil, fmt.Errorf("get pending credit: %w", err)
	}
	return parseStoredAmount(amount)
}

// Add upserts the credit and returns the new total in a single statement.
func (r *PendingCreditRepo) Add(ctx context.Context, recipient common.Address, amount *uint256.Int) (*uint256.Int, error) {
	query := `INSERT INTO pending_credits (recipient, amount, updated_at)
		VALUES ($1, $2::numeric, $3)
		ON CONFLICT (recipient) DO UPDATE
		SET amount = pending_credits.amount + EXCLUDED.amount, updated_at = EXCLUDED.updated_at
		RETURNING amount::text`

	var total string
	err := r.pool.QueryRow(ctx, query, recipientKey(recipient), amount.Dec(), time.Now().UTC()).Scan(&total)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation {
			return nil, domain.ErrMathOverflow
		}
		return nil, fmt.Errorf("add pending credit: %w", err)
	}
	return parseStoredAmount(total)
}

// Take deletes the credit and returns what it held, zero when none.
func (r *PendingCreditRepo) Take(ctx context.Context, recipient common.Address) (*uint256.Int, error) {
	var amount string
	err := r.pool.QueryRow(ctx,
		`DELETE FROM pending_credits WHERE recipient = $1 RETURNING amount::text`, recipientKey(recipient),
	).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Zero(), nil
		}
		return nil, fmt.Errorf("take pending credit: %w", err)
	}
	return parseStoredAmount(amount)
}

// Total sums every pending credit.
func (r *PendingCreditRepo) Total(ctx context.Context) (*uint256.Int, error) {
	var total string
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0)::text FROM pending_credits`,
	).Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("total pending credits: %w", err)
	}
	amount, err := domain.ParseAmount(total)
	if errors.Is(err, domain.ErrAmountTooLarge) {
		return new(uint256.Int).SetAllOne(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("total pending credits: %w", err)
	}
	return amount, nil
}

// List returns every pending credit ordered by recipient.
func (r *PendingCreditRepo) List(ctx context.Context) ([]domain.PendingCredit, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT recipient, amount::text, updated_at FROM pending_credits ORDER BY recipient`,
	)
	if err != nil {
		return nil, fmt.Errorf("list pending credits: %w", err)
	}
	defer rows.Close()

	var credits []domain.PendingCredit
	for rows.Next() {
		var (
			recipient string
			amount    string
			c         domain.PendingCredit
		)
		if err := rows.Scan(&recipient, &amount, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pending credit: %w", err)
		}
		c.Recipient = common.HexToAddress(recipient)
		if c.Amount, err = parseStoredAmount(amount); err != nil {
			return nil, err
		}
		credits = append(credits, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending credits: %w", err)
	}
	return credits, nil
}

func parseStoredAmount(s string) (*uint256.Int, error) {
	amount, err := domain.ParseAmount(s)
	if err != nil {
		return nil, fmt.Errorf("decode stored amount %q: %w", s, err)
	}
	return amount, nil
}
