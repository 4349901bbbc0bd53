package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventColumns() []string {
	return []string{"id", "kind", "source", "fields", "created_at"}
}

func TestEventRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventRepo(mock)
	user := common.HexToAddress("0x000000000000000000000000000000000000Cc01")
	evt := domain.NewDeposited(user, uint256.NewInt(100), uint256.NewInt(100))

	mock.ExpectExec("INSERT INTO vault_events").
		WithArgs(evt.ID, "Deposited", "vault",
			[]byte(`{"sharesMinted":"100","usdcIn":"100","user":"`+user.Hex()+`"}`),
			evt.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), &evt)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_Create_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventRepo(mock)
	evt := domain.NewZapFailed(common.HexToAddress("0x01"), uint256.NewInt(5), "paused")

	mock.ExpectExec("INSERT INTO vault_events").
		WillReturnError(errors.New("duplicate key"))

	err = repo.Create(context.Background(), &evt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert event")
}

func TestEventRepo_ListRecent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)
	newer, older := uuid.New(), uuid.New()

	mock.ExpectQuery("SELECT id, kind, source, fields, created_at").
		WithArgs(2).
		WillReturnRows(pgxmock.NewRows(eventColumns()).
			AddRow(newer, "Paused", "vault", []byte(`{"account":"0xabc"}`), now).
			AddRow(older, "ZapCompleted", "relay", []byte(`{"recipient":"0xdef","usdcAmount":"7","sharesMinted":"7"}`), now.Add(-time.Second)))

	events, err := repo.ListRecent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, newer, events[0].ID)
	assert.Equal(t, domain.EventPaused, events[0].Kind)
	assert.Equal(t, "0xabc", events[0].Fields["account"])
	assert.Equal(t, domain.EventZapCompleted, events[1].Kind)
	assert.Equal(t, domain.SourceRelay, events[1].Source)
	assert.Equal(t, "7", events[1].Fields["sharesMinted"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepo_ListRecent_BadFields(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewEventRepo(mock)

	mock.ExpectQuery("SELECT id, kind, source, fields, created_at").
		WithArgs(10).
		WillReturnRows(pgxmock.NewRows(eventColumns()).
			AddRow(uuid.New(), "Paused", "vault", []byte(`not json`), time.Now()))

	_, err = repo.ListRecent(context.Background(), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode event")
}
