package postgres

import (
	"context"
	"database/sql/driver"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventlisting/internal/domain"
)

var coordinatorRowColumns = []string{"id", "name", "email", "user_id", "id", "email", "name", "last_name"}

func TestCoordinatorRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	userID := "user-1"
	mock.ExpectQuery(`INSERT INTO event_coordinators \(name, email, user_id\)`).
		WithArgs("", "", "user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("coord-1"))

	c := &domain.EventCoordinator{UserID: &userID}
	require.NoError(t, NewCoordinatorRepository(db).Create(context.Background(), c))
	assert.Equal(t, "coord-1", c.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCoordinatorRepository_Create_UserAlreadyLinked(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	userID := "user-1"
	mock.ExpectQuery(`INSERT INTO event_coordinators`).
		WithArgs("", "", "user-1").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "event_coordinators_user_id_key"})

	err = NewCoordinatorRepository(db).Create(context.Background(), &domain.EventCoordinator{UserID: &userID})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "user-1")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCoordinatorRepository_GetByID(t *testing.T) {
	tests := []struct {
		name      string
		row       []any
		wantEmail string
		wantName  string
	}{
		{
			name:      "own email",
			row:       []any{"coord-1", "Max", "max@example.com", nil, nil, nil, nil, nil},
			wantEmail: "max@example.com",
			wantName:  "Max",
		},
		{
			name:      "linked user",
			row:       []any{"coord-2", "", "", "user-1", "user-1", "jane@example.com", "Jane", "Doe"},
			wantEmail: "jane@example.com",
			wantName:  "Jane Doe",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectQuery(`LEFT JOIN users u ON u.id = c.user_id\s+WHERE c.id = \$1`).
				WithArgs(tt.row[0]).
				WillReturnRows(sqlmock.NewRows(coordinatorRowColumns).AddRow(toDriverValues(tt.row)...))

			c, err := NewCoordinatorRepository(db).GetByID(context.Background(), tt.row[0].(string))
			require.NoError(t, err)
			assert.Equal(t, tt.wantEmail, c.EmailAddress())
			assert.Equal(t, tt.wantName, c.FullName())
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCoordinatorRepository_ListByEventID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`JOIN event_coordinator_links l ON l.coordinator_id = c.id\s+WHERE l.event_id = \$1\s+ORDER BY l.position`).
		WithArgs("ev-1").
		WillReturnRows(sqlmock.NewRows(coordinatorRowColumns).
			AddRow("coord-2", "B", "b@example.com", nil, nil, nil, nil, nil).
			AddRow("coord-1", "A", "a@example.com", nil, nil, nil, nil, nil))

	got, err := NewCoordinatorRepository(db).ListByEventID(context.Background(), "ev-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "coord-2", got[0].ID)
	assert.Nil(t, got[0].User)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCoordinatorRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM event_coordinators WHERE id = \$1`).
		WithArgs("coord-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewCoordinatorRepository(db).Delete(context.Background(), "coord-1")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func toDriverValues(row []any) []driver.Value {
	out := make([]driver.Value, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out
}
