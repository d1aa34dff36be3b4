package postgres

import (
	"testing"
	"time"

	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInformationRepository_PostInformation(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	type testCase struct {
		name string
		info domain.Information

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedInfo domain.Information
		expectedErr  error
	}

	testCases := []testCase{
		{
			name: "successful post",
			info: domain.Information{
				Title:    "Maintenance window",
				Content:  "The panel is down on Sunday night.",
				AuthorId: 1,
			},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id", "created_at"}).
					AddRow(5, createdAt)
				mock.ExpectQuery("INSERT").
					WithArgs("Maintenance window", "The panel is down on Sunday night.", 1).
					WillReturnRows(rows)
			},
			expectedInfo: domain.Information{
				Id:        5,
				Title:     "Maintenance window",
				Content:   "The panel is down on Sunday night.",
				AuthorId:  1,
				CreatedAt: createdAt,
			},
			expectedErr: nil,
		},
		{
			name: "database error",
			info: domain.Information{
				Title:    "Maintenance window",
				Content:  "The panel is down on Sunday night.",
				AuthorId: 1,
			},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("INSERT").
					WithArgs("Maintenance window", "The panel is down on Sunday night.", 1).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range testCases {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repo := NewInformationRepository(mock)
			info, err := repo.PostInformation(t.Context(), tt.info)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedInfo, info)
			}
		})
	}
}

func TestInformationRepository_ListInformation(t *testing.T) {
	t.Parallel()

	newer := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)
	older := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("returns announcements newest first", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewConn()
		require.NoError(t, err)
		defer mock.Close(t.Context())

		rows := pgxmock.NewRows([]string{"id", "title", "content", "author_id", "created_at"}).
			AddRow(6, "New stock", "Silver plans are back.", 1, newer).
			AddRow(5, "Maintenance window", "The panel is down on Sunday night.", 1, older)
		mock.ExpectQuery("SELECT").
			WillReturnRows(rows)

		repo := NewInformationRepository(mock)
		infos, err := repo.ListInformation(t.Context())

		assert.NoError(t, err)
		require.Len(t, infos, 2)
		assert.Equal(t, "New stock", infos[0].Title)
		assert.Equal(t, "Maintenance window", infos[1].Title)
	})

	t.Run("empty board", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewConn()
		require.NoError(t, err)
		defer mock.Close(t.Context())

		mock.ExpectQuery("SELECT").
			WillReturnRows(pgxmock.NewRows([]string{"id", "title", "content", "author_id", "created_at"}))

		repo := NewInformationRepository(mock)
		infos, err := repo.ListInformation(t.Context())

		assert.NoError(t, err)
		assert.Empty(t, infos)
	})
}
