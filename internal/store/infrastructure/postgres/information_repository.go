package postgres

import (
	"context"
	"fmt"

	"github.com/ManzzyGacor/manzzy-id-backend/internal/pkg/database"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/domain"
)

type InformationRepository struct {
	queryExecuter database.QueryExecuter
}

func NewInformationRepository(queryExecuter database.QueryExecuter) *InformationRepository {
	return &InformationRepository{
		queryExecuter: queryExecuter,
	}
}

func (r *InformationRepository) PostInformation(ctx context.Context, info domain.Information) (domain.Information, error) {
	postInformationSQL := `INSERT INTO information (title, content, author_id)
VALUES ($1, $2, $3)
RETURNING id, created_at`

	err := r.queryExecuter.QueryRow(ctx, postInformationSQL, info.Title, info.Content, info.AuthorId).
		Scan(&info.Id, &info.CreatedAt)
	if err != nil {
		return domain.Information{}, fmt.Errorf("failed to post information: %w", translateStoreError(err))
	}

	return info, nil
}

func (r *InformationRepository) ListInformation(ctx context.Context) ([]domain.Information, error) {
	listInformationSQL := `SELECT id, title, content, author_id, created_at FROM information ORDER BY created_at DESC`

	rows, err := r.queryExecuter.Query(ctx, listInformationSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list information: %w", err)
	}
	defer rows.Close()

	var infos []domain.Information
	for rows.Next() {
		var info domain.Information
		err = rows.Scan(&info.Id, &info.Title, &info.Content, &info.AuthorId, &info.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan information row: %w", err)
		}
		infos = append(infos, info)
	}

	return infos, rows.Err()
}
