package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ManzzyGacor/manzzy-id-backend/internal/pkg/database"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/domain"
	"github.com/jackc/pgx/v5"
)

type ServersRepository struct {
	queryExecuter database.QueryExecuter
}

func NewServersRepository(queryExecuter database.QueryExecuter) *ServersRepository {
	return &ServersRepository{
		queryExecuter: queryExecuter,
	}
}

func (r *ServersRepository) CreateServer(ctx context.Context, server domain.Server) (domain.Server, error) {
	createServerSQL := `INSERT INTO servers (user_id, product_name, ptero_server_id, ptero_user_id, status, renewal_date)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at`

	err := r.queryExecuter.QueryRow(ctx, createServerSQL,
		server.AccountId, server.ProductName, server.PteroServerId, server.PteroUserId, server.Status, server.RenewalDate,
	).Scan(&server.Id, &server.CreatedAt)
	if err != nil {
		return domain.Server{}, fmt.Errorf("failed to create server record: %w", translateStoreError(err))
	}

	return server, nil
}

func (r *ServersRepository) ListAccountServers(ctx context.Context, accountId int) ([]domain.Server, error) {
	listServersSQL := `SELECT id, user_id, product_name, ptero_server_id, ptero_user_id, status, renewal_date, created_at
FROM servers
WHERE user_id = $1
ORDER BY id`

	rows, err := r.queryExecuter.Query(ctx, listServersSQL, accountId)
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}
	defer rows.Close()

	var servers []domain.Server
	for rows.Next() {
		var server domain.Server
		err = rows.Scan(&server.Id, &server.AccountId, &server.ProductName, &server.PteroServerId,
			&server.PteroUserId, &server.Status, &server.RenewalDate, &server.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan server row: %w", err)
		}
		servers = append(servers, server)
	}

	return servers, rows.Err()
}

func (r *ServersRepository) GetAccountServer(ctx context.Context, accountId int, serverId int) (domain.Server, error) {
	findServerSQL := `SELECT id, user_id, product_name, ptero_server_id, ptero_user_id, status, renewal_date, created_at
FROM servers
WHERE id = $1 AND user_id = $2`

	var server domain.Server
	err := r.queryExecuter.QueryRow(ctx, findServerSQL, serverId, accountId).
		Scan(&server.Id, &server.AccountId, &server.ProductName, &server.PteroServerId,
			&server.PteroUserId, &server.Status, &server.RenewalDate, &server.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Server{}, &domain.ServerNotFoundError{Msg: fmt.Sprintf("server with id %d not found", serverId)}
		}

		return domain.Server{}, fmt.Errorf("failed to find server: %w", err)
	}

	return server, nil
}
