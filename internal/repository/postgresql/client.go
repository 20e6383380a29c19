package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/brightserv/ops-backend-go/internal/domain/client"
	"github.com/brightserv/ops-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type clientRepository struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) client.ClientRepository {
	return &clientRepository{db: db}
}

const clientColumns = `id, name, contact_name, contact_email, contact_phone, billing_notes, is_active, created_at, updated_at`

func scanClient(row pgx.Row) (client.Client, error) {
	var c client.Client
	err := row.Scan(
		&c.ID, &c.Name, &c.ContactName, &c.ContactEmail, &c.ContactPhone,
		&c.BillingNotes, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *clientRepository) Create(ctx context.Context, c client.Client) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	query := `
		INSERT INTO clients (id, name, contact_name, contact_email, contact_phone, billing_notes, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + clientColumns

	created, err := scanClient(q.QueryRow(ctx, query,
		c.ID, c.Name, c.ContactName, c.ContactEmail, c.ContactPhone, c.BillingNotes, c.IsActive,
	))
	if err != nil {
		return client.Client{}, fmt.Errorf("failed to create client: %w", err)
	}

	return created, nil
}

func (r *clientRepository) GetByID(ctx context.Context, id string) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	c, err := scanClient(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.Client{}, client.ErrClientNotFound
		}
		return client.Client{}, fmt.Errorf("failed to get client: %w", err)
	}

	return c, nil
}

func (r *clientRepository) List(ctx context.Context, activeOnly bool) ([]client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + clientColumns + ` FROM clients`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []client.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}

	return clients, rows.Err()
}

func (r *clientRepository) Update(ctx context.Context, c client.Client) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE clients
		SET name = $2, contact_name = $3, contact_email = $4, contact_phone = $5,
			billing_notes = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		c.ID, c.Name, c.ContactName, c.ContactEmail, c.ContactPhone, c.BillingNotes, c.IsActive,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.ErrClientNotFound
		}
		return fmt.Errorf("failed to update client: %w", err)
	}

	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return client.ErrClientNotFound
	}

	return nil
}
