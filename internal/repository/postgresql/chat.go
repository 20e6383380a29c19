package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/brightserv/ops-backend-go/internal/domain/chat"
	"github.com/brightserv/ops-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type chatGroupRepository struct {
	db *database.DB
}

func NewChatGroupRepository(db *database.DB) chat.GroupRepository {
	return &chatGroupRepository{db: db}
}

const chatGroupSelect = `
	SELECT g.id, g.name, g.created_by, g.created_at, g.updated_at,
		   COALESCE(ARRAY_AGG(m.user_id) FILTER (WHERE m.user_id IS NOT NULL), '{}')
	FROM chat_groups g
	LEFT JOIN chat_group_members m ON m.group_id = g.id
`

func scanChatGroup(row pgx.Row) (chat.Group, error) {
	var g chat.Group
	err := row.Scan(&g.ID, &g.Name, &g.CreatedBy, &g.CreatedAt, &g.UpdatedAt, &g.MemberIDs)
	return g, err
}

func (r *chatGroupRepository) Create(ctx context.Context, g chat.Group) (chat.Group, error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		_, err := q.Exec(txCtx, `
			INSERT INTO chat_groups (id, name, created_by) VALUES ($1, $2, $3)
		`, g.ID, g.Name, g.CreatedBy)
		if err != nil {
			return fmt.Errorf("failed to create chat group: %w", err)
		}

		for _, userID := range g.MemberIDs {
			_, err := q.Exec(txCtx, `
				INSERT INTO chat_group_members (group_id, user_id) VALUES ($1, $2)
				ON CONFLICT DO NOTHING
			`, g.ID, userID)
			if err != nil {
				return fmt.Errorf("failed to add group member: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return chat.Group{}, err
	}

	return r.GetByID(ctx, g.ID)
}

func (r *chatGroupRepository) GetByID(ctx context.Context, id string) (chat.Group, error) {
	q := GetQuerier(ctx, r.db)

	query := chatGroupSelect + ` WHERE g.id = $1 GROUP BY g.id`

	g, err := scanChatGroup(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return chat.Group{}, chat.ErrGroupNotFound
		}
		return chat.Group{}, fmt.Errorf("failed to get chat group: %w", err)
	}

	return g, nil
}

func (r *chatGroupRepository) ListForUser(ctx context.Context, userID string) ([]chat.Group, error) {
	q := GetQuerier(ctx, r.db)

	query := chatGroupSelect + `
		WHERE g.id IN (SELECT group_id FROM chat_group_members WHERE user_id = $1)
		GROUP BY g.id
		ORDER BY g.updated_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat groups: %w", err)
	}
	defer rows.Close()

	var groups []chat.Group
	for rows.Next() {
		g, err := scanChatGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chat group: %w", err)
		}
		groups = append(groups, g)
	}

	return groups, rows.Err()
}

func (r *chatGroupRepository) UpdateMembers(ctx context.Context, groupID string, memberIDs []string) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		var id string
		err := q.QueryRow(txCtx, `SELECT id FROM chat_groups WHERE id = $1 FOR UPDATE`, groupID).Scan(&id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return chat.ErrGroupNotFound
			}
			return fmt.Errorf("failed to lock chat group: %w", err)
		}

		_, err = q.Exec(txCtx, `DELETE FROM chat_group_members WHERE group_id = $1`, groupID)
		if err != nil {
			return fmt.Errorf("failed to clear group members: %w", err)
		}

		for _, userID := range memberIDs {
			_, err := q.Exec(txCtx, `
				INSERT INTO chat_group_members (group_id, user_id) VALUES ($1, $2)
				ON CONFLICT DO NOTHING
			`, groupID, userID)
			if err != nil {
				return fmt.Errorf("failed to add group member: %w", err)
			}
		}

		_, err = q.Exec(txCtx, `UPDATE chat_groups SET updated_at = NOW() WHERE id = $1`, groupID)
		return err
	})
}

func (r *chatGroupRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM chat_groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete chat group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return chat.ErrGroupNotFound
	}

	return nil
}

type chatMessageRepository struct {
	db *database.DB
}

func NewChatMessageRepository(db *database.DB) chat.MessageRepository {
	return &chatMessageRepository{db: db}
}

const chatMessageSelect = `
	SELECT m.id, m.group_id, m.sender_id, m.body, m.created_at, u.email
	FROM chat_messages m
	JOIN users u ON u.id = m.sender_id
`

func scanChatMessage(row pgx.Row) (chat.Message, error) {
	var m chat.Message
	err := row.Scan(&m.ID, &m.GroupID, &m.SenderID, &m.Body, &m.CreatedAt, &m.SenderEmail)
	return m, err
}

func (r *chatMessageRepository) Create(ctx context.Context, m chat.Message) (chat.Message, error) {
	q := GetQuerier(ctx, r.db)

	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	err := q.QueryRow(ctx, `
		INSERT INTO chat_messages (id, group_id, sender_id, body)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, m.ID, m.GroupID, m.SenderID, m.Body).Scan(&m.ID)
	if err != nil {
		return chat.Message{}, fmt.Errorf("failed to create chat message: %w", err)
	}

	created, err := scanChatMessage(q.QueryRow(ctx, chatMessageSelect+` WHERE m.id = $1`, m.ID))
	if err != nil {
		return chat.Message{}, fmt.Errorf("failed to get chat message: %w", err)
	}

	return created, nil
}

func (r *chatMessageRepository) List(ctx context.Context, filter chat.MessageFilter) ([]chat.Message, error) {
	q := GetQuerier(ctx, r.db)

	query := chatMessageSelect + ` WHERE m.group_id = $1`
	args := []interface{}{filter.GroupID}
	argIdx := 2

	if filter.Before != nil && *filter.Before != "" {
		// Cursor pagination: messages strictly older than the cursor message.
		query += fmt.Sprintf(` AND m.created_at < (SELECT created_at FROM chat_messages WHERE id = $%d)`, argIdx)
		args = append(args, *filter.Before)
		argIdx++
	}

	query += fmt.Sprintf(` ORDER BY m.created_at DESC LIMIT $%d`, argIdx)
	args = append(args, filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	defer rows.Close()

	var messages []chat.Message
	for rows.Next() {
		m, err := scanChatMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}
