package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/vitahires/internal/model"
)

// MessageRepo provides persistence for internal messages.
type MessageRepo struct{ db *sql.DB }

func NewMessageRepo(db *sql.DB) *MessageRepo { return &MessageRepo{db: db} }

// Create inserts a message and populates the generated ID and sent_at.
func (r *MessageRepo) Create(ctx context.Context, m *model.Message) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO messages (sender_id, recipient_id, subject, content) VALUES (?,?,?,?)",
		m.SenderID, m.RecipientID, m.Subject, m.Content)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return r.db.QueryRowContext(ctx,
		"SELECT sent_at FROM messages WHERE id=?", m.ID).Scan(&m.SentAt)
}

// InboxRow is a received message joined with the sender's email.
type InboxRow struct {
	ID          uint64 `json:"id"`
	SenderID    uint64 `json:"sender_id"`
	SenderEmail string `json:"sender_email"`
	Subject     string `json:"subject"`
	Content     string `json:"content"`
	IsRead      bool   `json:"is_read"`
	SentAt      string `json:"sent_at"`
}

// ListInbox returns messages received by the user, newest first,
// capped at limit when limit > 0.
func (r *MessageRepo) ListInbox(ctx context.Context, recipientID uint64, limit int) ([]InboxRow, error) {
	q := `SELECT m.id, m.sender_id, u.email, COALESCE(m.subject,''), m.content, m.is_read,
			DATE_FORMAT(m.sent_at, '%Y-%m-%d %T')
		FROM messages m
		JOIN users u ON u.id = m.sender_id
		WHERE m.recipient_id = ?
		ORDER BY m.sent_at DESC`
	args := []any{recipientID}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []InboxRow
	for rows.Next() {
		var m InboxRow
		if err := rows.Scan(&m.ID, &m.SenderID, &m.SenderEmail, &m.Subject, &m.Content, &m.IsRead, &m.SentAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// MarkRead flags a received message as read. Only the recipient may
// flip the flag; anyone else gets ErrMessageNotFound.
func (r *MessageRepo) MarkRead(ctx context.Context, messageID, recipientID uint64) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE messages SET is_read=1 WHERE id=? AND recipient_id=?", messageID, recipientID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := r.db.QueryRowContext(ctx,
			"SELECT 1 FROM messages WHERE id=? AND recipient_id=? LIMIT 1",
			messageID, recipientID).Scan(&one); err == sql.ErrNoRows {
			return ErrMessageNotFound
		} else if err != nil {
			return err
		}
	}
	return nil
}
