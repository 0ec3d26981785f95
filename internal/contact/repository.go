package contact

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Create(ctx context.Context, inquiry Inquiry) (Inquiry, error)
	List(ctx context.Context) ([]Inquiry, error)
	SetRead(ctx context.Context, id string, isRead bool) (Inquiry, error)
	Delete(ctx context.Context, id string) (bool, error)
}

const columns = `id, name, email, company, role_title, message, is_read, created_at`

type PostgresRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, inquiry Inquiry) (Inquiry, error) {
	var out Inquiry
	err := r.db.GetContext(ctx, &out, `
		INSERT INTO contact_inquiries (id, name, email, company, role_title, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+columns,
		inquiry.ID, inquiry.Name, inquiry.Email, inquiry.Company, inquiry.RoleTitle, inquiry.Message)
	return out, err
}

func (r *PostgresRepository) List(ctx context.Context) ([]Inquiry, error) {
	items := make([]Inquiry, 0)
	err := r.db.SelectContext(ctx, &items, `
		SELECT `+columns+` FROM contact_inquiries
		ORDER BY created_at DESC`)
	return items, err
}

func (r *PostgresRepository) SetRead(ctx context.Context, id string, isRead bool) (Inquiry, error) {
	var out Inquiry
	err := r.db.GetContext(ctx, &out, `
		UPDATE contact_inquiries SET is_read = $1
		WHERE id = $2
		RETURNING `+columns, isRead, id)
	return out, err
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contact_inquiries WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
