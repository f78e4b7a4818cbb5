package repository

import (
	"context"
	"database/sql"

	"github.com/AnthonyVeilleux/COS498MidtermAV/internal/models"

	"github.com/Masterminds/squirrel"
)

type CommentRepository struct {
	db      *sql.DB
	builder squirrel.StatementBuilderType
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *models.Comment) error {
	query, args, err := r.builder.
		Insert("comments").
		Columns("author", "text", "created_at").
		Values(c.Author, c.Text, c.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	c.ID, err = res.LastInsertId()
	return err
}

// GetAll returns comments newest first. The order is computed here on every
// read; equal timestamps fall back to insertion order.
func (r *CommentRepository) GetAll(ctx context.Context) ([]models.Comment, error) {
	query, args, err := r.builder.
		Select("id", "author", "text", "created_at").
		From("comments").
		OrderBy("created_at DESC", "id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.Author, &c.Text, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
