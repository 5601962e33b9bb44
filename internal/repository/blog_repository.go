package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/vitahires/internal/model"
)

// BlogRepo provides persistence for blog posts. The public surface only
// ever sees published rows.
type BlogRepo struct{ db *sql.DB }

func NewBlogRepo(db *sql.DB) *BlogRepo { return &BlogRepo{db: db} }

// Create inserts a post. A duplicate slug returns ErrSlugExists so the
// caller can retry with a disambiguated slug.
func (r *BlogRepo) Create(ctx context.Context, p *model.BlogPost) error {
	var publishedAt any
	if p.PublishedAt != nil {
		publishedAt = *p.PublishedAt
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO blog_posts (title, slug, content, excerpt, category, author_id, is_published, published_at)
		VALUES (?,?,?,?,?,?,?,?)`,
		p.Title, p.Slug, p.Content, p.Excerpt, p.Category, p.AuthorID, p.IsPublished, publishedAt)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrSlugExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// PublicPostRow is the listing shape of a published post.
type PublicPostRow struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Excerpt     string `json:"excerpt"`
	Category    string `json:"category"`
	PublishedAt string `json:"published_at"`
}

// ListPublished returns published posts, newest first.
func (r *BlogRepo) ListPublished(ctx context.Context) ([]PublicPostRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, slug, COALESCE(excerpt,''), COALESCE(category,''),
			DATE_FORMAT(published_at, '%Y-%m-%d %T')
		FROM blog_posts
		WHERE is_published = 1
		ORDER BY published_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PublicPostRow
	for rows.Next() {
		var p PublicPostRow
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Category, &p.PublishedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetPublishedBySlug fetches one published post by slug. Unpublished
// posts return ErrPostNotFound just like absent ones.
func (r *BlogRepo) GetPublishedBySlug(ctx context.Context, slug string) (model.BlogPost, error) {
	var (
		p           model.BlogPost
		publishedAt sql.NullTime
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, slug, content, COALESCE(excerpt,''), COALESCE(category,''),
			author_id, is_published, published_at, created_at, updated_at
		FROM blog_posts WHERE slug=? AND is_published=1 LIMIT 1`, slug).
		Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &p.Category,
			&p.AuthorID, &p.IsPublished, &publishedAt, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.BlogPost{}, ErrPostNotFound
	}
	if publishedAt.Valid {
		t := publishedAt.Time
		p.PublishedAt = &t
	}
	return p, err
}
