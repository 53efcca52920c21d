package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"readlater/internal/domain"
)

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// Insert adds article only if no record with the same URL exists yet. There
// is no unique constraint on url; records replicate in from other devices,
// so uniqueness is best-effort and enforced here. A false return means a
// concurrent record won and the caller should re-read by URL.
func (s *ArticleStore) Insert(ctx context.Context, article *domain.Article) (bool, error) {
	exec := GetExecutor(ctx, s.db)

	query := `
		INSERT INTO articles (
			id, url, title, content, thumbnail_url, published_at,
			saved_at, read_position, favorite, archived
		)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		WHERE NOT EXISTS (SELECT 1 FROM articles WHERE url = $2)
		RETURNING id`

	var id string
	err := exec.QueryRowxContext(ctx, query,
		article.ID,
		article.URL,
		article.Title,
		article.Content,
		article.ThumbnailURL,
		article.PublishedAt,
		article.SavedAt,
		article.ReadPosition,
		article.Favorite,
		article.Archived,
	).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("insert article: %w", err)
	}

	return true, nil
}

// GetByURL returns the record for url, the oldest one when duplicates exist.
func (s *ArticleStore) GetByURL(ctx context.Context, url string) (*domain.Article, error) {
	exec := GetExecutor(ctx, s.db)

	var article domain.Article
	query := `
		SELECT * FROM articles
		WHERE url = $1
		ORDER BY saved_at ASC, created_at ASC
		LIMIT 1`

	err := sqlx.GetContext(ctx, exec, &article, query, url)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: article with url %s", domain.ErrNotFound, url)
	}
	if err != nil {
		return nil, fmt.Errorf("get article by url: %w", err)
	}

	return &article, nil
}

func (s *ArticleStore) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	exec := GetExecutor(ctx, s.db)

	var article domain.Article
	err := sqlx.GetContext(ctx, exec, &article, `SELECT * FROM articles WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: article %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get article by id: %w", err)
	}

	return &article, nil
}

// List returns saved articles newest first. A non-positive limit returns
// everything.
func (s *ArticleStore) List(ctx context.Context, limit int) ([]domain.Article, error) {
	exec := GetExecutor(ctx, s.db)

	query := `SELECT * FROM articles ORDER BY saved_at DESC, created_at DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	var articles []domain.Article
	if err := sqlx.SelectContext(ctx, exec, &articles, query, args...); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	return articles, nil
}

// Update writes every mutable field of article back. The record must exist.
func (s *ArticleStore) Update(ctx context.Context, article *domain.Article) error {
	exec := GetExecutor(ctx, s.db)

	query := `
		UPDATE articles SET
			title = $2,
			content = $3,
			thumbnail_url = $4,
			published_at = $5,
			read_position = $6,
			favorite = $7,
			archived = $8,
			updated_at = now()
		WHERE id = $1`

	res, err := exec.ExecContext(ctx, query,
		article.ID,
		article.Title,
		article.Content,
		article.ThumbnailURL,
		article.PublishedAt,
		article.ReadPosition,
		article.Favorite,
		article.Archived,
	)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: article %s", domain.ErrNotFound, article.ID)
	}

	return nil
}

// Delete removes the record. Deleting a record that is already gone is not
// an error; the false return tells the caller nothing happened.
func (s *ArticleStore) Delete(ctx context.Context, id string) (bool, error) {
	exec := GetExecutor(ctx, s.db)

	res, err := exec.ExecContext(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete article: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete article: %w", err)
	}

	return affected > 0, nil
}

// DuplicateURLs lists URLs that currently have more than one record, the
// input to a duplicate sweep.
func (s *ArticleStore) DuplicateURLs(ctx context.Context) ([]string, error) {
	exec := GetExecutor(ctx, s.db)

	var urls []string
	query := `
		SELECT url FROM articles
		GROUP BY url
		HAVING COUNT(*) > 1
		ORDER BY url`

	if err := sqlx.SelectContext(ctx, exec, &urls, query); err != nil {
		return nil, fmt.Errorf("find duplicate urls: %w", err)
	}

	return urls, nil
}

// GetAllByURL returns every record for url, oldest first.
func (s *ArticleStore) GetAllByURL(ctx context.Context, url string) ([]domain.Article, error) {
	exec := GetExecutor(ctx, s.db)

	var articles []domain.Article
	query := `
		SELECT * FROM articles
		WHERE url = $1
		ORDER BY saved_at ASC, created_at ASC`

	if err := sqlx.SelectContext(ctx, exec, &articles, query, url); err != nil {
		return nil, fmt.Errorf("get articles by url: %w", err)
	}

	return articles, nil
}
