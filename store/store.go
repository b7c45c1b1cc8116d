package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/threadlens/threadlens/model"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS posts (
	id           TEXT PRIMARY KEY,
	title        TEXT NOT NULL,
	selftext     TEXT NOT NULL DEFAULT '',
	url          TEXT NOT NULL DEFAULT '',
	permalink    TEXT NOT NULL DEFAULT '',
	author       TEXT NOT NULL DEFAULT '',
	subreddit    TEXT NOT NULL DEFAULT '',
	score        INTEGER NOT NULL DEFAULT 0,
	num_comments INTEGER NOT NULL DEFAULT 0,
	created_utc  INTEGER NOT NULL DEFAULT 0,
	fetched_at   INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_posts_subreddit ON posts(subreddit);
CREATE INDEX IF NOT EXISTS idx_posts_created ON posts(created_utc);
`

// PostStore is a SQLite-backed archive of collected posts.
type PostStore struct {
	db *sql.DB
}

// Open opens (or creates) the post database at dbPath and ensures the
// schema exists. The parent directory is created if needed.
func Open(dbPath string) (*PostStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &PostStore{db: db}, nil
}

// Close closes the underlying database.
func (s *PostStore) Close() error {
	return s.db.Close()
}

// SavePosts upserts the batch in a single transaction and returns the
// number of rows written. Posts without an ID are skipped rather than
// failing the batch.
func (s *PostStore) SavePosts(posts []model.Post) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO posts
		(id, title, selftext, url, permalink, author, subreddit, score, num_comments, created_utc, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title        = excluded.title,
			selftext     = excluded.selftext,
			url          = excluded.url,
			permalink    = excluded.permalink,
			author       = excluded.author,
			subreddit    = excluded.subreddit,
			score        = excluded.score,
			num_comments = excluded.num_comments,
			created_utc  = excluded.created_utc,
			fetched_at   = excluded.fetched_at
	`)
	if err != nil {
		return 0, fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	fetchedAt := time.Now().Unix()
	saved := 0
	for _, post := range posts {
		if post.ID == "" {
			continue
		}
		if _, err := stmt.Exec(post.ID, post.Title, post.Selftext, post.URL,
			post.Permalink, post.Author, post.Subreddit, post.Score,
			post.NumComments, post.CreatedUTC.Unix(), fetchedAt); err != nil {
			return 0, fmt.Errorf("upsert post %s: %w", post.ID, err)
		}
		saved++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return saved, nil
}

// LoadPosts returns every stored post, newest first.
func (s *PostStore) LoadPosts() ([]model.Post, error) {
	rows, err := s.db.Query(`
		SELECT id, title, selftext, url, permalink, author, subreddit, score, num_comments, created_utc
		FROM posts
		ORDER BY created_utc DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		var post model.Post
		var createdUnix int64
		if err := rows.Scan(&post.ID, &post.Title, &post.Selftext, &post.URL,
			&post.Permalink, &post.Author, &post.Subreddit, &post.Score,
			&post.NumComments, &createdUnix); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		post.CreatedUTC = time.Unix(createdUnix, 0).UTC()
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

// CountPosts returns the number of stored posts.
func (s *PostStore) CountPosts() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM posts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}
