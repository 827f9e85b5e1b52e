package internal

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// OpenIndex opens (creating if needed) a SQLite index of rendered messages.
func OpenIndex(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("index ping failed: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS messages (
		conversation TEXT NOT NULL,
		name         TEXT NOT NULL,
		date         TEXT NOT NULL,
		position     INTEGER NOT NULL,
		body         TEXT NOT NULL,
		PRIMARY KEY (conversation, date, position)
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create index schema: %w", err)
	}

	return db, nil
}

// IndexDocument writes one rendered conversation into the index, replacing
// any rows from a previous run.
func IndexDocument(db *sql.DB, doc *Document) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM messages WHERE conversation = ?", doc.ID); err != nil {
		return fmt.Errorf("failed to clear conversation %s: %w", doc.ID, err)
	}

	insert := "INSERT INTO messages (conversation, name, date, position, body) VALUES (?, ?, ?, ?, ?)"
	for _, day := range doc.Days {
		for i, body := range day.Messages {
			if _, err := tx.Exec(insert, doc.ID, doc.Name, day.Date, i, body); err != nil {
				return fmt.Errorf("failed to insert message: %w", err)
			}
		}
	}

	return tx.Commit()
}

// SearchResult is one indexed message matched by a search.
type SearchResult struct {
	Conversation string
	Name         string
	Date         string
	Position     int
	Body         string
}

// SearchIndex returns indexed messages whose body contains the query,
// ordered by conversation, date and position.
func SearchIndex(db *sql.DB, query string) ([]SearchResult, error) {
	rows, err := db.Query(
		`SELECT conversation, name, date, position, body
		 FROM messages
		 WHERE body LIKE '%' || ? || '%'
		 ORDER BY conversation, date, position`, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.Conversation, &r.Name, &r.Date, &r.Position, &r.Body); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return results, nil
}
