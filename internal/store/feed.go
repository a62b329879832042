package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jlcruzar/siklo/internal/model"
)

// FeedLimit caps the number of feed entries returned.
const FeedLimit = 100

// feedQuery merges listings and pickup requests into one timeline.
// Per-branch column semantics: an item's meta is its price, a request's
// meta is its pickup address. Requests have no image columns.
// The timestamp columns must carry an explicit created_at alias in both
// branches, otherwise the ORDER BY cannot resolve across the compound
// SELECT.
const feedQuery = `
	SELECT items.id AS id, 'item' AS type, items.title AS title, items.description AS body,
	       items.price AS meta, items.image_path AS image_path, items.thumb_path AS thumb_path,
	       items.created_at AS created_at, items.seller_id AS actor_id, u.name AS actor_name
	FROM items LEFT JOIN users u ON items.seller_id = u.id
	UNION ALL
	SELECT requests.id AS id, 'request' AS type, requests.type AS title, requests.items AS body,
	       requests.address AS meta, NULL AS image_path, NULL AS thumb_path,
	       requests.created_at AS created_at, requests.user_id AS actor_id, u2.name AS actor_name
	FROM requests LEFT JOIN users u2 ON requests.user_id = u2.id
	ORDER BY created_at DESC
	LIMIT ?`

// ListFeed returns the merged community feed, newest first, capped at
// FeedLimit entries.
func ListFeed(ctx context.Context, db *sql.DB) ([]model.FeedEntry, error) {
	rows, err := db.QueryContext(ctx, feedQuery, FeedLimit)
	if err != nil {
		return nil, fmt.Errorf("listing feed: %w", err)
	}
	defer rows.Close()

	var feed []model.FeedEntry
	for rows.Next() {
		var entry model.FeedEntry
		var createdAt any
		if err := rows.Scan(&entry.ID, &entry.Type, &entry.Title, &entry.Body, &entry.Meta,
			&entry.ImagePath, &entry.ThumbPath, &createdAt, &entry.ActorID, &entry.ActorName); err != nil {
			return nil, fmt.Errorf("scanning feed entry: %w", err)
		}
		entry.CreatedAt, err = scanTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("scanning feed timestamp: %w", err)
		}
		feed = append(feed, entry)
	}
	return feed, rows.Err()
}

// scanTime coerces a timestamp column to time.Time. Columns that pass
// through a compound SELECT lose their declared type, so the driver may
// hand back the raw TEXT value instead of a parsed time.
func scanTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		return parseSQLiteTime(t)
	case []byte:
		return parseSQLiteTime(string(t))
	default:
		return time.Time{}, fmt.Errorf("unexpected timestamp type %T", v)
	}
}

func parseSQLiteTime(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339, "2006-01-02 15:04:05.999999999-07:00"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}
