package bmp2chr

import (
	"database/sql"

	"github.com/bodgit/bmp2chr/bitmap"
	"github.com/bodgit/bmp2chr/chr"
	_ "github.com/mattn/go-sqlite3"
)

// Library caches converted tile data keyed by the SHA-1 of the source file and
// the options used to convert it.
type Library struct {
	db *sql.DB
}

// NewLibrary opens or creates the SQLite database in file.
func NewLibrary(file string) (*Library, error) {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS tileset (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, width INTEGER NOT NULL, height INTEGER NOT NULL, tiles INTEGER NOT NULL, chr BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &Library{
		db: db,
	}, nil
}

func (l *Library) Close() error {
	return l.db.Close()
}

// Lookup returns the tile data stored for sha, or nil if there is none.
func (l *Library) Lookup(sha string) ([]byte, error) {
	var b []byte
	switch err := l.db.QueryRow("SELECT chr FROM tileset WHERE sha1 = ?", sha).Scan(&b); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return b, nil
	default:
		return nil, err
	}
}

// Store records the tile data converted from the image described by h.
func (l *Library) Store(sha string, h *bitmap.Header, b []byte) error {
	if _, err := l.db.Exec("INSERT OR REPLACE INTO tileset (sha1, width, height, tiles, chr) VALUES (?, ?, ?, ?, ?)", sha, h.Width, h.Rows(), len(b)/chr.BlockSize, b); err != nil {
		return err
	}
	return nil
}

// Len returns the number of tile sets in the library.
func (l *Library) Len() (int, error) {
	var n int
	if err := l.db.QueryRow("SELECT COUNT(*) FROM tileset").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
