package storage

import (
	"database/sql"
	"fmt"

	"assembly-server/internal/domain"

	_ "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS discoveries (
	key         TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	emoji       TEXT NOT NULL,
	cash        REAL NOT NULL,
	type        TEXT NOT NULL,
	rarity      TEXT NOT NULL DEFAULT '',
	category    TEXT NOT NULL DEFAULT '',
	complexity  INTEGER NOT NULL DEFAULT 0,
	description TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// DiscoveryStore - локальное key-value хранилище журнала открытий.
// SQLite с WAL: читать можно параллельно с записью новых открытий.
// Хранилище best-effort: ошибки записи глотаются на уровне кеша,
// авторитетным остается in-memory состояние сессии.
type DiscoveryStore struct {
	db *sql.DB
}

// Open создает или открывает базу по указанному пути.
// Идемпотентна: прагмы и схема применяются при каждом вызове.
func Open(path string) (*DiscoveryStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite пускает только одного писателя, держим одно соединение,
	// чтобы не ловить SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &DiscoveryStore{db: db}, nil
}

// Close закрывает соединение с базой.
func (s *DiscoveryStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// LoadAll читает весь журнал открытий. Вызывается один раз на старте движка.
func (s *DiscoveryStore) LoadAll() (map[string]domain.DiscoveryRecord, error) {
	rows, err := s.db.Query(`
		SELECT key, name, emoji, cash, type, rarity, category, complexity, description
		FROM discoveries`)
	if err != nil {
		return nil, fmt.Errorf("failed to query discoveries: %w", err)
	}
	defer rows.Close()

	records := make(map[string]domain.DiscoveryRecord)
	for rows.Next() {
		var rec domain.DiscoveryRecord
		if err := rows.Scan(
			&rec.Key,
			&rec.Template.Name,
			&rec.Template.Emoji,
			&rec.Template.CashPerItem,
			&rec.Template.Type,
			&rec.Template.Rarity,
			&rec.Template.Category,
			&rec.Template.Complexity,
			&rec.Template.Description,
		); err != nil {
			return nil, fmt.Errorf("failed to scan discovery row: %w", err)
		}
		records[rec.Key] = rec
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate discoveries: %w", err)
	}

	return records, nil
}

// Put сохраняет запись. INSERT OR REPLACE: повторная запись того же ключа
// идемпотентна (гонка двух тиков за один ключ безопасна).
func (s *DiscoveryStore) Put(rec domain.DiscoveryRecord) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO discoveries
			(key, name, emoji, cash, type, rarity, category, complexity, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Key,
		rec.Template.Name,
		rec.Template.Emoji,
		rec.Template.CashPerItem,
		rec.Template.Type,
		rec.Template.Rarity,
		rec.Template.Category,
		rec.Template.Complexity,
		rec.Template.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to store discovery %q: %w", rec.Key, err)
	}
	return nil
}

// Count возвращает размер журнала (для /debug/stats).
func (s *DiscoveryStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM discoveries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count discoveries: %w", err)
	}
	return n, nil
}

// applyPragmas настраивает SQLite.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}
