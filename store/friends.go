package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"friendbook/models"
)

// ErrNotFound reports that no row matched the requested id. It is distinct
// from store faults so handlers can map it to 404 instead of 500.
var ErrNotFound = errors.New("friend not found")

// Each operation gets its own deadline so a slow store cannot hold a
// request (and its pooled connection) forever.
const queryTimeout = 5 * time.Second

// FriendStore is the data-access boundary for friend records. Handlers
// depend on this interface so tests can substitute an in-memory store.
type FriendStore interface {
	GetByID(ctx context.Context, id int64) (*models.Friend, error)
	ListAll(ctx context.Context) ([]models.Friend, error)
	Insert(ctx context.Context, newFriend models.NewFriend) (*models.Friend, error)
}

// SQLFriendStore runs friend queries against an injected pool. It holds no
// state of its own; every call borrows a connection for one operation.
type SQLFriendStore struct {
	db *sql.DB
}

func NewSQLFriendStore(db *sql.DB) *SQLFriendStore {
	return &SQLFriendStore{db: db}
}

var _ FriendStore = (*SQLFriendStore)(nil)

func (s *SQLFriendStore) GetByID(ctx context.Context, id int64) (*models.Friend, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var f models.Friend
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, email FROM friends WHERE id = ?", id,
	).Scan(&f.ID, &f.Name, &f.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get friend %d: %w", id, err)
	}
	return &f, nil
}

func (s *SQLFriendStore) ListAll(ctx context.Context) ([]models.Friend, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, "SELECT id, name, email FROM friends")
	if err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}
	defer rows.Close()

	friends := []models.Friend{}
	for rows.Next() {
		var f models.Friend
		if err := rows.Scan(&f.ID, &f.Name, &f.Email); err != nil {
			return nil, fmt.Errorf("scan friend: %w", err)
		}
		friends = append(friends, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}
	return friends, nil
}

func (s *SQLFriendStore) Insert(ctx context.Context, newFriend models.NewFriend) (*models.Friend, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO friends (name, email) VALUES (?, ?)",
		newFriend.Name, newFriend.Email,
	)
	if err != nil {
		return nil, fmt.Errorf("insert friend: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert friend id: %w", err)
	}
	return &models.Friend{ID: id, Name: newFriend.Name, Email: newFriend.Email}, nil
}
