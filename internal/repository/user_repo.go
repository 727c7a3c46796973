package repository

import (
	"database/sql"
	"doctorportal/internal/db"
	"errors"
	"fmt"
)

type UserRepository interface {
	Upsert(user *db.User) error
	GetByEmail(email string) (*db.User, error)
	List() ([]db.User, error)
	PromoteToAdmin(email string) (int64, error)
	Delete(email string) (int64, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Upsert creates the profile or refreshes its name. The role column is only
// ever written by PromoteToAdmin, so a re-login cannot strip admin rights.
func (r *userRepository) Upsert(user *db.User) error {
	query := `
		INSERT INTO users (email, name, role)
		VALUES ($1, $2, '')
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name`
	_, err := r.db.Exec(query, user.Email, user.Name)
	if err != nil {
		return fmt.Errorf("error upserting user %s: %w", user.Email, err)
	}
	return nil
}

func (r *userRepository) GetByEmail(email string) (*db.User, error) {
	var user db.User
	err := r.db.QueryRow("SELECT email, name, role FROM users WHERE email = $1", email).
		Scan(&user.Email, &user.Name, &user.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List() ([]db.User, error) {
	rows, err := r.db.Query("SELECT email, name, role FROM users ORDER BY email")
	if err != nil {
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	var users []db.User
	for rows.Next() {
		var u db.User
		if err := rows.Scan(&u.Email, &u.Name, &u.Role); err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating user rows: %w", err)
	}
	return users, nil
}

func (r *userRepository) PromoteToAdmin(email string) (int64, error) {
	result, err := r.db.Exec("UPDATE users SET role = 'admin' WHERE email = $1", email)
	if err != nil {
		return 0, fmt.Errorf("error promoting user %s: %w", email, err)
	}
	return result.RowsAffected()
}

func (r *userRepository) Delete(email string) (int64, error) {
	result, err := r.db.Exec("DELETE FROM users WHERE email = $1", email)
	if err != nil {
		return 0, fmt.Errorf("error deleting user %s: %w", email, err)
	}
	return result.RowsAffected()
}
