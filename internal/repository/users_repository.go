package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/workout/internal/error_values"
	"github.com/limbo/workout/pkg/entity"
)

const userColumns = `user_id, email, first_name, last_name, password_hash, created_at`

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(conn PgConnection) *UsersRepository {
	if err := conn.Ping(context.Background()); err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{conn: conn}
}

// Create stores the account and fills in its generated id and creation time.
func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("creating user error: nil user")
	}
	err := pick(ctx, ur.conn).QueryRow(ctx, `INSERT INTO users (email, first_name, last_name, password_hash) VALUES ($1, $2, $3, $4) RETURNING user_id, created_at;`,
		user.Email, user.FirstName, user.LastName, user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt)
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	// Unique violation on email
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return errorvalues.ErrUserExists
	}
	return dbError(ctx, "creating user error", err)
}

func (ur *UsersRepository) findOne(ctx context.Context, op, where string, arg any) (*entity.User, error) {
	var u entity.User
	err := pick(ctx, ur.conn).QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+where+` = $1;`, arg).
		Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.CreatedAt)
	switch {
	case err == nil:
		return &u, nil
	case errors.Is(err, pgx.ErrNoRows):
		return nil, errorvalues.ErrUserNotFound
	}
	return nil, dbError(ctx, op, err)
}

func (ur *UsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return ur.findOne(ctx, "finding user by email error", "email", email)
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	return ur.findOne(ctx, "finding user by id error", "user_id", uid)
}

// Delete removes the user. Plans, schedules and logs go with it.
func (ur *UsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	ct, err := pick(ctx, ur.conn).Exec(ctx, `DELETE FROM users WHERE user_id = $1;`, uid)
	if err != nil {
		return dbError(ctx, "deleting user error", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}
