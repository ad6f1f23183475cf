package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-accounts/internal/apperr"
	"github.com/sbilibin2017/gw-accounts/internal/logger"
	"github.com/sbilibin2017/gw-accounts/internal/models"
)

const userColumns = `id, email, username, password, first_name, last_name, created_at, last_modified_at`

// TxGetter returns the transaction bound to ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor returns the context transaction when there is one, else the pool.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// logQuery logs a query on a single line. Callers must not pass secrets in args.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Debugw("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// UserReadRepository performs user lookups.
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByEmail returns the credential record for email.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, email)
	logQuery(query, []any{email}, user.ID, err)

	if err != nil {
		return nil, classifyError(err)
	}
	return &user, nil
}

// GetByID returns the user with the given id.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, id)
	logQuery(query, []any{id}, user.ID, err)

	if err != nil {
		return nil, classifyError(err)
	}
	return &user, nil
}

// List returns all users, oldest first.
func (r *UserReadRepository) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id`

	users := []models.User{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query)
	logQuery(query, nil, len(users), err)

	if err != nil {
		return nil, classifyError(err)
	}
	return users, nil
}

// UserWriteRepository performs user mutations. It never begins or ends a
// transaction itself; it joins the one carried by the context, if any.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Insert creates a user row and returns it as persisted.
func (r *UserWriteRepository) Insert(ctx context.Context, email, username, passwordHash, firstName, lastName string) (*models.User, error) {
	query := `
		INSERT INTO users (email, username, password, first_name, last_name, created_at, last_modified_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + userColumns

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query,
		email, username, passwordHash, firstName, lastName)
	logQuery(query, []any{email, username, "[REDACTED]", firstName, lastName}, user.ID, err)

	if err != nil {
		return nil, classifyError(err)
	}
	return &user, nil
}

// GetByIDForUpdate reads a user and locks its row until the surrounding transaction ends.
func (r *UserWriteRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, id)
	logQuery(query, []any{id}, user.ID, err)

	if err != nil {
		return nil, classifyError(err)
	}
	return &user, nil
}

// Update changes email and username. Derived names are left untouched.
func (r *UserWriteRepository) Update(ctx context.Context, id uuid.UUID, email, username string) (*models.User, error) {
	query := `
		UPDATE users
		SET email = $1,
		    username = $2,
		    last_modified_at = NOW()
		WHERE id = $3
		RETURNING ` + userColumns

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, email, username, id)
	logQuery(query, []any{email, username, id}, user.ID, err)

	if err != nil {
		return nil, classifyError(err)
	}
	return &user, nil
}

// UpdatePassword stores a new password hash.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `
		UPDATE users
		SET password = $1,
		    last_modified_at = NOW()
		WHERE id = $2
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, passwordHash, id)
	return r.checkAffected(query, []any{"[REDACTED]", id}, res, err)
}

// Delete removes a user.
func (r *UserWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM users WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	return r.checkAffected(query, []any{id}, res, err)
}

func (r *UserWriteRepository) checkAffected(query string, args []any, res sql.Result, err error) error {
	var rowsAffected int64
	if err == nil && res != nil {
		rowsAffected, err = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return classifyError(err)
	}
	if rowsAffected == 0 {
		return apperr.New(apperr.KindNotFound, apperr.MsgUserNotFound)
	}
	return nil
}
