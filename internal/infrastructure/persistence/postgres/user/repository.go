package user_repository

import (
	"context"
	"errors"
	"fmt"

	"splitwise-platform/internal/domain/models"
	ports "splitwise-platform/internal/domain/ports/output"
	user_port "splitwise-platform/internal/domain/ports/output/user"
	"splitwise-platform/internal/infrastructure/persistence/postgres"
	"splitwise-platform/internal/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	userColumns = `id, username, email, first_name, last_name, phone_number, password_hash, role, is_active, created_at, updated_at`

	uniqueViolation    = "23505"
	usernameConstraint = "users_username_key"
	emailConstraint    = "users_email_key"
)

var sortColumns = map[string]string{
	"id":         "id",
	"username":   "username",
	"email":      "email",
	"first_name": "first_name",
	"last_name":  "last_name",
	"created_at": "created_at",
}

type UserRepository struct {
	querier postgres.Querier
	log     ports.Logger
}

func NewUserRepository(querier postgres.Querier, log ports.Logger) user_port.UserRepository {
	return &UserRepository{querier: querier, log: log}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*models.User, error) {
	var u models.User
	err := s.Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.PhoneNumber,
		&u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// orderBy builds the ORDER BY clause from whitelisted columns only.
func orderBy(page models.PageRequest) string {
	col, ok := sortColumns[page.SortBy]
	if !ok {
		col = sortColumns[utils.DefaultSortBy]
	}
	dir := "ASC"
	if page.Direction == "desc" {
		dir = "DESC"
	}
	if col == "id" {
		return " ORDER BY id " + dir
	}
	return " ORDER BY " + col + " " + dir + ", id ASC"
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch pgErr.ConstraintName {
		case usernameConstraint:
			return utils.ErrUsernameTaken
		case emailConstraint:
			return utils.ErrEmailTaken
		default:
			return utils.ErrUserExists
		}
	}
	return nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	const op = "UserRepository.CreateUser"
	const q = `
		INSERT INTO users (username, email, first_name, last_name, phone_number, password_hash, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
		RETURNING id, created_at, updated_at;
	`
	err := r.querier.QueryRow(ctx, q,
		user.Username, user.Email, user.FirstName, user.LastName, user.PhoneNumber,
		user.PasswordHash, user.Role, user.IsActive,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return mapped
		}
		r.log.Error("CreateUser failed", "username", user.Username, "err", err)
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE id = $1;`
	return r.getOne(ctx, "UserRepository.GetUserByID", q, id)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE username = $1;`
	return r.getOne(ctx, "UserRepository.FindByUsername", q, username)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	return r.getOne(ctx, "UserRepository.FindByEmail", q, email)
}

func (r *UserRepository) getOne(ctx context.Context, op, q string, arg any) (*models.User, error) {
	u, err := scanUser(r.querier.QueryRow(ctx, q, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.ErrUserNotFound
		}
		r.log.Error(op+" failed", "arg", arg, "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	const op = "UserRepository.UpdateUser"
	const q = `
		UPDATE users
		SET email = $1,
			first_name = $2,
			last_name = $3,
			phone_number = $4,
			role = $5,
			updated_at = now()
		WHERE id = $6
		RETURNING updated_at;
	`
	err := r.querier.QueryRow(ctx, q,
		user.Email, user.FirstName, user.LastName, user.PhoneNumber, user.Role, user.ID,
	).Scan(&user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return utils.ErrUserNotFound
		}
		if mapped := mapUniqueViolation(err); mapped != nil {
			return mapped
		}
		r.log.Error("UpdateUser failed", "user_id", user.ID, "err", err)
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *UserRepository) UpdateUserActive(ctx context.Context, id int64, isActive bool) error {
	const op = "UserRepository.UpdateUserActive"
	const q = `
		UPDATE users
		SET is_active = $1,
			updated_at = now()
		WHERE id = $2;
	`
	tag, err := r.querier.Exec(ctx, q, isActive, id)
	if err != nil {
		r.log.Error("UpdateUserActive failed", "user_id", id, "err", err)
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	const op = "UserRepository.DeleteUser"
	tag, err := r.querier.Exec(ctx, `DELETE FROM users WHERE id = $1;`, id)
	if err != nil {
		r.log.Error("DeleteUser failed", "user_id", id, "err", err)
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "UserRepository.ExistsByUsername", `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1);`, username)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "UserRepository.ExistsByEmail", `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1);`, email)
}

func (r *UserRepository) exists(ctx context.Context, op, q string, arg any) (bool, error) {
	var ok bool
	if err := r.querier.QueryRow(ctx, q, arg).Scan(&ok); err != nil {
		r.log.Error(op+" failed", "arg", arg, "err", err)
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return ok, nil
}

func (r *UserRepository) ListUsers(ctx context.Context, page models.PageRequest) ([]*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users` + orderBy(page) + ` LIMIT $1 OFFSET $2;`
	return r.list(ctx, "UserRepository.ListUsers", q, page.Size, page.Offset())
}

func (r *UserRepository) ListActive(ctx context.Context) ([]*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE is_active = true ORDER BY id;`
	return r.list(ctx, "UserRepository.ListActive", q)
}

func (r *UserRepository) ListActivePage(ctx context.Context, page models.PageRequest) ([]*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE is_active = true` + orderBy(page) + ` LIMIT $1 OFFSET $2;`
	return r.list(ctx, "UserRepository.ListActivePage", q, page.Size, page.Offset())
}

func (r *UserRepository) ListInactive(ctx context.Context) ([]*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE is_active = false ORDER BY id;`
	return r.list(ctx, "UserRepository.ListInactive", q)
}

const searchPredicate = `
	WHERE $1::text = ''
		OR username ILIKE '%' || $1::text || '%'
		OR email ILIKE '%' || $1::text || '%'
		OR first_name ILIKE '%' || $1::text || '%'
		OR last_name ILIKE '%' || $1::text || '%'`

func (r *UserRepository) SearchUsers(ctx context.Context, term string, page models.PageRequest) ([]*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users` + searchPredicate + orderBy(page) + ` LIMIT $2 OFFSET $3;`
	return r.list(ctx, "UserRepository.SearchUsers", q, term, page.Size, page.Offset())
}

func (r *UserRepository) CountSearch(ctx context.Context, term string) (int64, error) {
	return r.count(ctx, "UserRepository.CountSearch", `SELECT count(*) FROM users`+searchPredicate+`;`, term)
}

func (r *UserRepository) FindByFirstNameAndLastName(ctx context.Context, firstName, lastName string) ([]*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE first_name = $1 AND last_name = $2 ORDER BY id;`
	return r.list(ctx, "UserRepository.FindByFirstNameAndLastName", q, firstName, lastName)
}

func (r *UserRepository) FindActiveByFirstNameAndLastName(ctx context.Context, firstName, lastName string) ([]*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE first_name = $1 AND last_name = $2 AND is_active = true ORDER BY id;`
	return r.list(ctx, "UserRepository.FindActiveByFirstNameAndLastName", q, firstName, lastName)
}

func (r *UserRepository) list(ctx context.Context, op, q string, args ...any) ([]*models.User, error) {
	rows, err := r.querier.Query(ctx, q, args...)
	if err != nil {
		r.log.Error(op+" query failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	res := make([]*models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			r.log.Error(op+" scan failed", "err", err)
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		res = append(res, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, "UserRepository.Count", `SELECT count(*) FROM users;`)
}

func (r *UserRepository) CountActive(ctx context.Context) (int64, error) {
	return r.count(ctx, "UserRepository.CountActive", `SELECT count(*) FROM users WHERE is_active = true;`)
}

func (r *UserRepository) CountInactive(ctx context.Context) (int64, error) {
	return r.count(ctx, "UserRepository.CountInactive", `SELECT count(*) FROM users WHERE is_active = false;`)
}

func (r *UserRepository) count(ctx context.Context, op, q string, args ...any) (int64, error) {
	var n int64
	if err := r.querier.QueryRow(ctx, q, args...).Scan(&n); err != nil {
		r.log.Error(op+" failed", "err", err)
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}
