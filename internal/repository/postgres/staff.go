package postgres

import (
	"context"
	"database/sql"
	"time"

	"rma-portal-backend/internal/domain"
	"rma-portal-backend/internal/repository"
)

type staffRepository struct {
	db *sql.DB
}

func NewStaffRepository(db *sql.DB) repository.StaffRepository {
	return &staffRepository{db: db}
}

const staffColumns = `id, name, email, password_hash, role, is_active, created_on, updated_on`

func scanStaff(row rowScanner) (*domain.StaffUser, error) {
	u := &domain.StaffUser{}
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedOn, &u.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *staffRepository) Create(ctx context.Context, u *domain.StaffUser) error {
	query := `INSERT INTO staff_users (name, email, password_hash, role, is_active, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, u.Name, u.Email, u.PasswordHash, u.Role, u.IsActive, time.Now(), time.Now()).Scan(&u.ID)
}

func (r *staffRepository) GetByID(ctx context.Context, id int32) (*domain.StaffUser, error) {
	query := `SELECT ` + staffColumns + ` FROM staff_users WHERE id = $1`
	return scanStaff(r.db.QueryRowContext(ctx, query, id))
}

func (r *staffRepository) GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error) {
	query := `SELECT ` + staffColumns + ` FROM staff_users WHERE email = $1`
	return scanStaff(r.db.QueryRowContext(ctx, query, email))
}

func (r *staffRepository) Update(ctx context.Context, u *domain.StaffUser) error {
	query := `UPDATE staff_users SET name=$1, email=$2, role=$3, is_active=$4, updated_on=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, u.Name, u.Email, u.Role, u.IsActive, time.Now(), u.ID)
	return err
}

func (r *staffRepository) List(ctx context.Context) ([]domain.StaffUser, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+staffColumns+` FROM staff_users ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.StaffUser
	for rows.Next() {
		u, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, nil
}
