package grants

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrGrantNotFound occurs when the referenced grant does not exist.
	ErrGrantNotFound = errors.New("grant not found")
	// ErrApplicationsFull indicates the grant reached its application cap.
	ErrApplicationsFull = errors.New("grant application limit reached")
)

// Repository persists grants and applications.
type Repository interface {
	ListGrants(ctx context.Context) ([]Grant, error)
	GetGrant(ctx context.Context, id string) (Grant, error)
	CreateGrant(ctx context.Context, grant Grant) error
	ListApplications(ctx context.Context) ([]Application, error)
	// CreateApplication stores the application and bumps the grant's
	// counter in one step, failing with ErrApplicationsFull at the cap.
	CreateApplication(ctx context.Context, app Application) error
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed grants repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const grantColumns = `id, donor_id, donor_name, donor_rating, title, description, amount, currency,
    category, eligibility, requirements, deadline, max_applications, current_applications,
    status, created_at, successful_grants`

func scanGrant(row pgx.Row) (Grant, error) {
	var g Grant
	err := row.Scan(&g.ID, &g.DonorID, &g.DonorName, &g.DonorRating, &g.Title, &g.Description,
		&g.Amount, &g.Currency, &g.Category, &g.Eligibility, &g.Requirements, &g.Deadline,
		&g.MaxApplications, &g.CurrentApplications, &g.Status, &g.CreatedAt, &g.SuccessfulGrants)
	return g, err
}

// ListGrants fetches the full catalogue.
func (r *PostgresRepository) ListGrants(ctx context.Context) ([]Grant, error) {
	rows, err := r.db.Query(ctx, `SELECT `+grantColumns+` FROM grants`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grants []Grant
	for rows.Next() {
		g, err := scanGrant(rows)
		if err != nil {
			return nil, err
		}
		grants = append(grants, g)
	}
	return grants, rows.Err()
}

// GetGrant fetches a grant by id.
func (r *PostgresRepository) GetGrant(ctx context.Context, id string) (Grant, error) {
	g, err := scanGrant(r.db.QueryRow(ctx, `SELECT `+grantColumns+` FROM grants WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Grant{}, ErrGrantNotFound
	}
	return g, err
}

// CreateGrant inserts a new grant.
func (r *PostgresRepository) CreateGrant(ctx context.Context, g Grant) error {
	_, err := r.db.Exec(ctx, `INSERT INTO grants (`+grantColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		g.ID, g.DonorID, g.DonorName, g.DonorRating, g.Title, g.Description, g.Amount, g.Currency,
		g.Category, g.Eligibility, g.Requirements, g.Deadline.UTC(), g.MaxApplications,
		g.CurrentApplications, g.Status, g.CreatedAt.UTC(), g.SuccessfulGrants)
	return err
}

// ListApplications fetches all applications.
func (r *PostgresRepository) ListApplications(ctx context.Context) ([]Application, error) {
	rows, err := r.db.Query(ctx, `SELECT id, grant_id, applicant_id, applicant_name, applicant_type,
        status, submitted_at, documents, message FROM applications`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []Application
	for rows.Next() {
		var a Application
		if err := rows.Scan(&a.ID, &a.GrantID, &a.ApplicantID, &a.ApplicantName, &a.ApplicantType,
			&a.Status, &a.SubmittedAt, &a.Documents, &a.Message); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// CreateApplication inserts the application and bumps the grant counter in a
// single transaction, guarding the cap.
func (r *PostgresRepository) CreateApplication(ctx context.Context, app Application) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, `UPDATE grants
        SET current_applications = current_applications + 1
        WHERE id = $1 AND current_applications < max_applications`, app.GrantID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrApplicationsFull
	}

	if _, err := tx.Exec(ctx, `INSERT INTO applications
        (id, grant_id, applicant_id, applicant_name, applicant_type, status, submitted_at, documents, message)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		app.ID, app.GrantID, app.ApplicantID, app.ApplicantName, app.ApplicantType,
		app.Status, app.SubmittedAt.UTC(), app.Documents, app.Message); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
