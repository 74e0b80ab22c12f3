package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/navdrishti/platform-api/internal/domain/entity"
	"github.com/navdrishti/platform-api/internal/domain/repository"
)

type ServiceRepository struct {
	pool *pgxpool.Pool
}

func NewServiceRepository(pool *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{pool: pool}
}

const requestColumns = `id, ngo_id, title, description, category, location, open, created_at, updated_at`

func scanRequest(row pgx.Row) (*entity.ServiceRequest, error) {
	sr := &entity.ServiceRequest{}
	if err := row.Scan(&sr.ID, &sr.NGOID, &sr.Title, &sr.Description, &sr.Category,
		&sr.Location, &sr.Open, &sr.CreatedAt, &sr.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errNotFound
		}
		return nil, err
	}
	return sr, nil
}

func scanOffer(row pgx.Row) (*entity.ServiceOffer, error) {
	so := &entity.ServiceOffer{}
	if err := row.Scan(&so.ID, &so.NGOID, &so.Title, &so.Description, &so.Category,
		&so.Location, &so.Open, &so.CreatedAt, &so.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errNotFound
		}
		return nil, err
	}
	return so, nil
}

func (r *ServiceRepository) CreateRequest(sr *entity.ServiceRequest) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO service_requests (ngo_id, title, description, category, location, open)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, sr.NGOID, sr.Title, sr.Description, sr.Category, sr.Location, sr.Open)

	return row.Scan(&sr.ID, &sr.CreatedAt, &sr.UpdatedAt)
}

func (r *ServiceRepository) GetRequest(id string) (*entity.ServiceRequest, error) {
	ctx := context.Background()
	return scanRequest(r.pool.QueryRow(ctx, `
		SELECT `+requestColumns+`
		FROM service_requests
		WHERE id = $1
	`, id))
}

func (r *ServiceRepository) ListOpenRequests(limit, offset int) ([]*entity.ServiceRequest, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT `+requestColumns+`
		FROM service_requests
		WHERE open = true
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.ServiceRequest
	for rows.Next() {
		sr, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}

func (r *ServiceRepository) CreateOffer(so *entity.ServiceOffer) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO service_offers (ngo_id, title, description, category, location, open)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, so.NGOID, so.Title, so.Description, so.Category, so.Location, so.Open)

	return row.Scan(&so.ID, &so.CreatedAt, &so.UpdatedAt)
}

func (r *ServiceRepository) GetOffer(id string) (*entity.ServiceOffer, error) {
	ctx := context.Background()
	return scanOffer(r.pool.QueryRow(ctx, `
		SELECT `+requestColumns+`
		FROM service_offers
		WHERE id = $1
	`, id))
}

func (r *ServiceRepository) ListOpenOffers(limit, offset int) ([]*entity.ServiceOffer, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT `+requestColumns+`
		FROM service_offers
		WHERE open = true
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.ServiceOffer
	for rows.Next() {
		so, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, so)
	}
	return out, rows.Err()
}

func (r *ServiceRepository) CreateApplication(a *entity.Application) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO applications (target_type, target_id, applicant_id, message, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, a.TargetType, a.TargetID, a.ApplicantID, a.Message, a.Status)

	return row.Scan(&a.ID, &a.CreatedAt)
}

func (r *ServiceRepository) HasApplied(target entity.ApplicationTarget, targetID, applicantID string) (bool, error) {
	ctx := context.Background()
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM applications
			WHERE target_type = $1 AND target_id = $2 AND applicant_id = $3
		)
	`, target, targetID, applicantID).Scan(&exists)
	return exists, err
}

func (r *ServiceRepository) ListApplications(target entity.ApplicationTarget, targetID string) ([]*entity.Application, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, target_type, target_id, applicant_id, message, status, created_at
		FROM applications
		WHERE target_type = $1 AND target_id = $2
		ORDER BY created_at ASC
	`, target, targetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Application
	for rows.Next() {
		a := &entity.Application{}
		if err := rows.Scan(&a.ID, &a.TargetType, &a.TargetID, &a.ApplicantID,
			&a.Message, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

var _ repository.ServiceRepository = (*ServiceRepository)(nil)
