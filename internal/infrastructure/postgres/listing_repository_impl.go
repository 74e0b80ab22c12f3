package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/navdrishti/platform-api/internal/domain/entity"
	"github.com/navdrishti/platform-api/internal/domain/repository"
)

type ListingRepository struct {
	pool *pgxpool.Pool
}

func NewListingRepository(pool *pgxpool.Pool) *ListingRepository {
	return &ListingRepository{pool: pool}
}

const listingColumns = `id, seller_id, title, description, category, price_cents, currency, active, created_at, updated_at`

func scanListing(row pgx.Row) (*entity.Listing, error) {
	l := &entity.Listing{}
	if err := row.Scan(&l.ID, &l.SellerID, &l.Title, &l.Description, &l.Category,
		&l.PriceCents, &l.Currency, &l.Active, &l.CreatedAt, &l.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errNotFound
		}
		return nil, err
	}
	return l, nil
}

func (r *ListingRepository) Create(l *entity.Listing) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO listings (seller_id, title, description, category, price_cents, currency, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, l.SellerID, l.Title, l.Description, l.Category, l.PriceCents, l.Currency, l.Active)

	return row.Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

func (r *ListingRepository) GetByID(id string) (*entity.Listing, error) {
	ctx := context.Background()
	return scanListing(r.pool.QueryRow(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		WHERE id = $1
	`, id))
}

func (r *ListingRepository) ListActive(limit, offset int) ([]*entity.Listing, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		WHERE active = true
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *ListingRepository) Update(l *entity.Listing) error {
	ctx := context.Background()
	l.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE listings
		SET title = $1, description = $2, category = $3, price_cents = $4, currency = $5, active = $6, updated_at = $7
		WHERE id = $8
	`, l.Title, l.Description, l.Category, l.PriceCents, l.Currency, l.Active, l.UpdatedAt, l.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

func (r *ListingRepository) CreatePurchase(p *entity.Purchase) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO purchases (listing_id, buyer_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, p.ListingID, p.BuyerID, p.Quantity)

	return row.Scan(&p.ID, &p.CreatedAt)
}

var _ repository.ListingRepository = (*ListingRepository)(nil)
