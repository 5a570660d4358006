package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
)

// ReviewRepository implements port.ReviewRepository using pgxpool. The
// pending-uniqueness invariant (at most one pending recommendation per
// campaign and type) is enforced by a partial unique index; upserts ride
// on it with ON CONFLICT.
type ReviewRepository struct {
	pool *pgxpool.Pool
}

// NewReviewRepository returns a new repository instance.
func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

const recommendationColumns = `id, campaign_id, type, params, rationale, requires_approval,
	status, created_at, updated_at`

func scanRecommendation(row pgx.Row) (*domain.Recommendation, error) {
	var rec domain.Recommendation
	err := row.Scan(
		&rec.ID,
		&rec.CampaignID,
		&rec.Type,
		&rec.Params,
		&rec.Rationale,
		&rec.RequiresApproval,
		&rec.Status,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpsertPendingRecommendation inserts a pending recommendation, or updates
// the params and rationale of the existing pending row for the same
// (campaign, type). The id and timestamps are populated on rec.
func (r *ReviewRepository) UpsertPendingRecommendation(ctx context.Context, rec *domain.Recommendation) error {
	return r.pool.QueryRow(ctx, `INSERT INTO recommendations
		(campaign_id, type, params, rationale, requires_approval, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 'pending', now(), now())
		ON CONFLICT (campaign_id, type) WHERE status = 'pending'
		DO UPDATE SET params = EXCLUDED.params,
		              rationale = EXCLUDED.rationale,
		              requires_approval = EXCLUDED.requires_approval,
		              updated_at = now()
		RETURNING id, created_at, updated_at`,
		rec.CampaignID, rec.Type, rec.Params, rec.Rationale, rec.RequiresApproval).
		Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
}

// GetRecommendation returns a recommendation by id.
func (r *ReviewRepository) GetRecommendation(ctx context.Context, id int64) (*domain.Recommendation, error) {
	rec, err := scanRecommendation(r.pool.QueryRow(ctx,
		`SELECT `+recommendationColumns+` FROM recommendations WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ListRecommendations returns the campaign's recommendations, newest
// first.
func (r *ReviewRepository) ListRecommendations(ctx context.Context, campaignID int64) ([]domain.Recommendation, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+recommendationColumns+` FROM recommendations
		 WHERE campaign_id = $1 ORDER BY created_at DESC, id DESC`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Recommendation, error) {
		rec, err := scanRecommendation(row)
		if err != nil {
			return domain.Recommendation{}, err
		}
		return *rec, nil
	})
}

// SetRecommendationStatus moves a recommendation through review.
func (r *ReviewRepository) SetRecommendationStatus(ctx context.Context, id int64, status domain.RecommendationStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE recommendations SET status = $1, updated_at = now() WHERE id = $2`,
		status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recommendation %d not found", id)
	}
	return nil
}

// CreateConflict appends one conflict row; the id and created_at are
// populated on conflict.
func (r *ReviewRepository) CreateConflict(ctx context.Context, conflict *domain.Conflict) error {
	return r.pool.QueryRow(ctx, `INSERT INTO conflicts
		(campaign_id, recommendation_id, status, created_at)
		VALUES ($1, $2, $3, now())
		RETURNING id, created_at`,
		conflict.CampaignID, conflict.RecommendationID, conflict.Status).
		Scan(&conflict.ID, &conflict.CreatedAt)
}

// ListConflicts returns the campaign's conflicts, newest first.
func (r *ReviewRepository) ListConflicts(ctx context.Context, campaignID int64) ([]domain.Conflict, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, campaign_id, recommendation_id, status, created_at FROM conflicts
		 WHERE campaign_id = $1 ORDER BY created_at DESC, id DESC`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Conflict, error) {
		var c domain.Conflict
		err := row.Scan(&c.ID, &c.CampaignID, &c.RecommendationID, &c.Status, &c.CreatedAt)
		return c, err
	})
}
