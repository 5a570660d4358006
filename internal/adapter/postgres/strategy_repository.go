package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// StrategyRepository implements port.StrategyRepository using pgxpool.
// Targeting is stored as JSONB and unmarshalled on read, same approach as
// any other structured column.
type StrategyRepository struct {
	pool *pgxpool.Pool
}

// NewStrategyRepository returns a new repository instance.
func NewStrategyRepository(pool *pgxpool.Pool) *StrategyRepository {
	return &StrategyRepository{pool: pool}
}

const strategyColumns = `id, campaign_id, platform, headline, description, asset_path, targeting,
	cpa_target, bid_amount, remote_campaign_ref, remote_ad_group_ref, remote_creative_ref,
	remote_ad_ref, signed_off_at, created_at, updated_at`

func scanStrategy(row pgx.Row) (*domain.Strategy, error) {
	var (
		s            domain.Strategy
		targetingRaw []byte
	)
	err := row.Scan(
		&s.ID,
		&s.CampaignID,
		&s.Platform,
		&s.Headline,
		&s.Description,
		&s.AssetPath,
		&targetingRaw,
		&s.CPATarget,
		&s.BidAmount,
		&s.RemoteCampaignRef,
		&s.RemoteAdGroupRef,
		&s.RemoteCreativeRef,
		&s.RemoteAdRef,
		&s.SignedOffAt,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(targetingRaw) > 0 {
		if err = json.Unmarshal(targetingRaw, &s.Targeting); err != nil {
			return nil, fmt.Errorf("strategy %d: decode targeting: %w", s.ID, err)
		}
	}
	return &s, nil
}

// GetStrategy returns a strategy by id.
func (r *StrategyRepository) GetStrategy(ctx context.Context, id int64) (*domain.Strategy, error) {
	s, err := scanStrategy(r.pool.QueryRow(ctx,
		`SELECT `+strategyColumns+` FROM strategies WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListActiveStrategies returns the campaign's signed-off strategies.
func (r *StrategyRepository) ListActiveStrategies(ctx context.Context, campaignID int64) ([]domain.Strategy, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+strategyColumns+` FROM strategies
		 WHERE campaign_id = $1 AND signed_off_at IS NOT NULL ORDER BY id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Strategy, error) {
		s, err := scanStrategy(row)
		if err != nil {
			return domain.Strategy{}, err
		}
		return *s, nil
	})
}

// SetStepRef persists the external identifier produced by one deployment
// step. Written before the next step runs, it is the resume checkpoint for
// a partially failed deploy.
func (r *StrategyRepository) SetStepRef(ctx context.Context, strategyID int64, step port.DeployStep, ref string) error {
	var column string
	switch step {
	case port.StepCampaign:
		column = "remote_campaign_ref"
	case port.StepAdGroup:
		column = "remote_ad_group_ref"
	case port.StepCreative:
		column = "remote_creative_ref"
	case port.StepAd:
		column = "remote_ad_ref"
	default:
		return fmt.Errorf("unknown deploy step %q", string(step))
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE strategies SET `+column+` = $1, updated_at = now() WHERE id = $2`,
		ref, strategyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("strategy %d not found", strategyID)
	}
	return nil
}

// SnapshotActiveStrategies writes one version row per active strategy of
// the campaign, all stamped versionedAt, in one transaction.
func (r *StrategyRepository) SnapshotActiveStrategies(ctx context.Context, campaignID int64, versionedAt time.Time) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()
	_, err = tx.Exec(ctx, `INSERT INTO strategy_versions
		(strategy_id, campaign_id, platform, headline, description, asset_path, targeting,
		 cpa_target, bid_amount, remote_campaign_ref, remote_ad_group_ref,
		 remote_creative_ref, remote_ad_ref, versioned_at, created_at)
		SELECT id, campaign_id, platform, headline, description, asset_path, targeting,
		       cpa_target, bid_amount, remote_campaign_ref, remote_ad_group_ref,
		       remote_creative_ref, remote_ad_ref, $2, now()
		FROM strategies WHERE campaign_id = $1 AND signed_off_at IS NOT NULL`,
		campaignID, versionedAt)
	return err
}

// LatestGeneration returns the most recent versioned_at among the
// campaign's strategy versions, or nil when there are none.
func (r *StrategyRepository) LatestGeneration(ctx context.Context, campaignID int64) (*time.Time, error) {
	var latest *time.Time
	err := r.pool.QueryRow(ctx,
		`SELECT max(versioned_at) FROM strategy_versions WHERE campaign_id = $1`,
		campaignID).Scan(&latest)
	if err != nil {
		return nil, err
	}
	return latest, nil
}

// RestoreGeneration deactivates every active strategy of the campaign and
// re-creates active strategies from the versions stamped versionedAt. The
// deactivate and recreate run in one serializable transaction: the
// rollback fully applies or not at all. Remote references are restored
// with the snapshot, so a subsequent deploy resumes from the recorded
// checkpoints instead of recreating remote resources.
func (r *StrategyRepository) RestoreGeneration(ctx context.Context, campaignID int64, versionedAt time.Time) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx,
		`UPDATE strategies SET signed_off_at = NULL, updated_at = now()
		 WHERE campaign_id = $1 AND signed_off_at IS NOT NULL`, campaignID)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `INSERT INTO strategies
		(campaign_id, platform, headline, description, asset_path, targeting,
		 cpa_target, bid_amount, remote_campaign_ref, remote_ad_group_ref,
		 remote_creative_ref, remote_ad_ref, signed_off_at, created_at, updated_at)
		SELECT campaign_id, platform, headline, description, asset_path, targeting,
		       cpa_target, bid_amount, remote_campaign_ref, remote_ad_group_ref,
		       remote_creative_ref, remote_ad_ref, now(), now(), now()
		FROM strategy_versions WHERE campaign_id = $1 AND versioned_at = $2`,
		campaignID, versionedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = port.ErrNothingToRollback
		return err
	}
	return nil
}
