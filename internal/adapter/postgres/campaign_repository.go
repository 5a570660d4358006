package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, customer_id, name, channel, daily_budget, total_budget, status,
	google_campaign_ref, facebook_campaign_ref, created_at, updated_at`

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.CustomerID,
		&c.Name,
		&c.Channel,
		&c.DailyBudget,
		&c.TotalBudget,
		&c.Status,
		&c.GoogleCampaignRef,
		&c.FacebookCampaignRef,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCustomer returns a customer by id.
func (r *CampaignRepository) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	var c domain.Customer
	err := r.pool.QueryRow(ctx, `SELECT id, name, total_daily_budget, google_account_ref,
		facebook_account_ref, facebook_page_ref, created_at, updated_at
		FROM customers WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.TotalDailyBudget, &c.GoogleAccountRef,
			&c.FacebookAccountRef, &c.FacebookPageRef, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCustomerIDs returns all customer ids.
func (r *CampaignRepository) ListCustomerIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM customers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (int64, error) {
		var id int64
		err := row.Scan(&id)
		return id, err
	})
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListActiveCampaigns returns the customer's active campaigns.
func (r *CampaignRepository) ListActiveCampaigns(ctx context.Context, customerID int64) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaigns
		 WHERE customer_id = $1 AND status = 'active' ORDER BY id`, customerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// ApplyDailyBudgets persists new daily budgets for several campaigns
// inside one transaction so an allocation either lands fully or not at
// all.
func (r *CampaignRepository) ApplyDailyBudgets(ctx context.Context, budgets map[int64]int64) error {
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
	for campaignID, budget := range budgets {
		var tag pgconn.CommandTag
		tag, err = tx.Exec(ctx,
			`UPDATE campaigns SET daily_budget = $1, updated_at = now() WHERE id = $2`,
			budget, campaignID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			err = fmt.Errorf("campaign %d not found", campaignID)
			return err
		}
	}
	return nil
}

// SetPlatformCampaignRef records the external campaign identifier for the
// given platform.
func (r *CampaignRepository) SetPlatformCampaignRef(ctx context.Context, campaignID int64, platform domain.Platform, ref string) error {
	var column string
	switch platform {
	case domain.PlatformGoogle:
		column = "google_campaign_ref"
	case domain.PlatformFacebook:
		column = "facebook_campaign_ref"
	default:
		return fmt.Errorf("unknown platform %q", string(platform))
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET `+column+` = $1, updated_at = now() WHERE id = $2`,
		ref, campaignID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %d not found", campaignID)
	}
	return nil
}
