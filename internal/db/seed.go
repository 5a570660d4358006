package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data: one customer with linked platform accounts, a
// handful of active campaigns across channels, one active strategy each
// and a week of performance windows shaped so the optimizer produces both
// pause and scale recommendations.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	var customerID int64
	err := pool.QueryRow(ctx, `INSERT INTO customers
		(name, total_daily_budget, google_account_ref, facebook_account_ref, facebook_page_ref, created_at, updated_at)
		VALUES ('Demo Outfitters', 100000, 'g-acct-1001', 'fb-acct-2001', 'fb-page-3001', now(), now())
		RETURNING id`).Scan(&customerID)
	if err != nil {
		return err
	}

	channels := []string{"google_display", "google_video", "facebook_display", "facebook_video"}
	platforms := []string{"google", "google", "facebook", "facebook"}
	// spend/conversions pairs chosen to spread campaigns across the ROAS
	// thresholds: the first underperforms, the last overperforms.
	spends := []int64{200000, 50000, 60000, 30000}
	conversions := []int64{10, 40, 55, 90}

	targeting, _ := json.Marshal(map[string]any{
		"languages": []string{"en"},
		"geos":      []string{"US", "CA"},
		"interests": []string{"outdoors", "travel"},
		"age_min":   21,
		"age_max":   55,
	})

	for i, channel := range channels {
		var campaignID int64
		err = pool.QueryRow(ctx, `INSERT INTO campaigns
			(customer_id, name, channel, daily_budget, total_budget, status, created_at, updated_at)
			VALUES ($1, $2, $3, 25000, 500000, 'active', now(), now())
			RETURNING id`,
			customerID, fmt.Sprintf("Demo Campaign %d", i+1), channel).Scan(&campaignID)
		if err != nil {
			return err
		}

		var strategyID int64
		err = pool.QueryRow(ctx, `INSERT INTO strategies
			(campaign_id, platform, headline, description, asset_path, targeting,
			 cpa_target, bid_amount, signed_off_at, created_at, updated_at)
			VALUES ($1, $2, $3, 'Gear up for the season.', $4, $5, 2500, 150, now(), now(), now())
			RETURNING id`,
			campaignID, platforms[i],
			fmt.Sprintf("Demo Headline %d", i+1),
			fmt.Sprintf("creatives/demo-%d.jpg", i+1),
			targeting).Scan(&strategyID)
		if err != nil {
			return err
		}

		windowEnd := time.Now().Truncate(24 * time.Hour)
		for d := 7; d >= 1; d-- {
			_, err = pool.Exec(ctx, `INSERT INTO performance_data
				(strategy_id, spend, conversions, window_start, window_end, created_at)
				VALUES ($1, $2, $3, $4, $5, now())`,
				strategyID, spends[i]/7, conversions[i]/7+1,
				windowEnd.AddDate(0, 0, -d), windowEnd.AddDate(0, 0, -d+1))
			if err != nil {
				return err
			}
		}
	}
	return nil
}
