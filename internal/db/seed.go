package db

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-planner/internal/adapter/catalog"
	"campaign-planner/internal/core/domain"
)

// Seed upserts the audiences and templates of c in one transaction.
func Seed(ctx context.Context, db *pgxpool.Pool, c catalog.Catalog) error {
	if err := c.Validate(); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "begin seed")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, a := range c.Audiences {
		tags := a.Tags
		if tags == nil {
			tags = []string{}
		}
		batch.Queue(`INSERT INTO audiences
    (id, name, size, click_through_rate, revenue_per_mille, bounce_rate, tags, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,now(),now())
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    size = EXCLUDED.size,
    click_through_rate = EXCLUDED.click_through_rate,
    revenue_per_mille = EXCLUDED.revenue_per_mille,
    bounce_rate = EXCLUDED.bounce_rate,
    tags = EXCLUDED.tags,
    updated_at = now()`,
			a.ID, a.Name, a.Size, a.ClickThroughRate, a.RevenuePerMille, a.BounceRate, tags)
	}
	for _, t := range c.Templates {
		batch.Queue(`INSERT INTO templates
    (id, name, subject, campaign_type, open_rate, click_rate, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,now(),now())
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    subject = EXCLUDED.subject,
    campaign_type = EXCLUDED.campaign_type,
    open_rate = EXCLUDED.open_rate,
    click_rate = EXCLUDED.click_rate,
    updated_at = now()`,
			t.ID, t.Name, t.Subject, string(domain.ParseCampaignType(string(t.CampaignType))),
			t.Metrics.OpenRate, t.Metrics.ClickRate)
	}

	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return errors.Wrap(err, "seed catalog")
	}
	return tx.Commit(ctx)
}
