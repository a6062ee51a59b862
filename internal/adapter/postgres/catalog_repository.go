package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-planner/internal/core/domain"
	"campaign-planner/internal/core/port"
)

// CatalogRepository reads audiences and templates from PostgreSQL.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

var (
	_ port.AudienceProvider = (*CatalogRepository)(nil)
	_ port.TemplateProvider = (*CatalogRepository)(nil)
)

// NewCatalogRepository returns a new repository instance.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

const (
	audienceColumns = `id, name, size, click_through_rate, revenue_per_mille, bounce_rate, tags`
	templateColumns = `id, name, subject, campaign_type, open_rate, click_rate`
)

// audienceRow mirrors one row of the audiences table.
type audienceRow struct {
	ID               string
	Name             string
	Size             int64
	ClickThroughRate *float64
	RevenuePerMille  *float64
	BounceRate       *float64
	Tags             []string
}

func (r audienceRow) toDomain() domain.Audience {
	a := domain.Audience{
		ID:               r.ID,
		Name:             r.Name,
		Size:             r.Size,
		ClickThroughRate: r.ClickThroughRate,
		RevenuePerMille:  r.RevenuePerMille,
		BounceRate:       r.BounceRate,
	}
	if len(r.Tags) > 0 {
		a.Tags = r.Tags
	}
	return a
}

type templateRow struct {
	ID           string
	Name         string
	Subject      string
	CampaignType string
	OpenRate     *float64
	ClickRate    *float64
}

func (r templateRow) toDomain() domain.Template {
	return domain.Template{
		ID:           r.ID,
		Name:         r.Name,
		Subject:      r.Subject,
		CampaignType: domain.ParseCampaignType(r.CampaignType),
		Metrics:      domain.TemplateMetrics{OpenRate: r.OpenRate, ClickRate: r.ClickRate},
	}
}

func scanAudience(row pgx.CollectableRow) (audienceRow, error) {
	var r audienceRow
	err := row.Scan(&r.ID, &r.Name, &r.Size, &r.ClickThroughRate, &r.RevenuePerMille, &r.BounceRate, &r.Tags)
	return r, err
}

func scanTemplate(row pgx.CollectableRow) (templateRow, error) {
	var r templateRow
	err := row.Scan(&r.ID, &r.Name, &r.Subject, &r.CampaignType, &r.OpenRate, &r.ClickRate)
	return r, err
}

// GetAudience returns port.ErrUnknownAudience when no row matches id.
func (r *CatalogRepository) GetAudience(ctx context.Context, id string) (domain.Audience, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+audienceColumns+` FROM audiences WHERE id = $1`, id)
	if err != nil {
		return domain.Audience{}, errors.Wrap(err, "query audience")
	}
	row, err := pgx.CollectExactlyOneRow(rows, scanAudience)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Audience{}, errors.Wrapf(port.ErrUnknownAudience, "%q", id)
	}
	if err != nil {
		return domain.Audience{}, errors.Wrap(err, "scan audience")
	}
	return row.toDomain(), nil
}

// ListAudiences returns every audience ordered by name.
func (r *CatalogRepository) ListAudiences(ctx context.Context) ([]domain.Audience, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+audienceColumns+` FROM audiences ORDER BY name, id`)
	if err != nil {
		return nil, errors.Wrap(err, "query audiences")
	}
	raw, err := pgx.CollectRows(rows, scanAudience)
	if err != nil {
		return nil, errors.Wrap(err, "scan audiences")
	}
	out := make([]domain.Audience, 0, len(raw))
	for _, row := range raw {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// GetTemplate returns port.ErrUnknownTemplate when no row matches id.
func (r *CatalogRepository) GetTemplate(ctx context.Context, id string) (domain.Template, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+templateColumns+` FROM templates WHERE id = $1`, id)
	if err != nil {
		return domain.Template{}, errors.Wrap(err, "query template")
	}
	row, err := pgx.CollectExactlyOneRow(rows, scanTemplate)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Template{}, errors.Wrapf(port.ErrUnknownTemplate, "%q", id)
	}
	if err != nil {
		return domain.Template{}, errors.Wrap(err, "scan template")
	}
	return row.toDomain(), nil
}

// ListTemplates returns every template ordered by name.
func (r *CatalogRepository) ListTemplates(ctx context.Context) ([]domain.Template, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+templateColumns+` FROM templates ORDER BY name, id`)
	if err != nil {
		return nil, errors.Wrap(err, "query templates")
	}
	raw, err := pgx.CollectRows(rows, scanTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "scan templates")
	}
	out := make([]domain.Template, 0, len(raw))
	for _, row := range raw {
		out = append(out, row.toDomain())
	}
	return out, nil
}
