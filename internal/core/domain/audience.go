package domain

// Defaults applied when a segment record leaves a metric unset.
const (
	DefaultClickThroughRate = 0.03
	DefaultRevenuePerMille  = 100.0
	DefaultOpenRate         = 0.2
)

// Audience is a recipient segment supplied by the audience provider.
// Optional metrics are nil when the segment has no history yet.
type Audience struct {
	ID               string   `json:"id" yaml:"id"`
	Name             string   `json:"name" yaml:"name"`
	Size             int64    `json:"size" yaml:"size"`
	ClickThroughRate *float64 `json:"clickThroughRate,omitempty" yaml:"clickThroughRate,omitempty"`
	RevenuePerMille  *float64 `json:"revenuePerMille,omitempty" yaml:"revenuePerMille,omitempty"`
	BounceRate       *float64 `json:"bounceRate,omitempty" yaml:"bounceRate,omitempty"`
	Tags             []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// CTR returns the click-through rate or DefaultClickThroughRate.
func (a Audience) CTR() float64 {
	if a.ClickThroughRate == nil || *a.ClickThroughRate <= 0 {
		return DefaultClickThroughRate
	}
	return *a.ClickThroughRate
}

// RPM returns the revenue per mille or DefaultRevenuePerMille.
func (a Audience) RPM() float64 {
	if a.RevenuePerMille == nil || *a.RevenuePerMille < 0 {
		return DefaultRevenuePerMille
	}
	return *a.RevenuePerMille
}

// Bounce returns the expected bounce rate, zero when unknown.
func (a Audience) Bounce() float64 {
	if a.BounceRate == nil || *a.BounceRate < 0 {
		return 0
	}
	if *a.BounceRate > 1 {
		return 1
	}
	return *a.BounceRate
}

// TemplateMetrics holds historical engagement of an email template.
type TemplateMetrics struct {
	OpenRate  *float64 `json:"openRate,omitempty" yaml:"openRate,omitempty"`
	ClickRate *float64 `json:"clickRate,omitempty" yaml:"clickRate,omitempty"`
}

// Template is an email template supplied by the template provider.
type Template struct {
	ID           string          `json:"id" yaml:"id"`
	Name         string          `json:"name" yaml:"name"`
	Subject      string          `json:"subject" yaml:"subject"`
	CampaignType CampaignType    `json:"campaignType" yaml:"campaignType"`
	Metrics      TemplateMetrics `json:"metrics" yaml:"metrics"`
}

// OpenRate returns the template's open rate or DefaultOpenRate.
func (t Template) OpenRate() float64 {
	if t.Metrics.OpenRate == nil || *t.Metrics.OpenRate <= 0 {
		return DefaultOpenRate
	}
	return *t.Metrics.OpenRate
}

// NewAssignment places audience a with template t under the given id. The
// name follows the planner convention "<template> → <audience>".
func NewAssignment(id string, a Audience, t Template) Assignment {
	var tags []string
	if len(a.Tags) > 0 {
		tags = append([]string(nil), a.Tags...)
	}
	return Assignment{
		ID:               id,
		Name:             t.Name + " → " + a.Name,
		AudienceID:       a.ID,
		AudienceTags:     tags,
		AudienceSize:     a.Size,
		ClickThroughRate: a.CTR(),
		RevenuePerMille:  a.RPM(),
		CampaignType:     ParseCampaignType(string(t.CampaignType)),
		TemplateID:       t.ID,
	}
}
