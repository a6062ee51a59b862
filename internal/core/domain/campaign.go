package domain

import "strings"

// CampaignType classifies an email send. It decides how strictly the
// cool-down rule is enforced.
type CampaignType string

const (
	CampaignPromotional   CampaignType = "promotional"
	CampaignNewsletter    CampaignType = "newsletter"
	CampaignReactivation  CampaignType = "reactivation"
	CampaignTransactional CampaignType = "transactional"
)

// ParseCampaignType maps free-form input onto a known type. Empty and
// unknown values fall back to CampaignPromotional.
func ParseCampaignType(s string) CampaignType {
	switch CampaignType(strings.ToLower(strings.TrimSpace(s))) {
	case CampaignNewsletter:
		return CampaignNewsletter
	case CampaignReactivation:
		return CampaignReactivation
	case CampaignTransactional:
		return CampaignTransactional
	default:
		return CampaignPromotional
	}
}

// Assignment is a campaign placed on the planning grid. Audience metrics are
// copied at placement time so later catalog edits do not change a plan
// retroactively.
type Assignment struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	AudienceID       string       `json:"audienceId"`
	AudienceTags     []string     `json:"audienceTags,omitempty"`
	AudienceSize     int64        `json:"audienceSize"`
	ClickThroughRate float64      `json:"clickThroughRate"`
	RevenuePerMille  float64      `json:"revenuePerMille"`
	CampaignType     CampaignType `json:"campaignType"`
	TemplateID       string       `json:"templateId"`
	ClickLimit       *int64       `json:"clickLimit,omitempty"` // nil means uncapped
}

// Clone returns a deep copy of a with the given id.
func (a Assignment) Clone(id string) Assignment {
	c := a
	c.ID = id
	if a.AudienceTags != nil {
		c.AudienceTags = append([]string(nil), a.AudienceTags...)
	}
	if a.ClickLimit != nil {
		limit := *a.ClickLimit
		c.ClickLimit = &limit
	}
	return c
}

// ExpectedClicks is audience size times click-through rate, capped by
// ClickLimit when one is set.
func (a Assignment) ExpectedClicks() float64 {
	clicks := float64(a.AudienceSize) * a.ClickThroughRate
	if a.ClickLimit != nil && float64(*a.ClickLimit) < clicks {
		return float64(*a.ClickLimit)
	}
	return clicks
}

// OverlapsWith reports whether two placements reach the same recipients:
// same audience, or at least one shared tag.
func (a Assignment) OverlapsWith(other Assignment) bool {
	if a.AudienceID != "" && a.AudienceID == other.AudienceID {
		return true
	}
	return sharesTag(a.AudienceTags, other.AudienceTags)
}

func sharesTag(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x != "" && strings.EqualFold(x, y) {
				return true
			}
		}
	}
	return false
}
