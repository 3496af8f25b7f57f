package plans

// Unlimited is the sentinel quota value for paid plans.
const Unlimited = -1

// Template tiers
const (
	TemplatesBasic = "basic"
	TemplatesAll   = "all"
)

// Limits describes the feature entitlements of a plan.
type Limits struct {
	Projects  int    `json:"projects"`
	Clients   int    `json:"clients"`
	PDFExport bool   `json:"pdf_export"`
	Templates string `json:"templates"`
}

var planLimits = map[string]Limits{
	PlanFree: {
		Projects:  3,
		Clients:   5,
		PDFExport: false,
		Templates: TemplatesBasic,
	},
	PlanMonthly: {
		Projects:  Unlimited,
		Clients:   Unlimited,
		PDFExport: true,
		Templates: TemplatesAll,
	},
	PlanQuarterly: {
		Projects:  Unlimited,
		Clients:   Unlimited,
		PDFExport: true,
		Templates: TemplatesAll,
	},
	PlanLifetime: {
		Projects:  Unlimited,
		Clients:   Unlimited,
		PDFExport: true,
		Templates: TemplatesAll,
	},
}

// LimitsFor maps a plan identifier to its entitlements. Unknown plans fall
// back to the free tier, so entitlement checks are total.
func LimitsFor(plan string) Limits {
	if l, ok := planLimits[plan]; ok {
		return l
	}
	return planLimits[PlanFree]
}

// WithinQuota reports whether one more item fits under limit, where
// Unlimited means no cap.
func WithinQuota(current int64, limit int) bool {
	if limit == Unlimited {
		return true
	}
	return current < int64(limit)
}
