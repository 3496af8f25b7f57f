package plans

// Plan identifiers (single source of truth)
const (
	PlanFree      = "free"
	PlanMonthly   = "monthly"
	PlanQuarterly = "quarterly"
	PlanLifetime  = "lifetime"
)

// Paid returns every plan that goes through Stripe checkout.
func Paid() []string {
	return []string{PlanMonthly, PlanQuarterly, PlanLifetime}
}

// IsValid reports whether p is one of the known plan identifiers.
func IsValid(p string) bool {
	switch p {
	case PlanFree, PlanMonthly, PlanQuarterly, PlanLifetime:
		return true
	}
	return false
}

// IsPaid reports whether p is a plan that requires payment.
func IsPaid(p string) bool {
	return IsValid(p) && p != PlanFree
}

// DeviceLimit returns how many devices a plan may keep linked.
func DeviceLimit(p string) int {
	if p == PlanLifetime {
		return 5
	}
	return 1
}
