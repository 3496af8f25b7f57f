package plans

import "testing"

func TestLimitsForUnknownFallsBackToFree(t *testing.T) {
	free := LimitsFor(PlanFree)
	unknown := LimitsFor("unknown-plan")
	if free != unknown {
		t.Fatalf("LimitsFor(unknown) = %+v, want free tier %+v", unknown, free)
	}
	if free.Projects != 3 || free.Clients != 5 || free.PDFExport || free.Templates != TemplatesBasic {
		t.Fatalf("free tier limits unexpected: %+v", free)
	}
}

func TestLimitsForPaidPlans(t *testing.T) {
	for _, plan := range Paid() {
		l := LimitsFor(plan)
		if l.Projects != Unlimited || l.Clients != Unlimited {
			t.Fatalf("plan %s should have unlimited quotas, got %+v", plan, l)
		}
		if !l.PDFExport || l.Templates != TemplatesAll {
			t.Fatalf("plan %s should unlock export and all templates, got %+v", plan, l)
		}
	}
}

func TestWithinQuota(t *testing.T) {
	if !WithinQuota(2, 3) {
		t.Fatal("2 of 3 should fit")
	}
	if WithinQuota(3, 3) {
		t.Fatal("3 of 3 should be full")
	}
	if !WithinQuota(1_000_000, Unlimited) {
		t.Fatal("unlimited should always fit")
	}
}

func TestIsPaid(t *testing.T) {
	if IsPaid(PlanFree) || IsPaid("unknown-plan") {
		t.Fatal("free/unknown must not be paid")
	}
	for _, plan := range Paid() {
		if !IsPaid(plan) {
			t.Fatalf("plan %s should be paid", plan)
		}
	}
}

func TestDeviceLimit(t *testing.T) {
	if DeviceLimit(PlanLifetime) != 5 {
		t.Fatal("lifetime should allow 5 devices")
	}
	if DeviceLimit(PlanMonthly) != 1 || DeviceLimit(PlanFree) != 1 {
		t.Fatal("non-lifetime plans allow a single device")
	}
}
