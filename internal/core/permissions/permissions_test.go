package permissions

import "testing"

func TestHasRole_OwnerCoversEverything(t *testing.T) {
	for _, r := range []Role{RoleOwner, RoleManager, RoleAccountant, RoleWorker, RoleViewer} {
		if !HasRole(RoleOwner, r) {
			t.Fatalf("owner should cover %s", r)
		}
	}
}

func TestHasRole_ViewerDoesNotEscalate(t *testing.T) {
	if HasRole(RoleViewer, RoleOwner) {
		t.Fatalf("viewer must not cover owner")
	}
	if HasRole(RoleViewer, RoleWorker) {
		t.Fatalf("viewer must not cover worker")
	}
	if !HasRole(RoleViewer, RoleViewer) {
		t.Fatalf("viewer should cover itself")
	}
}

func TestHasRole_WorkerAndViewerAreSiblings(t *testing.T) {
	if HasRole(RoleWorker, RoleViewer) {
		t.Fatalf("worker must not cover viewer")
	}
	if HasRole(RoleViewer, RoleWorker) {
		t.Fatalf("viewer must not cover worker")
	}
}

func TestHasRole_UnknownRole(t *testing.T) {
	if HasRole("", RoleViewer) {
		t.Fatalf("empty role matched")
	}
	if HasRole("superuser", RoleOwner, RoleViewer) {
		t.Fatalf("unknown role matched")
	}
}

func TestHasFeaturePermission_Table(t *testing.T) {
	cases := []struct {
		role    Role
		feature string
		want    bool
	}{
		{RoleOwner, FeatureReports, true},
		{RoleOwner, FeatureAccounting, true},
		{RoleManager, FeatureSales, true},
		{RoleManager, FeatureZATCA, true},
		{RoleAccountant, FeatureAccounting, true},
		{RoleAccountant, FeatureDailyOperations, true},
		{RoleWorker, FeatureDailyOperations, true},
		{RoleWorker, FeatureInventory, true},
		{RoleWorker, FeatureBiological, true},
		{RoleWorker, FeatureAccounting, false},
		{RoleWorker, FeatureReports, false},
		{RoleWorker, FeatureSales, false},
		{RoleViewer, FeatureReports, false},
		{RoleViewer, FeatureDailyOperations, false},
		{RoleViewer, FeatureViewOnly, true},
		{RoleOwner, FeatureViewOnly, true},
	}
	for _, tc := range cases {
		if got := HasFeaturePermission(tc.role, tc.feature); got != tc.want {
			t.Errorf("HasFeaturePermission(%s, %s) = %v, want %v", tc.role, tc.feature, got, tc.want)
		}
	}
}

func TestHasFeaturePermission_UnknownFeatureIsClosed(t *testing.T) {
	if HasFeaturePermission(RoleOwner, "time_travel") {
		t.Fatalf("unknown feature should be denied for everyone, even owner")
	}
}

func TestConveniencePredicates(t *testing.T) {
	if !CanAccessOperations(RoleWorker) {
		t.Fatalf("worker should access daily operations")
	}
	if CanAccessAccounting(RoleWorker) {
		t.Fatalf("worker must not access accounting")
	}
	if !CanAccessReports(RoleAccountant) {
		t.Fatalf("accountant should access reports")
	}
	if CanAccessSales(RoleViewer) {
		t.Fatalf("viewer must not access sales")
	}
	if !CanAccessInventory(RoleManager) {
		t.Fatalf("manager should access inventory")
	}
	if !CanAccessBiological(RoleWorker) {
		t.Fatalf("worker should access biological features")
	}
}
