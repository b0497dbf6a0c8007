// Package permissions answers whether a role may use a named feature.
// Both tables are fixed at build time; evaluation is a pure lookup with
// no I/O. The upstream ERP enforces the same rules independently — this
// table only decides what the console shows.
package permissions

// Role is a tenant user's role. The hierarchy is a chain from owner
// down to accountant; worker and viewer sit on separate branches and do
// not cover each other.
type Role string

const (
	RoleOwner      Role = "owner"
	RoleManager    Role = "manager"
	RoleAccountant Role = "accountant"
	RoleWorker     Role = "worker"
	RoleViewer     Role = "viewer"
)

// Feature names gate pages and API groups.
const (
	FeatureReports         = "reports"
	FeatureAccounting      = "accounting"
	FeatureSales           = "sales"
	FeatureZATCA           = "zatca"
	FeatureDailyOperations = "daily_operations"
	FeatureInventory       = "inventory"
	FeatureBiological      = "biological"
	FeatureViewOnly        = "view_only"
)

// rolePermissions maps a role to the set of roles it covers: itself
// plus everything beneath it in the hierarchy.
var rolePermissions = map[Role][]Role{
	RoleOwner:      {RoleOwner, RoleManager, RoleAccountant, RoleWorker, RoleViewer},
	RoleManager:    {RoleManager, RoleAccountant, RoleWorker, RoleViewer},
	RoleAccountant: {RoleAccountant, RoleViewer},
	RoleWorker:     {RoleWorker},
	RoleViewer:     {RoleViewer},
}

// featurePermissions maps a feature to the roles allowed to use it.
var featurePermissions = map[string][]Role{
	FeatureReports:         {RoleOwner, RoleManager, RoleAccountant},
	FeatureAccounting:      {RoleOwner, RoleManager, RoleAccountant},
	FeatureSales:           {RoleOwner, RoleManager, RoleAccountant},
	FeatureZATCA:           {RoleOwner, RoleManager, RoleAccountant},
	FeatureDailyOperations: {RoleOwner, RoleManager, RoleAccountant, RoleWorker},
	FeatureInventory:       {RoleOwner, RoleManager, RoleAccountant, RoleWorker},
	FeatureBiological:      {RoleOwner, RoleManager, RoleAccountant, RoleWorker},
	FeatureViewOnly:        {RoleOwner, RoleManager, RoleAccountant, RoleWorker, RoleViewer},
}

// HasRole reports whether role's covered set intersects allowed. An
// unknown or empty role never matches.
func HasRole(role Role, allowed ...Role) bool {
	covered, ok := rolePermissions[role]
	if !ok {
		return false
	}
	for _, want := range allowed {
		for _, have := range covered {
			if want == have {
				return true
			}
		}
	}
	return false
}

// HasFeaturePermission reports whether role may use the named feature.
// Unknown features are closed: nobody may use them.
func HasFeaturePermission(role Role, feature string) bool {
	return HasRole(role, featurePermissions[feature]...)
}

func CanAccessReports(role Role) bool    { return HasFeaturePermission(role, FeatureReports) }
func CanAccessAccounting(role Role) bool { return HasFeaturePermission(role, FeatureAccounting) }
func CanAccessSales(role Role) bool      { return HasFeaturePermission(role, FeatureSales) }
func CanAccessOperations(role Role) bool { return HasFeaturePermission(role, FeatureDailyOperations) }
func CanAccessInventory(role Role) bool  { return HasFeaturePermission(role, FeatureInventory) }
func CanAccessBiological(role Role) bool { return HasFeaturePermission(role, FeatureBiological) }
