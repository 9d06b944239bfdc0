package models

// UnitStatus is the closed set of lifecycle states reported for a unit.
// Manager states outside this set map to UnitStatusUnknown.
type UnitStatus string

const (
	UnitStatusActive       UnitStatus = "active"
	UnitStatusInactive     UnitStatus = "inactive"
	UnitStatusFailed       UnitStatus = "failed"
	UnitStatusActivating   UnitStatus = "activating"
	UnitStatusDeactivating UnitStatus = "deactivating"
	UnitStatusUnknown      UnitStatus = "unknown"
)

// ParseUnitStatus maps a raw active_state value onto the closed status set.
func ParseUnitStatus(activeState string) UnitStatus {
	switch activeState {
	case "active":
		return UnitStatusActive
	case "inactive":
		return UnitStatusInactive
	case "failed":
		return UnitStatusFailed
	case "activating":
		return UnitStatusActivating
	case "deactivating":
		return UnitStatusDeactivating
	default:
		return UnitStatusUnknown
	}
}

// UnitType is the coarse kind of a systemd unit, derived from the unit
// file name suffix.
type UnitType string

const (
	UnitTypeService UnitType = "service"
	UnitTypeSocket  UnitType = "socket"
	UnitTypeTimer   UnitType = "timer"
	UnitTypeMount   UnitType = "mount"
	UnitTypeTarget  UnitType = "target"
	UnitTypeOther   UnitType = "other"
)

// ServiceUnit represents one systemd-managed unit as reported by the
// host service manager. Instances are built fresh on every enumeration
// and never mutated afterwards.
type ServiceUnit struct {
	Name        string     `json:"name"`
	Status      UnitStatus `json:"status"`
	UnitType    UnitType   `json:"type"`
	Description string     `json:"description,omitempty"`
	LoadState   string     `json:"load_state,omitempty"`
	ActiveState string     `json:"active_state,omitempty"`
	SubState    string     `json:"sub_state,omitempty"`
}

// CategoryLabel is the closed set of functional categories a unit can
// classify into.
type CategoryLabel string

const (
	CategorySystemCore  CategoryLabel = "system-core"
	CategoryNetworking  CategoryLabel = "networking"
	CategoryMedia       CategoryLabel = "media"
	CategorySecurity    CategoryLabel = "security"
	CategoryDevelopment CategoryLabel = "development"
	CategoryMonitoring  CategoryLabel = "monitoring"
	CategoryStorage     CategoryLabel = "storage"
	CategoryOther       CategoryLabel = "other"
)

// EducationalContext is the explanatory text attached to a unit. All
// three fields are guaranteed non-empty by the enrichment fallback chain.
type EducationalContext struct {
	Description     string `json:"description"`
	Importance      string `json:"importance"`
	Troubleshooting string `json:"troubleshooting"`
}

// EnrichedUnit is a ServiceUnit joined with its category label and
// educational context. This is the per-unit shape served to the
// dashboard.
type EnrichedUnit struct {
	ServiceUnit
	Category  CategoryLabel      `json:"category"`
	Education EducationalContext `json:"education"`
}

// CriticalServiceEntry is one curated allow-list entry joined at query
// time with the matching live unit. Entries for units absent from the
// host still appear with status unknown.
type CriticalServiceEntry struct {
	Name            string     `json:"name"`
	Status          UnitStatus `json:"status"`
	SubState        string     `json:"sub_state,omitempty"`
	Importance      string     `json:"importance"`
	Troubleshooting string     `json:"troubleshooting"`
}
