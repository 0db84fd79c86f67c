package domain

import "strings"

// IntegrationType tags the source a record arrived from.
type IntegrationType string

const (
	IntegrationUnspecified    IntegrationType = ""
	IntegrationCSVImport      IntegrationType = "CSV_IMPORT"
	IntegrationThirdParty     IntegrationType = "THIRD_PARTY"
	IntegrationPlatformNative IntegrationType = "MYCASE"
)

// ParseIntegrationType maps a wire value onto a known integration type.
// Unknown values are treated as unspecified.
func ParseIntegrationType(s string) IntegrationType {
	switch IntegrationType(strings.ToUpper(strings.TrimSpace(s))) {
	case IntegrationCSVImport:
		return IntegrationCSVImport
	case IntegrationThirdParty:
		return IntegrationThirdParty
	case IntegrationPlatformNative:
		return IntegrationPlatformNative
	default:
		return IntegrationUnspecified
	}
}

// RequiresFullName reports whether records from this source need both a
// first and a last name before a client may be created.
func (t IntegrationType) RequiresFullName() bool {
	return t == IntegrationCSVImport || t == IntegrationThirdParty
}

// OverwritesBirthDate reports whether this source is authoritative for
// birth dates and may replace a stored value that differs.
func (t IntegrationType) OverwritesBirthDate() bool {
	switch t {
	case IntegrationCSVImport, IntegrationThirdParty, IntegrationPlatformNative:
		return true
	default:
		return false
	}
}

func (t IntegrationType) String() string {
	if t == IntegrationUnspecified {
		return "unspecified"
	}
	return string(t)
}
