package domain

// ProfileField names a mutable profile field of an Entity for the
// purpose of permission checks on partial updates.
type ProfileField string

const (
	FieldName              ProfileField = "name"
	FieldLegalForm         ProfileField = "legalForm"
	FieldRegistrationDate  ProfileField = "registrationDate"
	FieldCapital           ProfileField = "capital"
	FieldAddress           ProfileField = "address"
	FieldWebsite           ProfileField = "website"
	FieldBusinessLogo      ProfileField = "businessLogo"
	FieldContactEmail      ProfileField = "contactEmail"
	FieldContactPhone      ProfileField = "contactPhone"
	FieldManagementBoard   ProfileField = "managementBoard"
	FieldBeneficialOwners  ProfileField = "beneficialOwners"
	FieldStatus            ProfileField = "status"
	FieldTaxDebt           ProfileField = "taxDebt"
	FieldCommercialPledges ProfileField = "commercialPledges"
	FieldRelationships     ProfileField = "relationships"
)

// businessEditableFields are the profile fields a business actor may
// change on its own entity. Administrative standing (status, tax debt,
// pledges, relationships) and the legal identity of the entity stay
// with the registrar.
var businessEditableFields = map[ProfileField]bool{
	FieldAddress:          true,
	FieldWebsite:          true,
	FieldBusinessLogo:     true,
	FieldContactEmail:     true,
	FieldContactPhone:     true,
	FieldManagementBoard:  true,
	FieldBeneficialOwners: true,
}

// adminEditableFields covers every mutable profile field.
var adminEditableFields = map[ProfileField]bool{
	FieldName:              true,
	FieldLegalForm:         true,
	FieldRegistrationDate:  true,
	FieldCapital:           true,
	FieldAddress:           true,
	FieldWebsite:           true,
	FieldBusinessLogo:      true,
	FieldContactEmail:      true,
	FieldContactPhone:      true,
	FieldManagementBoard:   true,
	FieldBeneficialOwners:  true,
	FieldStatus:            true,
	FieldTaxDebt:           true,
	FieldCommercialPledges: true,
	FieldRelationships:     true,
}

// CanEditField decides whether a caller with the given role may modify
// the given profile field. RoleUser is read-only.
func CanEditField(role Role, field ProfileField) bool {
	switch role {
	case RoleAdmin:
		return adminEditableFields[field]
	case RoleBusiness:
		return businessEditableFields[field]
	default:
		return false
	}
}
