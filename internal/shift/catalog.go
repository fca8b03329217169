package shift

// Shift type tags.
const (
	TypeInternal      = "Internal"
	TypeManager       = "Manager"
	TypeNightShift    = "Night Shift"
	TypeOfficeStaff   = "Office Staff"
	TypeOnCallOnSite  = "On Call – On Site"
	TypeOnCallShift   = "On Call Shift"
	TypeShadowing     = "Shadowing"
	TypeSupportWorker = "Support Worker"
	TypeTeamLeader    = "Team Leader"
	TypeTraining      = "Training"
)

// Types returns the known shift types in display order.
func Types() []string {
	return []string{
		TypeInternal,
		TypeManager,
		TypeNightShift,
		TypeOfficeStaff,
		TypeOnCallOnSite,
		TypeOnCallShift,
		TypeShadowing,
		TypeSupportWorker,
		TypeTeamLeader,
		TypeTraining,
	}
}

// Roles returns the worker categories a shift can require.
func Roles() []Category {
	return []Category{
		CategorySupportWorker,
		CategorySeniorSupportWorker,
		CategoryTeamLeader,
		CategoryManager,
	}
}
