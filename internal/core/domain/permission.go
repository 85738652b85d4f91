package domain

// Permission is an enumerated capability name. Values match the resource
// names stored in the resources table.
type Permission string

const (
	PermPostHoliday   Permission = "POST_HOLIDAY"
	PermPutHoliday    Permission = "PUT_HOLIDAY"
	PermGetHoliday    Permission = "GET_HOLIDAY"
	PermPostTimesheet Permission = "POST_TIMESHEET"
	PermGetTimesheet  Permission = "GET_TIMESHEET"
	PermPatchUser     Permission = "PATCH_USER"
	PermPutPassword   Permission = "PUT_USER_PASSWORD"
	PermGetUser       Permission = "GET_USER"
	PermGetGroup      Permission = "GET_GROUP"
)

// PermissionSet is the effective capability set of a caller, resolved once
// per request from their group's resource links.
type PermissionSet map[Permission]struct{}

// NewPermissionSet builds a set from stored resource names.
func NewPermissionSet(names []string) PermissionSet {
	set := make(PermissionSet, len(names))
	for _, name := range names {
		set[Permission(name)] = struct{}{}
	}
	return set
}

// Has reports whether the set grants the given permission.
func (s PermissionSet) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}
