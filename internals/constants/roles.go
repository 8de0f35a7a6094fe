package constants

import "fmt"

type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleCenterAdmin   Role = "admin_pusat"
	RoleCenterManager Role = "pengurus_pusat"
	RoleCenterTeacher Role = "pengajar_pusat"
	RoleStudent       Role = "pelajar"
)

var AllRoles = []Role{
	RoleAdministrator,
	RoleCenterAdmin,
	RoleCenterManager,
	RoleCenterTeacher,
	RoleStudent,
}

func (r Role) Valid() bool {
	_, ok := capabilitiesByRole[r]
	return ok
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Capability = satu kelompok operasi yang boleh dijalankan sebuah role.
type Capability string

const (
	CapUsersView         Capability = "users:view"
	CapUsersManage       Capability = "users:manage"
	CapCentersView       Capability = "centers:view"
	CapCentersManage     Capability = "centers:manage"
	CapMembersView       Capability = "members:view"
	CapTeachersManage    Capability = "teachers:manage"
	CapStudentsManage    Capability = "students:manage"
	CapClassesView       Capability = "classes:view"
	CapClassesManage     Capability = "classes:manage"
	CapEnrollmentsManage Capability = "enrollments:manage"
	CapAttendanceView    Capability = "attendance:view"
	CapAttendanceRecord  Capability = "attendance:record"
	CapPaymentsView      Capability = "payments:view"
	CapPaymentsManage    Capability = "payments:manage"
	CapVideosView        Capability = "videos:view"
	CapVideosManage      Capability = "videos:manage"
	CapMaterialsView     Capability = "materials:view"
	CapMaterialsManage   Capability = "materials:manage"
	CapFundsView         Capability = "funds:view"
	CapFundsManage       Capability = "funds:manage"
	CapReportsView       Capability = "reports:view"
)

var allCapabilities = []Capability{
	CapUsersView, CapUsersManage,
	CapCentersView, CapCentersManage,
	CapMembersView, CapTeachersManage, CapStudentsManage,
	CapClassesView, CapClassesManage, CapEnrollmentsManage,
	CapAttendanceView, CapAttendanceRecord,
	CapPaymentsView, CapPaymentsManage,
	CapVideosView, CapVideosManage,
	CapMaterialsView, CapMaterialsManage,
	CapFundsView, CapFundsManage,
	CapReportsView,
}

func without(all []Capability, drop ...Capability) []Capability {
	out := make([]Capability, 0, len(all))
next:
	for _, c := range all {
		for _, d := range drop {
			if c == d {
				continue next
			}
		}
		out = append(out, c)
	}
	return out
}

func setOf(caps []Capability) map[Capability]struct{} {
	m := make(map[Capability]struct{}, len(caps))
	for _, c := range caps {
		m[c] = struct{}{}
	}
	return m
}

// Tabel role → capability. Hanya administrator yang boleh kelola pusat.
var capabilitiesByRole = map[Role]map[Capability]struct{}{
	RoleAdministrator: setOf(allCapabilities),
	RoleCenterAdmin:   setOf(without(allCapabilities, CapCentersManage)),
	RoleCenterManager: setOf([]Capability{
		CapUsersView, CapCentersView, CapMembersView,
		CapStudentsManage,
		CapClassesView, CapClassesManage, CapEnrollmentsManage,
		CapAttendanceView, CapAttendanceRecord,
		CapPaymentsView, CapPaymentsManage,
		CapVideosView,
		CapMaterialsView, CapMaterialsManage,
		CapFundsView, CapFundsManage,
		CapReportsView,
	}),
	RoleCenterTeacher: setOf([]Capability{
		CapCentersView, CapMembersView,
		CapClassesView,
		CapAttendanceView, CapAttendanceRecord,
		CapVideosView, CapVideosManage,
		CapMaterialsView,
	}),
	RoleStudent: setOf([]Capability{
		CapCentersView,
		CapClassesView,
		CapVideosView,
	}),
}

// Can: apakah role punya capability tsb. Role tak dikenal selalu false.
func (r Role) Can(c Capability) bool {
	caps, ok := capabilitiesByRole[r]
	if !ok {
		return false
	}
	_, ok = caps[c]
	return ok
}

// Template pesan error capability
const ErrMissingCapability = "role %s is not allowed to %s"

func CapabilityError(r Role, c Capability) string {
	return fmt.Sprintf(ErrMissingCapability, r, c)
}
