package iis

import "fmt"

// LastUpdateQuery selects whose schedule the last-update endpoint reports on.
// The set of variants is closed.
type LastUpdateQuery interface {
	QueryParams() string
	lastUpdateQuery()
}

// AnnouncementQuery selects whose announcements to list. The set of variants is closed.
type AnnouncementQuery interface {
	QueryParams() string
	announcementQuery()
}

// Values are formatted verbatim; callers must pass URL-safe identifiers.

// LastUpdateByGroupNumber queries by the printed group number, e.g. "155841".
type LastUpdateByGroupNumber struct {
	GroupNumber string
}

func (q LastUpdateByGroupNumber) QueryParams() string {
	return fmt.Sprintf("student-group?groupNumber=%s", q.GroupNumber)
}

func (LastUpdateByGroupNumber) lastUpdateQuery() {}

// LastUpdateByGroupID queries by Group.ID.
type LastUpdateByGroupID struct {
	GroupID uint32
}

func (q LastUpdateByGroupID) QueryParams() string {
	return fmt.Sprintf("student-group?id=%d", q.GroupID)
}

func (LastUpdateByGroupID) lastUpdateQuery() {}

// LastUpdateByEmployeeURLID queries by Employee.URLID.
type LastUpdateByEmployeeURLID struct {
	URLID string
}

func (q LastUpdateByEmployeeURLID) QueryParams() string {
	return fmt.Sprintf("employee?url-id=%s", q.URLID)
}

func (LastUpdateByEmployeeURLID) lastUpdateQuery() {}

// LastUpdateByEmployeeID queries by Employee.ID.
type LastUpdateByEmployeeID struct {
	EmployeeID uint32
}

func (q LastUpdateByEmployeeID) QueryParams() string {
	return fmt.Sprintf("employee?id=%d", q.EmployeeID)
}

func (LastUpdateByEmployeeID) lastUpdateQuery() {}

// AnnouncementsOfDepartment lists announcements addressed to a department.
type AnnouncementsOfDepartment struct {
	DepartmentID uint32
}

func (q AnnouncementsOfDepartment) QueryParams() string {
	return fmt.Sprintf("departments?id=%d", q.DepartmentID)
}

func (AnnouncementsOfDepartment) announcementQuery() {}

// AnnouncementsOfEmployee lists announcements posted by an employee.
type AnnouncementsOfEmployee struct {
	EmployeeURLID string
}

func (q AnnouncementsOfEmployee) QueryParams() string {
	return fmt.Sprintf("employees?url-id=%s", q.EmployeeURLID)
}

func (AnnouncementsOfEmployee) announcementQuery() {}
