package iis

import "strings"

// Wire names are the Go field name with the first letter lowercased.

// AuditoryType classifies a room (lecture hall, lab, ...).
type AuditoryType struct {
	ID     uint32 `json:"id"`
	Name   string `json:"name"`
	Abbrev string `json:"abbrev"`
}

// BuildingNumber identifies the building an auditory belongs to.
type BuildingNumber struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
}

// AuditoryDepartment is the department embedded in an auditory record.
type AuditoryDepartment struct {
	IDDepartment  uint32 `json:"idDepartment"`
	Abbrev        string `json:"abbrev"`
	Name          string `json:"name"`
	NameAndAbbrev string `json:"nameAndAbbrev"`
}

// Auditory is a room that lessons can be scheduled in.
type Auditory struct {
	ID             uint32              `json:"id"`
	Name           string              `json:"name"`
	Note           *string             `json:"note"`
	Capacity       *uint32             `json:"capacity"`
	AuditoryType   AuditoryType        `json:"auditoryType"`
	BuildingNumber BuildingNumber      `json:"buildingNumber"`
	Department     *AuditoryDepartment `json:"department"`
}

// Department is an academic department.
type Department struct {
	ID     uint32 `json:"id"`
	Name   string `json:"name"`
	Abbrev string `json:"abbrev"`
}

// Faculty is a university faculty.
type Faculty struct {
	ID     uint32 `json:"id"`
	Name   string `json:"name"`
	Abbrev string `json:"abbrev"`
}

// Employee is a member of the teaching staff.
type Employee struct {
	ID                 uint32   `json:"id"`
	FirstName          string   `json:"firstName"`
	LastName           string   `json:"lastName"`
	MiddleName         string   `json:"middleName"`
	Degree             string   `json:"degree"`
	Rank               *string  `json:"rank"`
	PhotoLink          string   `json:"photoLink"`
	CalendarID         string   `json:"calendarId"`
	AcademicDepartment []string `json:"academicDepartment"`
	URLID              string   `json:"urlId"`
	Fio                string   `json:"fio"`
}

// DisplayName returns the API-provided short name, or the joined name parts when it is empty.
func (e Employee) DisplayName() string {
	if strings.TrimSpace(e.Fio) != "" {
		return e.Fio
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{e.LastName, e.FirstName, e.MiddleName} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Group is a student group. FacultyID refers to Faculty.ID.
type Group struct {
	ID                                  uint32  `json:"id"`
	Name                                string  `json:"name"`
	FacultyID                           uint32  `json:"facultyId"`
	FacultyName                         string  `json:"facultyName"`
	SpecialityDepartmentEducationFormID *uint32 `json:"specialityDepartmentEducationFormId"`
	SpecialityName                      string  `json:"specialityName"`
	Course                              *uint32 `json:"course"`
	CalendarID                          *string `json:"calendarId"`
}

// EducationForm is full-time, part-time, distance, etc.
type EducationForm struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
}

// Speciality is a degree programme.
type Speciality struct {
	ID            uint32        `json:"id"`
	Name          string        `json:"name"`
	Abbrev        string        `json:"abbrev"`
	EducationForm EducationForm `json:"educationForm"`
	FacultyID     uint32        `json:"facultyId"`
	Code          string        `json:"code"`
}

// StudentGroup is the short group reference embedded in announcements.
type StudentGroup struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
}

// Announcement is a notice posted by an employee. Date is kept as sent.
type Announcement struct {
	ID                  uint32         `json:"id"`
	Employee            string         `json:"employee"`
	Content             string         `json:"content"`
	Date                string         `json:"date"`
	EmployeeDepartments []string       `json:"employeeDepartments"`
	StudentGroups       []StudentGroup `json:"studentGroups"`
}

// LastUpdate holds the date a schedule was last modified.
type LastUpdate struct {
	LastUpdateDate string `json:"lastUpdateDate"`
}

// WeekNumber is the current week of the academic cycle.
type WeekNumber uint32
