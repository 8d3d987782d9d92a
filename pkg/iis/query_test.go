package iis

import "testing"

func TestQueryParams(t *testing.T) {
	tests := []struct {
		name string
		q    interface{ QueryParams() string }
		want string
	}{
		{"group number", LastUpdateByGroupNumber{GroupNumber: "155841"}, "student-group?groupNumber=155841"},
		{"group id", LastUpdateByGroupID{GroupID: 23480}, "student-group?id=23480"},
		{"employee url id", LastUpdateByEmployeeURLID{URLID: "s-nesterenkov"}, "employee?url-id=s-nesterenkov"},
		{"employee id", LastUpdateByEmployeeID{EmployeeID: 500434}, "employee?id=500434"},
		{"department announcements", AnnouncementsOfDepartment{DepartmentID: 20}, "departments?id=20"},
		{"employee announcements", AnnouncementsOfEmployee{EmployeeURLID: "s-nesterenkov"}, "employees?url-id=s-nesterenkov"},
		{"no escaping", LastUpdateByGroupNumber{GroupNumber: "a b&c"}, "student-group?groupNumber=a b&c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.QueryParams(); got != tt.want {
				t.Fatalf("QueryParams() = %q, want %q", got, tt.want)
			}
		})
	}
}
