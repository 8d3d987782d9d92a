package iis

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/samvad-hq/iis-schedule-client/pkg/httpclient"
)

// newSampleServer serves the captured samples, keyed by path plus raw query.
func newSampleServer(t *testing.T) *httptest.Server {
	t.Helper()
	routes := map[string]string{
		currentWeekPath:  "3",
		auditoriesPath:   sampleAuditories,
		departmentsPath:  sampleDepartments,
		facultiesPath:    sampleFaculties,
		employeesPath:    sampleEmployees,
		groupsPath:       sampleGroups,
		specialitiesPath: sampleSpecialities,
		lastUpdatePath + "student-group?groupNumber=155841": sampleLastUpdate,
		announcementsPath + "employees?url-id=s-nesterenkov": sampleAnnouncements,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Path
		if r.URL.RawQuery != "" {
			key += "?" + r.URL.RawQuery
		}
		body, ok := routes[key]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClientEndpointsDecodeSamples(t *testing.T) {
	srv := newSampleServer(t)
	c := New(srv.URL)
	ctx := context.Background()

	week, err := c.CurrentWeek(ctx)
	if err != nil || week != 3 {
		t.Fatalf("CurrentWeek = %d, %v", week, err)
	}

	auds, err := c.Auditories(ctx)
	if err != nil {
		t.Fatalf("Auditories: %v", err)
	}
	if len(auds) != 2 {
		t.Fatalf("expected 2 auditories, got %d", len(auds))
	}
	first := auds[0]
	if first.Note != nil || first.Capacity == nil || *first.Capacity != 120 {
		t.Fatalf("unexpected optional fields on first auditory: %+v", first)
	}
	if first.Department == nil || first.Department.IDDepartment != 20 || first.Department.NameAndAbbrev != "Высшей математики (ВМ)" {
		t.Fatalf("unexpected department: %+v", first.Department)
	}
	if first.AuditoryType.Abbrev != "лк" || first.BuildingNumber.Name != "1 к." {
		t.Fatalf("unexpected nested records: %+v", first)
	}
	second := auds[1]
	if second.Note == nil || *second.Note != "ремонт" || second.Capacity != nil || second.Department != nil {
		t.Fatalf("unexpected optional fields on second auditory: %+v", second)
	}

	deps, err := c.Departments(ctx)
	if err != nil || len(deps) != 1 || deps[0].Abbrev != "ВМ" {
		t.Fatalf("Departments = %+v, %v", deps, err)
	}

	facs, err := c.Faculties(ctx)
	if err != nil || len(facs) != 1 || facs[0].ID != 20017 {
		t.Fatalf("Faculties = %+v, %v", facs, err)
	}

	emps, err := c.Employees(ctx)
	if err != nil || len(emps) != 1 {
		t.Fatalf("Employees = %+v, %v", emps, err)
	}
	emp := emps[0]
	if emp.URLID != "s-nesterenkov" || emp.Rank != nil || len(emp.AcademicDepartment) != 2 || emp.CalendarID == "" {
		t.Fatalf("unexpected employee: %+v", emp)
	}

	groups, err := c.Groups(ctx)
	if err != nil || len(groups) != 2 {
		t.Fatalf("Groups = %+v, %v", groups, err)
	}
	if groups[0].Course == nil || *groups[0].Course != 3 || groups[0].CalendarID == nil {
		t.Fatalf("unexpected first group: %+v", groups[0])
	}
	if groups[1].Course != nil || groups[1].CalendarID != nil || groups[1].SpecialityDepartmentEducationFormID != nil {
		t.Fatalf("expected absent optionals on second group: %+v", groups[1])
	}

	specs, err := c.Specialities(ctx)
	if err != nil || len(specs) != 1 || specs[0].EducationForm.Name != "дневная" || specs[0].Code != "1-40 01 01" {
		t.Fatalf("Specialities = %+v, %v", specs, err)
	}

	lu, err := c.LastUpdate(ctx, LastUpdateByGroupNumber{GroupNumber: "155841"})
	if err != nil || lu.LastUpdateDate != "17.10.2026" {
		t.Fatalf("LastUpdate = %+v, %v", lu, err)
	}

	anns, err := c.Announcements(ctx, AnnouncementsOfEmployee{EmployeeURLID: "s-nesterenkov"})
	if err != nil || len(anns) != 1 {
		t.Fatalf("Announcements = %+v, %v", anns, err)
	}
	if anns[0].Date != "19.10.2026" || len(anns[0].StudentGroups) != 1 || anns[0].StudentGroups[0].Name != "155841" {
		t.Fatalf("unexpected announcement: %+v", anns[0])
	}
}

type stubResponse struct {
	body   string
	status int
}

func (s stubResponse) Body() []byte    { return []byte(s.body) }
func (s stubResponse) StatusCode() int { return s.status }

// stubHTTPClient records requested URLs and returns a fixed response or error.
type stubHTTPClient struct {
	resp stubResponse
	err  error
	urls []string
}

func (s *stubHTTPClient) Get(_ context.Context, url string, headers map[string]string) (httpclient.Response, error) {
	s.urls = append(s.urls, url)
	if len(headers) != 0 {
		return nil, errors.New("unexpected headers")
	}
	if s.err != nil {
		return nil, s.err
	}
	status := s.resp.status
	if status == 0 {
		status = http.StatusOK
	}
	return stubResponse{body: s.resp.body, status: status}, nil
}

func TestCurrentWeekDecoding(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    WeekNumber
		wantErr bool
	}{
		{name: "plain", body: "17", want: 17},
		{name: "trailing newline", body: "2\n", want: 2},
		{name: "not a number", body: "abc", wantErr: true},
		{name: "negative", body: "-1", wantErr: true},
		{name: "json object", body: `{"week":1}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New("https://iis.example", WithHTTPClient(&stubHTTPClient{resp: stubResponse{body: tt.body}}))
			got, err := c.CurrentWeek(context.Background())
			if tt.wantErr {
				var decErr *DecodeError
				if !errors.As(err, &decErr) {
					t.Fatalf("expected DecodeError, got %v", err)
				}
				if got != 0 {
					t.Fatalf("expected zero week on error, got %d", got)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("CurrentWeek = %d, %v; want %d", got, err, tt.want)
			}
		})
	}
}

func TestClientBuildsURLsFromBase(t *testing.T) {
	stub := &stubHTTPClient{resp: stubResponse{body: `{"lastUpdateDate":"01.09.2026"}`}}
	c := New("https://iis.example", WithHTTPClient(stub))
	ctx := context.Background()

	queries := []LastUpdateQuery{
		LastUpdateByGroupNumber{GroupNumber: "155841"},
		LastUpdateByGroupID{GroupID: 23480},
		LastUpdateByEmployeeURLID{URLID: "s-nesterenkov"},
		LastUpdateByEmployeeID{EmployeeID: 500434},
	}
	for _, q := range queries {
		if _, err := c.LastUpdate(ctx, q); err != nil {
			t.Fatalf("LastUpdate(%T): %v", q, err)
		}
	}

	want := []string{
		"https://iis.example/api/v1/last-update-date/student-group?groupNumber=155841",
		"https://iis.example/api/v1/last-update-date/student-group?id=23480",
		"https://iis.example/api/v1/last-update-date/employee?url-id=s-nesterenkov",
		"https://iis.example/api/v1/last-update-date/employee?id=500434",
	}
	if strings.Join(stub.urls, "\n") != strings.Join(want, "\n") {
		t.Fatalf("requested urls:\n%s\nwant:\n%s", strings.Join(stub.urls, "\n"), strings.Join(want, "\n"))
	}

	stub.urls = nil
	stub.resp = stubResponse{body: `[]`}
	if _, err := c.Announcements(ctx, AnnouncementsOfDepartment{DepartmentID: 20}); err != nil {
		t.Fatalf("Announcements: %v", err)
	}
	if len(stub.urls) != 1 || stub.urls[0] != "https://iis.example/api/v1/announcements/departments?id=20" {
		t.Fatalf("unexpected announcements url %v", stub.urls)
	}
}

func TestNilQueriesAreRejectedWithoutRequest(t *testing.T) {
	stub := &stubHTTPClient{}
	c := New("https://iis.example", WithHTTPClient(stub))

	if _, err := c.LastUpdate(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil last update query")
	}
	if _, err := c.Announcements(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil announcement query")
	}
	if len(stub.urls) != 0 {
		t.Fatalf("expected no requests, got %v", stub.urls)
	}
}

func TestUnreachableHostYieldsFetchErrorFromEveryMethod(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := New(base, WithHTTPClient(httpclient.NewRestyClient(2*time.Second)))
	ctx := context.Background()

	calls := map[string]func() error{
		"CurrentWeek":  func() error { _, err := c.CurrentWeek(ctx); return err },
		"Auditories":   func() error { _, err := c.Auditories(ctx); return err },
		"Departments":  func() error { _, err := c.Departments(ctx); return err },
		"Faculties":    func() error { _, err := c.Faculties(ctx); return err },
		"Employees":    func() error { _, err := c.Employees(ctx); return err },
		"Groups":       func() error { _, err := c.Groups(ctx); return err },
		"Specialities": func() error { _, err := c.Specialities(ctx); return err },
		"LastUpdate": func() error {
			_, err := c.LastUpdate(ctx, LastUpdateByGroupID{GroupID: 1})
			return err
		},
		"Announcements": func() error {
			_, err := c.Announcements(ctx, AnnouncementsOfDepartment{DepartmentID: 1})
			return err
		},
	}
	for name, call := range calls {
		err := call()
		var fetchErr *FetchError
		if !errors.As(err, &fetchErr) {
			t.Errorf("%s: expected FetchError, got %v", name, err)
			continue
		}
		if !errors.Is(err, ErrFetch) || errors.Is(err, ErrDecode) {
			t.Errorf("%s: sentinel mismatch for %v", name, err)
		}
	}
}

func TestTruncatedListYieldsDecodeErrorAndNoElements(t *testing.T) {
	truncated := sampleGroups[:len(sampleGroups)/2]
	c := New("https://iis.example", WithHTTPClient(&stubHTTPClient{resp: stubResponse{body: truncated}}))

	groups, err := c.Groups(context.Background())
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode sentinel")
	}
	if groups != nil {
		t.Fatalf("expected nil slice, got %d elements", len(groups))
	}
	if decErr.Body == "" {
		t.Fatalf("expected body snippet on decode error")
	}
}

func TestTypeMismatchAndMissingFieldsYieldDecodeError(t *testing.T) {
	bodies := map[string]string{
		"wrong type":        `[{"id": "one", "name": "x", "abbrev": "y"}]`,
		"missing required":  `[{"id": 1, "name": "x"}]`,
		"null required":     `[{"id": 1, "name": null, "abbrev": "y"}]`,
		"object not list":   `{"id": 1, "name": "x", "abbrev": "y"}`,
		"null body":         `null`,
		"partial good list": `[{"id": 1, "name": "x", "abbrev": "y"}, {"id": 2}]`,
	}
	for name, body := range bodies {
		c := New("https://iis.example", WithHTTPClient(&stubHTTPClient{resp: stubResponse{body: body}}))
		faculties, err := c.Faculties(context.Background())
		var decErr *DecodeError
		if !errors.As(err, &decErr) {
			t.Errorf("%s: expected DecodeError, got %v", name, err)
		}
		if faculties != nil {
			t.Errorf("%s: expected nil slice, got %+v", name, faculties)
		}
	}
}

func TestNestedOptionalMayBeNullButItsFieldsAreRequired(t *testing.T) {
	body := `[{"id": 1, "name": "101", "auditoryType": {"id": 1, "name": "a", "abbrev": "b"},
	  "buildingNumber": {"id": 1, "name": "1"}, "department": {"idDepartment": 2, "abbrev": "x"}}]`
	c := New("https://iis.example", WithHTTPClient(&stubHTTPClient{resp: stubResponse{body: body}}))

	_, err := c.Auditories(context.Background())
	if err == nil || !strings.Contains(err.Error(), "[0].department.name") {
		t.Fatalf("expected missing department.name error, got %v", err)
	}
}

func TestStatusCheck(t *testing.T) {
	resp := stubResponse{body: `{"lastUpdateDate":"01.01.2026"}`, status: http.StatusInternalServerError}

	strict := New("https://iis.example", WithHTTPClient(&stubHTTPClient{resp: resp}))
	_, err := strict.LastUpdate(context.Background(), LastUpdateByGroupID{GroupID: 1})
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected StatusError 500, got %v", err)
	}
	if !errors.Is(err, ErrFetch) {
		t.Fatalf("status error should be reported as a fetch error")
	}

	lenient := New("https://iis.example", WithHTTPClient(&stubHTTPClient{resp: resp}), WithStatusCheck(false))
	lu, err := lenient.LastUpdate(context.Background(), LastUpdateByGroupID{GroupID: 1})
	if err != nil || lu.LastUpdateDate != "01.01.2026" {
		t.Fatalf("lenient LastUpdate = %+v, %v", lu, err)
	}
}

func TestEmployeeDisplayName(t *testing.T) {
	if got := (Employee{Fio: "Нестеренков С. Н."}).DisplayName(); got != "Нестеренков С. Н." {
		t.Fatalf("DisplayName = %q", got)
	}
	e := Employee{FirstName: "Сергей", LastName: "Нестеренков", MiddleName: " "}
	if got := e.DisplayName(); got != "Нестеренков Сергей" {
		t.Fatalf("DisplayName fallback = %q", got)
	}
}
