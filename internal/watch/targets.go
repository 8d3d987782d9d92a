package watch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samvad-hq/iis-schedule-client/pkg/fileconf"
	"github.com/samvad-hq/iis-schedule-client/pkg/iis"
)

// Target kinds, one per last-update query variant.
const (
	KindGroupNumber   = "group_number"
	KindGroupID       = "group_id"
	KindEmployeeURLID = "employee_url_id"
	KindEmployeeID    = "employee_id"
)

// Target is a schedule whose last-update date is polled.
type Target struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Kind  string `json:"kind" yaml:"kind"`
	Value string `json:"value" yaml:"value"`
}

type targetsFile struct {
	Targets []Target `json:"targets" yaml:"targets"`
}

// Query maps the target onto the matching last-update query.
func (t Target) Query() (iis.LastUpdateQuery, error) {
	switch t.Kind {
	case KindGroupNumber:
		return iis.LastUpdateByGroupNumber{GroupNumber: t.Value}, nil
	case KindEmployeeURLID:
		return iis.LastUpdateByEmployeeURLID{URLID: t.Value}, nil
	case KindGroupID, KindEmployeeID:
		n, err := strconv.ParseUint(t.Value, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("target %q: value %q is not a numeric id", t.ID, t.Value)
		}
		if t.Kind == KindGroupID {
			return iis.LastUpdateByGroupID{GroupID: uint32(n)}, nil
		}
		return iis.LastUpdateByEmployeeID{EmployeeID: uint32(n)}, nil
	default:
		return nil, fmt.Errorf("target %q: unknown kind %q", t.ID, t.Kind)
	}
}

// LoadTargets reads and validates a YAML or JSON targets file.
func LoadTargets(path string) ([]Target, error) {
	parsed, err := fileconf.Load[targetsFile](path, "targets")
	if err != nil {
		return nil, err
	}
	if len(parsed.Targets) == 0 {
		return nil, errors.New("targets file contains no targets entries")
	}

	seen := make(map[string]struct{}, len(parsed.Targets))
	out := make([]Target, 0, len(parsed.Targets))
	for i, t := range parsed.Targets {
		t = sanitizeTarget(t)
		if err := validateTarget(t); err != nil {
			return nil, fmt.Errorf("targets[%d]: %w", i, err)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("duplicate target id %q", t.ID)
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out, nil
}

func sanitizeTarget(t Target) Target {
	t.ID = strings.TrimSpace(t.ID)
	t.Name = strings.TrimSpace(t.Name)
	t.Kind = strings.ToLower(strings.TrimSpace(t.Kind))
	t.Value = strings.TrimSpace(t.Value)
	if t.Name == "" {
		t.Name = t.ID
	}
	return t
}

func validateTarget(t Target) error {
	if t.ID == "" {
		return errors.New("id is required")
	}
	if t.Kind == "" {
		return fmt.Errorf("kind is required for target %q", t.ID)
	}
	if t.Value == "" {
		return fmt.Errorf("value is required for target %q", t.ID)
	}
	_, err := t.Query()
	return err
}
