package schemarule

import (
	"errors"
	"fmt"
)

// Level is the severity of a [Marker].
type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Marker is a single validation finding.
type Marker struct {
	Level   Level  `json:"level"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

func (m Marker) String() string {
	if m.Path == "" {
		return fmt.Sprintf("%s: %s", m.Level, m.Message)
	}
	return fmt.Sprintf("%s: %s: %s", m.Level, m.Path, m.Message)
}

// Markers is the result of a validation run.
type Markers []Marker

// Errors returns the error-level markers.
func (ms Markers) Errors() Markers {
	return ms.filter(LevelError)
}

// Warnings returns the warning-level markers.
func (ms Markers) Warnings() Markers {
	return ms.filter(LevelWarning)
}

// HasErrors reports whether any marker is error-level.
func (ms Markers) HasErrors() bool {
	for _, m := range ms {
		if m.Level == LevelError {
			return true
		}
	}
	return false
}

func (ms Markers) filter(l Level) Markers {
	var out Markers
	for _, m := range ms {
		if m.Level == l {
			out = append(out, m)
		}
	}
	return out
}

// WithPath returns a copy of ms with path set on markers that have none and
// prefixed onto those that do, e.g. "3" for the fourth car of a list.
func (ms Markers) WithPath(path string) Markers {
	out := make(Markers, len(ms))
	for i, m := range ms {
		switch {
		case path == "":
		case m.Path == "":
			m.Path = path
		default:
			m.Path = path + "." + m.Path
		}
		out[i] = m
	}
	return out
}

// Err returns nil when no error-level marker exists. Otherwise it returns
// [ValidationErrors] keyed by marker path; several failures on one path are
// joined.
func (ms Markers) Err() error {
	errs := ValidationErrors{}
	for _, m := range ms.Errors() {
		key := m.Path
		if key == "" {
			key = "value"
		}
		e := errors.New(m.Message)
		if prev, ok := errs[key]; ok {
			e = errors.Join(prev, e)
		}
		errs[key] = e
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
