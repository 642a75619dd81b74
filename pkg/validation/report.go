package validation

import "strings"

// Context tells the validators whether uniqueness against existing users applies.
type Context int

const (
	Registration Context = iota
	Login
)

func (c Context) String() string {
	if c == Login {
		return "login"
	}
	return "registration"
}

// ParseContext maps "login" to Login and anything else to Registration.
func ParseContext(s string) Context {
	if strings.EqualFold(s, "login") {
		return Login
	}
	return Registration
}

// Result is the outcome of a single validator. Reason is empty for a valid
// value and also for an empty required value.
type Result struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

func OK() Result {
	return Result{Valid: true}
}

func Fail(reason string) Result {
	return Result{Reason: reason}
}

type FieldResult struct {
	Field string `json:"field"`
	Result
}

// Report collects the result of every field of a form in order. It never
// stops at the first failure.
type Report struct {
	results []FieldResult
}

func NewReport() *Report {
	return &Report{}
}

func (r *Report) Add(field string, res Result) *Report {
	r.results = append(r.results, FieldResult{Field: field, Result: res})
	return r
}

func (r *Report) Results() []FieldResult {
	return r.results
}

// Valid is true only when every field is valid.
func (r *Report) Valid() bool {
	for _, res := range r.results {
		if !res.Valid {
			return false
		}
	}
	return true
}

// Errors maps every failed field to its reason.
func (r *Report) Errors() map[string]string {
	out := make(map[string]string)
	for _, res := range r.results {
		if !res.Valid {
			out[res.Field] = res.Reason
		}
	}
	return out
}

func (r *Report) First() (FieldResult, bool) {
	for _, res := range r.results {
		if !res.Valid {
			return res, true
		}
	}
	return FieldResult{}, false
}

// Err returns nil for a valid report and an *Error otherwise.
func (r *Report) Err() error {
	if r.Valid() {
		return nil
	}
	return &Error{Report: r}
}
