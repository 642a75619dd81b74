package validation

const MsgRequiredFields = "Por favor completa todos los campos requeridos"

// Error carries a failed Report through the use case layer.
type Error struct {
	Report *Report
}

// Failure builds an Error for a single field.
func Failure(field, reason string) *Error {
	return &Error{Report: NewReport().Add(field, Fail(reason))}
}

func (e *Error) Error() string {
	for _, res := range e.Report.Results() {
		if !res.Valid && res.Reason != "" {
			return res.Reason
		}
	}
	return MsgRequiredFields
}

func (e *Error) Details() map[string]string {
	return e.Report.Errors()
}
