package validation

import (
	"regexp"
	"strings"
)

const (
	MsgSchoolCodeFormat   = "Formato de clave de escuela inválido"
	MsgSchoolCodeUnknown  = "Clave de escuela no encontrada"
	MsgInstitutionalEmail = "El correo debe pertenecer a una institución educativa o gubernamental"
)

var schoolCodePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{2}[A-Z]{3}\d{4}[A-Z]$`),
	regexp.MustCompile(`^\d{2}[A-Z]{2}\d{3}$`),
}

type School struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	Eligible      bool   `json:"eligible"`
	Justification string `json:"justification"`
}

var schools = map[string]School{
	"21PES0001A": {
		Name:          "Escuela Secundaria Técnica Rural No. 1",
		Eligible:      true,
		Justification: "Escuela ubicada en zona rural con alto índice de marginación",
	},
	"21PES0002B": {
		Name:          "Telesecundaria Sierra Norte",
		Eligible:      true,
		Justification: "Escuela en comunidad indígena de la Sierra Norte de Puebla",
	},
	"21PES0004D": {
		Name:          "Colegio Particular del Centro",
		Eligible:      false,
		Justification: "Escuela privada en zona urbana sin indicadores de marginación",
	},
	"09DP123": {
		Name:          "Primaria Pública Benito Juárez",
		Eligible:      true,
		Justification: "Escuela pública con programa de becas federales",
	},
}

type SchoolResult struct {
	Result
	School
}

// NormalizeSchoolCode strips spaces and upper-cases the code.
func NormalizeSchoolCode(code string) string {
	return strings.ToUpper(strings.Join(strings.Fields(code), ""))
}

// SchoolCode checks the code shape and looks it up in the static school table.
// Unknown codes are invalid.
func SchoolCode(code string) SchoolResult {
	code = NormalizeSchoolCode(code)
	if code == "" {
		return SchoolResult{Result: Fail("")}
	}

	shaped := false
	for _, p := range schoolCodePatterns {
		if p.MatchString(code) {
			shaped = true
			break
		}
	}
	if !shaped {
		return SchoolResult{Result: Fail(MsgSchoolCodeFormat)}
	}

	school, ok := schools[code]
	if !ok {
		return SchoolResult{Result: Fail(MsgSchoolCodeUnknown)}
	}
	school.Code = code
	return SchoolResult{Result: OK(), School: school}
}

var institutionalDomains = []string{
	".gob.mx",
	".edu.mx",
	".edu",
	".gov",
	".sep.gob.mx",
	".unam.mx",
	".ipn.mx",
	".buap.mx",
}

// InstitutionalEmail accepts emails whose domain ends in a known government or
// education suffix. No DNS lookup is done.
func InstitutionalEmail(email string) Result {
	email = strings.TrimSpace(email)
	if email == "" {
		return Fail("")
	}
	if !IsEmail(email) {
		return Fail(MsgEmailInvalid)
	}

	domain := strings.ToLower(email[strings.LastIndex(email, "@"):])
	for _, suffix := range institutionalDomains {
		if strings.HasSuffix(domain, suffix) {
			return OK()
		}
	}
	return Fail(MsgInstitutionalEmail)
}
