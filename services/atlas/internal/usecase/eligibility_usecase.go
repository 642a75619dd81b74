package usecase

import "atlas/pkg/validation"

type EligibilityUseCase interface {
	CheckSchool(code string) validation.SchoolResult
	CheckInstitutionalEmail(email string) validation.Result
}

type eligibilityUseCase struct{}

func NewEligibilityUseCase() EligibilityUseCase {
	return eligibilityUseCase{}
}

func (eligibilityUseCase) CheckSchool(code string) validation.SchoolResult {
	return validation.SchoolCode(code)
}

func (eligibilityUseCase) CheckInstitutionalEmail(email string) validation.Result {
	return validation.InstitutionalEmail(email)
}
