package education

import (
	"fmt"

	"github.com/halcyonworks/QuarterLife_Go/internal/catalog"
	"github.com/halcyonworks/QuarterLife_Go/internal/domain"
	"github.com/halcyonworks/QuarterLife_Go/internal/utils"
)

// CanEnroll decides whether the history allows enrolling in the program.
// Pure function: no side effects, no funds deduction. Checks run in a fixed
// order and the first failing check wins.
func CanEnroll(c *catalog.Catalog, history domain.EnrollmentHistory, programID string) domain.EligibilityResult {
	program, ok := c.FindByID(programID)
	if !ok {
		return domain.EligibilityResult{Reason: ReasonNotFound}
	}

	if history.HasCompleted(programID) {
		return domain.EligibilityResult{Reason: ReasonAlreadyCompleted}
	}

	if history.ActiveProgramID == programID {
		return domain.EligibilityResult{Reason: ReasonAlreadyEnrolled}
	}

	costDue := program.CostDue()
	if history.AvailableFunds < costDue {
		return domain.EligibilityResult{
			Reason: fmt.Sprintf(ReasonFmtInsufficientFunds, utils.FormatMoney(costDue)),
		}
	}

	if program.PrerequisiteProgramID != "" && !history.HasCompleted(program.PrerequisiteProgramID) {
		title := program.PrerequisiteProgramID
		if prereq, ok := c.FindByID(program.PrerequisiteProgramID); ok {
			title = prereq.Title
		}
		return domain.EligibilityResult{
			Reason: fmt.Sprintf(ReasonFmtMissingPrereq, title),
		}
	}

	return domain.EligibilityResult{Eligible: true, CostDue: costDue}
}
