package dbmodels

import (
	"time"

	"github.com/casetrack/casetrack-backend/models"
	"github.com/casetrack/casetrack-backend/utils"
)

type DBCaseWorkflow struct {
	Id            string     `db:"id"`
	CaseId        string     `db:"case_id"`
	WorkflowType  string     `db:"workflow_type"`
	Status        string     `db:"status"`
	RequestedById string     `db:"requested_by_id"`
	ApprovedById  *string    `db:"approved_by_id"`
	RequestedAt   time.Time  `db:"requested_at"`
	ApprovedAt    *time.Time `db:"approved_at"`
	Comments      *string    `db:"comments"`
	IsActive      bool       `db:"is_active"`
}

const TABLE_CASE_WORKFLOWS = "case_workflows"

var SelectCaseWorkflowColumn = utils.ColumnList[DBCaseWorkflow]()

func SelectCaseWorkflowColumnWithAlias(alias string) []string {
	return utils.ColumnList[DBCaseWorkflow](alias)
}

func AdaptCaseWorkflow(db DBCaseWorkflow) (models.CaseWorkflow, error) {
	return models.CaseWorkflow{
		Id:            db.Id,
		CaseId:        db.CaseId,
		WorkflowType:  models.WorkflowType(db.WorkflowType),
		Status:        models.WorkflowStatus(db.Status),
		RequestedById: db.RequestedById,
		ApprovedById:  db.ApprovedById,
		RequestedAt:   db.RequestedAt,
		ApprovedAt:    db.ApprovedAt,
		Comments:      db.Comments,
	}, nil
}

// DBPendingWorkflow joins the approval queue row with its case headline.
type DBPendingWorkflow struct {
	DBCaseWorkflow
	CaseNumber       string `db:"case_number"`
	CaseStatus       string `db:"case_status"`
	OrganizationName string `db:"organization_name"`
	LegislationName  string `db:"legislation_name"`
}

func AdaptPendingWorkflow(db DBPendingWorkflow) (models.PendingWorkflow, error) {
	workflow, err := AdaptCaseWorkflow(db.DBCaseWorkflow)
	if err != nil {
		return models.PendingWorkflow{}, err
	}
	return models.PendingWorkflow{
		CaseWorkflow:     workflow,
		CaseNumber:       db.CaseNumber,
		CaseStatus:       models.CaseStatus(db.CaseStatus),
		OrganizationName: db.OrganizationName,
		LegislationName:  db.LegislationName,
	}, nil
}
