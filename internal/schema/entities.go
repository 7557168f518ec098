package schema

import (
	"business-manager-backend/internal/database/models"
	apperrors "business-manager-backend/internal/errors"
)

var (
	recordStatuses  = []string{string(models.RecordStatusActive), string(models.RecordStatusInactive)}
	projectStatuses = []string{
		string(models.ProjectStatusNotStarted),
		string(models.ProjectStatusInProgress),
		string(models.ProjectStatusOnHold),
		string(models.ProjectStatusCompleted),
		string(models.ProjectStatusCancelled),
	}
	completionStatuses = []string{
		string(models.CompletionStatusPending),
		string(models.CompletionStatusInProgress),
		string(models.CompletionStatusCompleted),
	}
)

func id() Column {
	return Column{Name: "id", Type: TypeInteger, ReadOnly: true}
}

func timestamps() []Column {
	return []Column{
		{Name: "created_at", Type: TypeTimestamp, ReadOnly: true},
		{Name: "updated_at", Type: TypeTimestamp, ReadOnly: true},
	}
}

func columns(cols ...Column) []Column {
	out := append([]Column{id()}, cols...)
	return append(out, timestamps()...)
}

// Default returns the registry of every business table
func Default() *Registry {
	r, err := NewRegistry(
		Define[models.ClientType]("client_types", "id", columns(
			Column{Name: "name", Type: TypeText, Required: true, Searchable: true},
			Column{Name: "status", Type: TypeText, Values: recordStatuses},
		)...),
		Define[models.Client]("clients", "id", columns(
			Column{Name: "name", Type: TypeText, Required: true, Searchable: true},
			Column{Name: "company", Type: TypeText, Nullable: true, Searchable: true},
			Column{Name: "address", Type: TypeText, Nullable: true, Searchable: true},
			Column{Name: "email", Type: TypeText, Nullable: true, Searchable: true},
			Column{Name: "client_type_id", Type: TypeInteger, Required: true},
			Column{Name: "status", Type: TypeText, Values: recordStatuses},
		)...),
		Define[models.ServiceCategory]("service_categories", "id", columns(
			Column{Name: "name", Type: TypeText, Required: true, Searchable: true},
			Column{Name: "priority_number", Type: TypeInteger},
		)...),
		Define[models.Service]("services", "id", columns(
			Column{Name: "name", Type: TypeText, Required: true, Searchable: true},
			Column{Name: "description", Type: TypeText, Nullable: true, Searchable: true},
			Column{Name: "category_id", Type: TypeInteger, Required: true},
			Column{Name: "price", Type: TypeNumber, Required: true},
			Column{Name: "timeline_days", Type: TypeInteger},
		)...).WithChildren(Child{Table: "service_requirements", ForeignKey: "service_id"}),
		Define[models.ServiceRequirement]("service_requirements", "id", columns(
			Column{Name: "service_id", Type: TypeInteger, Required: true},
			Column{Name: "text", Type: TypeText, Required: true, Searchable: true},
		)...).WithOwner("services", "service_id"),
		Define[models.Proposal]("proposals", "id", columns(
			Column{Name: "client_id", Type: TypeInteger, Required: true},
			Column{Name: "title", Type: TypeText, Nullable: true, Searchable: true},
			Column{Name: "notes", Type: TypeText, Nullable: true, Searchable: true},
			// status changes go through the proposal status machine
			Column{Name: "status", Type: TypeText, ReadOnly: true},
			Column{Name: "created_by", Type: TypeText, Nullable: true},
		)...).
			WithChildren(Child{Table: "proposal_services", ForeignKey: "proposal_id"}).
			WithLock("status", string(models.ProposalStatusConverted), apperrors.NewAlreadyConvertedError),
		Define[models.ProposalService]("proposal_services", "id", columns(
			Column{Name: "proposal_id", Type: TypeInteger, Required: true},
			Column{Name: "service_id", Type: TypeInteger, Required: true},
			Column{Name: "price", Type: TypeNumber, Required: true},
			Column{Name: "quantity", Type: TypeInteger, Required: true},
			Column{Name: "position", Type: TypeInteger},
			Column{Name: "notes", Type: TypeText, Nullable: true},
		)...).WithOwner("proposals", "proposal_id"),
		Define[models.Project]("projects", "id", columns(
			Column{Name: "name", Type: TypeText, Required: true, Searchable: true},
			Column{Name: "description", Type: TypeText, Nullable: true, Searchable: true},
			Column{Name: "client_id", Type: TypeInteger, Required: true},
			// set only by conversion
			Column{Name: "proposal_id", Type: TypeInteger, Nullable: true, ReadOnly: true},
			Column{Name: "status", Type: TypeText, Values: projectStatuses},
			Column{Name: "start_date", Type: TypeDate, Required: true},
			Column{Name: "estimated_end_date", Type: TypeDate, Required: true},
			Column{Name: "actual_end_date", Type: TypeDate, Nullable: true},
			Column{Name: "budget", Type: TypeNumber},
			Column{Name: "created_by", Type: TypeText, Nullable: true},
		)...).WithChildren(Child{Table: "project_services", ForeignKey: "project_id"}),
		Define[models.ProjectService]("project_services", "id", columns(
			Column{Name: "project_id", Type: TypeInteger, Required: true},
			Column{Name: "service_id", Type: TypeInteger, Required: true},
			Column{Name: "price", Type: TypeNumber, Required: true},
			Column{Name: "quantity", Type: TypeInteger, Required: true},
			Column{Name: "position", Type: TypeInteger},
			Column{Name: "completion_status", Type: TypeText, Values: completionStatuses},
			Column{Name: "notes", Type: TypeText, Nullable: true},
		)...).WithOwner("projects", "project_id"),
	)
	if err != nil {
		panic(err)
	}
	return r
}
