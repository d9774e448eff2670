package workspace_enums

type MilestoneStatus string

const (
	MilestoneStatusPending           MilestoneStatus = "pending"
	MilestoneStatusSubmitted         MilestoneStatus = "submitted"
	MilestoneStatusRevisionRequested MilestoneStatus = "revision_requested"
	MilestoneStatusApproved          MilestoneStatus = "approved"
)

func (s MilestoneStatus) IsValid() bool {
	switch s {
	case MilestoneStatusPending, MilestoneStatusSubmitted,
		MilestoneStatusRevisionRequested, MilestoneStatusApproved:
		return true
	default:
		return false
	}
}
