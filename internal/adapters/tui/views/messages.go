package views

import "booq/internal/application/commands"

// PlanLoadedMsg is sent when the dry run finished
type PlanLoadedMsg struct {
	Plan *commands.SyncPlan
}

// PlanErrMsg is sent when the dry run failed
type PlanErrMsg struct {
	Err error
}

// ApplyConfirmedMsg is sent when the user accepted the plan
type ApplyConfirmedMsg struct{}

// ApplyDoneMsg is sent when reconciliation and publishing finished
type ApplyDoneMsg struct {
	Result *commands.SyncResult
}

// ApplyErrMsg is sent when applying the plan failed
type ApplyErrMsg struct {
	Err error
}

// AbortMsg is sent when the user leaves without applying
type AbortMsg struct{}

// SwitchToHelpMsg opens the help view
type SwitchToHelpMsg struct{}

// SwitchToReviewMsg returns to the review view
type SwitchToReviewMsg struct{}
