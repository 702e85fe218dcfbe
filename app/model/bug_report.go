package model

import "time"

// BugReport is a tester's submission against a test request. ReportID is
// the document key. Video and attachment values are opaque names of
// objects in external blob storage.
type BugReport struct {
	ReportID       string            `json:"reportId" bson:"reportId"`
	RequestID      string            `json:"requestId" bson:"requestId"`
	TesterID       string            `json:"testerId" bson:"testerId"`
	Title          string            `json:"title" bson:"title"`
	Description    string            `json:"description" bson:"description"`
	Severity       BugReportSeverity `json:"severity" bson:"severity"`
	ProposedReward *Reward           `json:"proposedReward,omitempty" bson:"proposedReward,omitempty"`
	Status         BugReportStatus   `json:"status" bson:"status"`
	Video          string            `json:"video,omitempty" bson:"video,omitempty"`
	Attachments    []string          `json:"attachments,omitempty" bson:"attachments,omitempty"`
	CreatedAt      time.Time         `json:"createdAt" bson:"createdAt"`
}

type CreateBugReportRequest struct {
	RequestID      string            `json:"requestId" validate:"required"`
	TesterID       string            `json:"testerId" validate:"required"`
	Title          string            `json:"title" validate:"required"`
	Description    string            `json:"description" validate:"required"`
	Severity       BugReportSeverity `json:"severity" validate:"required,oneof=LOW MEDIUM HIGH"`
	ProposedReward *Reward           `json:"proposedReward"`
	Video          string            `json:"video"`
	Attachments    []string          `json:"attachments"`
}

// UpdateBugReportRequest is the PATCH body; reportId, testerId and
// createdAt are fixed at creation and rejected as unknown fields.
// requestId stays patchable, matching the create-time exclusion list.
type UpdateBugReportRequest struct {
	RequestID      *string            `json:"requestId"`
	Title          *string            `json:"title"`
	Description    *string            `json:"description"`
	Severity       *BugReportSeverity `json:"severity" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	ProposedReward *Reward            `json:"proposedReward"`
	Status         *BugReportStatus   `json:"status" validate:"omitempty,oneof=SUBMITTED VALIDATED REJECTED REWARDED"`
	Video          *string            `json:"video"`
	Attachments    *[]string          `json:"attachments"`
}

func (r UpdateBugReportRequest) Fields() Document {
	fields := Document{}
	if r.RequestID != nil {
		fields["requestId"] = *r.RequestID
	}
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Severity != nil {
		fields["severity"] = *r.Severity
	}
	if r.ProposedReward != nil {
		fields["proposedReward"] = r.ProposedReward
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	if r.Video != nil {
		fields["video"] = *r.Video
	}
	if r.Attachments != nil {
		fields["attachments"] = *r.Attachments
	}
	return fields
}
