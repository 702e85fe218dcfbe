package model

import "time"

// TestRequest is a call for testers on one project. RequestID is the
// document key.
type TestRequest struct {
	RequestID   string            `json:"requestId" bson:"requestId"`
	ProjectID   string            `json:"projectId" bson:"projectId"`
	DeveloperID string            `json:"developerId" bson:"developerId"`
	Title       string            `json:"title" bson:"title"`
	Description string            `json:"description" bson:"description"`
	DemoURL     string            `json:"demoUrl" bson:"demoUrl"`
	Reward      RewardSet         `json:"reward" bson:"reward"`
	Status      TestRequestStatus `json:"status" bson:"status"`
	CreatedAt   time.Time         `json:"createdAt" bson:"createdAt"`
}

type CreateTestRequestRequest struct {
	ProjectID   string            `json:"projectId" validate:"required"`
	DeveloperID string            `json:"developerId" validate:"required"`
	Title       string            `json:"title" validate:"required"`
	Description string            `json:"description" validate:"required"`
	DemoURL     string            `json:"demoUrl" validate:"required"`
	Reward      RewardSet         `json:"reward" validate:"required,dive"`
	Status      TestRequestStatus `json:"status" validate:"required,oneof=OPEN CLOSED"`
}

// UpdateTestRequestRequest is the PATCH body; requestId, projectId,
// developerId and createdAt are fixed at creation and rejected as
// unknown fields.
type UpdateTestRequestRequest struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	DemoURL     *string            `json:"demoUrl"`
	Reward      *RewardSet         `json:"reward" validate:"omitempty,dive"`
	Status      *TestRequestStatus `json:"status" validate:"omitempty,oneof=OPEN CLOSED"`
}

func (r UpdateTestRequestRequest) Fields() Document {
	fields := Document{}
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.DemoURL != nil {
		fields["demoUrl"] = *r.DemoURL
	}
	if r.Reward != nil {
		fields["reward"] = *r.Reward
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	return fields
}
