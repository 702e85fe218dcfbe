package model

import "time"

// Project is an app a developer wants tested. ProjectID is the document key.
type Project struct {
	ProjectID   string    `json:"projectId" bson:"projectId"`
	DeveloperID string    `json:"developerId" bson:"developerId"`
	CampusID    string    `json:"campusId" bson:"campusId"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Platform    Platform  `json:"platform,omitempty" bson:"platform,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// CreateProjectRequest carries userId on the wire; it becomes developerId.
type CreateProjectRequest struct {
	Name        string   `json:"name" validate:"required"`
	UserID      string   `json:"userId" validate:"required"`
	Description string   `json:"description" validate:"required"`
	CampusID    string   `json:"campusId" validate:"required"`
	Platform    Platform `json:"platform" validate:"omitempty,oneof=IOS ANDROID WEB"`
}

// UpdateProjectRequest is the PATCH body; projectId, developerId and
// createdAt are fixed at creation and rejected as unknown fields.
type UpdateProjectRequest struct {
	CampusID    *string   `json:"campusId"`
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Platform    *Platform `json:"platform" validate:"omitempty,oneof=IOS ANDROID WEB"`
}

func (r UpdateProjectRequest) Fields() Document {
	fields := Document{}
	if r.CampusID != nil {
		fields["campusId"] = *r.CampusID
	}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Platform != nil {
		fields["platform"] = *r.Platform
	}
	return fields
}
