package model

import "time"

// User is a registered developer or debugger. UserID is the document key.
type User struct {
	UserID    string    `json:"userId" bson:"userId"`
	Email     string    `json:"email" bson:"email"`
	CampusID  string    `json:"campusId" bson:"campusId"`
	Name      string    `json:"name,omitempty" bson:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	CampusID string `json:"campusId" validate:"required"`
}

// UpdateUserRequest is the PATCH body; userId and createdAt are not
// patchable and are rejected as unknown fields.
type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	CampusID *string `json:"campusId"`
	Name     *string `json:"name"`
}

func (r UpdateUserRequest) Fields() Document {
	fields := Document{}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.CampusID != nil {
		fields["campusId"] = *r.CampusID
	}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	return fields
}
