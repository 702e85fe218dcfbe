package model

// Campus groups the reward locations available at one school.
// Campus data is static reference data in this deployment; the struct
// exists for the document converter and for clients that persist it.
type Campus struct {
	CampusID        string   `json:"campusId" bson:"campusId"`
	Name            string   `json:"name" bson:"name"`
	RewardLocations []Reward `json:"rewardLocations" bson:"rewardLocations"`
}
