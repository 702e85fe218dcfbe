package model

import (
	"bytes"
	"encoding/json"
)

// Reward is a dining perk offered for testing work. It is embedded in
// test requests and bug reports, never stored as its own collection.
type Reward struct {
	Name        string     `json:"name,omitempty" bson:"name,omitempty"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	Location    string     `json:"location" bson:"location" validate:"required"`
	Type        RewardType `json:"type" bson:"type" validate:"required,oneof=GUEST_SWIPE MEAL_EXCHANGE"`
	Time        string     `json:"time,omitempty" bson:"time,omitempty"`
}

// RewardSet is the wire type for TestRequest.reward. Clients send either
// a single reward object or an array of them; both decode into a slice,
// and the array form is what gets persisted and served back.
type RewardSet []Reward

func (rs *RewardSet) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var single Reward
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		*rs = RewardSet{single}
		return nil
	}
	var many []Reward
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*rs = RewardSet(many)
	return nil
}
