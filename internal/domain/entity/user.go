package entity

import "time"

type User struct {
	UID   string `json:"uid" firestore:"uid"`
	Name  string `json:"name" firestore:"name"`
	Email string `json:"email" firestore:"email"`

	Age       int      `json:"age,omitempty" firestore:"age,omitempty"`
	BloodType string   `json:"blood_type,omitempty" firestore:"bloodType,omitempty"`
	Allergies []string `json:"allergies,omitempty" firestore:"allergies,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
