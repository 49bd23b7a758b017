package entity

import "time"

// Collection names for the remote document store.
const (
	UsersCollection         = "users"
	ConsultationsCollection = "consultations"
	UploadsCollection       = "uploads"
	MessagesSubcollection   = "messages"
)

const (
	ConsultationOngoing   = "ongoing"
	ConsultationCompleted = "completed"
)

// Consultation is one advisory session. Status transitions happen in
// callers; this layer only stores the two-state flag.
type Consultation struct {
	ID     string `json:"id" firestore:"id"`
	UserID string `json:"user_id" firestore:"userId"`
	Title  string `json:"title" firestore:"title"`
	Status string `json:"status" firestore:"status"` // "ongoing" or "completed"

	Date            time.Time `json:"date" firestore:"date"`
	Symptoms        string    `json:"symptoms,omitempty" firestore:"symptoms,omitempty"`
	Diagnosis       string    `json:"diagnosis,omitempty" firestore:"diagnosis,omitempty"`
	Recommendations string    `json:"recommendations,omitempty" firestore:"recommendations,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
