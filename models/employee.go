package models

import "time"

type Employee struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Position  string    `json:"position" bson:"position"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Email     string    `json:"email,omitempty" bson:"email,omitempty"`
	Salary    float64   `json:"salary" bson:"salary"`
	JoinDate  string    `json:"join_date" bson:"join_date"`
	Status    string    `json:"status" bson:"status"` // active / inactive
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
