package models

import "time"

// User is the persisted account document. Password holds the bcrypt hash
// and is never serialized to clients.
type User struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	Location  string    `bson:"location,omitempty" json:"location"`
	Mobile    string    `bson:"mobile,omitempty" json:"mobile"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
