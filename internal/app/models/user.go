package models

type User struct {
	ID        string `bson:"_id,omitempty"`
	Name      string `bson:"name"`
	Email     string `bson:"email"`
	Username  string `bson:"username"`
	Password  string `bson:"password"`
	Role      string `bson:"role"`
	TimeModel `bson:",inline"`
}

type Session struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}
