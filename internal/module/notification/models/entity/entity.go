package entity

type Recipient struct {
	UserID    int64  `db:"id"`
	FirstName string `db:"first_name"`
	Email     string `db:"email"`
}
