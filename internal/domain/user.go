package domain

type User struct {
	ID        string `db:"id"`
	Username  string `db:"username"`
	Email     string `db:"email"`
	Hash      string `db:"password_hash"`
	IsSeller  bool   `db:"is_seller"`
	IsAdmin   bool   `db:"is_admin"`
	CreatedAt string `db:"created_at"`
}
