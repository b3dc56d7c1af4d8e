package user

// User entity. Reservations reference users by ID; everything else about the
// account lives here. Only registration creates users, so the entity carries
// write-path state; timestamps belong to the read models.
type User struct {
	id           int64
	fullName     FullName
	email        Email
	passwordHash string
	role         Role
}

func NewUser(fullName FullName, email Email, passwordHash string, role Role) *User {
	return &User{
		fullName:     fullName,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
	}
}

func (u *User) ID() int64            { return u.id }
func (u *User) FullName() FullName   { return u.fullName }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
