package entity

// Defaults applied to profiles created without name, about or avatar.
const (
	DefaultUserName   = "Jacques-Yves Cousteau"
	DefaultUserAbout  = "Explorer"
	DefaultUserAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1595865214.png"
)

// User is the aggregate root for user domain
// Passwords are stored as bcrypt hashes in Password field.
// Email and Password are left empty by reads that project them out.
type User struct {
	ID       string
	Name     string `validate:"required,min=2,max=30"`
	About    string `validate:"required,min=2,max=30"`
	Avatar   string `validate:"required,urlpattern"`
	Email    string
	Password string
}

// ApplyDefaults fills the optional profile fields left blank at signup
func (u *User) ApplyDefaults() {
	if u.Name == "" {
		u.Name = DefaultUserName
	}
	if u.About == "" {
		u.About = DefaultUserAbout
	}
	if u.Avatar == "" {
		u.Avatar = DefaultUserAvatar
	}
}

// Public strips fields other users must not see
func (u User) Public() User {
	u.Email = ""
	u.Password = ""
	return u
}

// Own strips the password only
func (u User) Own() User {
	u.Password = ""
	return u
}
