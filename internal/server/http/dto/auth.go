package dto

// CredentialsForm carries the username/password fields of the register
// and login forms.
type CredentialsForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}
