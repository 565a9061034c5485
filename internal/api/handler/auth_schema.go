package handler

type registerRequest struct {
	FirstName  string `json:"first_name"  validate:"required,min=1,max=255"`
	OtherNames string `json:"other_names" validate:"required,min=1,max=255"`
	Email      string `json:"email"       validate:"required,email"`
	Username   string `json:"username"    validate:"required,min=4,max=32"`
	Password   string `json:"password"    validate:"required,min=8,max=32,password"`
}

// loginRequest carries free-form credentials; identifier is interpreted
// as an email when it contains '@', otherwise as a username.
type loginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// tokenResponse is the login/refresh success payload. The tokens sit at
// the top level next to the envelope fields, matching the established
// client contract.
type tokenResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
