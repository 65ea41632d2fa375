package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses (rendered by the central error handler; declared here for the
// swagger annotations).
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type signupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authUserData struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type signupResponse struct {
	Success bool         `json:"success"`
	Data    authUserData `json:"data"`
}

// loginResponse is intentionally flat (no envelope): the web client's auth
// library consumes this exact shape.
type loginResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type meResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}
