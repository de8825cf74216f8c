package dto

type ProvisionOperatorRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}
