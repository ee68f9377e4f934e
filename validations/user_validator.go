package validations

type UpsertUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Photo    string `json:"photo"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

type UpdateUserRequest struct {
	Role   string `json:"role" binding:"omitempty,oneof=user manager admin"`
	Status string `json:"status" binding:"omitempty,oneof=active blocked"`
}

type IssueTokenRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
}
