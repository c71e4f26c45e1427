package dto

// LoginDTO são os campos do formulário de login.
type LoginDTO struct {
	Email string `form:"email" validate:"required"`
	Senha string `form:"senha" validate:"required"`
}
