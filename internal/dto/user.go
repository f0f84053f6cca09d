package dto

import "techindia_backend/internal/models"

// CreateUserRequest - payload регистрации пользователя.
// Сам эндпоинт регистрации живет вне этого сервиса, но схема
// валидируется здесь, у единственного владельца моделей.
type CreateUserRequest struct {
	Name      string   `json:"name" validate:"required"`
	Email     string   `json:"email" validate:"required,email"`
	Role      string   `json:"role" validate:"required"`
	Bio       *string  `json:"bio" validate:"omitempty"`
	Skills    []string `json:"skills" validate:"omitempty"`
	AvatarURL *string  `json:"avatar_url" validate:"omitempty,url"`
}

func (r *CreateUserRequest) ToModel() *models.User {
	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}

	return &models.User{
		Name:      r.Name,
		Email:     r.Email,
		Role:      r.Role,
		Bio:       r.Bio,
		Skills:    skills,
		Rating:    0,
		AvatarURL: r.AvatarURL,
	}
}
