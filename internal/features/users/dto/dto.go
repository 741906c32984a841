package users_dto

import "github.com/google/uuid"

type VerifiedUserDTO struct {
	ID           uuid.UUID         `json:"id"`
	Email        string            `json:"email"`
	UserMetadata map[string]string `json:"user_metadata"`
}

type VerifyResponseDTO struct {
	User VerifiedUserDTO `json:"user"`
}

type MeResponseDTO struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url"`
	Provider  string    `json:"provider"`
}
