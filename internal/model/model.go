package model

import "time"

// FallbackCover substitutes for books served without a cover image.
const FallbackCover = "/books.png"

type Book struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	CoverImage  string `json:"coverimage,omitempty"`
	Available   bool   `json:"available"`
}

// Cover returns the cover image URL, or the fallback when absent.
func (b Book) Cover() string {
	if b.CoverImage == "" {
		return FallbackCover
	}
	return b.CoverImage
}

type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type Reservation struct {
	ID        string    `json:"id"`
	BookID    string    `json:"bookId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	Book      Book      `json:"book"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

type CreateReservationRequest struct {
	BookID string `json:"bookId" validate:"required"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
