package domain

// Request and response shapes for the auth and favorites API.
// Field names mirror the JSON contract expected by the web frontend.

// LoginRequest is the POST /auth/login body.
type LoginRequest struct {
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// RegisterRequest is the POST /auth/register body.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by a successful login.
type AuthResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
	Email   string `json:"email"`
}

// User is the public account shape (no credential material).
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// AddFavoriteRequest is the POST /favorite body.
// Validation of required fields happens in the Logic layer so the
// missing-field error shape is identical across transports.
type AddFavoriteRequest struct {
	MovieID    int64   `json:"movieId"`
	Title      string  `json:"title"`
	PosterPath *string `json:"posterPath"`
	Overview   *string `json:"overview"`
}

// Favorite is the public favorite shape returned by the list endpoint.
type Favorite struct {
	ID         int64   `json:"id"`
	MovieID    int64   `json:"movieId"`
	Title      string  `json:"title"`
	PosterPath *string `json:"posterPath"`
	Overview   *string `json:"overview"`
}

// FavoriteFromRow converts a storage row to its public shape.
func FavoriteFromRow(row FavoriteRow) Favorite {
	return Favorite{
		ID:         row.ID,
		MovieID:    row.MovieID,
		Title:      row.Title,
		PosterPath: row.PosterPath,
		Overview:   row.Overview,
	}
}
