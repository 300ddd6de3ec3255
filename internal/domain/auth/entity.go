// internal/domain/auth/entity.go
package auth

// User represents the authenticated storefront user as returned by the API
type User struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// LoginCredentials represents user login data
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupCredentials represents user registration data
type SignupCredentials struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
	Token   string `json:"token"`
}
