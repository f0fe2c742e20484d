package dto

// AdminLoginRequest body para POST /api/admin/login.
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// AdminLoginResponse token Bearer para las rutas /api/admin.
type AdminLoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // segundos
}
