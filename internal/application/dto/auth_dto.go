package dto

// LoginRequest entrada de login. La autenticación es un stub deliberado:
// cualquier par username/password no vacío es aceptado.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse usuario de la sesión (lo único que se persiste de "quién").
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// LoginResponse salida con token para la capa HTTP más el usuario de sesión.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
