package entity

// SessionUser es la bandera de sesión persistida: su sola presencia en el
// almacén significa "hay alguien autenticado". No guarda password ni token.
type SessionUser struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}
