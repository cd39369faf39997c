package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// AdminUsername es el usuario creado por el bootstrap /init_admin.
const AdminUsername = "admin"

// User representa un usuario del sistema. No hay registro público: solo el bootstrap crea usuarios.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, operator
	CreatedAt    time.Time
}
