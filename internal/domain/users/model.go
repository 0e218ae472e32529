package users

// Role define los roles soportados.
// @Enum user, admin
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User representa una cuenta (dueño de mascotas o admin).
//
// Password se guarda y compara en texto plano, igual que el backend
// original. NO apto más allá de un prototipo; si esto evoluciona, el
// cambio a hashing hay que acordarlo con los consumidores del API.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
}
