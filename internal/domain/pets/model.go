package pets

// Pet representa una mascota registrada. UserID referencia al dueño;
// el store borra la fila en cascada cuando el dueño desaparece.
type Pet struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`

	Name    string  `json:"name"`
	Species string  `json:"species"`
	Breed   *string `json:"breed"` // opcional, NULL si no se informó
}

// Owner es la proyección del dueño que se adjunta al detalle de una
// mascota (sin password ni role).
type Owner struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
