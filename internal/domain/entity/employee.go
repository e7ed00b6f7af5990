package entity

import "strings"

// Roles sugeridos para empleados de farmacia. Role admite texto libre;
// esta lista alimenta el selector del formulario.
var EmployeeRoles = []string{
	"Farmacéutico",
	"Auxiliar de farmacia",
	"Regente",
	"Administrador",
	"Cajero",
}

// Employee representa un empleado del directorio. Alcance: solo alta y
// listado (sin edición ni borrado); la colección es de solo-agregar.
type Employee struct {
	ID        string
	Name      string
	Role      string
	Email     string
	AvatarURL string // opcional; si falta se deriva de las iniciales
}

// Initials devuelve las iniciales del nombre para el avatar de respaldo:
// primera letra del primer y último nombre, o las dos primeras del nombre único.
func Initials(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "S" // sistema / desconocido
	}
	parts := strings.Fields(name)
	if len(parts) > 1 {
		return strings.ToUpper(string([]rune(parts[0])[0]) + string([]rune(parts[len(parts)-1])[0]))
	}
	runes := []rune(parts[0])
	if len(runes) == 1 {
		return strings.ToUpper(string(runes[0]))
	}
	return strings.ToUpper(string(runes[:2]))
}

// AvatarOrInitials devuelve AvatarURL si está presente o una URL de
// placeholder construida con las iniciales.
func (e Employee) AvatarOrInitials() string {
	if e.AvatarURL != "" {
		return e.AvatarURL
	}
	return "https://placehold.co/40x40.png?text=" + Initials(e.Name)
}
