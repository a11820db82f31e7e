// Package directory contiene la lógica pura del directorio: filtrado de
// snapshots y validación de registros. Sin estado, sin persistencia.
package directory

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// Estados de actividad aceptados por el filtro.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Filters especifica los tres predicados opcionales del motor de consulta.
// Un campo vacío es un no-op; los predicados presentes componen por AND.
type Filters struct {
	Search string // substring sobre FullName, insensible a mayúsculas y acentos
	Gender string // match exacto contra la enumeración
	Status string // "active" | "inactive" | "" (sin filtro)
}

// IsZero indica si ningún predicado está activo.
func (f Filters) IsZero() bool {
	return f.Search == "" && f.Gender == "" && f.Status == ""
}

// Apply devuelve el subconjunto de records que satisface todos los predicados,
// preservando el orden relativo del snapshot de entrada (filtro estable, sin
// re-orden implícito). Función pura: no muta la entrada ni guarda estado, el
// llamador debe re-evaluarla cuando cambie el snapshot o los filtros.
func Apply(records []entity.Employee, f Filters) []entity.Employee {
	if f.IsZero() {
		out := make([]entity.Employee, len(records))
		copy(out, records)
		return out
	}

	needle := normalizeSearch(f.Search)
	out := make([]entity.Employee, 0, len(records))
	for _, e := range records {
		if needle != "" && !strings.Contains(normalizeSearch(e.FullName), needle) {
			continue
		}
		if f.Gender != "" && e.Gender != f.Gender {
			continue
		}
		if f.Status != "" && e.IsActive != (f.Status == StatusActive) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// normalizer descompone (NFD), elimina marcas diacríticas y recompone, de modo
// que "martinez" encuentre a "Martínez".
var normalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalizeSearch(s string) string {
	if s == "" {
		return ""
	}
	folded, _, err := transform.String(normalizer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
