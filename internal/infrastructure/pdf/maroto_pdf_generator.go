// Package pdf implementa la vista imprimible del directorio de empleados
// (el botón Print del dashboard, como documento descargable).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                       │
//	│  RESUMEN: Total | Activos | Inactivos                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nombre | Género | Nacimiento | Estado | Situación   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 252, Green: 128, Blue: 0}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorActive   = &props.Color{Red: 82, Green: 196, Blue: 26}
	colorInactive = &props.Color{Red: 255, Green: 77, Blue: 79}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.RosterPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateRosterPDF genera la planilla del directorio y devuelve sus bytes.
// El orden de la tabla es el orden del snapshot recibido.
func (g *MarotoPDFGenerator) GenerateRosterPDF(_ context.Context, employees []entity.Employee) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Employee Directory", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(employees))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, e := range employees {
		m.AddRows(tableDetailRow(e))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha + resumen (der).
func headerRow(employees []entity.Employee) core.Row {
	active := 0
	for _, e := range employees {
		if e.IsActive {
			active++
		}
	}
	resumen := fmt.Sprintf("Total: %d   Activos: %d   Inactivos: %d",
		len(employees), active, len(employees)-active)

	return row.New(16).Add(
		col.New(7).Add(
			text.New("Employee Directory", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(resumen, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 9, Top: 2, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		header(4, "Nombre completo"),
		header(2, "Género"),
		header(2, "Nacimiento"),
		header(2, "Estado"),
		header(2, "Situación"),
	)
}

func tableDetailRow(e entity.Employee) core.Row {
	situacion := "Activo"
	color := colorActive
	if !e.IsActive {
		situacion = "Inactivo"
		color = colorInactive
	}
	cell := func(size int, value string) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Top: 1}))
	}
	return row.New(6).Add(
		cell(4, e.FullName),
		cell(2, e.Gender),
		cell(2, e.DateOfBirth),
		cell(2, e.State),
		col.New(2).Add(text.New(situacion, props.Text{Size: 8, Top: 1, Color: color})),
	)
}
