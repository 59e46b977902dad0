package export

// pdf.go — printable pedido summary using go-pdf/fpdf. A5 portrait order
// sheet: header, cliente/fecha, item table (ref, producto, cantidad, precio,
// subtotal) and a bold total row.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/KmDRF/empacatalog/internal/money"
)

// GenerarPedidoPDF renders p as a PDF under dir (created if needed) and
// returns the path to the generated file.
func GenerarPedidoPDF(p Pedido, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("pdf: crear directorio: %w", err)
	}
	ruta := filepath.Join(dir, NombreArchivoPDF)

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Disramfor", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Pedido de catálogo", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 4, "Cliente: "+p.Cliente, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 4, "Fecha: "+p.Fecha, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// ── Item table ───────────────────────────────────────────────────────────
	colRef := contentW * 0.18
	colNom := contentW * 0.40
	colCant := contentW * 0.10
	colPrec := contentW * 0.16
	colSub := contentW * 0.16

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(colRef, 5, "Ref", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colNom, 5, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colCant, 5, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(colPrec, 5, "Precio", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colSub, 5, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, item := range p.Items {
		nombre := item.Nombre
		if len(nombre) > 32 {
			nombre = nombre[:31] + "…"
		}
		precio := decimal.NewFromFloat(item.Precio)
		subtotal := precio.Mul(decimal.NewFromInt(int64(item.Cantidad)))
		pdf.CellFormat(colRef, 5, item.Ref, "", 0, "L", false, 0, "")
		pdf.CellFormat(colNom, 5, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(colCant, 5, fmt.Sprintf("x%d", item.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(colPrec, 5, "$"+money.Formatear(precio), "", 0, "R", false, 0, "")
		pdf.CellFormat(colSub, 5, "$"+money.Formatear(subtotal), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(colRef+colNom+colCant, 5, "Unidades:", "", 0, "L", false, 0, "")
	pdf.CellFormat(colPrec+colSub, 5, fmt.Sprintf("%d", p.Totales.Cantidad), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colRef+colNom+colCant, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(colPrec+colSub, 6, "$"+money.Formatear(decimal.NewFromFloat(p.Totales.Valor)), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(ruta); err != nil {
		return "", fmt.Errorf("pdf: escribir archivo: %w", err)
	}
	return ruta, nil
}
