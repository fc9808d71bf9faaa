// Package qr genera códigos QR en PNG para las URLs de seguimiento.
package qr

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"

	"github.com/malarguetech/taller-api/internal/application/taller"
)

var _ taller.QRGenerator = (*Generator)(nil)

// Generator implementa taller.QRGenerator sobre boombuler/barcode.
type Generator struct{}

// NewGenerator construye el generador.
func NewGenerator() *Generator { return &Generator{} }

// GeneratePNG codifica content como QR (corrección de errores media) y lo
// escala a size x size píxeles.
func (g *Generator) GeneratePNG(content string, size int) ([]byte, error) {
	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("qr: codificar: %w", err)
	}
	code, err = barcode.Scale(code, size, size)
	if err != nil {
		return nil, fmt.Errorf("qr: escalar: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, code); err != nil {
		return nil, fmt.Errorf("qr: codificar png: %w", err)
	}
	return buf.Bytes(), nil
}
