// Package barcode renders ticket payloads as Code 128 barcode images.
package barcode

import (
	"bytes"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
)

const (
	// moduleScale widens each barcode module so the image survives screen
	// rendering and scanning.
	moduleScale = 3
	height      = 180
)

// PNG encodes the payload as a Code 128 barcode and returns the PNG bytes.
// Payloads the symbology cannot represent yield an error; callers render a
// placeholder in that case.
func PNG(payload string) ([]byte, error) {
	bc, err := code128.Encode(payload)
	if err != nil {
		return nil, err
	}

	scaled, err := barcode.Scale(bc, bc.Bounds().Dx()*moduleScale, height)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)

	err = png.Encode(buf, scaled)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
