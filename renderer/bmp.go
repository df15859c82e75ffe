package renderer

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteBMP encodes fb as an uncompressed 24-bit BMP. Callers choose the
// destination; see DESIGN.md for why this encoder is hand-rolled against
// the standard library rather than a third-party dependency.
func WriteBMP(w io.Writer, fb *Framebuffer) error {
	width, height := int(fb.Width), int(fb.Height)
	rowSize := (width*3 + 3) &^ 3 // rows are padded to a 4-byte boundary
	pixelDataSize := rowSize * height
	fileSize := 54 + pixelDataSize

	header := make([]byte, 54)
	copy(header[0:2], "BM")
	binary.LittleEndian.PutUint32(header[2:6], uint32(fileSize))
	binary.LittleEndian.PutUint32(header[10:14], 54) // pixel data offset
	binary.LittleEndian.PutUint32(header[14:18], 40) // DIB header size
	binary.LittleEndian.PutUint32(header[18:22], uint32(width))
	binary.LittleEndian.PutUint32(header[22:26], uint32(height))
	binary.LittleEndian.PutUint16(header[26:28], 1)  // planes
	binary.LittleEndian.PutUint16(header[28:30], 24) // bits per pixel
	binary.LittleEndian.PutUint32(header[34:38], uint32(pixelDataSize))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("renderer: writing BMP header: %w", err)
	}

	row := make([]byte, rowSize)
	for y := height - 1; y >= 0; y-- { // BMP rows are bottom-to-top
		for x := 0; x < width; x++ {
			i := (y*width + x) * 4
			row[x*3+0] = fb.Pixels[i+2] // B
			row[x*3+1] = fb.Pixels[i+1] // G
			row[x*3+2] = fb.Pixels[i+0] // R
		}
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("renderer: writing BMP row %d: %w", y, err)
		}
	}

	return nil
}
