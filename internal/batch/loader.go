package batch

import (
	"fmt"
	"image"
	"os"

	"wireframe-globe/internal/postprocess"
)

// LoadFrame reads a dumped frame back as NRGBA. The TGA decoder is
// registered by the tga import in manifest.go.
func LoadFrame(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("batch: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("batch: decode %s: %w", path, err)
	}
	return postprocess.ToNRGBA(img), nil
}
