package opengl

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// LoadTexture uploads an image as an RGBA texture and returns its ID.
// Used for item thumbnails in the gallery strip.
func (r *Renderer) LoadTexture(img image.Image) uint32 {
	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(img.Bounds())
		draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	}

	w := int32(rgba.Bounds().Dx())
	h := int32(rgba.Bounds().Dy())

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.colorTextures[tex] = true
	return tex
}

// LoadTextureFile decodes a PNG or JPEG file and uploads it.
func (r *Renderer) LoadTextureFile(path string) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open texture %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return 0, fmt.Errorf("decode texture %s: %w", path, err)
	}
	return r.LoadTexture(img), nil
}

// UpdateTexture replaces the pixels of an existing texture in place.
// The video player calls this once per decoded frame; dimensions must
// match the original upload.
func (r *Renderer) UpdateTexture(tex uint32, rgba *image.RGBA) {
	if tex == 0 || rgba == nil {
		return
	}
	w := int32(rgba.Bounds().Dx())
	h := int32(rgba.Bounds().Dy())
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, w, h, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// DeleteTexture releases an uploaded texture.
func (r *Renderer) DeleteTexture(tex uint32) {
	if tex == 0 {
		return
	}
	gl.DeleteTextures(1, &tex)
	delete(r.colorTextures, tex)
}
