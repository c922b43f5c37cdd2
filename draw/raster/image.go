package raster

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/dlist/draw"
	"github.com/gogpu/dlist/geom"
)

// ClipImage scales the raster onto its page rectangle. Smooth images use
// bilinear interpolation, others nearest neighbor so grid cells stay
// crisp.
func (s *Service) ClipImage(img draw.Image) {
	if img.Cols <= 0 || img.Rows <= 0 || len(img.Pixels) < img.Cols*img.Rows*4 {
		return
	}
	src := image.NewNRGBA(image.Rect(0, 0, img.Cols, img.Rows))
	copy(src.Pix, img.Pixels[:img.Cols*img.Rows*4])
	if a := s.Alpha(); a != 255 {
		for i := 3; i < len(src.Pix); i += 4 {
			src.Pix[i] = uint8(uint32(src.Pix[i]) * uint32(a) / 255)
		}
	}

	p1 := s.ToScreen(geom.Point{X: img.Rect.Xmin, Y: img.Rect.Ymax})
	p2 := s.ToScreen(geom.Point{X: img.Rect.Xmax, Y: img.Rect.Ymin})
	r := image.Rect(
		int(math.Floor(p1.X)), int(math.Floor(p1.Y)),
		int(math.Ceil(p2.X)), int(math.Ceil(p2.Y)),
	)
	if r.Empty() {
		return
	}
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	var scaler xdraw.Scaler = xdraw.NearestNeighbor
	if img.Smooth {
		scaler = xdraw.ApproxBiLinear
	}
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	s.dc.DrawImage(dst, r.Min.X, r.Min.Y)
}

// Pixel returns the color at image coordinates x, y.
func (s *Service) Pixel(x, y int) color.Color {
	return s.dc.Image().At(x, y)
}
