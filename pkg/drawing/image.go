package drawing

import (
	"fmt"
	"image"

	"github.com/user/mosaic/pkg/ports"
)

// Point is a position in surface coordinates.
type Point struct {
	X, Y float64
}

// Rect is a rectangle in surface or source coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// ImageSource is something that can be drawn as an image: a plain image
// (see FromImage) or another Surface.
type ImageSource interface {
	sourceImage() (image.Image, error)
}

type plainImage struct {
	img image.Image
}

func (p plainImage) sourceImage() (image.Image, error) {
	if p.img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidArgument)
	}
	return p.img, nil
}

// FromImage wraps img as an ImageSource.
func FromImage(img image.Image) ImageSource {
	return plainImage{img: img}
}

// ImageCall selects one of the drawImage forms.
type ImageCall interface {
	source() ImageSource
	draw(ctx ports.Context2D, img image.Image)
}

// WholeImage draws the whole source at its natural size.
type WholeImage struct {
	Source ImageSource
	Dest   Point
}

// WholeImageScaled draws the whole source scaled into Dest.
type WholeImageScaled struct {
	Source ImageSource
	Dest   Rect
}

// SubImage draws the Src region of the source unscaled at Dest.
type SubImage struct {
	Source ImageSource
	Src    Rect
	Dest   Point
}

// SubImageScaled draws the Src region of the source scaled into Dest.
type SubImageScaled struct {
	Source ImageSource
	Src    Rect
	Dest   Rect
}

func (c WholeImage) source() ImageSource       { return c.Source }
func (c WholeImageScaled) source() ImageSource { return c.Source }
func (c SubImage) source() ImageSource         { return c.Source }
func (c SubImageScaled) source() ImageSource   { return c.Source }

func (c WholeImage) draw(ctx ports.Context2D, img image.Image) {
	ctx.DrawImage(img, c.Dest.X, c.Dest.Y)
}

func (c WholeImageScaled) draw(ctx ports.Context2D, img image.Image) {
	ctx.DrawImageScaled(img, c.Dest.X, c.Dest.Y, c.Dest.Width, c.Dest.Height)
}

func (c SubImage) draw(ctx ports.Context2D, img image.Image) {
	ctx.DrawImageRegion(img,
		c.Src.X, c.Src.Y, c.Src.Width, c.Src.Height,
		c.Dest.X, c.Dest.Y, c.Src.Width, c.Src.Height)
}

func (c SubImageScaled) draw(ctx ports.Context2D, img image.Image) {
	ctx.DrawImageRegion(img,
		c.Src.X, c.Src.Y, c.Src.Width, c.Src.Height,
		c.Dest.X, c.Dest.Y, c.Dest.Width, c.Dest.Height)
}

// ImageCallFromArgs builds an ImageCall from positional numbers in the
// order destX, destY, destWidth, destHeight, srcX, srcY, srcWidth,
// srcHeight:
//
//	2 args: whole image at the destination point
//	4 args: whole image scaled into the destination rectangle
//	6 args: destination rectangle and source origin; the source region
//	        has the destination's size
//	8 args: source region scaled into the destination rectangle
//
// Any other count is ErrInvalidArgument.
func ImageCallFromArgs(src ImageSource, args ...float64) (ImageCall, error) {
	switch len(args) {
	case 2:
		return WholeImage{Source: src, Dest: Point{args[0], args[1]}}, nil
	case 4:
		return WholeImageScaled{Source: src, Dest: Rect{args[0], args[1], args[2], args[3]}}, nil
	case 6:
		return SubImage{
			Source: src,
			Src:    Rect{args[4], args[5], args[2], args[3]},
			Dest:   Point{args[0], args[1]},
		}, nil
	case 8:
		return SubImageScaled{
			Source: src,
			Src:    Rect{args[4], args[5], args[6], args[7]},
			Dest:   Rect{args[0], args[1], args[2], args[3]},
		}, nil
	default:
		return nil, fmt.Errorf("%w: drawImage takes 2, 4, 6 or 8 coordinates, got %d", ErrInvalidArgument, len(args))
	}
}
