package material

import (
	"fmt"
	"image"
	_ "image/jpeg" // Cover art decoders
	_ "image/png"
	"os"
	"time"

	"github.com/lixenwraith/crystal-galaxy/device"
	"github.com/lixenwraith/crystal-galaxy/parameter"
)

// Loader reads cover art files into tier-capped textures.
//
// Load races the decode against a fixed timeout so a slow or wedged
// read never leaves a body textureless: the caller falls back to
// procedural art and the late result is discarded
type Loader struct {
	Timeout time.Duration
	Tier    device.TextureTier
}

func NewLoader(tier device.TextureTier) *Loader {
	return &Loader{
		Timeout: parameter.TextureLoadTimeout,
		Tier:    tier,
	}
}

type loadResult struct {
	tex *Texture
	err error
}

// Load decodes the cover at path, resampled to the tier resolution cap.
// Returns an error when the file is missing, malformed, or the timeout
// wins the race; callers convert errors through the fallback policy
func (l *Loader) Load(path string) (*Texture, error) {
	done := make(chan loadResult, 1)
	go func() {
		tex, err := l.decode(path)
		done <- loadResult{tex: tex, err: err}
	}()

	timeout := l.Timeout
	if timeout <= 0 {
		timeout = parameter.TextureLoadTimeout
	}

	select {
	case res := <-done:
		return res.tex, res.err
	case <-time.After(timeout):
		// The goroutine's eventual result lands in the buffered channel
		// and is dropped; the fallback stays for the session
		return nil, fmt.Errorf("load texture %s: timeout after %v", path, timeout)
	}
}

func (l *Loader) decode(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	return l.resample(img), nil
}

// resample nearest-neighbor samples the image into the capped grid
func (l *Loader) resample(img image.Image) *Texture {
	res := l.Tier.Resolution
	if res <= 0 {
		res = parameter.TextureResolutionLow
	}
	if l.Tier.Compress {
		res /= 2
		if res < 8 {
			res = 8
		}
	}

	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	tex := &Texture{
		Resolution: res,
		Pix:        make([]uint8, res*res*4),
	}

	for y := 0; y < res; y++ {
		for x := 0; x < res; x++ {
			sx := bounds.Min.X + x*w/res
			sy := bounds.Min.Y + y*h/res
			r, g, b, a := img.At(sx, sy).RGBA()

			i := (y*res + x) * 4
			tex.Pix[i] = uint8(r >> 8)
			tex.Pix[i+1] = uint8(g >> 8)
			tex.Pix[i+2] = uint8(b >> 8)
			tex.Pix[i+3] = uint8(a >> 8)
		}
	}
	return tex
}
