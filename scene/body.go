package scene

import (
	"github.com/lixenwraith/crystal-galaxy/crystal"
	"github.com/lixenwraith/crystal-galaxy/material"
	"github.com/lixenwraith/crystal-galaxy/track"
	"github.com/lixenwraith/crystal-galaxy/vmath"
)

// Body is one crystal in the galaxy: a track's geometry, shading and
// placement. Bodies are owned by the Galaxy; Dispose releases the mesh
// and texture buffers and is idempotent
type Body struct {
	Track    track.Record
	Position vmath.Vec3F
	Crystal  *crystal.Result
	Material material.Material

	texture  *material.Texture
	disposed bool
}

// WorldPosition returns the body's galaxy placement
func (b *Body) WorldPosition() vmath.Vec3F { return b.Position }

// BodyRadius returns the bounding sphere radius of the deformed mesh
func (b *Body) BodyRadius() float64 { return b.Crystal.BoundingRadius }

// TrackID returns the identity of the represented track
func (b *Body) TrackID() string { return b.Track.ID }

// Texture returns the current surface texture
func (b *Body) Texture() *material.Texture { return b.texture }

// SetTexture swaps the surface texture, disposing the previous one
func (b *Body) SetTexture(tex *material.Texture) {
	if b.disposed {
		if tex != nil {
			tex.Dispose()
		}
		return
	}
	if b.texture != nil {
		b.texture.Dispose()
	}
	b.texture = tex
}

// Dispose releases the body's mesh and texture. Idempotent
func (b *Body) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	if b.Crystal != nil && b.Crystal.Mesh != nil {
		b.Crystal.Mesh.Dispose()
	}
	if b.texture != nil {
		b.texture.Dispose()
		b.texture = nil
	}
}

// Disposed reports whether the body was released
func (b *Body) Disposed() bool { return b.disposed }
