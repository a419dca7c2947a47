package material

import "github.com/df07/go-pathtracer/pkg/core"

// fixedSampler returns the same values on every call so scatter decisions are predictable.
type fixedSampler struct {
	v1 float64
	v3 core.Vec3
}

func (f fixedSampler) Get1D() float64 { return f.v1 }
func (f fixedSampler) Get2D() core.Vec2 { return core.NewVec2(f.v1, f.v1) }
func (f fixedSampler) Get3D() core.Vec3 { return f.v3 }

// centerSampler maps unit-ball samples to the origin.
var centerSampler = fixedSampler{v1: 0.5, v3: core.NewVec3(0.5, 0.5, 0.5)}
