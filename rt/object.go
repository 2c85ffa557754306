package rt

// Object is a shape placed in the world: a shape variant, an affine
// transform, and a material. The inverse and inverse-transpose of the
// transform are cached at SetTransform time, since recomputing them
// per intersection/normal call was a measured cost in the reference
// implementation; SetTransform is the only entry point that mutates
// the transform, so the caches can never drift out of sync.
type Object struct {
	Shape    Shape
	Material Material

	transform        Matrix
	transformInverse Matrix
	inverseTranspose Matrix
}

func newObject(shape Shape) Object {
	o := Object{Shape: shape, Material: NewMaterial()}
	return o.SetTransform(Identity)
}

// NewSphere returns a default sphere object at the origin.
func NewSphere() Object { return newObject(sphereShape()) }

// NewPlaneObject returns a default xz-plane object.
func NewPlaneObject() Object { return newObject(planeShape()) }

// NewCubeObject returns a default cube object.
func NewCubeObject() Object { return newObject(cubeShape()) }

// NewCylinderObject returns a default cylinder object.
func NewCylinderObject(min, max float64, closed bool) Object {
	return newObject(cylinderShape(min, max, closed))
}

// NewConeObject returns a default cone object.
func NewConeObject(min, max float64, closed bool) Object {
	return newObject(coneShape(min, max, closed))
}

// NewGlassSphere returns a sphere with transparency=1.0 and
// refractive_index=1.5, a convenience constructor used heavily by
// refraction tests and scenes.
func NewGlassSphere() Object {
	o := NewSphere()
	o.Material = o.Material.WithTransparency(1.0).WithRefractiveIndex(1.5)
	return o
}

// SetTransform replaces the object's transform and refreshes the
// cached inverse/inverse-transpose atomically.
func (o Object) SetTransform(m Matrix) Object {
	o.transform = m
	o.transformInverse = m.Inverse()
	o.inverseTranspose = o.transformInverse.Transpose()
	return o
}

// Transform returns the object's current transform.
func (o Object) Transform() Matrix { return o.transform }

// SetMaterial replaces the object's material.
func (o Object) SetMaterial(m Material) Object { o.Material = m; return o }

// Intersect transforms ray into object space by the cached inverse and
// dispatches to the shape kernel, returning world-relative
// Intersections (t is the same regardless of space; only direction
// scale matters, which callers account for where needed, e.g. shadow
// distance comparisons using the original ray).
func (o *Object) Intersect(ray *Ray) Intersections {
	localRay := ray.Transform(o.transformInverse)
	ts := o.Shape.localIntersect(localRay)
	xs := make(Intersections, len(ts))
	for i, t := range ts {
		xs[i] = Intersection{T: t, Object: o}
	}
	return xs
}

// NormalAt computes the world-space normal at a world-space point
// known to lie on the object's surface: map to object space, evaluate
// the shape kernel, map back by the inverse-transpose, then
// renormalize to both correct for the homogeneous w that a 4x4
// multiply can introduce and to restore unit length.
func (o *Object) NormalAt(worldPoint Tuple) Tuple {
	objectPoint := o.transformInverse.MulTuple(worldPoint)
	objectNormal := o.Shape.localNormalAt(objectPoint)
	worldNormal := o.inverseTranspose.MulTuple(objectNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}

// ToObjectSpace maps a world-space point into this object's local
// space, the same transform NormalAt and Intersect use internally.
func (o *Object) ToObjectSpace(worldPoint Tuple) Tuple {
	return o.transformInverse.MulTuple(worldPoint)
}
