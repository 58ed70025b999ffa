package model

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a world-space point or direction. Y is up; the ground plane is XZ.
type Vec3 = mgl64.Vec3

// Vec returns a Vec3 from components.
func Vec(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// ForwardFromYaw returns the ground-plane forward vector for a camera-style
// yaw in degrees (yaw 0 looks down -Z, yaw 90 looks down +X).
func ForwardFromYaw(yawDeg float64) Vec3 {
	r := mgl64.DegToRad(yawDeg)
	return Vec3{math.Sin(r), 0, -math.Cos(r)}
}

// StrafeFromYaw returns the ground-plane right vector for a camera-style yaw.
func StrafeFromYaw(yawDeg float64) Vec3 {
	r := mgl64.DegToRad(yawDeg)
	return Vec3{math.Cos(r), 0, math.Sin(r)}
}

// YawFromDirection is the inverse of ForwardFromYaw for a ground-plane direction.
func YawFromDirection(dir Vec3) float64 {
	return mgl64.RadToDeg(math.Atan2(dir.X(), -dir.Z()))
}

// HeadingDegrees returns the body heading used by flying creatures:
// 0 faces +Z, 90 faces +X.
func HeadingDegrees(dir Vec3) float64 {
	return mgl64.RadToDeg(math.Atan2(dir.X(), dir.Z()))
}

// WrapDegrees maps an angle into [-180, 180).
func WrapDegrees(a float64) float64 {
	a = math.Mod(a+180, 360)
	if a < 0 {
		a += 360
	}
	return a - 180
}

// SafeNormalize returns v scaled to unit length, or false for a zero vector.
func SafeNormalize(v Vec3) (Vec3, bool) {
	l := v.Len()
	if l == 0 || math.IsNaN(l) {
		return Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// GroundDistanceSq returns the squared distance between a and b on the XZ plane.
func GroundDistanceSq(a, b Vec3) float64 {
	dx := a.X() - b.X()
	dz := a.Z() - b.Z()
	return dx*dx + dz*dz
}

// DistanceSq returns the squared 3D distance between a and b (no sqrt on the hot path).
func DistanceSq(a, b Vec3) float64 {
	return a.Sub(b).LenSqr()
}
