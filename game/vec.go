package game

import "math"

// Vec3 世界坐标向量（Y 轴向上，前方为 -Z）
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) LenSq() float64 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

func (v Vec3) Len() float64 { return math.Sqrt(v.LenSq()) }

// Normalize 返回单位向量；零向量保持为零
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

func (v Vec3) DistanceTo(o Vec3) float64 { return v.Sub(o).Len() }

// RotateY 绕 Y 轴旋转 yaw 弧度（右手系，与渲染端 Euler(0, yaw, 0) 一致）
func (v Vec3) RotateY(yaw float64) Vec3 {
	s, c := math.Sincos(yaw)
	return Vec3{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

// Forward 视线方向（YXZ 欧拉顺序：先 yaw 后 pitch）
func Forward(yaw, pitch float64) Vec3 {
	sy, cy := math.Sincos(yaw)
	sp, cp := math.Sincos(pitch)
	return Vec3{X: -sy * cp, Y: sp, Z: -cy * cp}
}

// YawTowards 返回从 from 水平朝向 to 的 yaw（与 lookAt 的结果一致：局部 +Z 指向目标）
func YawTowards(from, to Vec3) float64 {
	return math.Atan2(to.X-from.X, to.Z-from.Z)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
