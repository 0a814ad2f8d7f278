package domain

import "math"

// Point - координата на поле в пикселях виртуального холста.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size - размеры сущности на поле.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// DistanceTo возвращает евклидово расстояние до другой точки.
func (p Point) DistanceTo(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Lerp - линейная интерполяция между p и other.
// t=0 дает p, t=1 дает other.
func (p Point) Lerp(other Point, t float64) Point {
	return Point{
		X: p.X + (other.X-p.X)*t,
		Y: p.Y + (other.Y-p.Y)*t,
	}
}

// --- ЯКОРНЫЕ ТОЧКИ ---
// Соединения цепляются к краям сущностей: выход - правый край,
// вход - левый край. Роутер пересчитывает их каждый тик.

// RightCenter возвращает середину правого края прямоугольника (pos, size).
func RightCenter(pos Point, size Size) Point {
	return Point{X: pos.X + size.W, Y: pos.Y + size.H/2}
}

// LeftCenter возвращает середину левого края прямоугольника (pos, size).
func LeftCenter(pos Point, size Size) Point {
	return Point{X: pos.X, Y: pos.Y + size.H/2}
}

// Center возвращает центр прямоугольника (pos, size).
func Center(pos Point, size Size) Point {
	return Point{X: pos.X + size.W/2, Y: pos.Y + size.H/2}
}
