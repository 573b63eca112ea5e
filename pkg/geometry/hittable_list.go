package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// HittableList is a flat collection of shapes resolved by linear scan.
// It is never mutated once rendering starts.
type HittableList struct {
	Shapes []Shape
}

// NewHittableList creates a list holding the given shapes in order
func NewHittableList(shapes ...Shape) *HittableList {
	return &HittableList{Shapes: shapes}
}

// Add appends shapes to the list
func (l *HittableList) Add(shapes ...Shape) {
	l.Shapes = append(l.Shapes, shapes...)
}

// Len returns the number of shapes
func (l *HittableList) Len() int {
	return len(l.Shapes)
}

// Hit returns the nearest intersection among all shapes. Each candidate is
// tested against the closest distance found so far, so on exactly equal
// distances the earliest shape wins.
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit && hit.T < closestSoFar {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
