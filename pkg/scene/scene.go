package scene

import (
	"fmt"

	"github.com/philipparndt/gochair/pkg/geometry"
)

// Default colors of the demo product
const (
	DefaultWoodColor       Color = 0x8B4513
	DefaultBackgroundColor Color = 0xF0F0F0
	DefaultAmbientColor    Color = 0x404040
)

// Light describes the directional light the renderer shades with
type Light struct {
	Position  geometry.Vector3
	Color     Color
	Intensity float64
}

// Scene is the fixed, ordered set of pickable objects plus the render settings
// that go with it. Insertion order is preserved and used for pick tie-breaks.
type Scene struct {
	Background Color
	Ambient    Color
	Sun        Light
	objects    []Object
	byName     map[string]Object
}

// New creates an empty scene
func New(background Color) *Scene {
	return &Scene{
		Background: background,
		Ambient:    DefaultAmbientColor,
		Sun: Light{
			Position:  geometry.NewVector3(5, 10, 7.5),
			Color:     0xFFFFFF,
			Intensity: 1,
		},
		byName: make(map[string]Object),
	}
}

// Add appends an object. Names must be unique within the scene.
func (s *Scene) Add(obj Object) error {
	if _, exists := s.byName[obj.Name()]; exists {
		return fmt.Errorf("duplicate object name %q", obj.Name())
	}
	s.objects = append(s.objects, obj)
	s.byName[obj.Name()] = obj
	return nil
}

// Objects returns the objects in insertion order
func (s *Scene) Objects() []Object {
	if s == nil {
		return nil
	}
	return s.objects
}

// Find looks up an object by name
func (s *Scene) Find(name string) (Object, bool) {
	obj, ok := s.byName[name]
	return obj, ok
}

// Meshes returns only the solid meshes, in insertion order
func (s *Scene) Meshes() []*Mesh {
	meshes := make([]*Mesh, 0, len(s.objects))
	for _, obj := range s.objects {
		if m, ok := obj.(*Mesh); ok {
			meshes = append(meshes, m)
		}
	}
	return meshes
}

// Ground returns the floor, if the scene has one
func (s *Scene) Ground() *Ground {
	for _, obj := range s.objects {
		if g, ok := obj.(*Ground); ok {
			return g
		}
	}
	return nil
}

// legPositions are the leg centers, in the order the legs are numbered
var legPositions = []geometry.Vector3{
	{X: -0.9, Y: 0.5, Z: -0.9},
	{X: 0.9, Y: 0.5, Z: -0.9},
	{X: -0.9, Y: 0.5, Z: 0.9},
	{X: 0.9, Y: 0.5, Z: 0.9},
}

// BuildChair constructs the demo product: ground, seat, backrest and four legs
func BuildChair(wood, background Color) *Scene {
	s := New(background)

	// Errors are impossible here: all names are distinct
	_ = s.Add(&Ground{
		Rect:    geometry.Rect{Center: geometry.NewVector3(0, 0, 0), Width: 30, Depth: 30},
		Opacity: 0.2,
	})
	_ = s.Add(NewBox("Seat", geometry.NewVector3(0, 1, 0), geometry.NewVector3(2, 0.2, 2), wood))
	_ = s.Add(NewBox("Backrest", geometry.NewVector3(0, 2, -0.9), geometry.NewVector3(2, 2, 0.2), wood))

	for i, pos := range legPositions {
		_ = s.Add(NewCylinder(fmt.Sprintf("Leg %d", i+1), pos, 0.1, 1, wood))
	}

	return s
}
