package scene

import (
	"testing"

	"github.com/philipparndt/gochair/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChairObjectOrder(t *testing.T) {
	s := BuildChair(DefaultWoodColor, DefaultBackgroundColor)

	var names []string
	for _, obj := range s.Objects() {
		names = append(names, obj.Name())
	}
	assert.Equal(t, []string{"Ground", "Seat", "Backrest", "Leg 1", "Leg 2", "Leg 3", "Leg 4"}, names)
	assert.Len(t, s.Meshes(), 6)
	assert.NotNil(t, s.Ground())
}

func TestBuildChairCapabilities(t *testing.T) {
	s := BuildChair(DefaultWoodColor, DefaultBackgroundColor)

	seat, ok := s.Find("Seat")
	require.True(t, ok)
	_, isHighlightable := seat.(Highlightable)
	_, isColorable := seat.(Colorable)
	assert.True(t, isHighlightable)
	assert.True(t, isColorable)
	assert.Equal(t, DefaultWoodColor, seat.(Colorable).BaseColor())

	ground, ok := s.Find("Ground")
	require.True(t, ok)
	_, isHighlightable = ground.(Highlightable)
	_, isColorable = ground.(Colorable)
	assert.False(t, isHighlightable)
	assert.False(t, isColorable)
}

func TestAddRejectsDuplicateName(t *testing.T) {
	s := New(DefaultBackgroundColor)
	require.NoError(t, s.Add(NewBox("Seat", geometry.Vector3{}, geometry.NewVector3(1, 1, 1), DefaultWoodColor)))
	assert.Error(t, s.Add(NewBox("Seat", geometry.Vector3{}, geometry.NewVector3(1, 1, 1), DefaultWoodColor)))
	assert.Len(t, s.Objects(), 1)
}

func TestMeshHighlight(t *testing.T) {
	m := NewBox("Seat", geometry.Vector3{}, geometry.NewVector3(1, 1, 1), 0x101010)

	assert.False(t, m.Highlighted())
	m.SetHighlight(0x444444)
	assert.True(t, m.Highlighted())
	assert.Equal(t, Color(0x545454), m.DisplayColor())

	m.ClearHighlight()
	assert.False(t, m.Highlighted())
	assert.Equal(t, Color(0x101010), m.DisplayColor())
}

func TestNilSceneHasNoObjects(t *testing.T) {
	var s *Scene
	assert.Empty(t, s.Objects())
}

func TestColorAddSaturates(t *testing.T) {
	assert.Equal(t, Color(0xFF8844), Color(0xF08000).Add(0x440844))
}

func TestColorText(t *testing.T) {
	var c Color
	require.NoError(t, c.UnmarshalText([]byte("#8b4513")))
	assert.Equal(t, DefaultWoodColor, c)

	require.NoError(t, c.UnmarshalText([]byte("0x444444")))
	assert.Equal(t, Color(0x444444), c)

	assert.Error(t, c.UnmarshalText([]byte("#12")))
	assert.Error(t, c.UnmarshalText([]byte("zzzzzz")))

	text, err := DefaultWoodColor.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#8b4513", string(text))
}
