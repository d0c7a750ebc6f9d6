package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestStylesSetKeepsInsertionOrder(t *testing.T) {
	var s Styles
	s.Set(PropWidth, String("10px"))
	s.Set(PropHeight, String("20px"))
	s.Set(PropFlexGrow, Number(1))
	s.Set(PropWidth, String("30px"))

	require.Equal(t, []string{PropWidth, PropHeight, PropFlexGrow}, s.Keys())
	v, ok := s.Get(PropWidth)
	require.True(t, ok)
	assert.Equal(t, String("30px"), v)
}

func TestStylesDelete(t *testing.T) {
	s := NewStyles(
		Property{PropWidth, String("10px")},
		Property{PropHeight, String("20px")},
	)
	clone := s.Clone()

	require.True(t, s.Delete(PropWidth))
	require.False(t, s.Delete(PropWidth))
	assert.Equal(t, []string{PropHeight}, s.Keys())
	assert.Equal(t, []string{PropWidth, PropHeight}, clone.Keys(), "clone must not share key storage")
}

func TestStylesCloneIsIndependent(t *testing.T) {
	original := DefaultItemStyles()
	clone := original.Clone()
	clone.Set(PropWidth, String("999px"))
	clone.Set(PropOrder, Number(2))

	v, _ := original.Get(PropWidth)
	assert.Equal(t, String("120px"), v)
	assert.Equal(t, 2, original.Len())
	assert.False(t, original.Equal(clone))
}

func TestValueEmpty(t *testing.T) {
	assert.True(t, Null().Empty())
	assert.True(t, String("").Empty())
	assert.False(t, String("0").Empty())
	assert.False(t, Number(0).Empty())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "1", Number(1).String())
	assert.Equal(t, "0.5", Number(0.5).String())
	assert.Equal(t, "150px", Pixels(150).String())
	assert.Equal(t, "", Null().String())
}

func TestStylesYAMLRoundTrip(t *testing.T) {
	src := `
width: 150px
flexGrow: 1
order: "2"
alignSelf: center
flexBasis: null
`
	var s Styles
	require.NoError(t, yaml.Unmarshal([]byte(src), &s))

	require.Equal(t, []string{PropWidth, PropFlexGrow, PropOrder, PropAlignSelf, PropFlexBasis}, s.Keys())
	grow, _ := s.Get(PropFlexGrow)
	assert.True(t, grow.IsNumber())
	order, _ := s.Get(PropOrder)
	assert.Equal(t, String("2"), order)
	basis, _ := s.Get(PropFlexBasis)
	assert.Equal(t, KindNull, basis.Kind())

	out, err := yaml.Marshal(s)
	require.NoError(t, err)

	var again Styles
	require.NoError(t, yaml.Unmarshal(out, &again))
	assert.True(t, s.Equal(again), "round trip changed styles:\n%s", out)
}

func TestStylesYAMLRejectsSequence(t *testing.T) {
	var s Styles
	err := yaml.Unmarshal([]byte("- width\n- height\n"), &s)
	require.Error(t, err)
}
