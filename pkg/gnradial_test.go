package gnradial_test

import (
	"testing"

	"github.com/gnames/gnradial/internal/iotesting"
	gnradial "github.com/gnames/gnradial/pkg"
	"github.com/gnames/gnradial/pkg/config"
	"github.com/gnames/gnradial/pkg/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartsAtConfiguredRoot(t *testing.T) {
	tree := iotesting.Chordata(t)

	cfg := iotesting.GetTestConfig(t)
	cfg.Update([]config.Option{config.OptViewRootName("Mammalia")})
	v := gnradial.New(cfg, tree)
	assert.Equal(t, "Mammalia", v.State().Current().Name)
	assert.Same(t, cfg, v.Config())
	assert.Same(t, tree, v.Tree())

	cfg.Update([]config.Option{config.OptViewRootName("Reptilia")})
	v = gnradial.New(cfg, tree)
	assert.Same(t, tree.Root(), v.State().Current())
}

func TestViewerNavigation(t *testing.T) {
	tree := iotesting.Chordata(t)
	v := gnradial.New(iotesting.GetTestConfig(t), tree)
	assert.Equal(t, "Chordata", v.State().Current().Name)

	assert.True(t, v.DrillDown("11"))
	assert.Equal(t, "Felidae", v.State().Current().Name)
	assert.False(t, v.DrillDown("11"))
	assert.False(t, v.DrillDown("no-such-id"))

	fr := v.Frame()
	assert.Equal(t, "Felidae family", fr.Title)
	assert.Equal(t, "Chordata -> Mammalia -> Carnivora -> Felidae", fr.PathString)

	assert.True(t, v.DrillUp())
	assert.Equal(t, "Carnivora", v.State().Current().Name)

	require.NoError(t, v.Select(selector.Choice{Common: "perching"}))
	assert.Equal(t, "Passeriformes", v.State().Current().Name)
	require.Error(t, v.Select(selector.Choice{Name: "Canis"}))
	assert.Equal(t, "Passeriformes", v.State().Current().Name)

	require.NoError(t, v.Select(selector.Choice{}))
	assert.Equal(t, "Chordata", v.State().Current().Name)
}

func TestViewerOptions(t *testing.T) {
	cfg := iotesting.GetTestConfig(t)
	cfg.Update([]config.Option{
		config.OptViewBudget(5),
		config.OptViewOuterRadius(100),
		config.OptViewLabelLimit(2),
	})
	v := gnradial.New(cfg, iotesting.Chordata(t))

	opts := v.Options()
	assert.Equal(t, 5, opts.Budget)
	assert.InDelta(t, 100, opts.Layout.OuterRadius, 1e-9)
	assert.Equal(t, 2, opts.Layout.LabelLimit)
	assert.Equal(t, 300, opts.Layout.InnerLabelLimit)

	fr := v.Frame()
	assert.NotEmpty(t, fr.HiddenRanks)
	assert.False(t, fr.ShowLabels)
}
