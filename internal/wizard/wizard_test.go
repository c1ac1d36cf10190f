package wizard_test

import (
	"testing"

	"milan/internal/backend"
	"milan/internal/taxonomy"
	"milan/internal/wizard"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var menShirts = taxonomy.Slot{Category: "men", Subcategory: "shirts"}

func existingProduct() backend.Product {
	return backend.Product{
		ID:               "p1",
		Name:             "Kurta",
		ShortDescription: "Festive kurta",
		Description:      "A festive cotton kurta.",
		Category:         "kids",
		Subcategory:      "party",
		Gender:           "girl",
		AgeGroup:         "4-7",
		Images:           []backend.ProductImage{{URL: "a"}, {URL: "b", IsPrimary: true}},
		Fabric:           "Cotton",
		PrimaryColor:     "Red",
		AvailableColors:  []string{"Blue"},
		Sizes:            []string{"M"},
		Price:            1200,
	}
}

// atPreview walks a complete edit-mode wizard to the preview.
func atPreview(t *testing.T) *wizard.Wizard {
	t.Helper()
	w := wizard.NewEdit(existingProduct())
	for w.Step() != wizard.StepPreview {
		require.NoError(t, w.Next(), "stuck at %s", w.Step())
	}
	return w
}

func TestNewAdd(t *testing.T) {
	w, err := wizard.NewAdd(menShirts)
	require.NoError(t, err)
	assert.Equal(t, wizard.ModeAdd, w.Mode())
	assert.Equal(t, wizard.StepImages, w.Step())
	assert.False(t, w.EditingFromPreview())

	_, err = wizard.NewAdd(taxonomy.Slot{Category: "men", Subcategory: "gowns"})
	assert.ErrorIs(t, err, taxonomy.ErrUnknownCategory)
}

func TestNewEdit_LoadsProduct(t *testing.T) {
	w := wizard.NewEdit(existingProduct())
	d := w.Draft()

	assert.Equal(t, wizard.ModeEdit, w.Mode())
	assert.Equal(t, "p1", w.ProductID())
	assert.True(t, d.HasOtherColors)
	assert.Equal(t, []string{"Blue"}, d.AvailableColors)
	assert.Equal(t, []wizard.Image{{URL: "a"}, {URL: "b", IsPrimary: true}}, d.Images)
	assert.Equal(t, "/owner/products/kids/4-7/girl", d.Slot.ListingPath())

	p := existingProduct()
	p.Images = []backend.ProductImage{{URL: "x"}, {URL: "y"}}
	p.AvailableColors = nil
	d = wizard.NewEdit(p).Draft()
	assert.True(t, d.Images[0].IsPrimary)
	assert.False(t, d.HasOtherColors)
}

func TestNext_GateBlocks(t *testing.T) {
	w, err := wizard.NewAdd(menShirts)
	require.NoError(t, err)

	err = w.Next()
	assert.ErrorIs(t, err, wizard.ErrStepIncomplete)
	assert.True(t, wizard.IsValidation(err))
	assert.Equal(t, wizard.StepImages, w.Step())
}

func TestNext_Linear(t *testing.T) {
	w := atPreview(t)
	assert.Equal(t, wizard.StepPreview, w.Step())
	assert.ErrorIs(t, w.Next(), wizard.ErrNoNextStep)

	w.Previous()
	assert.Equal(t, wizard.StepShowInFreshArrivals, w.Step())
}

func TestPrevious_FirstStepIsNoop(t *testing.T) {
	w, err := wizard.NewAdd(menShirts)
	require.NoError(t, err)
	w.Previous()
	assert.Equal(t, wizard.StepImages, w.Step())
}

func TestPrevious_FirstStepReturnsToPreview(t *testing.T) {
	w := atPreview(t)
	require.NoError(t, w.EditFromPreview(wizard.StepImages))

	w.Previous()
	assert.Equal(t, wizard.StepPreview, w.Step())

	// the return is spent; a second edit of the first step starts over
	require.NoError(t, w.EditFromPreview(wizard.StepImages))
	w.Previous()
	assert.Equal(t, wizard.StepPreview, w.Step())
	assert.False(t, w.EditingFromPreview())
}

func TestEditFromPreview_ReturnsToPreview(t *testing.T) {
	for _, k := range wizard.Steps()[:10] {
		for _, via := range []string{"next", "previous"} {
			t.Run(k.String()+"_"+via, func(t *testing.T) {
				w := atPreview(t)

				require.NoError(t, w.EditFromPreview(k))
				assert.Equal(t, k, w.Step())
				assert.True(t, w.EditingFromPreview())

				if via == "next" {
					require.NoError(t, w.Next())
				} else {
					w.Previous()
				}
				assert.Equal(t, wizard.StepPreview, w.Step())
				assert.False(t, w.EditingFromPreview())
			})
		}
	}
}

func TestEditFromPreview_GateStillApplies(t *testing.T) {
	w := atPreview(t)
	require.NoError(t, w.EditFromPreview(wizard.StepSizes))

	require.NoError(t, w.Apply(wizard.Patch{Sizes: []string{}}))
	assert.ErrorIs(t, w.Next(), wizard.ErrStepIncomplete)
	assert.Equal(t, wizard.StepSizes, w.Step())
	assert.True(t, w.EditingFromPreview())
}

func TestEditFromPreview_Rejected(t *testing.T) {
	w, err := wizard.NewAdd(menShirts)
	require.NoError(t, err)
	assert.ErrorIs(t, w.EditFromPreview(wizard.StepFabric), wizard.ErrNotAtPreview)

	w = atPreview(t)
	assert.ErrorIs(t, w.EditFromPreview(wizard.StepPreview), wizard.ErrInvalidStep)
	assert.ErrorIs(t, w.EditFromPreview(wizard.Step(11)), wizard.ErrInvalidStep)
}

func TestApply(t *testing.T) {
	w, err := wizard.NewAdd(menShirts)
	require.NoError(t, err)

	on := true
	name := "Shirt"
	slider := decimal.NewFromInt(1260)
	require.NoError(t, w.Apply(wizard.Patch{
		HasOtherColors:  &on,
		AvailableColors: []string{"Blue", "White"},
		ItemName:        &name,
		SliderPrice:     &slider,
	}))

	v := w.View()
	assert.Equal(t, []string{"Blue", "White"}, v.AvailableColors)
	assert.Equal(t, "Shirt", v.ItemName)
	assert.Equal(t, 1300.0, v.Price)

	t.Run("atomic", func(t *testing.T) {
		other := "Oops"
		negative := decimal.NewFromInt(-5)
		err := w.Apply(wizard.Patch{ItemName: &other, ExactPrice: &negative})
		assert.ErrorIs(t, err, wizard.ErrInvalidPrice)
		assert.Equal(t, "Shirt", w.Draft().ItemName)
	})

	t.Run("switching_colours_off_clears_them", func(t *testing.T) {
		off := false
		require.NoError(t, w.Apply(wizard.Patch{HasOtherColors: &off}))
		assert.Empty(t, w.Draft().AvailableColors)
	})

	t.Run("field_edits_keep_return_target", func(t *testing.T) {
		w := atPreview(t)
		require.NoError(t, w.EditFromPreview(wizard.StepItemDetails))
		renamed := "Silk Kurta"
		require.NoError(t, w.Apply(wizard.Patch{ItemName: &renamed}))
		assert.True(t, w.EditingFromPreview())
		assert.Equal(t, wizard.StepItemDetails, w.Step())
	})
}

func TestView(t *testing.T) {
	w := wizard.NewEdit(existingProduct())
	v := w.View()

	assert.Equal(t, wizard.StepImages, v.Step)
	assert.Equal(t, 0, v.StepNumber)
	assert.True(t, v.CanAdvance)
	assert.Len(t, v.Steps, 11)
	assert.Equal(t, "/owner/products/kids/4-7/girl", v.ListingPath)
	assert.False(t, v.Images[0].HasContent)
	assert.True(t, v.Images[1].IsPrimary)
}
