package bem_test

import (
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bemkit/pkg/bem"
)

func TestBlock_Classes(t *testing.T) {
	b := bem.MustBlock("card")

	classes := b.Classes(bem.From(templ.KV("active", true)))
	assert.Equal(t, templ.CSSClasses{"card", "card--active"}, classes)

	el, err := b.ElementClasses("title", bem.Name("large"))
	require.NoError(t, err)
	assert.Equal(t, templ.CSSClasses{"card__title", "card__title--large"}, el)

	_, err = b.ElementClasses("", nil)
	assert.ErrorIs(t, err, bem.ErrMissingElement)
}
