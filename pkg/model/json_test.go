package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/gosegment/pkg/model"
)

func TestParseJSONValid(t *testing.T) {
	t.Parallel()

	data := []byte(`{
		"UW4": {"a": 10000, "b": -500},
		"BW2": {"xy": 200},
		"BASE": {"BIAS": -300}
	}`)

	m, err := model.ParseJSON(data)
	require.NoError(t, err)

	assert.Equal(t, 10000, m.Weight(model.UW4, "a"))
	assert.Equal(t, -500, m.Weight(model.UW4, "b"))
	assert.Equal(t, 200, m.Weight(model.BW2, "xy"))
	assert.Equal(t, -300, m.Weight(model.Base, model.BiasValue))
	assert.Equal(t, 4, m.TotalEntries())
}

func TestParseJSONAbsentEntriesAreZero(t *testing.T) {
	t.Parallel()

	m, err := model.ParseJSON([]byte(`{"UW1": {"x": 1}}`))
	require.NoError(t, err)

	assert.Zero(t, m.Weight(model.UW1, "y"))
	assert.Zero(t, m.Weight(model.TW4, "abc"))
	assert.Zero(t, m.Weight(model.Base, model.BiasValue))
}

func TestParseJSONUnknownCategory(t *testing.T) {
	t.Parallel()

	_, err := model.ParseJSON([]byte(`{"UW9": {"a": 1}}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidFormat)

	var formatErr *model.FormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, "UW9", formatErr.Category)
}

func TestParseJSONNonObjectValue(t *testing.T) {
	t.Parallel()

	_, err := model.ParseJSON([]byte(`{"UW1": 42}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidFormat)
}

func TestParseJSONNonIntegerWeight(t *testing.T) {
	t.Parallel()

	_, err := model.ParseJSON([]byte(`{"UW1": {"a": 1.5}}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidFormat)

	_, err = model.ParseJSON([]byte(`{"UW1": {"a": "big"}}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidFormat)
}

func TestParseJSONInvalidDocument(t *testing.T) {
	t.Parallel()

	_, err := model.ParseJSON([]byte(`not json`))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidFormat)

	_, err = model.ParseJSON([]byte(`["UW1"]`))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidFormat)
}
