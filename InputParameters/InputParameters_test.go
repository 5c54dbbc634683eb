package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JackJiang1989/ht/entu"
)

func TestExchangerCase(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Oil heater
Mh: 5.2
Mc: 0.725
Cph: 1860
Cpc: 1900
Configuration: "crossflow, mixed Cmax"
Thi: 130
Tci: 15
UA: 2975.5
`)
	var ec ExchangerCase
	if err = ec.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, "Oil heater", ec.Title)
	assert.Equal(t, 5.2, ec.Mh)
	assert.Equal(t, 1900.0, ec.Cpc)
	// omitted keys stay unknown, not zero
	assert.Nil(t, ec.Tho)
	assert.Nil(t, ec.Tco)
	assert.NotNil(t, ec.Thi)
	assert.Equal(t, 130.0, *ec.Thi)
	ec.Print()

	c, err := ec.Case()
	assert.NoError(t, err)
	assert.Equal(t, entu.CrossflowMixedCmaxConfig, c.Config)
	assert.Equal(t, 2975.5, *c.UA)

	res, err := entu.Solve(c)
	assert.NoError(t, err)
	assert.InDelta(t, 131675.327, res.Q, 1e-2)
}

func TestExchangerCaseBadConfiguration(t *testing.T) {
	var ec ExchangerCase
	err := ec.Parse([]byte(`
Title: broken
Configuration: "sideways"
`))
	assert.NoError(t, err)
	_, err = ec.Case()
	assert.ErrorIs(t, err, entu.ErrUnknownConfiguration)
}

func TestExchangerCaseZeroTemperature(t *testing.T) {
	// An explicit 0.0 must read as a real temperature.
	var ec ExchangerCase
	err := ec.Parse([]byte(`
Title: icy inlet
Mh: 1
Mc: 1
Cph: 4180
Cpc: 4180
Configuration: counterflow
Thi: 90
Tci: 0.0
UA: 5000
`))
	assert.NoError(t, err)
	assert.NotNil(t, ec.Tci)
	assert.Equal(t, 0.0, *ec.Tci)

	c, err := ec.Case()
	assert.NoError(t, err)
	_, err = entu.Solve(c)
	assert.NoError(t, err)
}
