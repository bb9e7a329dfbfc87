package converter

import (
	"encoding/json"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vhsenna/parts-unlimited/internal/model"
	"github.com/vhsenna/parts-unlimited/internal/wordfreq"
	apiv1 "github.com/vhsenna/parts-unlimited/pkg/api/v1"
)

func TestPartRequestToFieldsKeepsAbsence(t *testing.T) {
	t.Parallel()

	var req apiv1.PartRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Bolt","is_active":false}`), &req))

	f := PartRequestToFields(&req)
	assert.Equal(t, lo.ToPtr("Bolt"), f.Name)
	assert.Equal(t, lo.ToPtr(false), f.IsActive)
	assert.Nil(t, f.SKU)
	assert.Nil(t, f.Description)
	assert.Nil(t, f.WeightOunces)

	assert.Equal(t, model.PartFields{}, PartRequestToFields(nil))
}

func TestPartsToAPI(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(PartsToAPI(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))

	parts := []*model.Part{
		{ID: 1, Name: "Test Part", SKU: "TP123", Description: "A test part.", WeightOunces: 10, IsActive: true},
	}
	b, err = json.Marshal(PartsToAPI(parts))
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"id":1,"name":"Test Part","sku":"TP123","description":"A test part.","weight_ounces":10,"is_active":true}]`,
		string(b),
	)
}

func TestRankingToAPIKeepsRankOrder(t *testing.T) {
	t.Parallel()

	res, err := RankingToAPI(wordfreq.Ranking{{Word: "load", Count: 3}, {Word: "computing", Count: 3}})
	require.NoError(t, err)

	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Equal(t, `{"most_common_words":{"load":3,"computing":3}}`, string(b))
}
