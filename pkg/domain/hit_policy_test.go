package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHitPolicy(t *testing.T) {
	tests := []struct {
		code string
		want HitPolicy
	}{
		{"U", HitPolicyUnique},
		{"A", HitPolicyAny},
		{"P", HitPolicyPriority},
		{"F", HitPolicyFirst},
		{"C", HitPolicyCollectList},
		{"C+", HitPolicyCollectSum},
		{"C<", HitPolicyCollectMin},
		{"C>", HitPolicyCollectMax},
		{"C#", HitPolicyCollectCount},
		{"O", HitPolicyOutputOrder},
		{" R ", HitPolicyRuleOrder},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := ParseHitPolicy(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHitPolicy_Invalid(t *testing.T) {
	for _, code := range []string{"", "X", "u", "C-", "UNIQUE", "1"} {
		_, err := ParseHitPolicy(code)
		assert.True(t, errors.Is(err, ErrInvalidHitPolicy), "code %q", code)
	}
}

func TestHitPolicy_Aggregator(t *testing.T) {
	agg, ok := HitPolicyCollectSum.Aggregator()
	assert.True(t, ok)
	assert.Equal(t, AggregatorSum, agg)
	assert.True(t, HitPolicyCollectSum.IsCollect())

	_, ok = HitPolicyFirst.Aggregator()
	assert.False(t, ok)
	assert.False(t, HitPolicyFirst.IsCollect())
	assert.Equal(t, "COLLECT COUNT", HitPolicyCollectCount.String())
}

func TestHitPolicy_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		HP HitPolicy `json:"hp"`
	}{HitPolicyCollectMax})
	require.NoError(t, err)
	assert.JSONEq(t, `{"hp":"C>"}`, string(data))

	var decoded struct {
		HP HitPolicy `json:"hp"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"hp":"P"}`), &decoded))
	assert.Equal(t, HitPolicyPriority, decoded.HP)
}

func TestDecisionTable_Validate(t *testing.T) {
	dt := &DecisionTable{
		InputClauses:  []InputClause{{InputExpression: "Age"}},
		OutputClauses: []OutputClause{{}},
		Rules: []Rule{
			{InputEntries: []string{"<18"}, OutputEntries: []string{"10"}},
		},
	}
	require.NoError(t, dt.Validate())

	dt.Rules = append(dt.Rules, Rule{InputEntries: []string{"-"}})
	assert.ErrorIs(t, dt.Validate(), ErrInvalidTable)

	assert.ErrorIs(t, (&DecisionTable{}).Validate(), ErrInvalidTable)
}
