package domain

import (
	"fmt"
	"strings"
)

// BuiltinAggregator is the aggregation applied by the Collect hit policy.
type BuiltinAggregator string

const (
	AggregatorList  BuiltinAggregator = "LIST"
	AggregatorSum   BuiltinAggregator = "SUM"
	AggregatorMin   BuiltinAggregator = "MIN"
	AggregatorMax   BuiltinAggregator = "MAX"
	AggregatorCount BuiltinAggregator = "COUNT"
)

// HitPolicy governs how the results of multiple matching rules are combined.
type HitPolicy int

const (
	HitPolicyUnique HitPolicy = iota
	HitPolicyAny
	HitPolicyPriority
	HitPolicyFirst
	HitPolicyCollectList
	HitPolicyCollectSum
	HitPolicyCollectMin
	HitPolicyCollectMax
	HitPolicyCollectCount
	HitPolicyOutputOrder
	HitPolicyRuleOrder
)

var hitPolicyCodes = map[HitPolicy]string{
	HitPolicyUnique:       "U",
	HitPolicyAny:          "A",
	HitPolicyPriority:     "P",
	HitPolicyFirst:        "F",
	HitPolicyCollectList:  "C",
	HitPolicyCollectSum:   "C+",
	HitPolicyCollectMin:   "C<",
	HitPolicyCollectMax:   "C>",
	HitPolicyCollectCount: "C#",
	HitPolicyOutputOrder:  "O",
	HitPolicyRuleOrder:    "R",
}

var hitPolicyNames = map[HitPolicy]string{
	HitPolicyUnique:       "UNIQUE",
	HitPolicyAny:          "ANY",
	HitPolicyPriority:     "PRIORITY",
	HitPolicyFirst:        "FIRST",
	HitPolicyCollectList:  "COLLECT",
	HitPolicyCollectSum:   "COLLECT SUM",
	HitPolicyCollectMin:   "COLLECT MIN",
	HitPolicyCollectMax:   "COLLECT MAX",
	HitPolicyCollectCount: "COLLECT COUNT",
	HitPolicyOutputOrder:  "OUTPUT ORDER",
	HitPolicyRuleOrder:    "RULE ORDER",
}

// ParseHitPolicy decodes the one or two character code written in a hit policy cell.
func ParseHitPolicy(code string) (HitPolicy, error) {
	code = strings.TrimSpace(code)
	for hp, c := range hitPolicyCodes {
		if c == code {
			return hp, nil
		}
	}
	return HitPolicyUnique, fmt.Errorf("%w: %q", ErrInvalidHitPolicy, code)
}

// Code returns the short code of the hit policy, e.g. "U" or "C+".
func (hp HitPolicy) Code() string {
	if c, ok := hitPolicyCodes[hp]; ok {
		return c
	}
	return "?"
}

// IsCollect reports whether the hit policy is one of the Collect variants.
func (hp HitPolicy) IsCollect() bool {
	return hp >= HitPolicyCollectList && hp <= HitPolicyCollectCount
}

// Aggregator returns the builtin aggregator of a Collect hit policy.
// The second value is false for every other hit policy.
func (hp HitPolicy) Aggregator() (BuiltinAggregator, bool) {
	switch hp {
	case HitPolicyCollectList:
		return AggregatorList, true
	case HitPolicyCollectSum:
		return AggregatorSum, true
	case HitPolicyCollectMin:
		return AggregatorMin, true
	case HitPolicyCollectMax:
		return AggregatorMax, true
	case HitPolicyCollectCount:
		return AggregatorCount, true
	default:
		return "", false
	}
}

func (hp HitPolicy) String() string {
	if n, ok := hitPolicyNames[hp]; ok {
		return n
	}
	return fmt.Sprintf("HitPolicy(%d)", int(hp))
}

// MarshalText encodes the hit policy as its code.
func (hp HitPolicy) MarshalText() ([]byte, error) {
	if _, ok := hitPolicyCodes[hp]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHitPolicy, int(hp))
	}
	return []byte(hp.Code()), nil
}

// UnmarshalText decodes a hit policy code.
func (hp *HitPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseHitPolicy(string(text))
	if err != nil {
		return err
	}
	*hp = parsed
	return nil
}
