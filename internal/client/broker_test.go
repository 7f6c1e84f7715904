// ABOUTME: Tests for the broker view's full/partial snapshot reconciliation
// ABOUTME: Full updates replace the set; partial updates merge by key

package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	roostpb "github.com/roostlabs/roost/proto/roost"
)

func agentInfo(id string, metrics map[string]string) *roostpb.AgentInfo {
	return &roostpb.AgentInfo{AgentId: id, AgentName: "agent-" + id, Metrics: metrics}
}

func TestApplyFullReplacesSet(t *testing.T) {
	v := NewBrokerView(BrokerOptions{BrokerID: "b1"})

	v.Apply(&roostpb.AgentStatusSnapshot{
		Agents:       []*roostpb.AgentInfo{agentInfo("a", nil), agentInfo("b", nil)},
		IsFullUpdate: true,
	})
	require.Len(t, v.Agents(), 2)

	// A full update missing b is authoritative: b is gone.
	v.Apply(&roostpb.AgentStatusSnapshot{
		Agents:       []*roostpb.AgentInfo{agentInfo("a", nil)},
		IsFullUpdate: true,
	})

	agents := v.Agents()
	require.Len(t, agents, 1)
	assert.Equal(t, "a", agents[0].GetAgentId())
	_, ok := v.Get("b")
	assert.False(t, ok)
}

func TestApplyPartialMergesByKey(t *testing.T) {
	v := NewBrokerView(BrokerOptions{BrokerID: "b1"})

	v.Apply(&roostpb.AgentStatusSnapshot{
		Agents: []*roostpb.AgentInfo{
			agentInfo("a", map[string]string{"cpu": "10"}),
			agentInfo("b", map[string]string{"cpu": "20"}),
		},
		IsFullUpdate: true,
	})

	// Partial update naming only b leaves a untouched.
	v.Apply(&roostpb.AgentStatusSnapshot{
		Agents:       []*roostpb.AgentInfo{agentInfo("b", map[string]string{"cpu": "80"})},
		IsFullUpdate: false,
	})

	a, ok := v.Get("a")
	require.True(t, ok)
	assert.Equal(t, "10", a.GetMetrics()["cpu"])

	b, ok := v.Get("b")
	require.True(t, ok)
	assert.Equal(t, "80", b.GetMetrics()["cpu"])
}

func TestApplyPartialNeverDeletes(t *testing.T) {
	v := NewBrokerView(BrokerOptions{BrokerID: "b1"})
	v.Apply(&roostpb.AgentStatusSnapshot{
		Agents:       []*roostpb.AgentInfo{agentInfo("a", nil), agentInfo("b", nil)},
		IsFullUpdate: true,
	})

	v.Apply(&roostpb.AgentStatusSnapshot{IsFullUpdate: false})
	assert.Len(t, v.Agents(), 2)
}

func TestApplyEmptyFullClearsView(t *testing.T) {
	v := NewBrokerView(BrokerOptions{BrokerID: "b1"})
	v.Apply(&roostpb.AgentStatusSnapshot{
		Agents:       []*roostpb.AgentInfo{agentInfo("a", nil)},
		IsFullUpdate: true,
	})
	v.Apply(&roostpb.AgentStatusSnapshot{IsFullUpdate: true})
	assert.Empty(t, v.Agents())
}

func TestAgentsSorted(t *testing.T) {
	v := NewBrokerView(BrokerOptions{BrokerID: "b1"})
	v.Apply(&roostpb.AgentStatusSnapshot{
		Agents: []*roostpb.AgentInfo{
			agentInfo("charlie", nil), agentInfo("alpha", nil), agentInfo("bravo", nil),
		},
		IsFullUpdate: true,
	})

	var ids []string
	for _, info := range v.Agents() {
		ids = append(ids, info.GetAgentId())
	}
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, ids)
}

func TestOnUpdateFires(t *testing.T) {
	var fired int
	v := NewBrokerView(BrokerOptions{BrokerID: "b1", OnUpdate: func() { fired++ }})

	v.Apply(&roostpb.AgentStatusSnapshot{IsFullUpdate: true})
	v.Apply(&roostpb.AgentStatusSnapshot{IsFullUpdate: false})
	assert.Equal(t, 2, fired)
}
