package nxapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterNonVlan(t *testing.T) {
	interfaces := []Interface{
		{"interface": "Vlan1"},
		{"interface": "VLAN20"},
		{"interface": "vlan300"},
		{"interface": "Eth1/1"},
		{"interface": "mgmt0"},
		{"state": "up"},
		{"interface": 7},
	}

	filtered := FilterNonVlan(interfaces)
	assert.Equal(t, []Interface{
		{"interface": "Eth1/1"},
		{"interface": "mgmt0"},
		{"state": "up"},
		{"interface": 7},
	}, filtered)
}

func TestFilterNonVlanEmpty(t *testing.T) {
	assert.Equal(t, []Interface{}, FilterNonVlan(nil))
}

func TestFindInterface(t *testing.T) {
	interfaces := []Interface{
		{"interface": "Eth1/1", "state": "up"},
		{"interface": "Eth1/2", "state": "down"},
		{"state": "up"},
	}

	detail, ok := FindInterface(interfaces, "Eth1/2")
	assert.True(t, ok)
	assert.Equal(t, interfaces[1], detail)

	_, ok = FindInterface(interfaces, "Eth9/9")
	assert.False(t, ok)

	_, ok = FindInterface(interfaces, "eth1/2")
	assert.False(t, ok)

	_, ok = FindInterface(interfaces, "")
	assert.False(t, ok)
}

func TestInterfacesFromRows(t *testing.T) {
	assert.Equal(t, []Interface{}, interfacesFromRows(nil))
	assert.Equal(t, []Interface{}, interfacesFromRows("text"))
	assert.Equal(t, []Interface{{"interface": "Eth1/1"}},
		interfacesFromRows(map[string]any{"interface": "Eth1/1"}))
	assert.Equal(t, []Interface{{"interface": "Eth1/1"}},
		interfacesFromRows([]any{map[string]any{"interface": "Eth1/1"}, "junk"}))
}

func TestFields(t *testing.T) {
	fields := Fields([]Interface{
		{"state": "up", "interface": "Eth1/1"},
		{"speed": "auto", "interface": "Eth1/2", "state": "down"},
	})
	assert.Equal(t, []string{"interface", "speed", "state"}, fields)

	assert.Equal(t, []string{"interface"}, Fields(nil))
}
