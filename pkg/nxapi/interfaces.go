package nxapi

import (
	"sort"
	"strings"
)

var (
	interfacesPath = []string{"ins_api", "outputs", "output", "body", "TABLE_interface", "ROW_interface"}
	bodyPath       = []string{"ins_api", "outputs", "output", "body"}
)

// FilterNonVlan drops every interface whose name contains "VLAN" in any casing.
func FilterNonVlan(interfaces []Interface) []Interface {
	result := []Interface{}
	for _, intf := range interfaces {
		if strings.Contains(strings.ToUpper(intf.Name()), "VLAN") {
			continue
		}
		result = append(result, intf)
	}

	return result
}

// FindInterface returns the first interface whose name equals name exactly.
func FindInterface(interfaces []Interface, name string) (Interface, bool) {
	for _, intf := range interfaces {
		n, ok := intf["interface"].(string)
		if ok && n == name {
			return intf, true
		}
	}

	return nil, false
}

// Fields returns the union of all field names, "interface" first and the rest sorted.
func Fields(interfaces []Interface) []string {
	seen := map[string]bool{}
	var keys []string
	for _, intf := range interfaces {
		for k := range intf {
			if k == "interface" || seen[k] {
				continue
			}
			seen[k] = true
			keys = append(keys, k)
		}
	}

	sort.Strings(keys)
	return append([]string{"interface"}, keys...)
}

func lookup(v any, path ...string) any {
	for _, key := range path {
		m, ok := v.(map[string]any)
		if !ok {
			return nil
		}
		v = m[key]
	}

	return v
}

// interfacesFromRows accepts ROW_interface as either a single object or a list of objects.
func interfacesFromRows(rows any) []Interface {
	result := []Interface{}

	switch r := rows.(type) {
	case map[string]any:
		result = append(result, Interface(r))
	case []any:
		for _, row := range r {
			m, ok := row.(map[string]any)
			if !ok {
				continue
			}
			result = append(result, Interface(m))
		}
	}

	return result
}

func deviceInfoFromBody(body any) DeviceInfo {
	m, ok := body.(map[string]any)
	if !ok {
		return DeviceInfo{}
	}

	return DeviceInfo(m)
}
