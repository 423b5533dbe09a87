package server

var destinations = map[string]string{
	"show_interfaces":     "/interfaces",
	"interface_detail":    "/interface_detail",
	"device_info":         "/device_info",
	"non_vlan_interfaces": "/non_vlan",
}

// Destination maps a navigation command to the route it redirects to.
func Destination(command string) (string, bool) {
	dest, ok := destinations[command]
	return dest, ok
}
