package nxapi

import (
	"time"
)

const (
	CommandShowInterfaceBrief = "show interface brief"
	CommandShowVersion        = "show version"
)

// CommandEnvelope is the request body accepted by the NX-API /ins endpoint.
type CommandEnvelope struct {
	InsAPI CommandRequest `json:"ins_api"`
}

type CommandRequest struct {
	Version      string `json:"version"`
	Type         string `json:"type"`
	Chunk        string `json:"chunk"`
	SID          string `json:"sid"`
	Input        string `json:"input"`
	OutputFormat string `json:"output_format"`
}

func NewCommandEnvelope(command string) CommandEnvelope {
	return CommandEnvelope{
		InsAPI: CommandRequest{
			Version:      "1.0",
			Type:         "cli_show",
			Chunk:        "0",
			SID:          "1",
			Input:        command,
			OutputFormat: "json",
		},
	}
}

// Interface is one ROW_interface entry exactly as the device reported it.
type Interface map[string]any

// Name returns the "interface" field, or "" when it is missing or not a string.
func (i Interface) Name() string {
	name, _ := i["interface"].(string)
	return name
}

// DeviceInfo is the body of a "show version" response.
type DeviceInfo map[string]any

// Exchange describes a single NX-API call, successful or not.
type Exchange struct {
	Command    string
	URL        string
	StatusCode int
	Started    time.Time
	Duration   time.Duration
	Err        error
}

// Recorder receives every Exchange performed by a Client.
type Recorder interface {
	Record(Exchange) error
}
