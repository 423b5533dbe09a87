package cmd

import (
	"time"

	"github.com/aRestless/nxview/pkg/nxapi"
	"github.com/spf13/cobra"
)

type DeviceInput struct {
	URL                string
	Username           string
	Password           string
	InsecureSkipVerify bool
	Timeout            time.Duration
}

func (in *DeviceInput) Config() nxapi.Config {
	return nxapi.Config{
		URL:                in.URL,
		Username:           in.Username,
		Password:           in.Password,
		InsecureSkipVerify: in.InsecureSkipVerify,
		Timeout:            in.Timeout,
	}
}

type QueryInput struct {
	*DeviceInput
	Output string
}

type QueryInterfaceInput struct {
	*QueryInput
	Name string
}

type HashPasswordInput struct {
	Password string
	Cost     int
}

func bindDeviceInput(cmd *cobra.Command, input *DeviceInput) {
	cmd.PersistentFlags().StringVar(&input.URL, "nxapi.url", "https://sbx-nxos-mgmt.cisco.com:443/ins", "NX-API endpoint")
	cmd.PersistentFlags().StringVar(&input.Username, "nxapi.username", "admin", "")
	cmd.PersistentFlags().StringVar(&input.Password, "nxapi.password", "", "")
	cmd.PersistentFlags().BoolVar(&input.InsecureSkipVerify, "nxapi.insecureSkipVerify", true, "skip verification of the switch certificate")
	cmd.PersistentFlags().DurationVar(&input.Timeout, "nxapi.timeout", 0, "NX-API request timeout (0 means none)")
}
