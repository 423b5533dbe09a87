package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/aRestless/nxview/pkg/nxapi"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func initQueryCmd(deviceIn *DeviceInput) *cobra.Command {
	result := &cobra.Command{
		Use:   "query",
		Short: "Run a single NX-API query and print the result",
	}

	in := &QueryInput{DeviceInput: deviceIn}
	result.PersistentFlags().StringVarP(&in.Output, "output", "o", "table", "output format (table, yaml)")

	result.AddCommand(
		&cobra.Command{
			Use:   "interfaces",
			Short: "show interface brief",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return queryInterfaces(cmd.Context(), cmd.OutOrStdout(), in, false)
			},
		},
		&cobra.Command{
			Use:   "non-vlan",
			Short: "show interface brief without VLAN interfaces",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return queryInterfaces(cmd.Context(), cmd.OutOrStdout(), in, true)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "show version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return queryVersion(cmd.Context(), cmd.OutOrStdout(), in)
			},
		},
		initQueryInterfaceCmd(in),
	)

	return result
}

func initQueryInterfaceCmd(queryIn *QueryInput) *cobra.Command {
	in := &QueryInterfaceInput{
		QueryInput: queryIn,
	}

	cmd := &cobra.Command{
		Use:   "interface",
		Short: "show a single interface from show interface brief",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return queryInterface(cmd.Context(), cmd.OutOrStdout(), in)
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "interface name, e.g. Eth1/1")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func queryInterfaces(ctx context.Context, w io.Writer, in *QueryInput, nonVlan bool) error {
	c, err := getNXAPIClient(in.DeviceInput)
	if err != nil {
		return err
	}

	var interfaces []nxapi.Interface
	if nonVlan {
		interfaces, err = c.NonVlanInterfaces(ctx)
	} else {
		interfaces, err = c.Interfaces(ctx)
	}
	if err != nil {
		return err
	}

	return printInterfaces(w, in.Output, interfaces)
}

func queryInterface(ctx context.Context, w io.Writer, in *QueryInterfaceInput) error {
	c, err := getNXAPIClient(in.DeviceInput)
	if err != nil {
		return err
	}

	interfaces, err := c.Interfaces(ctx)
	if err != nil {
		return err
	}

	detail, ok := nxapi.FindInterface(interfaces, in.Name)
	if !ok {
		return fmt.Errorf("interface '%s' not found", in.Name)
	}

	return printInterfaces(w, in.Output, []nxapi.Interface{detail})
}

func queryVersion(ctx context.Context, w io.Writer, in *QueryInput) error {
	c, err := getNXAPIClient(in.DeviceInput)
	if err != nil {
		return err
	}

	info, err := c.DeviceInfo(ctx)
	if err != nil {
		return err
	}

	switch in.Output {
	case "yaml":
		return printYAML(w, info)
	case "table", "":
	default:
		return fmt.Errorf("unknown output format %q", in.Output)
	}

	keys := make([]string, 0, len(info))
	for k := range info {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var rows []map[string]string
	for _, k := range keys {
		rows = append(rows, map[string]string{
			"Field": k,
			"Value": fmt.Sprintf("%v", info[k]),
		})
	}

	printTable(w, rows, []string{"Field", "Value"})
	return nil
}

func printInterfaces(w io.Writer, output string, interfaces []nxapi.Interface) error {
	switch output {
	case "yaml":
		return printYAML(w, interfaces)
	case "table", "":
	default:
		return fmt.Errorf("unknown output format %q", output)
	}

	columns := nxapi.Fields(interfaces)
	var rows []map[string]string
	for _, intf := range interfaces {
		row := map[string]string{}
		for _, column := range columns {
			if v, ok := intf[column]; ok {
				row[column] = fmt.Sprintf("%v", v)
			}
		}
		rows = append(rows, row)
	}

	printTable(w, rows, columns)
	return nil
}

func printYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

func getNXAPIClient(in *DeviceInput) (*nxapi.Client, error) {
	l, err := newLogger(logLevel)
	if err != nil {
		return nil, err
	}
	l.Out = os.Stderr

	c, err := nxapi.New(in.Config(), l)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	return c, nil
}
