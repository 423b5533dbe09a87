package server

import (
	"github.com/aRestless/nxview/pkg/model"
	"github.com/aRestless/nxview/pkg/nxapi"
)

const historyLimit = 50

type PageData struct {
	Page       string
	HasHistory bool

	Interfaces []nxapi.Interface
	Detail     nxapi.Interface
	Info       nxapi.DeviceInfo
	History    []model.CommandLog

	// Error is a lookup miss, DeviceError a failed call to the switch.
	Error       string
	DeviceError string
}
