package scl

import (
	"errors"
	"fmt"
)

// ErrLDeviceNotFound is returned when an LDevice lookup fails.
var ErrLDeviceNotFound = errors.New("LDevice not found")

// IED is a configured device instance.
type IED struct {
	Name          string         `xml:"name,attr"`
	Type          string         `xml:"type,attr,omitempty"`
	Manufacturer  string         `xml:"manufacturer,attr,omitempty"`
	ConfigVersion string         `xml:"configVersion,attr,omitempty"`
	Privates      []*Private     `xml:"Private"`

	Extension
	AccessPoints []*AccessPoint `xml:"AccessPoint"`
}

// AccessPoint is a communication access point of an IED.
type AccessPoint struct {
	Name   string  `xml:"name,attr"`
	Server *Server `xml:"Server"`

	Extension
}

// Server holds the logical devices reachable through an access point.
type Server struct {
	Extension
	LDeviceList []*LDevice `xml:"LDevice"`
}

// LDevices returns the logical devices of every access point, in document order.
func (i *IED) LDevices() []*LDevice {
	var out []*LDevice
	for _, ap := range i.AccessPoints {
		if ap.Server == nil {
			continue
		}
		out = append(out, ap.Server.LDeviceList...)
	}
	return out
}

// FindLDevice returns the logical device with the given instance code.
func (i *IED) FindLDevice(inst string) (*LDevice, bool) {
	for _, ld := range i.LDevices() {
		if ld.Inst == inst {
			return ld, true
		}
	}
	return nil, false
}

// LDeviceByInst returns the logical device with the given instance code or
// an error wrapping ErrLDeviceNotFound.
func (i *IED) LDeviceByInst(inst string) (*LDevice, error) {
	ld, ok := i.FindLDevice(inst)
	if !ok {
		return nil, fmt.Errorf("%w: LDevice.inst %q in IED %q", ErrLDeviceNotFound, inst, i.Name)
	}
	return ld, nil
}

// ICDHeader returns the compas ICDHeader private of the IED.
func (i *IED) ICDHeader() (*ICDHeader, bool) {
	for _, p := range i.Privates {
		if p.Type == PrivateICDHeader && p.ICDHeader != nil {
			return p.ICDHeader, true
		}
	}
	return nil, false
}

// CompasBay returns the compas Bay private of the IED.
func (i *IED) CompasBay() (*CompasBay, bool) {
	for _, p := range i.Privates {
		if p.Type == PrivateBay && p.Bay != nil {
			return p.Bay, true
		}
	}
	return nil, false
}
