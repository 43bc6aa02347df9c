package scl

import (
	"errors"
	"fmt"
)

// ErrUnknownSubNetworkType is returned for an unsupported SubNetwork type.
var ErrUnknownSubNetworkType = errors.New("unknown SubNetwork type")

// SubNetworkType is the type attribute of a SubNetwork.
type SubNetworkType string

// SubNetwork types.
const (
	SubNetworkIP       SubNetworkType = "IP"
	SubNetworkMMS      SubNetworkType = "8-MMS"
	SubNetworkPhysical SubNetworkType = "PHYSICAL"
)

// ParseSubNetworkType validates s against the known SubNetwork types.
func ParseSubNetworkType(s string) (SubNetworkType, error) {
	switch t := SubNetworkType(s); t {
	case SubNetworkIP, SubNetworkMMS, SubNetworkPhysical:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSubNetworkType, s)
}

// Communication holds the document's subnetworks.
type Communication struct {
	Extension
	SubNetworks []*SubNetwork `xml:"SubNetwork"`
}

// SubNetwork is a communication subnetwork.
type SubNetwork struct {
	Name         string         `xml:"name,attr"`
	Type         SubNetworkType `xml:"type,attr,omitempty"`

	Extension
	ConnectedAPs []*ConnectedAP `xml:"ConnectedAP"`
}

// ConnectedAP attaches an IED access point to a subnetwork.
type ConnectedAP struct {
	IEDName string `xml:"iedName,attr"`
	APName  string `xml:"apName,attr"`

	Extension
}

// SubNetworksOf returns the names of the subnetworks an IED is connected to.
func (d *Document) SubNetworksOf(iedName string) []string {
	if d.Communication == nil {
		return nil
	}
	var out []string
	for _, sn := range d.Communication.SubNetworks {
		for _, ap := range sn.ConnectedAPs {
			if ap.IEDName == iedName {
				out = append(out, sn.Name)
				break
			}
		}
	}
	return out
}
