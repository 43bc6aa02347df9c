package log

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Change log wire format: one CBOR map per event, integer keys, core
// deterministic key order, timestamps as tag 0 RFC 3339 strings with
// nanoseconds. Untagged timestamps from older logs still decode; duplicate
// keys do not.
var (
	changeLogEnc = mustEncMode(cbor.EncOptions{
		Sort:        cbor.SortCoreDeterministic,
		IndefLength: cbor.IndefLengthForbidden,
		Time:        cbor.TimeRFC3339Nano,
		TimeTag:     cbor.EncTagRequired,
	})
	changeLogDec = mustDecMode(cbor.DecOptions{
		DupMapKey:       cbor.DupMapKeyEnforcedAPF,
		TimeTag:         cbor.DecTagOptional,
		UTF8:            cbor.UTF8RejectInvalid,
		MaxNestedLevels: 8,
	})
)

func mustEncMode(opts cbor.EncOptions) cbor.EncMode {
	m, err := opts.EncMode()
	if err != nil {
		panic("change log encoder: " + err.Error())
	}
	return m
}

func mustDecMode(opts cbor.DecOptions) cbor.DecMode {
	m, err := opts.DecMode()
	if err != nil {
		panic("change log decoder: " + err.Error())
	}
	return m
}

// EncodeEvent returns the change log encoding of event.
func EncodeEvent(event Event) ([]byte, error) {
	return changeLogEnc.Marshal(event)
}

// DecodeEvent parses one encoded event.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := changeLogDec.Unmarshal(data, &event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// NewEncoder returns a stream encoder writing change log events to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return changeLogEnc.NewEncoder(w)
}

// NewDecoder returns a stream decoder reading change log events from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return changeLogDec.NewDecoder(r)
}
