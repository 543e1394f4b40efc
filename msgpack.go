package decnum

import (
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Int{}
	_ msgpack.CustomDecoder = (*Int)(nil)
)

// EncodeMsgpack writes i as a msgpack string holding its decimal rendering,
// matching the JSON and text encodings.
func (i Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(i.String())
}

func (i *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	v, err := IntFromString(s)
	if err != nil {
		return err
	}
	*i = v
	return nil
}
