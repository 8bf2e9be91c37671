package stickyheaders

import "github.com/fxamacker/cbor/v2"

// Saved state uses Core Deterministic Encoding so the same state always
// produces the same bytes.
var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("stickyheaders: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("stickyheaders: CBOR decoder initialization failed: " + err.Error())
	}
}

func marshalState(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

func unmarshalState(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}
