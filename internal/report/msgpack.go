package report

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// WriteMsgpack encodes the canonical Document of r
func WriteMsgpack(w io.Writer, r Report) error {
	return msgpack.NewEncoder(w).Encode(r.Document())
}

// ReadMsgpack decodes a Document written by WriteMsgpack
func ReadMsgpack(rd io.Reader) (Document, error) {
	var doc Document
	err := msgpack.NewDecoder(rd).Decode(&doc)
	return doc, err
}
