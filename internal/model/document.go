package model

// RawDocument is an uploaded byte buffer together with the filename it was declared under.
// It is the source of truth for every analysis and must never be mutated.
type RawDocument struct {
	Filename string
	Data     []byte
}

// Size returns the length of the buffer in bytes.
func (d RawDocument) Size() int64 {
	return int64(len(d.Data))
}

// Upload is a single file handed to the grader by a transport (HTTP multipart, CLI argument).
// It may be a document or a container holding documents.
type Upload struct {
	Filename string
	Data     []byte
}
