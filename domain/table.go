package domain

// LoadStatus tells a caller how a collection table came to be, so that
// presentation code can distinguish "no data" from "failed to load" without
// reading logs.
type LoadStatus string

const (
	// LoadOK means the file was read and at least one record parsed.
	LoadOK LoadStatus = "ok"
	// LoadEmpty means the file held a valid but empty array.
	LoadEmpty LoadStatus = "empty"
	// LoadMissing means the file does not exist under the data directory.
	LoadMissing LoadStatus = "missing"
	// LoadMalformed means the file existed but was not a JSON array.
	LoadMalformed LoadStatus = "malformed"
)

// Table is an ordered collection of records sharing a schema, together with
// the outcome of loading it. An empty Records slice is a valid state; Status
// and Reason say why it is empty.
type Table[T any] struct {
	Records []T
	Status  LoadStatus
	Reason  string
}

func (t Table[T]) Len() int {
	return len(t.Records)
}

func (t Table[T]) IsEmpty() bool {
	return len(t.Records) == 0
}

// Loaded reports whether the source file was readable, regardless of whether
// it held any records.
func (t Table[T]) Loaded() bool {
	return t.Status == LoadOK || t.Status == LoadEmpty
}
