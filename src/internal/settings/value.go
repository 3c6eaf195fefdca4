package settings

import "strconv"

// Value is one option value. It is implemented only by IntValue, StringValue and BoolValue.
type Value interface {
	// Kind returns "integer", "string" or "boolean".
	Kind() string
	String() string
	isValue()
}

type IntValue int64

type StringValue string

type BoolValue bool

func (IntValue) Kind() string    { return "integer" }
func (StringValue) Kind() string { return "string" }
func (BoolValue) Kind() string   { return "boolean" }

func (v IntValue) String() string    { return strconv.FormatInt(int64(v), 10) }
func (v StringValue) String() string { return string(v) }
func (v BoolValue) String() string   { return strconv.FormatBool(bool(v)) }

func (IntValue) isValue()    {}
func (StringValue) isValue() {}
func (BoolValue) isValue()   {}

// Entry is a single key/value pair of the options table.
type Entry struct {
	Key   string
	Value Value
}

// Section is the options table in document order.
type Section struct {
	Name    string
	Entries []Entry
	// Checksum is the MD5 of the whole document, empty when parsed from memory.
	Checksum string
}

// Len returns the number of options.
func (s *Section) Len() int {
	return len(s.Entries)
}

// Get returns the value stored under key.
func (s *Section) Get(key string) (Value, bool) {
	for _, e := range s.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}
