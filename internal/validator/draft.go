package validator

// Draft identifies one of the supported JSON Schema specification versions.
type Draft int

const (
	Draft4      Draft = 4
	Draft6      Draft = 6
	Draft7      Draft = 7
	Draft201909 Draft = 2019
	Draft202012 Draft = 2020
)

// Draft URIs accepted for $schema (exact match).
const (
	Draft4URI      = "http://json-schema.org/draft-04/schema#"
	Draft6URI      = "http://json-schema.org/draft-06/schema#"
	Draft7URI      = "http://json-schema.org/draft-07/schema#"
	Draft201909URI = "https://json-schema.org/draft/2019-09/schema"
	Draft202012URI = "https://json-schema.org/draft/2020-12/schema"
)

// DraftFromURI maps a $schema value to its draft. The match is exact.
func DraftFromURI(uri string) (Draft, bool) {
	switch uri {
	case Draft4URI:
		return Draft4, true
	case Draft6URI:
		return Draft6, true
	case Draft7URI:
		return Draft7, true
	case Draft201909URI:
		return Draft201909, true
	case Draft202012URI:
		return Draft202012, true
	}
	return 0, false
}

// URI returns the canonical $schema value for the draft.
func (d Draft) URI() string {
	switch d {
	case Draft4:
		return Draft4URI
	case Draft6:
		return Draft6URI
	case Draft7:
		return Draft7URI
	case Draft201909:
		return Draft201909URI
	case Draft202012:
		return Draft202012URI
	}
	return ""
}

func (d Draft) String() string {
	switch d {
	case Draft4:
		return "draft-04"
	case Draft6:
		return "draft-06"
	case Draft7:
		return "draft-07"
	case Draft201909:
		return "2019-09"
	case Draft202012:
		return "2020-12"
	}
	return "unknown"
}
