package construct

import "errors"

var (
	// ErrEvents reports events which do not form a single well nested
	// value.
	ErrEvents = errors.New("malformed event stream")
	// ErrStructure reports a collection whose content does not match its
	// tag.
	ErrStructure = errors.New("collection does not match its tag")
	// ErrScalar reports a tagged scalar whose text does not parse.
	ErrScalar = errors.New("scalar does not match its tag")
)
