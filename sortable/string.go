package sortable

import (
	"strings"

	"github.com/mossy2100/galaxon-core/assert"
	"github.com/mossy2100/galaxon-core/compare"
)

// String orders strings byte-wise, as strings.Compare does.
type String string

func (s String) Compare(other any) (compare.Ordering, error) {
	o, err := assert.Type[String](other)
	if err != nil {
		return compare.Equal, err
	}

	return compare.FromInt(strings.Compare(string(s), string(o))), nil
}

func (s String) Equals(other any) bool {
	return compare.Equals(s, other)
}
