package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayNames(t *testing.T) {
	o := &Office{Name: "  SUPPLY   and property  division"}
	assert.Equal(t, "Supply And Property Division", o.DisplayName())

	u := &User{FirstName: "mARIA", LastName: "dela cruz"}
	assert.Equal(t, "Maria Dela Cruz", u.FullName())
}
