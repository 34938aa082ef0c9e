package toast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterNotifier_Prefixes(t *testing.T) {
	var buf bytes.Buffer
	n := NewWriterNotifier(&buf)

	n.Notify("saved", SeveritySuccess)
	n.Notify("nope", SeverityError)
	n.Notify("fyi", SeverityInfo)

	assert.Equal(t, "[OK] saved\n[ERR] nope\n[INFO] fyi\n", buf.String())
}
