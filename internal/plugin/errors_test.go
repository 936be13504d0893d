package plugin

import (
    "errors"
    "fmt"
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
    cause := errors.New("bad zip")
    err := Processing("Error extracting from Word document", cause)
    assert.Equal(t, "Error extracting from Word document: bad zip", err.Error())
    assert.ErrorIs(t, err, cause)

    assert.Equal(t, "unknown action", InvalidArgument("unknown action", nil).Error())
}

func TestErrorKinds(t *testing.T) {
    inv := fmt.Errorf("wrapped: %w", InvalidArgument("Invalid value encountered", nil))
    assert.True(t, IsInvalidArgument(inv))
    assert.False(t, IsProcessing(inv))
    assert.Equal(t, KindInvalidArgument, KindOf(inv))

    proc := Processing("failed", nil)
    assert.True(t, IsProcessing(proc))
    assert.False(t, IsInvalidArgument(proc))

    plain := errors.New("plain")
    assert.Equal(t, KindProcessing, KindOf(plain))
    assert.False(t, IsProcessing(plain))
}

func TestFileParam(t *testing.T) {
    f := File{Filename: "a.docx", Blob: []byte("x")}
    params := Parameters{"v": f, "p": &f, "nilp": (*File)(nil), "s": "a.docx"}

    got, ok := params.FileParam("v")
    assert.True(t, ok)
    assert.Equal(t, f, got)

    got, ok = params.FileParam("p")
    assert.True(t, ok)
    assert.Equal(t, f, got)

    for _, name := range []string{"nilp", "s", "missing"} {
        _, ok := params.FileParam(name)
        assert.False(t, ok, name)
    }

    var none Parameters
    _, ok = none.FileParam("v")
    assert.False(t, ok)
}
