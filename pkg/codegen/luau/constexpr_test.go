package luau

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/minz/wasm2luau/pkg/wasmir"
)

func TestWriteConstExprRecognizesFirstInstruction(t *testing.T) {
	var buf strings.Builder
	s := newSink(&buf)
	writeConstExpr(s, []wasmir.ConstInstr{wasmir.ConstI32{Value: 7}})
	require.NoError(t, s.err)
	require.Equal(t, "7", buf.String())
}

func TestWriteConstExprGetGlobal(t *testing.T) {
	var buf strings.Builder
	s := newSink(&buf)
	writeConstExpr(s, []wasmir.ConstInstr{wasmir.ConstGetGlobal{Index: 3}})
	require.Equal(t, "GLOBAL_LIST[3].value", buf.String())
}

func TestWriteConstExprFallsBackToMundaneExpression(t *testing.T) {
	var buf strings.Builder
	s := newSink(&buf)
	writeConstExpr(s, nil)
	require.Contains(t, buf.String(), "mundane expression")
}
