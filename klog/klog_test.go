package klog

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteLineStringEmitsOneJSONLinePerCall(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.WriteLineString("hello")
	l.WriteLineString("world")

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	require.Equal(t, "hello", rec["message"])
}

func TestThreadCreatedIncludesTIDNameAndPriority(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.ThreadCreated(7, "worker", 31)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.EqualValues(t, 7, rec["tid"])
	require.Equal(t, "worker", rec["name"])
	require.EqualValues(t, 31, rec["priority"])
}

func TestPriorityDonatedIncludesDonorHolderAndPriority(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.PriorityDonated(2, 1, 40)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.EqualValues(t, 2, rec["donor"])
	require.EqualValues(t, 1, rec["holder"])
	require.EqualValues(t, 40, rec["priority"])
}
