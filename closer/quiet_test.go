package closer_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"seqkit/closer"
	"seqkit/internal/logging"
	"seqkit/mocks"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	previous := logging.Logger
	t.Cleanup(func() { logging.SetGlobalLogger(previous) })

	var buf bytes.Buffer
	logging.SetGlobalLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	return &buf
}

func TestQuietly(t *testing.T) {
	logs := captureLogs(t)
	ctrl := gomock.NewController(t)

	closer.Quietly(nil)
	closer.Quietly(42)

	cursor := mocks.NewMockCursor(ctrl)
	cursor.EXPECT().Close().Return(nil)
	closer.Quietly(cursor)
	require.Empty(t, logs.String())

	rows := mocks.NewMockRows(ctrl)
	rows.EXPECT().Close()
	closer.Quietly(rows)

	conn := mocks.NewMockPooledConnection(ctrl)
	conn.EXPECT().Release()
	closer.Quietly(conn)
	require.Empty(t, logs.String())

	stmt := mocks.NewMockStatement(ctrl)
	stmt.EXPECT().Close().Return(errors.New("statement already closed"))
	require.NotPanics(t, func() { closer.Quietly(stmt) })
	require.Contains(t, logs.String(), `"level":"debug"`)
	require.Contains(t, logs.String(), `"family":"statement"`)
	require.Contains(t, logs.String(), `"resource":"*mocks.MockStatement"`)
	require.Contains(t, logs.String(), "statement already closed")
}
