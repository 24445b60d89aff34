package sqlseq_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"seqkit/internal/logging"
	"seqkit/mocks"
	"seqkit/seqs"
	"seqkit/sqlseq"
)

func scanInt(c sqlseq.Cursor) (int, error) {
	var v int
	err := c.Scan(&v)
	return v, err
}

// expectRows makes cursor scan ids 1..n.
func expectRows(cursor *mocks.MockCursor, n int) {
	id := 0
	cursor.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
		id++
		*dest[0].(*int) = id
		return nil
	}).Times(n)
}

func TestScanStopsOnAdvanceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	cursor := mocks.NewMockCursor(ctrl)
	advanceErr := errors.New("test")

	gomock.InOrder(
		cursor.EXPECT().Next().Return(true),
		cursor.EXPECT().Next().Return(true),
		cursor.EXPECT().Next().Return(false),
		cursor.EXPECT().Err().Return(advanceErr),
		cursor.EXPECT().Close().Return(nil),
	)
	expectRows(cursor, 2)

	s := sqlseq.Scan(cursor, scanInt)
	got, err := seqs.Collect(s)
	require.Equal(t, []int{1, 2}, got)

	var re *seqs.ResourceError
	require.ErrorAs(t, err, &re)
	require.ErrorIs(t, err, advanceErr)
	require.Equal(t, "*errors.errorString: test", err.Error())

	// the failure is sticky and the cursor is not advanced again
	require.False(t, s.Next())
	require.ErrorIs(t, s.Err(), advanceErr)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}

func TestScanStopsOnMapperFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	cursor := mocks.NewMockCursor(ctrl)
	scanErr := errors.New("converting column")

	cursor.EXPECT().Next().Return(true)
	cursor.EXPECT().Scan(gomock.Any()).Return(scanErr)
	cursor.EXPECT().Close().Return(nil)

	s := sqlseq.Scan(cursor, scanInt)
	defer s.Close()

	n, err := seqs.Count(s)
	require.Zero(t, n)
	require.ErrorIs(t, err, scanErr)
	var re *seqs.ResourceError
	require.ErrorAs(t, err, &re)
}

func TestRowsEndsWithoutError(t *testing.T) {
	ctrl := gomock.NewController(t)
	cursor := mocks.NewMockCursor(ctrl)

	gomock.InOrder(
		cursor.EXPECT().Next().Return(true).Times(3),
		cursor.EXPECT().Next().Return(false),
		cursor.EXPECT().Err().Return(nil),
	)
	cursor.EXPECT().Close().Return(nil)

	s := sqlseq.Map(cursor, func(sqlseq.Cursor) string { return "row" })
	got, err := seqs.Collect(s)
	require.NoError(t, err)
	require.Equal(t, []string{"row", "row", "row"}, got)
	require.NoError(t, s.Close())
}

func TestRowsCloseBeforeExhaustion(t *testing.T) {
	ctrl := gomock.NewController(t)
	cursor := mocks.NewMockCursor(ctrl)

	cursor.EXPECT().Next().Return(true)
	cursor.EXPECT().Close().Return(nil)

	s := sqlseq.Rows(cursor)
	require.True(t, s.Next())
	require.NoError(t, s.Close())

	// closed sequences never touch the cursor again
	require.False(t, s.Next())
	require.NoError(t, s.Err())
}

func TestRowsCloseIsQuiet(t *testing.T) {
	previous := logging.Logger
	t.Cleanup(func() { logging.SetGlobalLogger(previous) })
	var buf bytes.Buffer
	logging.SetGlobalLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))

	ctrl := gomock.NewController(t)
	cursor := mocks.NewMockCursor(ctrl)
	cursor.EXPECT().Close().Return(errors.New("connection reset"))

	s := sqlseq.Rows(cursor)
	require.NoError(t, s.Close())
	require.Contains(t, buf.String(), "quiet close failed")
	require.Contains(t, buf.String(), "connection reset")
	require.Contains(t, buf.String(), `"family":"cursor"`)
}

func TestRowsWithOperators(t *testing.T) {
	ctrl := gomock.NewController(t)
	cursor := mocks.NewMockCursor(ctrl)

	// Take never pulls past its limit, so the cursor is advanced exactly 4 times
	cursor.EXPECT().Next().Return(true).Times(4)
	expectRows(cursor, 4)
	cursor.EXPECT().Close().Return(nil)

	s := seqs.Batch(seqs.Take(sqlseq.Scan(cursor, scanInt), 4), 3)
	got, err := seqs.Collect(s)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2, 3}, {4}}, got)
	require.NoError(t, s.Close())
}
