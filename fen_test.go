package chesscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFEN_RoundTrip(t *testing.T) {
	tests := []string{
		startFEN,
		"r4rk1/2pp1ppp/8/8/5P2/8/PPPPP1PP/RNBQKBNR b KQ c3 0 12",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2pP/R2Q1RQ1 w kq - 0 1",
		"8/8/8/8/8/8/8/8 w - - 0 1",
	}
	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			b, err := FromFEN(fen)
			require.NoError(t, err)
			assert.Equal(t, fen, b.FEN())
		})
	}
}

func TestFromFEN_Empty(t *testing.T) {
	b, err := FromFEN("")
	require.NoError(t, err)
	assert.Equal(t, startFEN, b.FEN())
}

func TestFromFEN_StartingPositionContents(t *testing.T) {
	b := MustFromFEN(startFEN)
	assert.Equal(t, NewPiece(White, Rook), b.PieceAt(Square(0, 0)))
	assert.Equal(t, NewPiece(White, King), b.PieceAt(Square(4, 0)))
	assert.Equal(t, NewPiece(Black, Queen), b.PieceAt(Square(3, 7)))
	assert.Equal(t, NoPiece, b.PieceAt(Square(4, 3)))
	assert.Equal(t, White, b.SideToMove())
	assert.Equal(t, 1, b.FullmoveNumber())
	assert.Equal(t, 0, b.HalfmoveClock())
	assert.Equal(t, NoSquare, b.EnPassantSquare())
	for _, right := range []int{WhiteShort, WhiteLong, BlackShort, BlackLong} {
		assert.True(t, b.CanCastle(right))
	}
}

func TestFromFEN_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"too few fields", "8/8/8/8/8/8/8/8 w - -"},
		{"too few ranks", "8/8/8/8/8/8/8 w - - 0 1"},
		{"rank overflow", "9/8/8/8/8/8/8/8 w - - 0 1"},
		{"unknown piece letter", "zzzzzzzz/8/8/8/8/8/8/8 w - - 0 1"},
		{"bad side to move", "8/8/8/8/8/8/8/8 x - - 0 1"},
		{"bad castling char", "8/8/8/8/8/8/8/8 w Z - 0 1"},
		{"bad en passant square", "8/8/8/8/8/8/8/8 w - z9 0 1"},
		{"bad halfmove", "8/8/8/8/8/8/8/8 w - - x 1"},
		{"bad fullmove", "8/8/8/8/8/8/8/8 w - - 0 x"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := FromFEN(test.fen)
			require.Error(t, err)
			var parseErr *FenParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}
