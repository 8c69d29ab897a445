package chesscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveString(t *testing.T) {
	tests := []struct {
		name string
		m    Move
		want string
	}{
		{"quiet", Move{From: Square(4, 1), To: Square(4, 3), Piece: NewPiece(White, Pawn)}, "e2-e4"},
		{"capture", Move{From: Square(4, 3), To: Square(3, 4), Piece: NewPiece(White, Pawn), Capture: Pawn}, "e4xd5"},
		{"promotion", Move{From: Square(1, 6), To: Square(1, 7), Piece: NewPiece(White, Pawn), Promotion: Queen}, "b7-b8=Q"},
		{"short castle", Move{From: Square(4, 0), To: Square(6, 0), Piece: NewPiece(White, King), IsCastle: true}, "O-O"},
		{"long castle", Move{From: Square(4, 0), To: Square(2, 0), Piece: NewPiece(White, King), IsCastle: true}, "O-O-O"},
		{"null", NullMove, "--"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.m.String())
		})
	}
}

func TestMoveUCI(t *testing.T) {
	m := Move{From: Square(1, 6), To: Square(1, 7), Piece: NewPiece(White, Pawn), Promotion: Queen}
	assert.Equal(t, "b7b8q", m.UCI())
	assert.Equal(t, "0000", NullMove.UCI())
}

func TestFindMove(t *testing.T) {
	b := MustFromFEN(startFEN)
	m, err := b.FindMove("e2", "e4", 0)
	require.NoError(t, err)
	assert.Equal(t, Square(4, 1), m.From)
	assert.Equal(t, Square(4, 3), m.To)

	_, err = b.FindMove("e2", "e5", 0)
	assert.Error(t, err)

	_, err = b.FindMove("z9", "e4", 0)
	assert.Error(t, err)
}

func TestFindMove_Promotion(t *testing.T) {
	b := MustFromFEN("rnbqkbnr/ppppppPp/8/8/8/8/PPPPPPP1/RNBQKBNR w KQkq - 0 1")
	m, err := b.FindMove("g7", "h8", 'Q')
	require.NoError(t, err)
	assert.Equal(t, Queen, m.Promotion)
	assert.Equal(t, Rook, m.Capture)
}
