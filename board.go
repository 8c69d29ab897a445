package chesscore

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Castling right indices, in FEN "KQkq" order.
const (
	WhiteShort = iota
	WhiteLong
	BlackShort
	BlackLong
)

// Standard back-rank castling squares. Chess960-style arbitrary rook files
// are out of scope (see DESIGN.md).
const (
	whiteKingHome = Sq(4)  // e1
	blackKingHome = Sq(60) // e8

	whiteRookShortHome = Sq(7)  // h1
	whiteRookLongHome  = Sq(0)  // a1
	blackRookShortHome = Sq(63) // h8
	blackRookLongHome  = Sq(56) // a8

	whiteKingShortDest = Sq(6) // g1
	whiteRookShortDest = Sq(5) // f1
	whiteKingLongDest  = Sq(2) // c1
	whiteRookLongDest  = Sq(3) // d1

	blackKingShortDest = Sq(62) // g8
	blackRookShortDest = Sq(61) // f8
	blackKingLongDest  = Sq(58) // c8
	blackRookLongDest  = Sq(59) // d8
)

// Board represents a chess position: the mailbox, derived counts, side to
// move, castling rights, en-passant target, clocks, the cached pseudo-legal
// move list for the side to move, and the make/unmake undo history.
type Board struct {
	squares        [64]Piece
	pieceCount     [2][7]int // indexed by Color, PieceKind (index 0/NoKind unused)
	sideToMove     Color
	castlingRights [4]bool
	epSquare       Sq
	halfmoveClock  int
	fullmoveNumber int

	pseudoLegal []Move
	history     []undoRecord
}

// SideToMove returns the color to move.
func (b *Board) SideToMove() Color { return b.sideToMove }

// FullmoveNumber returns the current fullmove counter.
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// HalfmoveClock returns the plies since the last capture, pawn move or
// castle.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// PieceAt returns the piece occupying sq, or NoPiece if empty.
func (b *Board) PieceAt(sq Sq) Piece { return b.squares[sq] }

// EnPassantSquare returns the current en-passant target, or NoSquare.
func (b *Board) EnPassantSquare() Sq { return b.epSquare }

// CanCastle reports whether the given castling right (WhiteShort,
// WhiteLong, BlackShort or BlackLong) is currently held.
func (b *Board) CanCastle(right int) bool { return b.castlingRights[right] }

// PseudolegalMoves returns the cached pseudo-legal move list for the side to
// move. The returned slice aliases Board's internal state: MakeMove may
// splice entries out of it, and a successful MakeMove/UnmakeMove replaces it
// outright. Callers that need a stable snapshot should copy it.
func (b *Board) PseudolegalMoves() []Move { return b.pseudoLegal }

// NewBoard returns an empty board (no pieces, White to move, no castling
// rights, no en-passant target). Most callers want FromFEN instead.
func NewBoard() *Board {
	b := &Board{
		sideToMove:     White,
		epSquare:       NoSquare,
		fullmoveNumber: 1,
	}
	b.pseudoLegal = b.generatePseudolegal()
	return b
}

// startFEN is the standard starting position.
const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FromFEN parses a FEN string into a Board. An empty string is treated as
// the standard starting position.
func FromFEN(fen string) (*Board, error) {
	if strings.TrimSpace(fen) == "" {
		fen = startFEN
	}
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, &FenParseError{Field: "fields", Message: fmt.Sprintf("expected 6 space-separated fields, got %d", len(fields))}
	}
	placement, sideField, castleField, epField, halfField, fullField := fields[0], fields[1], fields[2], fields[3], fields[4], fields[5]

	b := &Board{epSquare: NoSquare}

	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return nil, &FenParseError{Field: "placement", Message: fmt.Sprintf("expected 8 ranks, got %d", len(ranks))}
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range []byte(rankStr) {
			if file > 7 {
				return nil, &FenParseError{Field: "placement", Message: "rank has more than 8 files"}
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			p := pieceFromLetter(c)
			if p == NoPiece {
				return nil, &FenParseError{Field: "placement", Message: fmt.Sprintf("unknown piece letter %q", string(c))}
			}
			sq := Square(file, rank)
			b.squares[sq] = p
			b.pieceCount[p.Color()][p.Kind()]++
			file++
		}
		if file != 8 {
			return nil, &FenParseError{Field: "placement", Message: fmt.Sprintf("rank %d does not sum to 8 files", rank+1)}
		}
	}

	switch sideField {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return nil, &FenParseError{Field: "side to move", Message: fmt.Sprintf("expected 'w' or 'b', got %q", sideField)}
	}

	if castleField != "-" {
		for _, c := range []byte(castleField) {
			switch c {
			case 'K':
				b.castlingRights[WhiteShort] = true
			case 'Q':
				b.castlingRights[WhiteLong] = true
			case 'k':
				b.castlingRights[BlackShort] = true
			case 'q':
				b.castlingRights[BlackLong] = true
			default:
				return nil, &FenParseError{Field: "castling", Message: fmt.Sprintf("unexpected character %q", string(c))}
			}
		}
	}

	if epField == "-" {
		b.epSquare = NoSquare
	} else {
		b.epSquare = squareFromString(epField)
		if b.epSquare == NoSquare {
			return nil, &FenParseError{Field: "en passant", Message: fmt.Sprintf("invalid square %q", epField)}
		}
	}

	halfmove, err := strconv.Atoi(halfField)
	if err != nil || halfmove < 0 {
		return nil, &FenParseError{Field: "halfmove clock", Message: fmt.Sprintf("invalid integer %q", halfField)}
	}
	b.halfmoveClock = halfmove

	fullmove, err := strconv.Atoi(fullField)
	if err != nil || fullmove < 0 {
		return nil, &FenParseError{Field: "fullmove number", Message: fmt.Sprintf("invalid integer %q", fullField)}
	}
	b.fullmoveNumber = fullmove

	b.pseudoLegal = b.generatePseudolegal()
	return b, nil
}

// MustFromFEN is like FromFEN but panics on error. Intended for tests and
// for constant starting positions in caller code.
func MustFromFEN(fen string) *Board {
	b, err := FromFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

// FEN renders the board's current state as a FEN string.
func (b *Board) FEN() string {
	var buf bytes.Buffer
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.squares[Square(file, rank)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				buf.WriteByte(byte('0' + empty))
				empty = 0
			}
			buf.WriteByte(p.Letter())
		}
		if empty > 0 {
			buf.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			buf.WriteByte('/')
		}
	}
	buf.WriteByte(' ')
	buf.WriteString(b.sideToMove.String())
	buf.WriteByte(' ')

	start := buf.Len()
	if b.castlingRights[WhiteShort] {
		buf.WriteByte('K')
	}
	if b.castlingRights[WhiteLong] {
		buf.WriteByte('Q')
	}
	if b.castlingRights[BlackShort] {
		buf.WriteByte('k')
	}
	if b.castlingRights[BlackLong] {
		buf.WriteByte('q')
	}
	if buf.Len() == start {
		buf.WriteByte('-')
	}
	buf.WriteByte(' ')
	buf.WriteString(b.epSquare.String())
	fmt.Fprintf(&buf, " %d %d", b.halfmoveClock, b.fullmoveNumber)
	return buf.String()
}

// kingSquare returns the square of color's king, or NoSquare if it is
// somehow missing from the mailbox (an invariant violation the core does
// not defend against beyond reporting NoSquare).
func (b *Board) kingSquare(c Color) Sq {
	want := NewPiece(c, King)
	for sq := Sq(0); sq < 64; sq++ {
		if b.squares[sq] == want {
			return sq
		}
	}
	return NoSquare
}

// InCheck reports whether the side to move is currently attacked, i.e.
// whether the position the board is in right now is one the opponent just
// handed to it. It is computed by generating the opponent's pseudo-legal
// moves with a throwaway generator (squareAttackedBy); sideToMove is not
// flipped.
func (b *Board) InCheck() bool {
	kingSq := b.kingSquare(b.sideToMove)
	if kingSq == NoSquare {
		return false
	}
	return b.squareAttackedBy(kingSq, b.sideToMove.Opponent())
}

// squareAttackedBy reports whether any pseudo-legal move of attacker lands
// on sq. It builds a throwaway generator rather than mutating the board, so
// it is safe to call at any time (including mid-MakeMove).
func (b *Board) squareAttackedBy(sq Sq, attacker Color) bool {
	gen := movegen{board: b, forColor: attacker}
	gen.generate()
	for _, m := range gen.moves {
		if m.To == sq {
			return true
		}
	}
	return false
}
