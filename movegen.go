package chesscore

// movegen accumulates pseudo-legal moves for forColor in the given board.
// It never mutates the board; it is also reused (with forColor set to the
// opponent) by squareAttackedBy/InCheck to probe attacks without having to
// flip sideToMove.
type movegen struct {
	board    *Board
	forColor Color
	moves    []Move
}

// generatePseudolegal returns the pseudo-legal moves for the side to move.
func (b *Board) generatePseudolegal() []Move {
	gen := movegen{board: b, forColor: b.sideToMove}
	gen.generate()
	return gen.moves
}

func (gen *movegen) generate() {
	b := gen.board
	for sq := Sq(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p == NoPiece || p.Color() != gen.forColor {
			continue
		}
		switch p.Kind() {
		case Pawn:
			gen.pawn(sq, p)
		case Knight:
			gen.knight(sq, p)
		case Bishop:
			gen.slider(sq, p, bishopOffsets)
		case Rook:
			gen.slider(sq, p, rookOffsets)
		case Queen:
			gen.slider(sq, p, bishopOffsets)
			gen.slider(sq, p, rookOffsets)
		case King:
			gen.king(sq, p)
		}
	}
}

var knightOffsets = [...]int{-17, -15, -10, -6, 6, 10, 15, 17}
var kingOffsets = [...]int{-9, -8, -7, -1, 1, 7, 8, 9}
var bishopOffsets = [...]int{-9, -7, 7, 9}
var rookOffsets = [...]int{-8, -1, 1, 8}

// addMove appends a move from->to with the given mover piece and capture
// kind, unless to is off-board or occupied by a piece of the mover's own
// color. Returns whether the destination was empty (so sliders know whether
// to keep walking).
func (gen *movegen) addMove(from, to Sq, piece Piece, capture PieceKind, isEnPassant bool) bool {
	if to == NoSquare {
		return false
	}
	occupant := gen.board.squares[to]
	if occupant != NoPiece && occupant.Color() == gen.forColor {
		return false
	}
	gen.moves = append(gen.moves, Move{
		From:        from,
		To:          to,
		Piece:       piece,
		Capture:     capture,
		IsEnPassant: isEnPassant,
	})
	return occupant == NoPiece
}

// addPawnMove appends a pawn move from->to, expanding it into four
// promotion moves if to lands on the mover's last rank.
func (gen *movegen) addPawnMove(from, to Sq, piece Piece, capture PieceKind, isEnPassant bool) {
	if to.RelativeRank(gen.forColor) == 7 {
		for _, promo := range [...]PieceKind{Knight, Bishop, Rook, Queen} {
			gen.moves = append(gen.moves, Move{
				From:        from,
				To:          to,
				Piece:       piece,
				Capture:     capture,
				Promotion:   promo,
				IsEnPassant: isEnPassant,
			})
		}
		return
	}
	gen.addMove(from, to, piece, capture, isEnPassant)
}

func (gen *movegen) pawn(sq Sq, piece Piece) {
	b := gen.board
	forward := 8
	if gen.forColor == Black {
		forward = -8
	}
	// single push
	if one := sq.step(forward); one != NoSquare && b.squares[one] == NoPiece {
		gen.addPawnMove(sq, one, piece, NoKind, false)
		// double push, only from the mover's second rank
		if sq.RelativeRank(gen.forColor) == 1 {
			if two := sq.step(2 * forward); two != NoSquare && b.squares[two] == NoPiece {
				gen.addPawnMove(sq, two, piece, NoKind, false)
			}
		}
	}
	// captures (including en passant)
	for _, df := range [...]int{forward - 1, forward + 1} {
		to := sq.step(df)
		if to == NoSquare {
			continue
		}
		if to == b.epSquare {
			gen.addPawnMove(sq, to, piece, Pawn, true)
			continue
		}
		if occ := b.squares[to]; occ != NoPiece && occ.Color() != gen.forColor {
			gen.addPawnMove(sq, to, piece, occ.Kind(), false)
		}
	}
}

func (gen *movegen) knight(sq Sq, piece Piece) {
	for _, offset := range knightOffsets {
		to := sq.step(offset)
		if to == NoSquare {
			continue
		}
		gen.addMove(sq, to, piece, gen.captureKindAt(to), false)
	}
}

func (gen *movegen) king(sq Sq, piece Piece) {
	for _, offset := range kingOffsets {
		to := sq.step(offset)
		if to == NoSquare {
			continue
		}
		gen.addMove(sq, to, piece, gen.captureKindAt(to), false)
	}
	gen.castling(sq, piece)
}

func (gen *movegen) slider(from Sq, piece Piece, offsets [4]int) {
	for _, offset := range offsets {
		to := from.step(offset)
		for to != NoSquare {
			if !gen.addMove(from, to, piece, gen.captureKindAt(to), false) {
				break
			}
			to = to.step(offset)
		}
	}
}

func (gen *movegen) captureKindAt(sq Sq) PieceKind {
	occ := gen.board.squares[sq]
	if occ == NoPiece || occ.Color() == gen.forColor {
		return NoKind
	}
	return occ.Kind()
}

// castling appends short/long castling moves when the path between king and
// rook is empty and the right is still held. King-safety (the king is not
// currently in check, and does not cross or land on an attacked square) is
// enforced by MakeMove's legality gate, not here: a pseudo-legal castle move
// may still be rejected by MakeMove.
func (gen *movegen) castling(kingSq Sq, piece Piece) {
	b := gen.board
	if gen.forColor == White {
		if b.castlingRights[WhiteShort] && kingSq == whiteKingHome &&
			b.squares[5] == NoPiece && b.squares[6] == NoPiece {
			gen.moves = append(gen.moves, Move{From: kingSq, To: whiteKingShortDest, Piece: piece, IsCastle: true})
		}
		if b.castlingRights[WhiteLong] && kingSq == whiteKingHome &&
			b.squares[1] == NoPiece && b.squares[2] == NoPiece && b.squares[3] == NoPiece {
			gen.moves = append(gen.moves, Move{From: kingSq, To: whiteKingLongDest, Piece: piece, IsCastle: true})
		}
		return
	}
	if b.castlingRights[BlackShort] && kingSq == blackKingHome &&
		b.squares[61] == NoPiece && b.squares[62] == NoPiece {
		gen.moves = append(gen.moves, Move{From: kingSq, To: blackKingShortDest, Piece: piece, IsCastle: true})
	}
	if b.castlingRights[BlackLong] && kingSq == blackKingHome &&
		b.squares[57] == NoPiece && b.squares[58] == NoPiece && b.squares[59] == NoPiece {
		gen.moves = append(gen.moves, Move{From: kingSq, To: blackKingLongDest, Piece: piece, IsCastle: true})
	}
}
