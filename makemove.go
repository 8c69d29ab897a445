package chesscore

// undoRecord captures everything MakeMove changed, so UnmakeMove can
// restore it without a FEN round-trip (see DESIGN.md for why this replaces
// the teacher module's snapshot-based undo).
type undoRecord struct {
	move            Move
	capturedKind    PieceKind
	capturedSq      Sq
	prevCastling    [4]bool
	prevEpSquare    Sq
	prevHalfmove    int
	prevFullmove    int
	prevSideToMove  Color
	prevPseudoLegal []Move
}

// MakeMove attempts to play m, which must be present (by structural
// equality) in the board's cached pseudo-legal list. It returns false,
// leaving the board unchanged, if m is not in that list or if playing it
// would leave the mover's own king attacked (including castling through or
// out of check). On success it commits the move and replaces the cached
// pseudo-legal list with the opponent's.
func (b *Board) MakeMove(m Move) bool {
	idx := -1
	for i, cand := range b.pseudoLegal {
		if cand == m {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	mover := b.sideToMove
	prevCastling := b.castlingRights
	prevEp := b.epSquare
	prevHalfmove := b.halfmoveClock
	prevFullmove := b.fullmoveNumber
	prevPseudoLegal := b.pseudoLegal

	if m.IsCastle && b.squareAttackedBy(m.From, mover.Opponent()) {
		b.pseudoLegal = spliceOut(prevPseudoLegal, idx)
		return false
	}

	capturedKind, capturedSq := b.applyMechanics(m)

	b.sideToMove = mover.Opponent()
	b.epSquare = doublePushTarget(m, mover)

	opponentMoves := b.generatePseudolegal()

	illegal := false
	if m.IsCastle {
		crossed := Sq((int(m.From) + int(m.To)) / 2)
		for _, om := range opponentMoves {
			if om.To == crossed {
				illegal = true
				break
			}
		}
	}
	if !illegal {
		kingSq := b.kingSquare(mover)
		for _, om := range opponentMoves {
			if om.Capture == King && om.To == kingSq {
				illegal = true
				break
			}
		}
	}

	if illegal {
		b.undoMechanics(m, capturedKind, capturedSq)
		b.sideToMove = mover
		b.epSquare = prevEp
		b.pseudoLegal = spliceOut(prevPseudoLegal, idx)
		return false
	}

	b.updateCastlingRights(m, capturedSq)
	if capturedKind != NoKind || m.Piece.Kind() == Pawn || m.IsCastle {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock = prevHalfmove + 1
	}
	if b.sideToMove == White {
		b.fullmoveNumber = prevFullmove + 1
	} else {
		b.fullmoveNumber = prevFullmove
	}

	b.history = append(b.history, undoRecord{
		move:            m,
		capturedKind:    capturedKind,
		capturedSq:      capturedSq,
		prevCastling:    prevCastling,
		prevEpSquare:    prevEp,
		prevHalfmove:    prevHalfmove,
		prevFullmove:    prevFullmove,
		prevSideToMove:  mover,
		prevPseudoLegal: prevPseudoLegal,
	})
	b.pseudoLegal = opponentMoves
	return true
}

// UnmakeMove reverses the most recent MakeMove. It is a silent no-op if
// there is no history to unmake.
func (b *Board) UnmakeMove() {
	if len(b.history) == 0 {
		return
	}
	rec := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]

	b.undoMechanics(rec.move, rec.capturedKind, rec.capturedSq)

	b.sideToMove = rec.prevSideToMove
	b.castlingRights = rec.prevCastling
	b.epSquare = rec.prevEpSquare
	b.halfmoveClock = rec.prevHalfmove
	b.fullmoveNumber = rec.prevFullmove
	b.pseudoLegal = rec.prevPseudoLegal
}

// IsLegal reports whether m can legally be played, leaving the board
// unchanged either way.
func (b *Board) IsLegal(m Move) bool {
	if !b.MakeMove(m) {
		return false
	}
	b.UnmakeMove()
	return true
}

// spliceOut removes the element at idx from moves in place and returns the
// shrunk slice. Order of the remaining elements is not significant (§4.2).
func spliceOut(moves []Move, idx int) []Move {
	last := len(moves) - 1
	moves[idx] = moves[last]
	return moves[:last]
}

// doublePushTarget returns the new en-passant target after m, or NoSquare
// if m was not a double pawn push.
func doublePushTarget(m Move, mover Color) Sq {
	if m.Piece.Kind() != Pawn {
		return NoSquare
	}
	delta := int(m.To) - int(m.From)
	if delta == 16 {
		return m.From.step(8)
	}
	if delta == -16 {
		return m.From.step(-8)
	}
	return NoSquare
}

// applyMechanics performs the reversible mailbox-and-count half of a move:
// relocating the mover, removing a captured piece (from m.To, or from
// behind the en-passant target), relocating a castling rook, and
// materializing a promotion. It returns the kind and square of whatever was
// captured (NoKind/NoSquare if nothing was), for undoMechanics to reverse.
func (b *Board) applyMechanics(m Move) (capturedKind PieceKind, capturedSq Sq) {
	mover := m.Piece
	color := mover.Color()

	capturedKind, capturedSq = NoKind, NoSquare
	if m.IsEnPassant {
		capturedSq = Square(m.To.File(), m.From.Rank())
		capturedKind = b.squares[capturedSq].Kind()
		b.squares[capturedSq] = NoPiece
	} else if occ := b.squares[m.To]; occ != NoPiece {
		capturedKind = occ.Kind()
		capturedSq = m.To
		b.squares[m.To] = NoPiece
	}
	if capturedKind != NoKind {
		b.pieceCount[color.Opponent()][capturedKind]--
	}

	if m.IsCastle {
		rookFrom, rookTo := castleRookSquares(color, m.To)
		b.squares[rookTo] = b.squares[rookFrom]
		b.squares[rookFrom] = NoPiece
	}

	b.squares[m.From] = NoPiece
	if m.Promotion != NoKind {
		b.squares[m.To] = NewPiece(color, m.Promotion)
		b.pieceCount[color][Pawn]--
		b.pieceCount[color][m.Promotion]++
	} else {
		b.squares[m.To] = mover
	}
	return capturedKind, capturedSq
}

// undoMechanics reverses applyMechanics.
func (b *Board) undoMechanics(m Move, capturedKind PieceKind, capturedSq Sq) {
	color := m.Piece.Color()

	if m.Promotion != NoKind {
		b.pieceCount[color][m.Promotion]--
		b.pieceCount[color][Pawn]++
	}
	b.squares[m.From] = m.Piece
	b.squares[m.To] = NoPiece

	if m.IsCastle {
		rookFrom, rookTo := castleRookSquares(color, m.To)
		b.squares[rookFrom] = b.squares[rookTo]
		b.squares[rookTo] = NoPiece
	}

	if capturedKind != NoKind {
		opp := color.Opponent()
		b.squares[capturedSq] = NewPiece(opp, capturedKind)
		b.pieceCount[opp][capturedKind]++
	}
}

// castleRookSquares returns the rook's from/to squares for a castling move
// that moves the king of color to kingTo.
func castleRookSquares(color Color, kingTo Sq) (from, to Sq) {
	switch {
	case color == White && kingTo == whiteKingShortDest:
		return whiteRookShortHome, whiteRookShortDest
	case color == White && kingTo == whiteKingLongDest:
		return whiteRookLongHome, whiteRookLongDest
	case color == Black && kingTo == blackKingShortDest:
		return blackRookShortHome, blackRookShortDest
	default:
		return blackRookLongHome, blackRookLongDest
	}
}

// updateCastlingRights monotonically clears rights touched by a successful
// move: a king move clears both of its own rights; a rook move, or a
// capture landing on an original rook square, clears the matching right.
func (b *Board) updateCastlingRights(m Move, capturedSq Sq) {
	color := m.Piece.Color()
	if m.Piece.Kind() == King {
		if color == White {
			b.castlingRights[WhiteShort] = false
			b.castlingRights[WhiteLong] = false
		} else {
			b.castlingRights[BlackShort] = false
			b.castlingRights[BlackLong] = false
		}
	}
	clearIfTouched := func(sq Sq) {
		switch sq {
		case whiteRookShortHome:
			b.castlingRights[WhiteShort] = false
		case whiteRookLongHome:
			b.castlingRights[WhiteLong] = false
		case blackRookShortHome:
			b.castlingRights[BlackShort] = false
		case blackRookLongHome:
			b.castlingRights[BlackLong] = false
		}
	}
	clearIfTouched(m.From)
	if capturedSq != NoSquare {
		clearIfTouched(capturedSq)
	}
}
